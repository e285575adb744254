package sitectl

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEntry_RoundTripKeepsOrderAndUnknownKeys(t *testing.T) {
	input := `{"id":"a","extra":{"x":[1,2]},"title":"Say \"hi\"","views":3,"featured":true}`

	var e Entry
	if err := json.Unmarshal([]byte(input), &e); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]string{"id", "extra", "title", "views", "featured"}, e.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
	if got := e.Title(); got != `Say "hi"` {
		t.Errorf("Title() = %q, want %q", got, `Say "hi"`)
	}

	out, err := json.Marshal(e)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != input {
		t.Errorf("Marshal = %s, want %s", out, input)
	}
}

func TestEntry_UnmarshalRejectsNonObject(t *testing.T) {
	for _, input := range []string{`[1]`, `"x"`, `42`, `null`} {
		var e Entry
		if err := e.UnmarshalJSON([]byte(input)); err == nil {
			t.Errorf("UnmarshalJSON(%s) succeeded, want error", input)
		}
	}
}

func TestEntry_Text(t *testing.T) {
	var e Entry
	if err := json.Unmarshal([]byte(`{"s":"x","n":1.5,"b":false,"z":null}`), &e); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		key, want string
	}{
		{"s", "x"},
		{"n", "1.5"},
		{"b", "false"},
		{"z", ""},
		{"missing", ""},
	}
	for _, tt := range tests {
		if got := e.Text(tt.key); got != tt.want {
			t.Errorf("Text(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestEntry_Empty(t *testing.T) {
	var e Entry
	input := `{"null":null,"str":"","arr":[],"obj":{},"no":false,"zero":0,"text":"x","list":["a"],"yes":true,"num":7}`
	if err := json.Unmarshal([]byte(input), &e); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"null", "str", "arr", "obj", "no", "zero", "missing"} {
		if !e.Empty(key) {
			t.Errorf("Empty(%q) = false, want true", key)
		}
	}
	for _, key := range []string{"text", "list", "yes", "num"} {
		if e.Empty(key) {
			t.Errorf("Empty(%q) = true, want false", key)
		}
	}
}

func TestEntry_Strings(t *testing.T) {
	var e Entry
	if err := json.Unmarshal([]byte(`{"list":["Go","templ"],"one":"Go","num":3}`), &e); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"Go", "templ"}, e.Strings("list")); diff != "" {
		t.Errorf("Strings(list) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Go"}, e.Strings("one")); diff != "" {
		t.Errorf("Strings(one) mismatch (-want +got):\n%s", diff)
	}
	if got := e.Strings("num"); got != nil {
		t.Errorf("Strings(num) = %v, want nil", got)
	}
}

func TestEntry_SetReplacesInPlace(t *testing.T) {
	var e Entry
	e.SetText("id", "a")
	e.SetText("title", "First")
	e.SetBool("featured", false)
	e.SetText("title", "Second")
	e.SetStrings("technologies", nil)

	want := `{"id":"a","title":"Second","featured":false,"technologies":[]}`
	if got := e.String(); got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}
}

func TestEntry_NoHTMLEscaping(t *testing.T) {
	var e Entry
	e.SetText("title", "Rock & Roll <live>")
	got := e.String()
	if !strings.Contains(got, `"Rock & Roll <live>"`) {
		t.Errorf("String() = %s, want unescaped title", got)
	}
}
