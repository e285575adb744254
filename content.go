package sitectl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/buger/jsonparser"
)

// Status values accepted for an entry.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Entry is a single content record (an article or a project) as stored in
// the JSON store. Keys keep the order they were read or set in, and keys the
// tool does not know about survive a load/save round trip untouched.
type Entry struct {
	fields []entryField
}

type entryField struct {
	key   string
	value json.RawMessage
}

// Keys returns the entry's keys in stored order.
func (e Entry) Keys() []string {
	keys := make([]string, len(e.fields))
	for i, f := range e.fields {
		keys[i] = f.key
	}
	return keys
}

// Has reports whether the key is present, even with a null or empty value.
func (e Entry) Has(key string) bool {
	_, ok := e.raw(key)
	return ok
}

// ID returns the entry's slug.
func (e Entry) ID() string { return e.Text("id") }

// Title returns the entry's title.
func (e Entry) Title() string { return e.Text("title") }

// Status returns the entry's publication status.
func (e Entry) Status() string { return e.Text("status") }

// Published reports whether the entry's status is "published".
func (e Entry) Published() bool { return e.Status() == StatusPublished }

// Text returns a field value as a string. Returns "" if not found or null.
// Numbers and booleans are returned in their JSON spelling.
func (e Entry) Text(key string) string {
	raw, ok := e.raw(key)
	if !ok {
		return ""
	}
	raw = bytes.TrimSpace(raw)
	switch {
	case len(raw) == 0 || string(raw) == "null":
		return ""
	case raw[0] == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	default:
		return string(raw)
	}
}

// Bool returns a field value as a bool. Only a JSON true is true.
func (e Entry) Bool(key string) bool {
	raw, ok := e.raw(key)
	return ok && string(bytes.TrimSpace(raw)) == "true"
}

// Strings returns a field value as a string slice. A single string value is
// returned as a one-element slice; anything else yields nil.
func (e Entry) Strings(key string) []string {
	raw, ok := e.raw(key)
	if !ok {
		return nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil && s != "" {
		return []string{s}
	}
	return nil
}

// Empty reports whether a field is missing or holds a falsy value: null,
// "", [], {}, false or 0.
func (e Entry) Empty(key string) bool {
	raw, ok := e.raw(key)
	if !ok {
		return true
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return true
	}
	switch s := buf.String(); s {
	case "null", `""`, "[]", "{}", "false":
		return true
	default:
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f == 0
		}
		return false
	}
}

// SetText sets a string field, replacing an existing value in place.
func (e *Entry) SetText(key, value string) {
	e.set(key, encodeValue(value))
}

// SetBool sets a boolean field.
func (e *Entry) SetBool(key string, value bool) {
	e.set(key, json.RawMessage(strconv.FormatBool(value)))
}

// SetStrings sets a string list field. A nil slice is stored as [].
func (e *Entry) SetStrings(key string, values []string) {
	if values == nil {
		values = []string{}
	}
	e.set(key, encodeValue(values))
}

func (e *Entry) set(key string, value json.RawMessage) {
	for i := range e.fields {
		if e.fields[i].key == key {
			e.fields[i].value = value
			return
		}
	}
	e.fields = append(e.fields, entryField{key: key, value: value})
}

func (e Entry) raw(key string) (json.RawMessage, bool) {
	for _, f := range e.fields {
		if f.key == key {
			return f.value, true
		}
	}
	return nil, false
}

// MarshalJSON writes the entry as a JSON object in key order.
func (e Entry) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range e.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(encodeValue(f.key))
		buf.WriteByte(':')
		if len(f.value) == 0 {
			buf.WriteString("null")
			continue
		}
		buf.Write(f.value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, keeping its key order.
func (e *Entry) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return fmt.Errorf("entry is not a JSON object: %.20s", data)
	}

	var fields []entryField
	err := jsonparser.ObjectEach(data, func(key, value []byte, dataType jsonparser.ValueType, _ int) error {
		k, err := jsonparser.ParseString(key)
		if err != nil {
			return fmt.Errorf("entry key %q: %w", key, err)
		}
		var raw []byte
		if dataType == jsonparser.String {
			// jsonparser strips the quotes but leaves escapes intact.
			raw = make([]byte, 0, len(value)+2)
			raw = append(raw, '"')
			raw = append(raw, value...)
			raw = append(raw, '"')
		} else {
			raw = append(raw, value...)
		}
		fields = append(fields, entryField{key: k, value: raw})
		return nil
	})
	if err != nil {
		return err
	}
	e.fields = fields
	return nil
}

// String renders the entry as compact JSON, for logs and test failures.
func (e Entry) String() string {
	b, _ := e.MarshalJSON()
	return string(b)
}

// encodeValue marshals v without HTML escaping so that "&" and "<" in
// titles stay readable in the store and the loader.
func encodeValue(v any) json.RawMessage {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return json.RawMessage("null")
	}
	return json.RawMessage(strings.TrimRight(buf.String(), "\n"))
}
