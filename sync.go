package sitectl

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// Sync mirrors the JSON store into the loader script's embedded data array
// and returns the number of synced entries.
//
// The array lives between two marker comments owned by sync:
//
//	this.articlesData = /* sitectl:articlesData:begin */[
//	  ...
//	]/* sitectl:articlesData:end */;
//
// A loader without markers is migrated on the first sync: the array literal
// assigned to this.<array> is found by tokenizing the script and is wrapped
// in markers. A loader with neither fails with ErrLoaderPattern instead of
// being left silently unchanged.
func (a *App) Sync() (int, error) {
	if !a.store.Exists() {
		return 0, fmt.Errorf("%w: %s", ErrStoreNotFound, a.store.Path())
	}
	entries, err := a.loadEntries()
	if err != nil {
		return 0, err
	}

	src, err := os.ReadFile(a.config.Loader)
	if err != nil {
		return 0, fmt.Errorf("sitectl: read loader: %w", err)
	}

	out, migrated, err := rewriteLoader(src, a.config.ArrayName, entries)
	if err != nil {
		return 0, fmt.Errorf("sitectl: %s: %w", a.config.Loader, err)
	}

	log := a.log.WithFields(logrus.Fields{"loader": a.config.Loader, "entries": len(entries)})
	if bytes.Equal(out, src) {
		log.Debug("loader already up to date")
		return len(entries), nil
	}

	if err := checkSyntax(out); err != nil {
		if origErr := checkSyntax(src); origErr == nil {
			return 0, fmt.Errorf("%w: %v", ErrLoaderSyntax, err)
		}
		log.WithError(err).Warn("loader did not parse before sync either, writing anyway")
	}

	if err := writeFileAtomic(a.config.Loader, out); err != nil {
		return 0, fmt.Errorf("sitectl: write loader: %w", err)
	}
	if migrated {
		log.Info("added data markers to loader")
	}
	log.Debug("synced loader")
	return len(entries), nil
}

// rewriteLoader replaces the data region for array in src with entries.
// migrated reports whether marker comments had to be added.
func rewriteLoader(src []byte, array string, entries []Entry) (out []byte, migrated bool, err error) {
	r, err := locateRegion(src, array)
	if err != nil {
		return nil, false, err
	}
	data, err := encodeEntries(entries, r.indent)
	if err != nil {
		return nil, false, fmt.Errorf("encode entries: %w", err)
	}

	var buf bytes.Buffer
	buf.Grow(len(src) + len(data))
	buf.Write(src[:r.start])
	if !r.marked {
		buf.WriteString(beginMarker(array))
	}
	buf.Write(data)
	if !r.marked {
		buf.WriteString(endMarker(array))
	}
	buf.Write(src[r.end:])
	return buf.Bytes(), !r.marked, nil
}
