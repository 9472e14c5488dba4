// Package decode turns a raw HTML payload into UTF-8 text, trying a short
// list of encodings before giving up (spec.md §7, "Decoding": "unreadable
// local file or undecodable HTML -> fatal after trying a short list of
// encodings (utf-8, latin-1, cp1252)").
package decode

import (
	"fmt"
	"unicode/utf8"

	"github.com/jusbr/leiimporter/internal/importerr"
	"golang.org/x/text/encoding/charmap"
)

// HTML decodes payload to a UTF-8 string. Sources that declare no charset
// (or lie about it) sometimes serve legacy-encoded bytes; payload is tried
// as UTF-8 first, then ISO-8859-1 (latin-1), then Windows-1252, in the
// order spec.md §7 lists them.
func HTML(payload []byte) (string, error) {
	if utf8.Valid(payload) {
		return string(payload), nil
	}
	if s, err := charmap.ISO8859_1.NewDecoder().String(string(payload)); err == nil {
		return s, nil
	}
	if s, err := charmap.Windows1252.NewDecoder().String(string(payload)); err == nil {
		return s, nil
	}
	return "", fmt.Errorf("%w: payload matches neither utf-8, latin-1 nor cp1252", importerr.ErrDecode)
}
