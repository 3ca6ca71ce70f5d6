package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"aadhaarqr/internal/domain"
)

// Format selects how a Result is written.
type Format string

const (
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

// Formats lists the accepted --format values.
var Formats = []Format{FormatJSON, FormatTable}

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// Renderer writes results in one Format.
type Renderer struct {
	Format Format
	Pretty bool // indent JSON output
}

// Render writes res to w.
func (r Renderer) Render(w io.Writer, res domain.Result) error {
	if r.Format == FormatTable {
		return writeTable(w, res)
	}
	return writeJSON(w, res, r.Pretty)
}

// writeJSON emits one object and a newline. HTML characters are kept as is
// since previews of old QR payloads are XML.
func writeJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
