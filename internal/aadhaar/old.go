package aadhaar

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/ianaindex"

	"aadhaarqr/internal/domain"
)

// decodeOld returns the root element's attributes in document order.
// The whole document must be well-formed.
func decodeOld(payload string) (domain.Decoded, error) {
	d := xml.NewDecoder(strings.NewReader(payload))
	d.CharsetReader = charsetReader

	fields := domain.NewFields()
	depth := 0
	seenRoot := false
	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return domain.Decoded{}, fmt.Errorf("%w: %v", ErrXML, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				if seenRoot {
					return domain.Decoded{}, fmt.Errorf("%w: junk after document element <%s>", ErrXML, t.Name.Local)
				}
				seenRoot = true
				for _, a := range t.Attr {
					if name, ok := attrName(a.Name); ok {
						fields.Set(name, a.Value)
					}
				}
			}
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 0 && len(strings.TrimSpace(string(t))) > 0 {
				return domain.Decoded{}, fmt.Errorf("%w: text outside document element", ErrXML)
			}
		}
	}
	if !seenRoot {
		return domain.Decoded{}, fmt.Errorf("%w: no document element", ErrXML)
	}
	return domain.Decoded{Type: domain.QROld, Fields: fields}, nil
}

// attrName renders namespaced attributes as {uri}local and drops
// namespace declarations.
func attrName(n xml.Name) (string, bool) {
	switch {
	case n.Space == "xmlns", n.Space == "" && n.Local == "xmlns":
		return "", false
	case n.Space != "":
		return "{" + n.Space + "}" + n.Local, true
	default:
		return n.Local, true
	}
}

func charsetReader(label string, r io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", label)
	}
	return enc.NewDecoder().Reader(r), nil
}
