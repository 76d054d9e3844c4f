package criteoclient

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	criteodomain "github.com/mara/criteo-performance-downloader/infrastructure/integrator/criteo/domain"
)

// parsePayloadElements decodes a run of sibling XML elements into payload
// values, one per element, in document order.
func parsePayloadElements(raw []byte) ([]criteodomain.Value, error) {
	decoder := xml.NewDecoder(bytes.NewReader(raw))

	var values []criteodomain.Value
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if start, ok := token.(xml.StartElement); ok {
			value, err := parsePayloadElement(decoder, start)
			if err != nil {
				return nil, err
			}
			values = append(values, value)
		}
	}

	return values, nil
}

// parsePayloadElement turns one element into a Value: leaf elements become
// scalars, elements with children or attributes become objects, and repeated
// child names collapse into a sequence under that name.
func parsePayloadElement(decoder *xml.Decoder, start xml.StartElement) (criteodomain.Value, error) {
	fields := make(map[string]criteodomain.Value)
	for _, attr := range start.Attr {
		if attr.Name.Local == "xmlns" || attr.Name.Space == "xmlns" {
			continue
		}
		fields[attr.Name.Local] = criteodomain.ScalarValue(attr.Value)
	}

	var text strings.Builder
	hasChildren := false

	for {
		token, err := decoder.Token()
		if err != nil {
			return criteodomain.Value{}, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			hasChildren = true
			child, err := parsePayloadElement(decoder, t)
			if err != nil {
				return criteodomain.Value{}, err
			}
			appendField(fields, t.Name.Local, child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			if !hasChildren && len(fields) == 0 {
				return criteodomain.ScalarValue(strings.TrimSpace(text.String())), nil
			}
			return criteodomain.ObjectValue(fields), nil
		}
	}
}

// appendField inserts a child value, promoting the slot to a sequence when
// the name repeats.
func appendField(fields map[string]criteodomain.Value, name string, child criteodomain.Value) {
	existing, ok := fields[name]
	if !ok {
		fields[name] = child
		return
	}

	if existing.Kind == criteodomain.KindSequence {
		existing.Seq = append(existing.Seq, child)
		fields[name] = existing
		return
	}

	fields[name] = criteodomain.SequenceValue(existing, child)
}
