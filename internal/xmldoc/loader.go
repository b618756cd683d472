package xmldoc

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"

	"github.com/custodia-labs/wxr-cli/internal/core/domain"
)

// Load parses content into a Document.
//
// It fails with domain.ErrUnsafeDocument when the input declares a DOCTYPE,
// whatever else it contains, and with domain.ErrMalformedDocument when the
// bytes are not well-formed XML. No partial tree is ever returned.
func Load(content []byte) (*Document, error) {
	if err := rejectDoctype(content); err != nil {
		return nil, err
	}

	tree := etree.NewDocument()
	if err := tree.ReadFromBytes(content); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedDocument, err)
	}
	if tree.Root() == nil {
		return nil, fmt.Errorf("%w: no root element", domain.ErrMalformedDocument)
	}

	return newDocument(tree), nil
}

// rejectDoctype scans the raw token stream for a DOCTYPE directive and
// checks the document has exactly one root with nothing but whitespace,
// comments and processing instructions around it. The scan runs before the
// tree is built so that entity declarations in an internal subset never
// reach the parser.
func rejectDoctype(content []byte) error {
	dec := xml.NewDecoder(bytes.NewReader(content))
	dec.Strict = true
	dec.CharsetReader = passthroughCharset

	sawRoot := false
	depth := 0
	for {
		tok, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrMalformedDocument, err)
		}

		switch t := tok.(type) {
		case xml.Directive:
			if isDoctype(t) {
				return domain.ErrUnsafeDocument
			}
		case xml.StartElement:
			if depth == 0 && sawRoot {
				return fmt.Errorf("%w: more than one root element", domain.ErrMalformedDocument)
			}
			sawRoot = true
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 0 && len(bytes.TrimSpace(t)) > 0 {
				return fmt.Errorf("%w: text outside the root element", domain.ErrMalformedDocument)
			}
		}
	}

	if !sawRoot {
		return fmt.Errorf("%w: no root element", domain.ErrMalformedDocument)
	}
	return nil
}

// passthroughCharset accepts any declared encoding label, as the tree
// reader does, leaving byte-level validation to the tokenizer.
func passthroughCharset(_ string, input io.Reader) (io.Reader, error) {
	return input, nil
}

func isDoctype(d xml.Directive) bool {
	s := strings.TrimSpace(string(d))
	return len(s) >= 7 && strings.EqualFold(s[:7], "DOCTYPE")
}
