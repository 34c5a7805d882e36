package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/dgallion1/wordsearch/internal/doctree"
)

// XMLParser handles XML transcripts using etree.
type XMLParser struct{}

func (p *XMLParser) Parse(r io.Reader, filename string) (*doctree.Tree, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, filename, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: %s: no root element", ErrMalformed, filename)
	}

	return &doctree.Tree{
		Source: filename,
		Root:   convert(root),
	}, nil
}

// convert copies an etree element and its descendants into doctree nodes.
func convert(e *etree.Element) *doctree.Node {
	n := &doctree.Node{Tag: e.Tag}
	if len(e.Attr) > 0 {
		n.Attrs = make(map[string]string, len(e.Attr))
		for _, a := range e.Attr {
			n.Attrs[a.Key] = a.Value
		}
	}

	var text strings.Builder
	for _, tok := range e.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			text.WriteString(t.Data)
		case *etree.Element:
			n.Children = append(n.Children, convert(t))
		}
	}
	n.Text = text.String()
	return n
}
