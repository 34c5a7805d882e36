package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/wordsearch/internal/doctree"
)

// CSVParser handles transcripts exported as CSV with a text,age,gender header.
// Rows become <u> nodes under a synthetic <conversation> root.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, filename string) (*doctree.Tree, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, filename, err)
	}

	root := &doctree.Node{Tag: "conversation"}
	tree := &doctree.Tree{Source: filename, Root: root}
	if len(records) == 0 {
		return tree, nil
	}

	// First row is headers.
	cols := map[string]int{}
	for i, h := range records[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	textCol, ok := cols["text"]
	if !ok {
		return nil, fmt.Errorf("%w: %s: missing text column", ErrMalformed, filename)
	}

	for _, row := range records[1:] {
		u := &doctree.Node{Tag: "u", Attrs: map[string]string{}}
		u.Text = cell(row, textCol)
		for _, name := range []string{"age", "gender"} {
			if i, ok := cols[name]; ok && i < len(row) {
				u.Attrs[name] = row[i]
			}
		}
		root.Children = append(root.Children, u)
	}

	return tree, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
