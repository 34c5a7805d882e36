// Package transcript holds the typed utterance records searched by the
// engine, the validation step that produces them from a parsed markup tree,
// and a cache that parses each version of a source document once.
package transcript

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/dgallion1/wordsearch/internal/doctree"
	"github.com/dgallion1/wordsearch/internal/parser"
)

// UtteranceTag is the element name of one transcript entry.
const UtteranceTag = "u"

// GenderMale is the only gender value counted as male.
const GenderMale = "male"

// Utterance is one transcript turn with speaker metadata.
type Utterance struct {
	Text   string `json:"text"`
	Gender string `json:"gender"`

	// RawAge is the age attribute as written in the source.
	RawAge string `json:"raw_age,omitempty"`
	// Age is meaningful only when AgeValid is true.
	Age      int  `json:"age"`
	AgeValid bool `json:"age_valid"`
}

// IsMale reports whether the speaker is classified as male.
func (u Utterance) IsMale() bool {
	return u.Gender == GenderMale
}

// Transcript is an ordered sequence of utterances.
type Transcript []Utterance

// FromTree validates a parsed tree into typed utterances. Children of the
// root that are not utterance elements are ignored.
func FromTree(tree *doctree.Tree) (Transcript, error) {
	if tree == nil || tree.Root == nil {
		return nil, fmt.Errorf("%w: empty tree", parser.ErrMalformed)
	}

	nodes := tree.Root.ChildrenNamed(UtteranceTag)
	out := make(Transcript, 0, len(nodes))
	for _, n := range nodes {
		u := Utterance{
			Text:   strings.TrimSpace(n.Text),
			Gender: n.Attr("gender"),
			RawAge: n.Attr("age"),
		}
		u.Age, u.AgeValid = ParseAge(u.RawAge)
		out = append(out, u)
	}
	return out, nil
}

// ParseAge parses a base-10 non-negative integer age.
func ParseAge(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Parse converts raw markup into a transcript using the parser registered
// for filename's extension.
func Parse(data []byte, filename string) (Transcript, error) {
	p, err := parser.ForFile(filename)
	if err != nil {
		return nil, err
	}
	tree, err := p.Parse(bytes.NewReader(data), filename)
	if err != nil {
		return nil, err
	}
	return FromTree(tree)
}
