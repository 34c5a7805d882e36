package transcript_test

import (
	"errors"
	"testing"

	"github.com/dgallion1/wordsearch/internal/doctree"
	"github.com/dgallion1/wordsearch/internal/parser"
	"github.com/dgallion1/wordsearch/internal/transcript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `<conversation>
  <u age="30" gender="male">  hello world </u>
  <note>ignored</note>
  <u age="seventy" gender="female">goodbye</u>
  <u gender="other">no age here</u>
</conversation>`

func TestParse(t *testing.T) {
	t.Parallel()

	tr, err := transcript.Parse([]byte(sample), "talk.xml")
	require.NoError(t, err)
	require.Len(t, tr, 3)

	assert.Equal(t, transcript.Utterance{Text: "hello world", Gender: "male", RawAge: "30", Age: 30, AgeValid: true}, tr[0])
	assert.True(t, tr[0].IsMale())

	assert.Equal(t, "goodbye", tr[1].Text)
	assert.Equal(t, "seventy", tr[1].RawAge)
	assert.False(t, tr[1].AgeValid)
	assert.False(t, tr[1].IsMale())

	assert.Empty(t, tr[2].RawAge)
	assert.False(t, tr[2].AgeValid)
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	tr, err := transcript.Parse([]byte(`<conversation><u>oops`), "talk.xml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, parser.ErrMalformed))
	assert.Nil(t, tr)
}

func TestParse_CSVMatchesXML(t *testing.T) {
	t.Parallel()

	fromXML, err := transcript.Parse([]byte(`<conversation><u age="30" gender="male">hello world</u><u age="70" gender="female">goodbye</u></conversation>`), "a.xml")
	require.NoError(t, err)
	fromCSV, err := transcript.Parse([]byte("text,age,gender\nhello world,30,male\ngoodbye,70,female\n"), "a.csv")
	require.NoError(t, err)

	assert.Equal(t, fromXML, fromCSV)
}

func TestFromTree_Nil(t *testing.T) {
	t.Parallel()

	_, err := transcript.FromTree(&doctree.Tree{})
	assert.ErrorIs(t, err, parser.ErrMalformed)
}

func TestParseAge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw   string
		age   int
		valid bool
	}{
		{"30", 30, true},
		{" 18 ", 18, true},
		{"0", 0, true},
		{"-4", 0, false},
		{"30.5", 0, false},
		{"", 0, false},
		{"abc", 0, false},
	}
	for _, tt := range tests {
		age, ok := transcript.ParseAge(tt.raw)
		assert.Equal(t, tt.valid, ok, "raw=%q", tt.raw)
		assert.Equal(t, tt.age, age, "raw=%q", tt.raw)
	}
}
