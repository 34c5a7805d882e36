package search_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/dgallion1/wordsearch/internal/search"
	"github.com/dgallion1/wordsearch/internal/transcript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func utt(text string, age int, gender string) transcript.Utterance {
	return transcript.Utterance{Text: text, Gender: gender, RawAge: fmt.Sprint(age), Age: age, AgeValid: true}
}

func TestRun_Example(t *testing.T) {
	t.Parallel()

	tr := transcript.Transcript{
		utt("hello world", 30, "male"),
		utt("goodbye", 70, "female"),
	}

	res := search.Run(tr, "hello")

	require.Len(t, res.Matches, 1)
	assert.Equal(t, tr[0], res.Matches[0])
	assert.Equal(t, 1, res.Stats.Male)
	assert.Equal(t, 0, res.Stats.Female)
	assert.Equal(t, 1, res.Stats.Total)
	for _, b := range search.Buckets {
		want := 0
		if b == search.Age25to34 {
			want = 1
		}
		assert.Equal(t, want, res.Stats.AgeGroup(b), "bucket %s", b)
	}
}

func TestRun_CaseInsensitiveAndOrdered(t *testing.T) {
	t.Parallel()

	tr := transcript.Transcript{
		utt("The CAT sat", 10, "female"),
		utt("dogs only", 20, "male"),
		utt("concatenate", 40, "male"),
		utt("cAt", 50, "female"),
	}

	res := search.Run(tr, "Cat")

	require.Len(t, res.Matches, 3)
	assert.Equal(t, "The CAT sat", res.Matches[0].Text)
	assert.Equal(t, "concatenate", res.Matches[1].Text)
	assert.Equal(t, "cAt", res.Matches[2].Text)
}

func TestRun_Properties(t *testing.T) {
	t.Parallel()

	tr := transcript.Transcript{
		utt("alpha beta", 5, "male"),
		utt("beta gamma", 18, "female"),
		utt("gamma delta", 66, "unknown"),
		{Text: "beta with bad age", Gender: "male", RawAge: "n/a"},
		utt("BETA shout", 44, "Male"),
		utt("nothing", 30, "male"),
	}

	for _, term := range []string{"beta", "gamma", "a", "zzz", "BETA "} {
		res := search.Run(tr, term)

		needle := strings.ToLower(term)
		inMatches := map[string]bool{}
		for _, m := range res.Matches {
			assert.Contains(t, strings.ToLower(m.Text), needle)
			inMatches[m.Text] = true
		}
		for _, u := range tr {
			if !inMatches[u.Text] {
				assert.NotContains(t, strings.ToLower(u.Text), needle)
			}
		}

		s := res.Stats
		assert.Equal(t, len(res.Matches), s.Total, "term %q", term)
		assert.Equal(t, s.Total, s.Male+s.Female, "term %q", term)
		var sum int
		for _, b := range search.Buckets {
			sum += s.AgeGroup(b)
		}
		assert.Equal(t, s.Total, sum, "term %q", term)
	}
}

func TestRun_GenderPolicy(t *testing.T) {
	t.Parallel()

	tr := transcript.Transcript{
		utt("x", 1, "male"),
		utt("x", 1, "Male"),
		utt("x", 1, ""),
		utt("x", 1, "female"),
	}
	res := search.Run(tr, "x")
	assert.Equal(t, 1, res.Stats.Male)
	assert.Equal(t, 3, res.Stats.Female)
}

func TestRun_InvalidAgeGoesToLastBucket(t *testing.T) {
	t.Parallel()

	tr := transcript.Transcript{
		{Text: "x", Gender: "male", RawAge: "abc"},
		{Text: "x", Gender: "male"},
		utt("x", 20, "male"),
	}
	res := search.Run(tr, "x")
	assert.Equal(t, 2, res.Stats.InvalidAge)
	assert.Equal(t, 2, res.Stats.AgeGroup(search.Age65Plus))
	assert.Equal(t, 1, res.Stats.AgeGroup(search.Age18to24))
}

func TestRun_EmptyTerm(t *testing.T) {
	t.Parallel()

	tr := transcript.Transcript{utt("hello", 1, "male")}
	for _, term := range []string{"", "   "} {
		res := search.Run(tr, term)
		assert.Empty(t, res.Matches)
		assert.Equal(t, search.Stats{}, res.Stats)
	}
}

func TestRun_EmptyTranscript(t *testing.T) {
	t.Parallel()

	res := search.Run(nil, "hello")
	assert.NotNil(t, res.Matches)
	assert.Empty(t, res.Matches)
	assert.Equal(t, search.Stats{}, res.Stats)
}

func TestRun_Idempotent(t *testing.T) {
	t.Parallel()

	tr := transcript.Transcript{
		utt("hello world", 30, "male"),
		utt("hello again", 17, "female"),
		utt("bye", 65, "female"),
	}
	before := append(transcript.Transcript(nil), tr...)

	a := search.Run(tr, "hello")
	b := search.Run(tr, "hello")

	assert.Equal(t, a, b)
	assert.Equal(t, before, tr)

	a.Matches[0].Text = "mutated"
	assert.Equal(t, "hello world", tr[0].Text)
}

func TestBucketFor_Boundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		age  int
		want string
	}{
		{0, "0-17"},
		{17, "0-17"},
		{18, "18-24"},
		{24, "18-24"},
		{25, "25-34"},
		{34, "25-34"},
		{35, "35-44"},
		{45, "45-54"},
		{55, "55-64"},
		{64, "55-64"},
		{65, "65+"},
		{120, "65+"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, search.BucketFor(tt.age).String(), "age %d", tt.age)
	}
}

func TestStats_MarshalJSON(t *testing.T) {
	t.Parallel()

	res := search.Run(transcript.Transcript{utt("hello", 30, "male")}, "hello")
	data, err := json.Marshal(res.Stats)
	require.NoError(t, err)

	var got struct {
		Male      int            `json:"male"`
		Female    int            `json:"female"`
		Total     int            `json:"total"`
		AgeGroups map[string]int `json:"age_groups"`
	}
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, 1, got.Male)
	assert.Equal(t, 1, got.Total)
	assert.Len(t, got.AgeGroups, 7)
	assert.Equal(t, 1, got.AgeGroups["25-34"])
	assert.Equal(t, 0, got.AgeGroups["65+"])
}

func TestChart(t *testing.T) {
	t.Parallel()

	res := search.Run(transcript.Transcript{
		utt("hi", 30, "male"),
		utt("hi", 70, "female"),
		utt("hi", 31, "female"),
	}, "hi")

	bars := search.Chart(res.Stats)
	names := make([]string, len(bars))
	for i, b := range bars {
		names[i] = b.Name
	}
	assert.Equal(t, []string{"Male", "Female", "0-17", "18-24", "25-34", "35-44", "45-54", "55-64", "65+"}, names)
	assert.Equal(t, 1, bars[0].Count)
	assert.Equal(t, 2, bars[1].Count)
	assert.Equal(t, 2, bars[4].Count)
	assert.Equal(t, 2, search.MaxCount(bars))
	assert.Equal(t, 0, search.MaxCount(nil))
}
