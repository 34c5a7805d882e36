// Package search filters a transcript by case-insensitive substring and
// aggregates demographic counts over the matches.
package search

import (
	"encoding/json"
	"strings"

	"github.com/dgallion1/wordsearch/internal/transcript"
)

// Stats summarizes the utterances matching one query.
type Stats struct {
	Male      int             `json:"male"`
	Female    int             `json:"female"`
	AgeGroups [numBuckets]int `json:"-"`
	Total     int             `json:"total"`

	// InvalidAge counts matches whose age was missing or malformed. They
	// are also counted in the 65+ bucket.
	InvalidAge int `json:"invalid_age"`
}

// AgeGroup returns the count for one bucket.
func (s Stats) AgeGroup(b AgeBucket) int {
	if b < 0 || b >= numBuckets {
		return 0
	}
	return s.AgeGroups[b]
}

// AgeGroupMap returns bucket label to count with all seven labels present.
func (s Stats) AgeGroupMap() map[string]int {
	m := make(map[string]int, numBuckets)
	for _, b := range Buckets {
		m[b.String()] = s.AgeGroups[b]
	}
	return m
}

// MarshalJSON renders age groups keyed by label.
func (s Stats) MarshalJSON() ([]byte, error) {
	type plain Stats
	return json.Marshal(struct {
		plain
		AgeGroups map[string]int `json:"age_groups"`
	}{plain(s), s.AgeGroupMap()})
}

// Result is the output of one search.
type Result struct {
	Term    string                 `json:"term"`
	Matches []transcript.Utterance `json:"matches"`
	Stats   Stats                  `json:"stats"`
}

// Run returns the utterances of t whose text contains term, ignoring case,
// in transcript order, together with their statistics. Callers reject blank
// terms; Run returns an empty result for one.
func Run(t transcript.Transcript, term string) Result {
	res := Result{Term: term, Matches: []transcript.Utterance{}}
	if strings.TrimSpace(term) == "" {
		return res
	}

	needle := strings.ToLower(term)
	for _, u := range t {
		if strings.Contains(strings.ToLower(u.Text), needle) {
			res.Matches = append(res.Matches, u)
		}
	}
	res.Stats = Aggregate(res.Matches)
	return res
}

// Aggregate computes statistics in a single pass over matches.
func Aggregate(matches []transcript.Utterance) Stats {
	var s Stats
	for _, u := range matches {
		s.Total++
		if u.IsMale() {
			s.Male++
		} else {
			s.Female++
		}

		if !u.AgeValid {
			s.InvalidAge++
			s.AgeGroups[Age65Plus]++
			continue
		}
		s.AgeGroups[BucketFor(u.Age)]++
	}
	return s
}
