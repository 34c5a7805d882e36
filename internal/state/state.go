// Package state models the search screen as an immutable record advanced by
// a single Update function per user action.
package state

import (
	"strings"

	"github.com/dgallion1/wordsearch/internal/pager"
	"github.com/dgallion1/wordsearch/internal/search"
	"github.com/dgallion1/wordsearch/internal/transcript"
)

// Event is a user action or an asynchronous completion.
type Event interface {
	event()
}

// TermChanged is sent on every edit of the search box.
type TermChanged struct {
	Term string
}

// SearchSubmitted requests a search for the current term.
type SearchSubmitted struct{}

// SearchCompleted delivers the result of the search started at Seq.
type SearchCompleted struct {
	Seq    uint64
	Result search.Result
	Err    error
}

// ShowMore reveals one more page of matches.
type ShowMore struct{}

func (TermChanged) event()     {}
func (SearchSubmitted) event() {}
func (SearchCompleted) event() {}
func (ShowMore) event()        {}

// QueryState is the state of the search screen. Update never modifies its
// argument; it returns a new value.
type QueryState struct {
	Term        string
	HasSearched bool
	Pending     bool
	Seq         uint64
	Stats       search.Stats

	// Failed is set when the transcript could not be loaded. The screen
	// then behaves as if nothing matched.
	Failed bool

	window pager.Window[transcript.Utterance]
}

// New returns the initial state with the given page size.
func New(pageSize int) QueryState {
	return QueryState{window: *pager.New[transcript.Utterance](pageSize)}
}

// Matches returns every match of the last completed search.
func (s QueryState) Matches() []transcript.Utterance {
	return s.window.All()
}

// Visible returns the matches currently shown.
func (s QueryState) Visible() []transcript.Utterance {
	return s.window.Visible()
}

// HasMore reports whether a ShowMore would reveal more matches.
func (s QueryState) HasMore() bool {
	return s.window.HasMore()
}

// NoResults reports whether a completed search found nothing.
func (s QueryState) NoResults() bool {
	return s.HasSearched && s.window.Len() == 0
}

// Update applies ev to s.
func Update(s QueryState, ev Event) QueryState {
	switch ev := ev.(type) {
	case TermChanged:
		next := New(s.window.PageSize())
		next.Term = ev.Term
		// Invalidate any search still in flight for the old term.
		next.Seq = s.Seq + 1
		return next

	case SearchSubmitted:
		if strings.TrimSpace(s.Term) == "" {
			return s
		}
		s.Seq++
		s.Pending = true
		return s

	case SearchCompleted:
		if !s.Pending || ev.Seq != s.Seq {
			return s
		}
		w := s.window
		s.Pending = false
		s.HasSearched = true
		s.Failed = ev.Err != nil
		if ev.Err != nil {
			s.Stats = search.Stats{}
			w.Reset(nil)
		} else {
			s.Stats = ev.Result.Stats
			w.Reset(ev.Result.Matches)
		}
		s.window = w
		return s

	case ShowMore:
		w := s.window
		w.ShowMore()
		s.window = w
		return s
	}
	return s
}

// Run performs a synchronous search: it submits the current term, runs the
// engine over t and applies the completion. load errors yield an empty result.
func Run(s QueryState, t transcript.Transcript, loadErr error) QueryState {
	s = Update(s, SearchSubmitted{})
	if !s.Pending {
		return s
	}
	var res search.Result
	if loadErr == nil {
		res = search.Run(t, s.Term)
	}
	return Update(s, SearchCompleted{Seq: s.Seq, Result: res, Err: loadErr})
}
