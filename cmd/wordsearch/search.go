package main

import (
	"fmt"
	"strings"

	"github.com/dgallion1/wordsearch/internal/sample"
	"github.com/dgallion1/wordsearch/internal/search"
	"github.com/dgallion1/wordsearch/internal/state"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	if strings.TrimSpace(c.Term) == "" {
		return fmt.Errorf("search term must not be blank")
	}

	source := sample.SourceFor(c.File, deps.Log)
	t, err := source.Transcript(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "warning: %v\n", err)
	}

	st := state.Update(state.New(deps.Config.PageSize), state.TermChanged{Term: c.Term})
	st = state.Run(st, t, err)
	for i := 1; (c.All || i < c.Pages) && st.HasMore(); i++ {
		st = state.Update(st, state.ShowMore{})
	}

	if st.NoResults() {
		fmt.Fprintf(deps.Stdout, "No results found for: %s\n", c.Term)
		return nil
	}

	fmt.Fprintln(deps.Stdout, "Results")
	for _, u := range st.Visible() {
		fmt.Fprintf(deps.Stdout, "  %s\n", u.Text)
	}
	if st.HasMore() {
		fmt.Fprintf(deps.Stdout, "  ... %d more (use --all)\n", len(st.Matches())-len(st.Visible()))
	}

	s := st.Stats
	fmt.Fprintln(deps.Stdout)
	fmt.Fprintln(deps.Stdout, "Statistics")
	fmt.Fprintf(deps.Stdout, "  Total Results: %d\n", s.Total)
	fmt.Fprintf(deps.Stdout, "  Male: %d\n", s.Male)
	fmt.Fprintf(deps.Stdout, "  Female: %d\n", s.Female)
	if s.InvalidAge > 0 {
		fmt.Fprintf(deps.Stdout, "  Invalid age: %d\n", s.InvalidAge)
	}
	fmt.Fprintln(deps.Stdout, "  Age Groups:")
	for _, b := range search.Buckets {
		fmt.Fprintf(deps.Stdout, "    %s: %d\n", b, s.AgeGroup(b))
	}
	return nil
}
