package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dgallion1/wordsearch/internal/prefs"
	"github.com/dgallion1/wordsearch/internal/sample"
	"github.com/dgallion1/wordsearch/internal/tui"
)

// Run executes the tui command.
func (c *TUICmd) Run(deps *Dependencies) error {
	var store prefs.Store
	if c.Prefs != "" {
		if dir := filepath.Dir(c.Prefs); dir != "." {
			_ = os.MkdirAll(dir, 0o755)
		}
		db, err := prefs.OpenSQLite(c.Prefs)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "warning: theme will not be saved: %v\n", err)
		} else {
			defer db.Close()
			store = db
		}
	}

	model := tui.New(deps.Ctx, tui.Config{
		Source:   sample.SourceFor(c.File, deps.Log),
		Prefs:    store,
		PageSize: deps.Config.PageSize,
		Log:      deps.Log,
	})

	var opts []tea.ProgramOption
	if !c.NoAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}
