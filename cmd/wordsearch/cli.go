package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/dgallion1/wordsearch/internal/config"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Config config.Config
	Log    *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Search SearchCmd `cmd:"" help:"Search the transcript and print matches with statistics"`
	TUI    TUICmd    `cmd:"" name:"tui" help:"Start the interactive terminal search"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Term  string `arg:"" help:"Word or phrase to search for"`
	File  string `short:"f" default:"${transcript}" help:"Transcript file (.xml or .csv); embedded sample when empty"`
	All   bool   `short:"a" help:"Print every match instead of the first page"`
	Pages int    `short:"n" default:"1" help:"Number of pages of matches to print"`
}

// TUICmd is the "tui" subcommand.
type TUICmd struct {
	File        string `short:"f" default:"${transcript}" help:"Transcript file (.xml or .csv); embedded sample when empty"`
	Prefs       string `default:"${prefs}" help:"Preferences database path"`
	NoAltScreen bool   `help:"Disable the alternate screen buffer"`
}
