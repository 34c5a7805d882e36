// Package prefs persists the display-mode preference in a key-value store.
package prefs

import (
	"context"
	"fmt"
)

// ThemeKey is the key under which the display mode is stored.
const ThemeKey = "theme"

// Theme is the display mode.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Toggled returns the other theme.
func (t Theme) Toggled() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// ParseTheme maps a stored value to a Theme; anything but "dark" is light.
func ParseTheme(v string) Theme {
	if Theme(v) == Dark {
		return Dark
	}
	return Light
}

// Store is a string key-value store.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// LoadTheme reads the theme, defaulting to light when absent.
func LoadTheme(ctx context.Context, s Store) (Theme, error) {
	v, ok, err := s.Get(ctx, ThemeKey)
	if err != nil {
		return Light, fmt.Errorf("load theme: %w", err)
	}
	if !ok {
		return Light, nil
	}
	return ParseTheme(v), nil
}

// SaveTheme writes the theme.
func SaveTheme(ctx context.Context, s Store, t Theme) error {
	if err := s.Set(ctx, ThemeKey, string(t)); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

// ToggleTheme flips the stored theme and returns the new value.
func ToggleTheme(ctx context.Context, s Store) (Theme, error) {
	cur, err := LoadTheme(ctx, s)
	if err != nil {
		return cur, err
	}
	next := cur.Toggled()
	return next, SaveTheme(ctx, s, next)
}
