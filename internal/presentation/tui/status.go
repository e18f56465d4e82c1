package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// Status formats pass/fail lines for container checks.
type Status struct {
	profile termenv.Profile
}

// NewStatus uses the color profile of the current terminal.
func NewStatus() *Status {
	return &Status{profile: termenv.ColorProfile()}
}

// NewStatusWithProfile uses a fixed profile; termenv.Ascii disables colors.
func NewStatusWithProfile(p termenv.Profile) *Status {
	return &Status{profile: p}
}

// Pass formats a successful check.
func (s *Status) Pass(kind, name, detail string) string {
	mark := s.profile.String("✓").Foreground(s.profile.Color("#22c55e"))
	return fmt.Sprintf("%s %s %s (%s)", mark, kind, name, detail)
}

// Fail formats a failed check.
func (s *Status) Fail(kind, name string, err error) string {
	mark := s.profile.String("✗").Foreground(s.profile.Color("#f43f5e"))
	reason := s.profile.String(err.Error()).Foreground(s.profile.Color("#fb7185"))
	return fmt.Sprintf("%s %s %s: %s", mark, kind, name, reason)
}
