package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestConsole_Colors(t *testing.T) {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	// Use ANSI256 to properly test the 256-color codes
	r.SetColorProfile(termenv.ANSI256)
	c := newConsole(r)

	passText := c.Pass("✅ PASS")
	if !strings.Contains(passText, "46") { // Lipgloss uses 38;5;46m
		t.Errorf("Expected pass text to contain color 46, got %q", passText)
	}
	assert.Contains(t, passText, "✅ PASS")

	failText := c.Fail("❌ FAIL")
	if !strings.Contains(failText, "196") {
		t.Errorf("Expected fail text to contain color 196, got %q", failText)
	}
	assert.Contains(t, failText, "❌ FAIL")
}

func TestConsole_NoColor(t *testing.T) {
	c := NewConsole(&bytes.Buffer{}, true)

	assert.NotContains(t, c.Pass("✅ PASS"), "\x1b[")
	assert.NotContains(t, c.Fail("❌ FAIL"), "\x1b[")
	assert.Contains(t, c.Pass("✅ PASS"), "✅ PASS")
}

func TestConsole_NonTerminalWriter(t *testing.T) {
	// A plain buffer is not a terminal, so no escape sequences are emitted.
	c := NewConsole(&bytes.Buffer{}, false)

	assert.NotContains(t, c.Fail("❌ FAIL"), "\x1b[")
}
