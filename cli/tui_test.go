package main

import (
	"testing"

	"keycalc/app/calc"
	"keycalc/app/logger"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeRunes(m *tuiModel, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestTUITypedExpression(t *testing.T) {
	m := newTUIModel(logger.Discard())
	typeRunes(m, "12+3")
	assert.Equal(t, "12+3", m.display)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "15", m.display)

	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "1", m.display)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "", m.display)
}

func TestTUIModAndEquals(t *testing.T) {
	m := newTUIModel(logger.Discard())
	typeRunes(m, "10m4=")
	assert.Equal(t, "2", m.display)
	assert.Len(t, m.session.Tape(), 1)
}

func TestTUIIgnoresUnknownRunes(t *testing.T) {
	m := newTUIModel(logger.Discard())
	typeRunes(m, "7x(")
	assert.Equal(t, "7", m.display)
}

func TestTUIKeypadNavigation(t *testing.T) {
	m := newTUIModel(logger.Discard())
	require.Equal(t, calc.KeyClear, m.selected())

	// Up from the top row wraps to the bottom row.
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "mod", m.selected())

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "0", m.selected())

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, calc.KeyCompute, m.selected())

	// Up to "+", then right wraps to "1".
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "1", m.selected())
	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Equal(t, "11", m.display)
}

func TestTUIQuit(t *testing.T) {
	m := newTUIModel(logger.Discard())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestTUICopyReturnsCommand(t *testing.T) {
	m := newTUIModel(logger.Discard())
	typeRunes(m, "42")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.NotNil(t, cmd)

	m.Update(clipboardMsg{text: "42"})
	assert.Equal(t, `Copied "42"`, m.status)
}

func TestTUIView(t *testing.T) {
	m := newTUIModel(logger.Discard())
	typeRunes(m, "5+")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	view := m.View()
	assert.Contains(t, view, "Error")
	assert.Contains(t, view, "5+ = Error")
	assert.Contains(t, view, "mod")
}
