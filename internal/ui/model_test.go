package ui_test

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	schemas "github.com/ParapluOU/schemas-go"
	"github.com/ParapluOU/schemas-go/internal/ui"
)

func TestModel_ProgressUpdates(t *testing.T) {
	t.Parallel()

	model := ui.NewModel("DITA", "/tmp/out", 3)

	updated, _ := model.Update(ui.ProgressMsg(schemas.WriteProgress{
		Written: 1,
		Total:   3,
		Path:    "a.xsd",
		Bytes:   10,
	}))

	m, ok := updated.(ui.Model)
	require.True(t, ok)

	assert.Equal(t, 1, m.Written())
	assert.Contains(t, m.View(), "1/3 files")
	assert.Contains(t, m.View(), "a.xsd")
}

func TestModel_DoneQuits(t *testing.T) {
	t.Parallel()

	model := ui.NewModel("DITA", "/tmp/out", 3)

	failure := errors.New("disk full")
	updated, cmd := model.Update(ui.DoneMsg{Written: 2, Err: failure})

	m, ok := updated.(ui.Model)
	require.True(t, ok)

	assert.Equal(t, 2, m.Written())
	require.ErrorIs(t, m.Err(), failure)

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_QuitKey(t *testing.T) {
	t.Parallel()

	model := ui.NewModel("DITA", "/tmp/out", 3)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
