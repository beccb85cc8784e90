// Package ui provides the command-line progress interface shown while
// a schema bundle is being extracted to disk.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	schemas "github.com/ParapluOU/schemas-go"
)

//nolint:gochecknoglobals
var (
	// titleStyle defines the style for the extraction panel's title.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	// infoStyle defines the style for the extraction panel's text.
	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	// pathStyle defines the style for the currently written path.
	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// ProgressMsg is a [tea.Msg] carrying [schemas.WriteProgress] of an
// ongoing extraction.
type ProgressMsg schemas.WriteProgress

// DoneMsg is a [tea.Msg] signalling the extraction has finished.
type DoneMsg struct {
	Written int
	Err     error
}

// Model is the principal [tea.Model] for the extraction progress UI.
type Model struct {
	bundleName string
	target     string

	width int

	bar progress.Model

	written     int
	total       int
	bytes       int64
	currentPath string

	done bool
	err  error
}

// NewModel returns an initial new [Model] for the given bundle name
// and extraction target directory.
func NewModel(bundleName string, target string, total int) Model {
	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(60), //nolint:mnd
	)

	return Model{
		bundleName: bundleName,
		target:     target,
		bar:        bar,
		total:      total,
	}
}

// Err returns the extraction error captured by the model, if any.
func (m Model) Err() error {
	return m.err
}

// Written returns the number of files reported as written so far.
func (m Model) Written() int {
	return m.written
}

// Init initializes the model within a [tea.Program].
func (m Model) Init() tea.Cmd {
	return nil
}

// Update is the principal message handling method of the model.
// It sets the internal state of the model, for later rendering.
//
//nolint:ireturn
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		if m.width > 4 {
			m.bar.Width = m.width - 4
		}

	case ProgressMsg:
		m.written = msg.Written
		m.total = msg.Total
		m.bytes += msg.Bytes
		m.currentPath = msg.Path

		if m.total > 0 {
			return m, m.bar.SetPercent(float64(m.written) / float64(m.total))
		}

	case DoneMsg:
		m.done = true
		m.written = msg.Written
		m.err = msg.Err

		return m, tea.Quit

	case progress.FrameMsg:
		updated, cmd := m.bar.Update(msg)
		if progressModel, ok := updated.(progress.Model); ok {
			m.bar = progressModel
		}

		return m, cmd
	}

	return m, nil
}

// View is the principal rendering function of the model.
func (m Model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(fmt.Sprintf(" Extracting %s ", m.bundleName)))
	s.WriteString("\n\n")
	s.WriteString(m.bar.View())
	s.WriteString("\n")
	s.WriteString(infoStyle.Render(fmt.Sprintf("%d/%d files, %s -> %s",
		m.written, m.total, humanize.Bytes(uint64(m.bytes)), m.target)))
	s.WriteString("\n")

	if m.currentPath != "" && !m.done {
		s.WriteString(pathStyle.Render(m.currentPath))
		s.WriteString("\n")
	}

	return s.String()
}
