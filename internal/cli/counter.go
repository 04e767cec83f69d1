package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/stitchr/internal/core"
	"github.com/inovacc/stitchr/internal/feedback"
	"github.com/inovacc/stitchr/internal/input"
	"github.com/inovacc/stitchr/internal/model"
)

var (
	titleStyle  = lipgloss.NewStyle().MarginLeft(marginLeft).Bold(true).Foreground(lipgloss.Color("170"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Align(lipgloss.Center)
	helpStyle   = lipgloss.NewStyle().MarginLeft(marginLeft).MarginTop(1)
	modeStyle   = lipgloss.NewStyle().MarginLeft(marginLeft).Foreground(lipgloss.Color("240"))
	buttonStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Align(lipgloss.Center)

	digitStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 3)

	upColor   = lipgloss.Color("42")
	downColor = lipgloss.Color("203")
)

// board mirrors the values last rendered by the counter store. The store
// calls RenderDigit after every committed change.
type board struct {
	left, right int
}

// RenderDigit implements counter.Display.
func (b *board) RenderDigit(d model.Digit, v int) {
	switch d {
	case model.DigitLeft:
		b.left = v
	case model.DigitRight:
		b.right = v
	}
}

// CounterModel is the full-screen two-digit counter.
type CounterModel struct {
	ctrl    *core.Controller
	adapter input.Adapter
	flashes *feedback.Tracker
	board   *board
	layout  layout

	keys     keyMap
	help     help.Model
	width    int
	quitting bool
}

// NewCounterModel builds the counter screen and registers it as the store's
// display.
func NewCounterModel(ctrl *core.Controller, adapter input.Adapter) CounterModel {
	st := ctrl.Store().State()
	b := &board{left: st.Left, right: st.Right}
	ctrl.Store().SetDisplay(b)

	boxW := lipgloss.Width(digitStyle.Render(bigDigit(0)))
	boxH := lipgloss.Height(digitStyle.Render(bigDigit(0)))

	return CounterModel{
		ctrl:    ctrl,
		adapter: adapter,
		flashes: feedback.NewTracker(),
		board:   b,
		layout:  newLayout(boxW, boxH),
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}

func (m CounterModel) Init() tea.Cmd {
	return nil
}

func (m CounterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

		return m, nil

	case feedback.ClearMsg:
		m.flashes.Clear(msg)

		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true

			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

			return m, nil
		}
	}

	return m, m.handleInput(msg)
}

func (m CounterModel) handleInput(msg tea.Msg) tea.Cmd {
	ev, ok := m.adapter.Translate(msg, m.layout)
	if !ok {
		return nil
	}

	out := m.ctrl.Handle(ev)

	return m.flashes.Flash(out.FlashTarget, out.FlashKind)
}

// State returns the values currently on screen.
func (m CounterModel) State() model.CounterState {
	return model.CounterState{Left: m.board.left, Right: m.board.right}
}

func (m CounterModel) View() string {
	if m.quitting {
		return ""
	}

	boxW := m.layout.left.w
	gap := strings.Repeat(" ", digitGap)

	var b strings.Builder

	b.WriteString(titleStyle.Render("stitchr"))
	b.WriteString("\n")

	labels := lipgloss.JoinHorizontal(lipgloss.Top,
		labelStyle.Width(boxW).Render("rows"),
		gap,
		labelStyle.Width(boxW).Render("stitches"),
	)
	b.WriteString(indent(labels))
	b.WriteString("\n")

	digits := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderDigit(feedback.LeftDigit, m.board.left),
		gap,
		m.renderDigit(feedback.RightDigit, m.board.right),
	)
	b.WriteString(indent(digits))
	b.WriteString("\n\n")

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderButton(feedback.LeftDown, "[ - ]", boxW),
		gap,
		m.renderButton(feedback.RightDown, "[ - ]", boxW),
	)
	b.WriteString(indent(buttons))
	b.WriteString("\n\n")

	b.WriteString(indent(m.renderButton(feedback.ResetButton, "[ reset all ]", 2*boxW+digitGap)))
	b.WriteString("\n")

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	b.WriteString("\n")
	b.WriteString(modeStyle.Render(fmt.Sprintf("input: %s", m.adapter.Mode())))

	return b.String()
}

func (m CounterModel) renderDigit(t feedback.Target, v int) string {
	style := digitStyle

	if kind, ok := m.flashes.Active(t); ok {
		color := upColor
		if kind == feedback.Down {
			color = downColor
		}

		style = style.BorderForeground(color).Foreground(color)
	}

	return style.Render(bigDigit(v))
}

func (m CounterModel) renderButton(t feedback.Target, label string, width int) string {
	style := buttonStyle.Width(width)

	if _, ok := m.flashes.Active(t); ok {
		style = style.Reverse(true)
	}

	return style.Render(label)
}

func indent(s string) string {
	return lipgloss.NewStyle().MarginLeft(marginLeft).Render(s)
}
