// Package tui renders the timer in a terminal with bubbletea.
package tui

import (
	"strings"

	"pomodoro/internal/core/settings"
	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/ui/clock"
	"pomodoro/internal/ui/theme"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

const noFocus = -1

// Controller is the part of the timer the terminal UI drives.
type Controller interface {
	ToggleRun() bool
	Reset()
	SetWorkMinutes(text string) bool
	SetRestMinutes(text string) bool
	SetRoundCount(text string) bool
	Snapshot() timekeeper.Snapshot
	FieldText(field settings.Field) string
}

// FlashMsg switches the alert highlight on or off.
type FlashMsg bool

type eventMsg timekeeper.Event

type eventsClosedMsg struct{}

// Model is the bubbletea model of the timer screen.
type Model struct {
	controller Controller
	events     <-chan timekeeper.Event
	snapshot   timekeeper.Snapshot
	focus      int
	flashing   bool
	width      int
}

// New creates the model. events may be nil when the caller refreshes the
// model by other means.
func New(controller Controller, events <-chan timekeeper.Event) *Model {
	return &Model{
		controller: controller,
		events:     events,
		snapshot:   controller.Snapshot(),
		focus:      noFocus,
	}
}

// Init starts listening for timer events.
func (model *Model) Init() tea.Cmd {
	return model.waitForEvent()
}

// Update handles keys, timer events and alert flashes.
func (model *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		model.snapshot = msg.Snapshot
		if model.snapshot.IsRunning {
			model.focus = noFocus
		}
		return model, model.waitForEvent()
	case eventsClosedMsg:
		return model, tea.Quit
	case FlashMsg:
		model.flashing = bool(msg)
		return model, nil
	case tea.WindowSizeMsg:
		model.width = msg.Width
		return model, nil
	case tea.KeyPressMsg:
		return model.handleKey(msg)
	}
	return model, nil
}

func (model *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return model, tea.Quit
	}

	if model.focus != noFocus {
		switch {
		case key == "esc" || key == "enter":
			model.focus = noFocus
		case key == "tab":
			model.moveFocus(1)
		case key == "shift+tab":
			model.moveFocus(-1)
		case key == "backspace":
			text := model.controller.FieldText(model.focusedField())
			if text != "" {
				model.apply(text[:len(text)-1])
			}
		case len(key) == 1 && key[0] >= '0' && key[0] <= '9':
			model.apply(model.controller.FieldText(model.focusedField()) + key)
		}
		return model, nil
	}

	switch key {
	case "q":
		return model, tea.Quit
	case "space", "s":
		model.controller.ToggleRun()
	case "r":
		model.controller.Reset()
	case "tab":
		if !model.snapshot.IsRunning {
			model.focus = 0
		}
	case "shift+tab":
		if !model.snapshot.IsRunning {
			model.focus = len(settings.Fields) - 1
		}
	}
	model.snapshot = model.controller.Snapshot()
	return model, nil
}

func (model *Model) moveFocus(delta int) {
	count := len(settings.Fields)
	model.focus = (model.focus + delta + count) % count
}

func (model *Model) focusedField() settings.Field {
	return settings.Fields[model.focus]
}

func (model *Model) apply(text string) {
	switch model.focusedField() {
	case settings.FieldWork:
		model.controller.SetWorkMinutes(text)
	case settings.FieldRest:
		model.controller.SetRestMinutes(text)
	case settings.FieldRounds:
		model.controller.SetRoundCount(text)
	}
	model.snapshot = model.controller.Snapshot()
}

func (model *Model) waitForEvent() tea.Cmd {
	if model.events == nil {
		return nil
	}
	events := model.events
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return eventMsg(event)
	}
}

// View renders the screen.
func (model *Model) View() tea.View {
	var view tea.View
	view.SetContent(model.render())
	view.AltScreen = true
	return view
}

func (model *Model) render() string {
	snapshot := model.snapshot
	palette := theme.ForPhase(snapshot.Phase)
	roundsText := model.controller.FieldText(settings.FieldRounds)

	background := palette.Background
	if model.flashing {
		background = palette.Primary
	}
	textStyle := lipgloss.NewStyle().Foreground(palette.Text).Background(background).Bold(true)

	lines := []string{
		textStyle.Padding(0, 2).Render(theme.Headline(snapshot.Phase, snapshot.CurrentRound, roundsText)),
		"",
		textStyle.Padding(1, 4).Render(clock.Format(snapshot.RemainingSeconds)),
		"",
	}

	captionStyle := lipgloss.NewStyle().Foreground(theme.Label).Width(26)
	fieldStyle := lipgloss.NewStyle().Width(4).Padding(0, 1).Border(lipgloss.NormalBorder()).BorderForeground(theme.Inactive)
	focusedStyle := fieldStyle.BorderForeground(palette.Primary)
	lockedStyle := fieldStyle.Foreground(theme.Inactive)
	for index, field := range settings.Fields {
		style := fieldStyle
		switch {
		case snapshot.IsRunning:
			style = lockedStyle
		case index == model.focus:
			style = focusedStyle
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Center,
			captionStyle.Render(theme.FieldCaptions[field]),
			style.Render(model.controller.FieldText(field)),
		))
	}

	lines = append(lines, "", renderDots(snapshot.CurrentRound, roundsText, palette), "")

	toggleColour := palette.Primary
	if snapshot.IsRunning {
		toggleColour = theme.Pause
	}
	buttonStyle := lipgloss.NewStyle().Foreground(theme.White).Padding(0, 2).Bold(true)
	lines = append(lines,
		lipgloss.JoinHorizontal(lipgloss.Center,
			buttonStyle.Background(toggleColour).Render(theme.ToggleLabel(snapshot.IsRunning)),
			"  ",
			buttonStyle.Background(theme.Reset).Render("Reset"),
		),
		"",
		lipgloss.NewStyle().Foreground(theme.Reset).Render(model.helpLine()),
	)

	content := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if model.width > 0 {
		content = lipgloss.PlaceHorizontal(model.width, lipgloss.Center, content)
	}
	return content
}

func (model *Model) helpLine() string {
	if model.focus != noFocus {
		return "0-9 edit · backspace delete · tab next field · esc done"
	}
	return "space start/pause · r reset · tab edit · q quit"
}

func renderDots(current int, roundsText string, palette theme.Palette) string {
	dots := theme.RoundDots(current, roundsText)
	if len(dots) == 0 {
		return ""
	}
	rendered := make([]string, len(dots))
	for index, highlighted := range dots {
		colour := theme.Inactive
		if highlighted {
			colour = palette.Primary
		}
		rendered[index] = lipgloss.NewStyle().Foreground(colour).Render("●")
	}
	return strings.Join(rendered, " ")
}
