package timerview

import (
	"pomodoro/internal/core/settings"
	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/ui/clock"
	"pomodoro/internal/ui/theme"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	fynetheme "fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const dotSize = 12

// Controller is the part of the timer the window drives.
type Controller interface {
	ToggleRun() bool
	Reset()
	SetWorkMinutes(text string) bool
	SetRestMinutes(text string) bool
	SetRoundCount(text string) bool
	Snapshot() timekeeper.Snapshot
	FieldText(field settings.Field) string
}

// Window shows the countdown and the three configuration fields.
type Window struct {
	window     fyne.Window
	controller Controller
	background *canvas.Rectangle
	headline   *canvas.Text
	timer      *canvas.Text
	entries    map[settings.Field]*widget.Entry
	dots       *fyne.Container
	toggle     *widget.Button
	reset      *widget.Button
	snapshot   timekeeper.Snapshot
	flashing   bool
	syncing    bool
}

// New creates the timer window. It must be called on the fyne main thread.
func New(app fyne.App, controller Controller) *Window {
	window := app.NewWindow("Pomodoro")

	view := &Window{
		window:     window,
		controller: controller,
		background: canvas.NewRectangle(theme.Work.Background),
		headline:   canvas.NewText("", theme.Work.Text),
		timer:      canvas.NewText("", theme.Work.Text),
		entries:    make(map[settings.Field]*widget.Entry, len(settings.Fields)),
		dots:       container.NewHBox(),
	}

	view.headline.TextSize = 24
	view.headline.TextStyle = fyne.TextStyle{Bold: true}
	view.headline.Alignment = fyne.TextAlignCenter

	view.timer.TextSize = 72
	view.timer.TextStyle = fyne.TextStyle{Monospace: true}
	view.timer.Alignment = fyne.TextAlignCenter

	form := container.NewVBox()
	for _, field := range settings.Fields {
		entry := view.newEntry(field)
		view.entries[field] = entry
		caption := canvas.NewText(theme.FieldCaptions[field], theme.Label)
		caption.TextSize = 16
		form.Add(caption)
		form.Add(entry)
	}

	view.toggle = widget.NewButtonWithIcon(theme.ToggleLabel(false), fynetheme.MediaPlayIcon(), func() {
		view.controller.ToggleRun()
		view.Refresh(view.controller.Snapshot())
	})
	view.reset = widget.NewButtonWithIcon("Reset", fynetheme.ViewRefreshIcon(), func() {
		view.controller.Reset()
		view.Refresh(view.controller.Snapshot())
	})
	buttons := container.NewHBox(layout.NewSpacer(), view.toggle, view.reset, layout.NewSpacer())

	card := container.NewVBox(
		view.headline,
		view.timer,
		form,
		container.NewCenter(view.dots),
		buttons,
	)
	content := container.NewStack(view.background, container.NewPadded(container.NewCenter(card)))
	window.SetContent(content)
	window.Resize(fyne.NewSize(420, 560))

	view.Refresh(controller.Snapshot())
	return view
}

// Window returns the underlying fyne window.
func (view *Window) Window() fyne.Window {
	return view.window
}

// Show displays the window.
func (view *Window) Show() {
	view.window.Show()
	view.window.RequestFocus()
}

// Refresh redraws the window from snapshot. Call it on the fyne main thread.
func (view *Window) Refresh(snapshot timekeeper.Snapshot) {
	view.snapshot = snapshot
	palette := theme.ForPhase(snapshot.Phase)
	roundsText := view.controller.FieldText(settings.FieldRounds)

	view.applyBackground()
	view.headline.Text = theme.Headline(snapshot.Phase, snapshot.CurrentRound, roundsText)
	view.headline.Color = palette.Text
	view.headline.Refresh()
	view.timer.Text = clock.Format(snapshot.RemainingSeconds)
	view.timer.Color = palette.Text
	view.timer.Refresh()

	view.syncing = true
	for field, entry := range view.entries {
		if text := view.controller.FieldText(field); entry.Text != text {
			entry.SetText(text)
		}
		if snapshot.IsRunning {
			entry.Disable()
		} else {
			entry.Enable()
		}
	}
	view.syncing = false

	view.dots.RemoveAll()
	for _, highlighted := range theme.RoundDots(snapshot.CurrentRound, roundsText) {
		fill := theme.Inactive
		if highlighted {
			fill = palette.Primary
		}
		dot := canvas.NewCircle(fill)
		dot.Resize(fyne.NewSize(dotSize, dotSize))
		view.dots.Add(container.NewGridWrap(fyne.NewSize(dotSize, dotSize), dot))
	}
	view.dots.Refresh()

	view.toggle.SetText(theme.ToggleLabel(snapshot.IsRunning))
	if snapshot.IsRunning {
		view.toggle.SetIcon(fynetheme.MediaPauseIcon())
		view.toggle.Importance = widget.DangerImportance
	} else {
		view.toggle.SetIcon(fynetheme.MediaPlayIcon())
		view.toggle.Importance = widget.HighImportance
	}
	view.toggle.Refresh()
}

// Flash tints the background with the phase colour while on is true.
func (view *Window) Flash(on bool) {
	view.flashing = on
	view.applyBackground()
}

func (view *Window) applyBackground() {
	palette := theme.ForPhase(view.snapshot.Phase)
	if view.flashing {
		view.background.FillColor = palette.Primary
	} else {
		view.background.FillColor = palette.Background
	}
	view.background.Refresh()
}

func (view *Window) newEntry(field settings.Field) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetText(view.controller.FieldText(field))
	entry.OnChanged = func(text string) {
		if view.syncing {
			return
		}
		if !view.apply(field, text) {
			view.syncing = true
			entry.SetText(view.controller.FieldText(field))
			view.syncing = false
		}
		view.Refresh(view.controller.Snapshot())
	}
	return entry
}

func (view *Window) apply(field settings.Field, text string) bool {
	switch field {
	case settings.FieldWork:
		return view.controller.SetWorkMinutes(text)
	case settings.FieldRest:
		return view.controller.SetRestMinutes(text)
	case settings.FieldRounds:
		return view.controller.SetRoundCount(text)
	}
	return false
}
