package theme

import (
	"fmt"

	"pomodoro/internal/core/settings"
	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/ui/clock"
)

// FieldCaptions labels each editable field.
var FieldCaptions = map[settings.Field]string{
	settings.FieldWork:   "Work Duration (minutes):",
	settings.FieldRest:   "Rest Duration (minutes):",
	settings.FieldRounds: "Number of Rounds:",
}

// Headline renders the phase line, e.g. "Work Time - Round 1/4". roundsText
// is shown as typed so a field being edited is reflected immediately.
func Headline(phase timekeeper.Phase, round int, roundsText string) string {
	name := "Work Time"
	if phase == timekeeper.PhaseRest {
		name = "Rest Time"
	}
	return fmt.Sprintf("%s - Round %d/%s", name, round, roundsText)
}

// RoundDots reports, per round, whether its dot is highlighted. Rounds up
// to and including the current one are highlighted. An unparsable round
// count yields no dots.
func RoundDots(current int, roundsText string) []bool {
	total, ok := settings.ParseValue(roundsText)
	if !ok {
		return nil
	}
	dots := make([]bool, total)
	for index := range dots {
		dots[index] = index+1 <= current
	}
	return dots
}

// ToggleLabel is the caption of the start/pause control.
func ToggleLabel(running bool) string {
	if running {
		return "Pause"
	}
	return "Start"
}

// StatusLine is a one-line summary, e.g. "Work 24:59 - Round 1/4".
func StatusLine(snapshot timekeeper.Snapshot) string {
	name := "Work"
	if snapshot.Phase == timekeeper.PhaseRest {
		name = "Rest"
	}
	return fmt.Sprintf("%s %s - Round %d/%d", name, clock.Format(snapshot.RemainingSeconds),
		snapshot.CurrentRound, snapshot.TotalRounds)
}

// PhaseEndedMessage returns the title and body of the alert shown when
// ended expires and the timer moves to next.
func PhaseEndedMessage(ended timekeeper.Phase, next timekeeper.Snapshot) (string, string) {
	if ended == timekeeper.PhaseWork {
		return "Work finished", fmt.Sprintf("Rest for %s", clock.Format(next.RemainingSeconds))
	}
	if !next.IsRunning && next.Phase == timekeeper.PhaseWork && next.CurrentRound == 1 {
		return "All rounds complete", fmt.Sprintf("%d rounds done", next.TotalRounds)
	}
	return "Rest finished", fmt.Sprintf("Round %d/%d: work for %s", next.CurrentRound, next.TotalRounds,
		clock.Format(next.RemainingSeconds))
}
