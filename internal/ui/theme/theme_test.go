package theme

import (
	"testing"

	"pomodoro/internal/core/timekeeper"

	"github.com/stretchr/testify/assert"
)

func TestForPhase(t *testing.T) {
	assert.Equal(t, Work, ForPhase(timekeeper.PhaseWork))
	assert.Equal(t, Rest, ForPhase(timekeeper.PhaseRest))
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#22c55e", Hex(Work.Primary))
	assert.Equal(t, "#1e40af", Hex(Rest.Text))
	assert.Equal(t, "#d1d5db", Hex(Inactive))
}

func TestHeadline(t *testing.T) {
	assert.Equal(t, "Work Time - Round 1/4", Headline(timekeeper.PhaseWork, 1, "4"))
	assert.Equal(t, "Rest Time - Round 2/3", Headline(timekeeper.PhaseRest, 2, "3"))
	assert.Equal(t, "Work Time - Round 1/", Headline(timekeeper.PhaseWork, 1, ""))
}

func TestRoundDots(t *testing.T) {
	assert.Equal(t, []bool{true, true, false, false}, RoundDots(2, "4"))
	assert.Equal(t, []bool{true}, RoundDots(1, "1"))
	assert.Equal(t, []bool{true, true}, RoundDots(3, "2"))
	assert.Nil(t, RoundDots(1, ""))
	assert.Nil(t, RoundDots(1, "x"))
}

func TestToggleLabel(t *testing.T) {
	assert.Equal(t, "Pause", ToggleLabel(true))
	assert.Equal(t, "Start", ToggleLabel(false))
}

func TestStatusLine(t *testing.T) {
	assert.Equal(t, "Work 24:59 - Round 1/4", StatusLine(timekeeper.Snapshot{
		Phase: timekeeper.PhaseWork, CurrentRound: 1, TotalRounds: 4, RemainingSeconds: 24*60 + 59,
	}))
	assert.Equal(t, "Rest 05:00 - Round 3/4", StatusLine(timekeeper.Snapshot{
		Phase: timekeeper.PhaseRest, CurrentRound: 3, TotalRounds: 4, RemainingSeconds: 300,
	}))
}

func TestPhaseEndedMessage(t *testing.T) {
	title, body := PhaseEndedMessage(timekeeper.PhaseWork, timekeeper.Snapshot{
		Phase: timekeeper.PhaseRest, CurrentRound: 1, TotalRounds: 4, RemainingSeconds: 300, IsRunning: true,
	})
	assert.Equal(t, "Work finished", title)
	assert.Equal(t, "Rest for 05:00", body)

	title, body = PhaseEndedMessage(timekeeper.PhaseRest, timekeeper.Snapshot{
		Phase: timekeeper.PhaseWork, CurrentRound: 2, TotalRounds: 4, RemainingSeconds: 1500, IsRunning: true,
	})
	assert.Equal(t, "Rest finished", title)
	assert.Equal(t, "Round 2/4: work for 25:00", body)

	title, body = PhaseEndedMessage(timekeeper.PhaseRest, timekeeper.Snapshot{
		Phase: timekeeper.PhaseWork, CurrentRound: 1, TotalRounds: 4, RemainingSeconds: 1500,
	})
	assert.Equal(t, "All rounds complete", title)
	assert.Equal(t, "4 rounds done", body)
}
