package cli

import (
	"regexp"
	"testing"

	"github.com/alexanderramin/peak/internal/contract"
	"github.com/alexanderramin/peak/internal/domain"
	"github.com/alexanderramin/peak/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func plain(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func testPlan() *contract.PlanResponse {
	return &contract.PlanResponse{
		DurationMin: 1,
		Category:    domain.CategoryEye,
		Concern:     true,
		NudgeCount:  3,
		Nudges:      []string{"look far away", "blink fifteen times", "palm your eyes"},
		Timing:      []int{10, 30, 50},
		Source:      contract.SourceKnowledgeBase,
	}
}

func newSessionDriver(t *testing.T, speed float64) *teatest.Driver {
	t.Helper()
	d := teatest.New(t, newSessionModel(testPlan(), speed), teatest.WithSize(80, 30))
	d.DrainInit()
	return d
}

func model(d *teatest.Driver) sessionModel {
	return d.Model.(sessionModel)
}

func TestSessionModel_SurfacesNudgesOnSchedule(t *testing.T) {
	d := newSessionDriver(t, 10)
	assert.Contains(t, plain(d.View()), "first nudge arrives at 0:10")

	d.Send(tickMsg{})
	assert.Equal(t, 0, model(d).current)
	assert.Contains(t, plain(d.View()), "look far away")

	d.Send(tickMsg{})
	assert.Equal(t, 0, model(d).current)

	d.Send(tickMsg{})
	assert.Equal(t, 1, model(d).current)

	d.SendN(tickMsg{}, 2)
	assert.Equal(t, 2, model(d).current)
	assert.False(t, d.Quitting)

	d.Send(tickMsg{})
	assert.True(t, model(d).finished)
	assert.True(t, d.Quitting)
	assert.Contains(t, plain(d.View()), "Session complete")
}

func TestSessionModel_PauseStopsClock(t *testing.T) {
	d := newSessionDriver(t, 10)

	d.PressSpace()
	require.True(t, model(d).paused)
	assert.Contains(t, plain(d.View()), "paused")

	d.SendN(tickMsg{}, 2)
	assert.Zero(t, model(d).elapsed)
	assert.Equal(t, -1, model(d).current)

	d.PressSpace()
	d.Send(tickMsg{})
	assert.Equal(t, 0, model(d).current)
}

func TestSessionModel_SkipJumpsToNextNudge(t *testing.T) {
	d := newSessionDriver(t, 1)

	d.PressKey('n')
	assert.Equal(t, 0, model(d).current)
	d.PressKey('n')
	assert.Equal(t, 1, model(d).current)
	assert.Equal(t, 30, int(model(d).elapsed.Seconds()))
	assert.Contains(t, plain(d.View()), "blink fifteen times")
}

func TestSessionModel_Quit(t *testing.T) {
	for _, press := range []func(*teatest.Driver){
		func(d *teatest.Driver) { d.PressKey('q') },
		func(d *teatest.Driver) { d.PressCtrlC() },
	} {
		d := newSessionDriver(t, 1)
		press(d)
		assert.True(t, d.Quitting)
		assert.Contains(t, plain(d.View()), "Session stopped")
	}
}

func TestSessionModel_ListsEveryStep(t *testing.T) {
	d := newSessionDriver(t, 1)

	view := plain(d.View())

	for _, n := range testPlan().Nudges {
		assert.Contains(t, view, n)
	}
	assert.Contains(t, view, "0:50")
	assert.Contains(t, view, "Eye strain")
}
