package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/peak/internal/contract"
	"github.com/alexanderramin/peak/internal/domain"
	"github.com/alexanderramin/peak/internal/intelligence"
	"github.com/alexanderramin/peak/internal/knowledge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureObserver struct {
	mu     sync.Mutex
	events []PlanEvent
}

func (c *captureObserver) ObservePlan(_ context.Context, e PlanEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

type stubNudges struct {
	sugg *intelligence.NudgeSuggestion
	got  intelligence.NudgeBrief
}

func (s *stubNudges) Suggest(_ context.Context, brief intelligence.NudgeBrief) *intelligence.NudgeSuggestion {
	s.got = brief
	return s.sugg
}

func TestPlan_HeadacheScenario(t *testing.T) {
	svc := NewPlanService(nil)

	resp, err := svc.Plan(context.Background(), contract.NewPlanRequest("I have a headache", 30))

	require.NoError(t, err)
	assert.Equal(t, domain.CategoryHeadache, resp.Category)
	assert.True(t, resp.Concern)
	assert.Equal(t, "head", resp.MatchedKeyword)
	assert.Equal(t, 2, resp.NudgeCount)
	assert.Equal(t, knowledge.Select(domain.CategoryHeadache, 2), resp.Nudges)
	assert.Equal(t, []int{135, 1665}, resp.Timing)
	assert.Equal(t, contract.SourceKnowledgeBase, resp.Source)
	assert.NotEmpty(t, resp.PlanID)
	assert.Empty(t, resp.Warnings)
}

func TestPlan_UsesRequestClock(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	req := contract.NewPlanRequest("", 10)
	req.Now = &now

	resp, err := NewPlanService(nil).Plan(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, now, resp.GeneratedAt)
	assert.Equal(t, []int{300}, resp.Timing)
}

func TestPlan_RejectsNonPositiveDuration(t *testing.T) {
	obs := &captureObserver{}
	svc := NewPlanService(nil, obs)

	for _, d := range []int{0, -5} {
		resp, err := svc.Plan(context.Background(), contract.NewPlanRequest("tired", d))

		assert.Nil(t, resp)
		var pe *contract.PlanError
		require.True(t, errors.As(err, &pe), "duration=%d", d)
		assert.Equal(t, contract.ErrInvalidDuration, pe.Code)
	}
	require.Len(t, obs.events, 2)
	assert.False(t, obs.events[0].Success())
}

func TestPlan_RejectsDurationAboveOneDay(t *testing.T) {
	resp, err := NewPlanService(nil).Plan(context.Background(), contract.NewPlanRequest("tired", contract.MaxDurationMin+1))

	assert.Nil(t, resp)
	var pe *contract.PlanError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, contract.ErrInvalidDuration, pe.Code)
	assert.Equal(t, "duration must be between 1 and 1440 minutes, got 1441", pe.Message)
}

func TestPlan_IdenticalOutputAcrossCalls(t *testing.T) {
	svc := NewPlanService(nil)
	ctx := context.Background()

	a, err := svc.Plan(ctx, contract.NewPlanRequest("stressed and my back hurts", 75))
	require.NoError(t, err)
	b, err := svc.Plan(ctx, contract.NewPlanRequest("stressed and my back hurts", 75))
	require.NoError(t, err)

	assert.Equal(t, domain.CategoryBack, a.Category)
	assert.Equal(t, a.Nudges, b.Nudges)
	assert.Equal(t, a.Timing, b.Timing)
	assert.NotEqual(t, a.PlanID, b.PlanID)
}

func TestPlan_ConcurrentCallsShareNothing(t *testing.T) {
	svc := NewPlanService(nil)
	want, err := svc.Plan(context.Background(), contract.NewPlanRequest("eyes are tired", 60))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := svc.Plan(context.Background(), contract.NewPlanRequest("eyes are tired", 60))
			if assert.NoError(t, err) {
				assert.Equal(t, want.Nudges, got.Nudges)
				assert.Equal(t, want.Timing, got.Timing)
			}
		}()
	}
	wg.Wait()
}

func TestPlan_GeneratedNudgesAreFittedToCount(t *testing.T) {
	stub := &stubNudges{sugg: &intelligence.NudgeSuggestion{
		Nudges: []string{"one", "two", "three", "four"},
		Source: contract.SourceGenerated,
	}}
	svc := NewPlanService(stub)
	req := contract.NewPlanRequest("creative", 60)
	req.AllowGenerated = true

	resp, err := svc.Plan(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, contract.SourceGenerated, resp.Source)
	assert.Equal(t, []string{"one", "two", "three"}, resp.Nudges)
	assert.Len(t, resp.Timing, 3)
	assert.Equal(t, domain.CategoryCreative, stub.got.Category)
	assert.Equal(t, 3, stub.got.Count)
}

func TestPlan_GeneratorFallbackAddsWarning(t *testing.T) {
	stub := &stubNudges{sugg: &intelligence.NudgeSuggestion{
		Nudges:         knowledge.Select(domain.CategoryDefault, 1),
		Source:         contract.SourceKnowledgeBase,
		FallbackReason: "nudge model unavailable",
	}}
	req := contract.NewPlanRequest("meh", 15)
	req.AllowGenerated = true

	resp, err := NewPlanService(stub).Plan(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, contract.SourceKnowledgeBase, resp.Source)
	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "nudge model unavailable")
}

func TestPlan_GeneratorSkippedByDefault(t *testing.T) {
	stub := &stubNudges{sugg: &intelligence.NudgeSuggestion{Nudges: []string{"gen"}, Source: contract.SourceGenerated}}

	resp, err := NewPlanService(stub).Plan(context.Background(), contract.NewPlanRequest("meh", 15))

	require.NoError(t, err)
	assert.Equal(t, contract.SourceKnowledgeBase, resp.Source)
	assert.Empty(t, stub.got.Category)
}

type panickingNudges struct{}

func (panickingNudges) Suggest(context.Context, intelligence.NudgeBrief) *intelligence.NudgeSuggestion {
	panic("secret-token-123 leaked")
}

func TestPlan_PanicValueIsLoggedNotReturned(t *testing.T) {
	obs := &captureObserver{}
	req := contract.NewPlanRequest("tired", 30)
	req.AllowGenerated = true

	resp, err := NewPlanService(panickingNudges{}, obs).Plan(context.Background(), req)

	assert.Nil(t, resp)
	var pe *contract.PlanError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, contract.ErrInternalError, pe.Code)
	assert.NotContains(t, err.Error(), "secret-token-123")
	require.Len(t, obs.events, 1)
	assert.Equal(t, "secret-token-123 leaked", obs.events[0].Panic)
}

func TestLogPlanObserver_LogsPanicValue(t *testing.T) {
	var buf bytes.Buffer
	req := contract.NewPlanRequest("tired", 30)
	req.AllowGenerated = true

	_, err := NewPlanService(panickingNudges{}, NewLogPlanObserver(&buf)).Plan(context.Background(), req)

	require.Error(t, err)
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), `panic="secret-token-123 leaked"`)
}

func TestPlan_ObserverRecordsFields(t *testing.T) {
	obs := &captureObserver{}

	_, err := NewPlanService(nil, obs).Plan(context.Background(), contract.NewPlanRequest("wrist pain", 45))

	require.NoError(t, err)
	require.Len(t, obs.events, 1)
	ev := obs.events[0]
	assert.True(t, ev.Success())
	assert.Equal(t, 45, ev.DurationMin)
	assert.Equal(t, domain.CategoryWrist, ev.Category)
	assert.Equal(t, 3, ev.NudgeCount)
	assert.Equal(t, contract.SourceKnowledgeBase, ev.Source)
	assert.Nil(t, ev.Panic)
}

func TestLogPlanObserver_ClientErrorIsWarning(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogPlanObserver(&buf)

	_, err := NewPlanService(nil, obs).Plan(context.Background(), contract.NewPlanRequest("tired", 0))

	require.Error(t, err)
	line := buf.String()
	assert.True(t, strings.Contains(line, "level=WARN"), line)
	assert.Contains(t, line, `msg="plan session"`)
	assert.Contains(t, line, "INVALID_DURATION")
	assert.NotContains(t, line, "category=")
}

func TestLogPlanObserver_AttributeOrderIsStable(t *testing.T) {
	var buf bytes.Buffer
	svc := NewPlanService(nil, NewLogPlanObserver(&buf))

	for range 5 {
		_, err := svc.Plan(context.Background(), contract.NewPlanRequest("wrist pain", 45))
		require.NoError(t, err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	for _, line := range lines {
		assert.Regexp(t, `success=true duration_min=45 category=wrist concern=true nudge_count=3 source=knowledge_base$`, line)
	}
}

func TestNewLogPlanObserver_NilIsNoop(t *testing.T) {
	assert.IsType(t, NoopPlanObserver{}, NewLogPlanObserver(nil))
	assert.IsType(t, NoopPlanObserver{}, NewSlogPlanObserver(nil))
}
