package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/alexanderramin/peak/internal/contract"
	"github.com/alexanderramin/peak/internal/domain"
	"github.com/alexanderramin/peak/internal/service"
)

// maxBodyBytes caps the request body of POST /start_session.
const maxBodyBytes = 64 << 10

type SessionHandler struct {
	plans           service.PlanService
	defaultDuration int
	defaultInput    string
	logger          *slog.Logger
}

func NewSessionHandler(plans service.PlanService, defaultDuration int, defaultInput string, logger *slog.Logger) *SessionHandler {
	if defaultDuration <= 0 {
		defaultDuration = contract.DefaultDurationMin
	}
	if defaultInput == "" {
		defaultInput = domain.NeutralInput
	}
	return &SessionHandler{
		plans:           plans,
		defaultDuration: defaultDuration,
		defaultInput:    defaultInput,
		logger:          logger,
	}
}

type startSessionBody struct {
	UserInput json.RawMessage `json:"user_input"`
	Duration  json.RawMessage `json:"duration"`
	Generate  json.RawMessage `json:"generate"`
}

type startSessionResponse struct {
	PlanID     string          `json:"plan_id"`
	Nudges     []string        `json:"nudges"`
	Timing     []int           `json:"timing"`
	Category   domain.Category `json:"category"`
	NudgeCount int             `json:"nudge_count"`
	Source     string          `json:"source"`
	Warnings   []string        `json:"warnings,omitempty"`
}

// Start handles POST /start_session
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, msgNoData, "")
		return
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || len(fields) == 0 {
		h.logger.WarnContext(r.Context(), "no JSON data received in request",
			"request_id", RequestIDFrom(r.Context()))
		writeError(w, http.StatusBadRequest, msgNoData, "")
		return
	}

	var body startSessionBody
	body.UserInput = fields["user_input"]
	body.Duration = fields["duration"]
	body.Generate = fields["generate"]

	input, err := h.parseInput(body.UserInput)
	if err != nil {
		writeError(w, http.StatusBadRequest, string(contract.ErrInvalidInput), err.Error())
		return
	}
	duration, err := h.parseDuration(body.Duration)
	if err != nil {
		writeError(w, http.StatusBadRequest, string(contract.ErrInvalidDuration), err.Error())
		return
	}

	generate, err := parseGenerate(body.Generate)
	if err != nil {
		writeError(w, http.StatusBadRequest, string(contract.ErrInvalidInput), err.Error())
		return
	}

	req := contract.NewPlanRequest(input, duration)
	req.AllowGenerated = generate
	resp, err := h.plans.Plan(r.Context(), req)
	if err != nil {
		var pe *contract.PlanError
		if !errors.As(err, &pe) || !pe.IsClientError() {
			h.logger.ErrorContext(r.Context(), "plan session failed",
				"error", err,
				"request_id", RequestIDFrom(r.Context()))
		}
		writePlanError(w, err)
		return
	}
	for _, warn := range resp.Warnings {
		h.logger.WarnContext(r.Context(), warn, "request_id", RequestIDFrom(r.Context()))
	}
	h.logger.InfoContext(r.Context(), "planned session",
		"category", resp.Category,
		"duration_min", resp.DurationMin,
		"nudge_count", resp.NudgeCount,
		"timing", resp.Timing,
		"request_id", RequestIDFrom(r.Context()),
	)

	writeJSON(w, http.StatusOK, startSessionResponse{
		PlanID:     resp.PlanID,
		Nudges:     resp.Nudges,
		Timing:     resp.Timing,
		Category:   resp.Category,
		NudgeCount: resp.NudgeCount,
		Source:     string(resp.Source),
		Warnings:   resp.Warnings,
	})
}

func (h *SessionHandler) parseInput(raw json.RawMessage) (string, error) {
	if isAbsent(raw) {
		return h.defaultInput, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("user_input must be a string")
	}
	return s, nil
}

// parseDuration accepts JSON integers, including integral floats such as
// 30.0, between 1 and contract.MaxDurationMin. Strings, booleans and
// fractional numbers are rejected. Out-of-range values are rejected rather
// than clamped so that the caller sees the number it actually sent.
func (h *SessionHandler) parseDuration(raw json.RawMessage) (int, error) {
	if isAbsent(raw) {
		return h.defaultDuration, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return 0, fmt.Errorf("duration must be an integer number of minutes")
	}
	n, ok := v.(json.Number)
	if !ok {
		return 0, fmt.Errorf("duration must be an integer number of minutes, got %s", raw)
	}
	// Every valid duration is exact in a float64; anything past the
	// float range parses to ±Inf and fails the bound check below.
	f, err := strconv.ParseFloat(n.String(), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("duration must be an integer number of minutes, got %s", n)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("duration must be an integer number of minutes, got %s", n)
	}
	if f < 1 || f > contract.MaxDurationMin {
		return 0, fmt.Errorf("duration must be between 1 and %d minutes, got %s", contract.MaxDurationMin, n)
	}
	return int(f), nil
}

func parseGenerate(raw json.RawMessage) (bool, error) {
	if isAbsent(raw) {
		return false, nil
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false, fmt.Errorf("generate must be a boolean")
	}
	return b, nil
}

func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || string(bytes.TrimSpace(raw)) == "null"
}
