package model

import json "github.com/goccy/go-json"

type ActionResponse struct {
	Metadata ResponseMetadata `json:"metadata"`
	Result   ActionResult     `json:"result"`
}

type ResponseMetadata struct {
	RequestID   string `json:"request_id"`
	SessionID   string `json:"session_id"`
	StartedAt   string `json:"started_at"`
	CompletedAt string `json:"completed_at"`
	DurationMs  int64  `json:"duration_ms"`
	Outcome     string `json:"outcome"`
}

type ActionResult struct {
	Messages []Message         `json:"messages"`
	Actions  []ProcessedAction `json:"actions"`
	EndState *WizardState      `json:"end_state"`
}

// ProcessedAction records one action's messages and the RFC 6902 patch
// describing how it changed the wizard state.
type ProcessedAction struct {
	Action         Action          `json:"action"`
	MessageIndexes []int           `json:"message_indexes,omitempty"`
	StatePatch     json.RawMessage `json:"state_patch,omitempty"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
