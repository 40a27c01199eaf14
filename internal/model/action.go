package model

import json "github.com/goccy/go-json"

// ActionRequest is a batch of wizard actions applied in order.
type ActionRequest struct {
	Actions []Action `json:"actions"`
}

// Action is one wizard operation; Properties vary per action name.
type Action struct {
	ActionID   string          `json:"action_id,omitempty"`
	Name       string          `json:"name"`
	Properties json.RawMessage `json:"properties,omitempty"`
}
