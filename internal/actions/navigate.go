package actions

import (
	json "github.com/goccy/go-json"

	"quoting-engine/internal/model"
	"quoting-engine/internal/wizard"
)

// Step navigation never fails: next/prev saturate at the flow bounds and
// jump_to_step clamps its target. Skipping ahead is allowed.

type NextStepHandler struct{}

func (h *NextStepHandler) Validate(state *model.WizardState, action *model.Action) []model.Message {
	return nil
}

func (h *NextStepHandler) Apply(state *model.WizardState, action *model.Action) []model.Message {
	wizard.Next(state)
	return nil
}

type PrevStepHandler struct{}

func (h *PrevStepHandler) Validate(state *model.WizardState, action *model.Action) []model.Message {
	return nil
}

func (h *PrevStepHandler) Apply(state *model.WizardState, action *model.Action) []model.Message {
	wizard.Prev(state)
	return nil
}

type jumpToStepProps struct {
	Step int `json:"step"`
}

type JumpToStepHandler struct{}

func (h *JumpToStepHandler) Validate(state *model.WizardState, action *model.Action) []model.Message {
	return nil
}

func (h *JumpToStepHandler) Apply(state *model.WizardState, action *model.Action) []model.Message {
	var props jumpToStepProps
	json.Unmarshal(action.Properties, &props)

	wizard.JumpTo(state, props.Step)
	return nil
}
