package actions

import "quoting-engine/internal/model"

// ActionHandler defines the contract for all wizard action implementations.
// Each action validates against the current state and applies its change.
type ActionHandler interface {
	Validate(state *model.WizardState, action *model.Action) []model.Message
	Apply(state *model.WizardState, action *model.Action) []model.Message
}
