package actions

import (
	"fmt"

	json "github.com/goccy/go-json"

	"quoting-engine/internal/catalog"
	"quoting-engine/internal/model"
	"quoting-engine/internal/selection"
)

type policyProps struct {
	PolicyID string `json:"policy_id"`
}

func validatePolicyID(state *model.WizardState, action *model.Action) []model.Message {
	var props policyProps
	json.Unmarshal(action.Properties, &props)

	if _, ok := catalog.Find(state.Line, props.PolicyID); !ok {
		return []model.Message{{
			Level:   model.LevelCritical,
			Code:    "UNKNOWN_POLICY",
			Message: fmt.Sprintf("Policy %s is not in the %s catalog", props.PolicyID, state.Line),
		}}
	}
	return nil
}

// ToggleSelectHandler adds or removes a policy from the comparison
// subset. A fourth selection is dropped silently; capacity rejection is
// not an error.
type ToggleSelectHandler struct{}

func (h *ToggleSelectHandler) Validate(state *model.WizardState, action *model.Action) []model.Message {
	return validatePolicyID(state, action)
}

func (h *ToggleSelectHandler) Apply(state *model.WizardState, action *model.Action) []model.Message {
	var props policyProps
	json.Unmarshal(action.Properties, &props)

	state.SelectedIDs = selection.Toggle(state.SelectedIDs, props.PolicyID)
	return nil
}

type ChoosePolicyHandler struct{}

func (h *ChoosePolicyHandler) Validate(state *model.WizardState, action *model.Action) []model.Message {
	return validatePolicyID(state, action)
}

func (h *ChoosePolicyHandler) Apply(state *model.WizardState, action *model.Action) []model.Message {
	var props policyProps
	json.Unmarshal(action.Properties, &props)

	state.ChosenID = props.PolicyID
	return nil
}
