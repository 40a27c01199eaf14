package actions

import (
	json "github.com/goccy/go-json"

	"quoting-engine/internal/model"
	"quoting-engine/internal/wizard"
)

type setProductLineProps struct {
	Line model.ProductLine `json:"line"`
}

type SetProductLineHandler struct{}

func (h *SetProductLineHandler) Validate(state *model.WizardState, action *model.Action) []model.Message {
	var props setProductLineProps
	json.Unmarshal(action.Properties, &props)

	if !props.Line.Valid() {
		return []model.Message{{
			Level:   model.LevelCritical,
			Code:    "INVALID_PRODUCT_LINE",
			Message: "Product line must be one of auto, health, life",
		}}
	}
	return nil
}

func (h *SetProductLineHandler) Apply(state *model.WizardState, action *model.Action) []model.Message {
	var props setProductLineProps
	json.Unmarshal(action.Properties, &props)

	wizard.SetLine(state, props.Line)
	return nil
}
