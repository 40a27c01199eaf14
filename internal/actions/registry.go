package actions

var registry = map[string]ActionHandler{
	"set_product_line": &SetProductLineHandler{},
	"next_step":        &NextStepHandler{},
	"prev_step":        &PrevStepHandler{},
	"jump_to_step":     &JumpToStepHandler{},
	"toggle_select":    &ToggleSelectHandler{},
	"choose_policy":    &ChoosePolicyHandler{},
	"update_client":    &UpdateClientHandler{},
	"update_risk":      &UpdateRiskHandler{},
	"update_billing":   &UpdateBillingHandler{},
	"add_document":     &AddDocumentHandler{},
	"remove_document":  &RemoveDocumentHandler{},
	"attach_file":      &AttachFileHandler{},
	"detach_file":      &DetachFileHandler{},
}

func Get(name string) (ActionHandler, bool) {
	h, ok := registry[name]
	return h, ok
}
