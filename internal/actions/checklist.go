package actions

import (
	"strings"

	json "github.com/goccy/go-json"

	"quoting-engine/internal/model"
	"quoting-engine/internal/wizard"
)

// Checklist actions operate on the active product line's checklist.
// Entries are addressed by their generated id, never by label text.

type addDocumentProps struct {
	Label string `json:"label"`
}

type AddDocumentHandler struct{}

func (h *AddDocumentHandler) Validate(state *model.WizardState, action *model.Action) []model.Message {
	var props addDocumentProps
	json.Unmarshal(action.Properties, &props)

	if strings.TrimSpace(props.Label) == "" {
		return []model.Message{{
			Level:   model.LevelCritical,
			Code:    "EMPTY_LABEL",
			Message: "Document label is empty or blank",
		}}
	}
	return nil
}

func (h *AddDocumentHandler) Apply(state *model.WizardState, action *model.Action) []model.Message {
	var props addDocumentProps
	json.Unmarshal(action.Properties, &props)

	wizard.AddDocument(state, state.Line, props.Label)
	return nil
}

type entryProps struct {
	EntryID string `json:"entry_id"`
}

type RemoveDocumentHandler struct{}

func (h *RemoveDocumentHandler) Validate(state *model.WizardState, action *model.Action) []model.Message {
	var props entryProps
	json.Unmarshal(action.Properties, &props)

	entry, ok := wizard.FindEntry(state, state.Line, props.EntryID)
	if !ok {
		return entryNotFound(props.EntryID)
	}
	if !entry.Custom {
		return []model.Message{{
			Level:   model.LevelCritical,
			Code:    "NOT_REMOVABLE",
			Message: "Default checklist entries cannot be removed",
		}}
	}
	return nil
}

func (h *RemoveDocumentHandler) Apply(state *model.WizardState, action *model.Action) []model.Message {
	var props entryProps
	json.Unmarshal(action.Properties, &props)

	wizard.RemoveDocument(state, state.Line, props.EntryID)
	return nil
}

type attachFileProps struct {
	EntryID  string `json:"entry_id"`
	FileName string `json:"file_name"`
	Size     int64  `json:"size,omitempty"`
}

type AttachFileHandler struct{}

func (h *AttachFileHandler) Validate(state *model.WizardState, action *model.Action) []model.Message {
	var props attachFileProps
	json.Unmarshal(action.Properties, &props)

	if _, ok := wizard.FindEntry(state, state.Line, props.EntryID); !ok {
		return entryNotFound(props.EntryID)
	}
	if !wizard.AllowedAttachment(props.FileName) {
		return []model.Message{{
			Level:   model.LevelCritical,
			Code:    "UNSUPPORTED_FILE_TYPE",
			Message: "Attachments must be PDF, JPEG, PNG or DOC/DOCX",
		}}
	}
	return nil
}

func (h *AttachFileHandler) Apply(state *model.WizardState, action *model.Action) []model.Message {
	var props attachFileProps
	json.Unmarshal(action.Properties, &props)

	wizard.AttachFile(state, state.Line, props.EntryID, model.FileRef{
		Name: props.FileName,
		Size: props.Size,
	})
	return nil
}

type DetachFileHandler struct{}

func (h *DetachFileHandler) Validate(state *model.WizardState, action *model.Action) []model.Message {
	var props entryProps
	json.Unmarshal(action.Properties, &props)

	if _, ok := wizard.FindEntry(state, state.Line, props.EntryID); !ok {
		return entryNotFound(props.EntryID)
	}
	return nil
}

func (h *DetachFileHandler) Apply(state *model.WizardState, action *model.Action) []model.Message {
	var props entryProps
	json.Unmarshal(action.Properties, &props)

	wizard.DetachFile(state, state.Line, props.EntryID)
	return nil
}

func entryNotFound(id string) []model.Message {
	return []model.Message{{
		Level:   model.LevelCritical,
		Code:    "ENTRY_NOT_FOUND",
		Message: "No checklist entry with id " + id + " in the active line",
	}}
}
