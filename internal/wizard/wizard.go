// Package wizard owns the quoting flow state: step navigation, product
// line switching and the per-line document checklist.
package wizard

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"quoting-engine/internal/catalog"
	"quoting-engine/internal/model"
)

var (
	ErrEmptyLabel      = errors.New("checklist label is empty")
	ErrEntryNotFound   = errors.New("checklist entry not found")
	ErrNotRemovable    = errors.New("default checklist entries cannot be removed")
	ErrUnsupportedFile = errors.New("unsupported attachment type")
)

// New seeds a wizard at the discovery step with demo placeholder
// profiles, the default checklists for every line, and the first two
// catalog entries of the active line pre-selected.
func New(line model.ProductLine, advisorName, advisorEmail string) *model.WizardState {
	if !line.Valid() {
		line = model.LineLife
	}
	st := &model.WizardState{
		Step:         model.StepDiscovery,
		Line:         line,
		AdvisorName:  advisorName,
		AdvisorEmail: advisorEmail,
		Client: model.ClientProfile{
			Name:       "Maria Lopez",
			CURP:       "LOPM850101HDFRRS08",
			RFC:        "LOPM850101ABC",
			Email:      "maria@example.com",
			Phone:      "+52 55 1234 5678",
			Address:    "Av. Siempre Viva 123, CDMX",
			Priorities: []string{"Buen precio", "Bajo deducible", "Asistencia vial"},
		},
		Auto: model.AutoRisk{
			Make:         "Nissan",
			Model:        "Versa",
			Year:         2022,
			Trim:         "Sense MT",
			VIN:          "3N1CN7AD2JK123456",
			Plates:       "ABC-123-CDMX",
			Use:          "Particular",
			InvoiceValue: 265000,
		},
		Health: model.HealthRisk{
			Age:               34,
			Sex:               "F",
			Smoker:            "No",
			PreferredHospital: "ABC Observatorio",
		},
		Life: model.LifeRisk{
			Age:           35,
			Sex:           "F",
			Smoker:        "No",
			Beneficiaries: "Juan (50%), Ana (50%)",
			DesiredSum:    1000000,
		},
		Billing: model.BillingProfile{
			PaymentMethod: "Tarjeta de credito",
			Frequency:     "Mensual",
			Holder:        "Maria Lopez",
			TaxAddress:    "Av. Siempre Viva 123, CDMX",
		},
		Checklists: map[model.ProductLine][]model.ChecklistEntry{},
	}
	for _, l := range model.Lines() {
		for _, label := range catalog.DefaultChecklist(l) {
			st.Checklists[l] = append(st.Checklists[l], model.ChecklistEntry{
				ID:    uuid.New().String(),
				Label: label,
			})
		}
	}
	resetSelection(st)
	return st
}

// Next advances the step, clamped at the last step.
func Next(st *model.WizardState) {
	st.Step = clampStep(st.Step + 1)
}

// Prev moves back one step, clamped at the first step.
func Prev(st *model.WizardState) {
	st.Step = clampStep(st.Step - 1)
}

// JumpTo moves to an arbitrary step, clamped to the valid range. Free
// navigation is intentional; no prerequisite gating.
func JumpTo(st *model.WizardState, n int) {
	st.Step = clampStep(n)
}

// SetLine switches the product line and re-seeds the selection defaults
// for the new line's catalog. Prior selections are discarded.
func SetLine(st *model.WizardState, line model.ProductLine) {
	st.Line = line
	resetSelection(st)
}

// AddDocument appends a custom checklist entry for the given line. The
// label is trimmed; duplicates are allowed.
func AddDocument(st *model.WizardState, line model.ProductLine, label string) (model.ChecklistEntry, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return model.ChecklistEntry{}, ErrEmptyLabel
	}
	entry := model.ChecklistEntry{
		ID:     uuid.New().String(),
		Label:  label,
		Custom: true,
	}
	st.Checklists[line] = append(st.Checklists[line], entry)
	return entry, nil
}

// RemoveDocument removes a custom entry by id. Default entries stay.
func RemoveDocument(st *model.WizardState, line model.ProductLine, id string) error {
	entries := st.Checklists[line]
	for i, e := range entries {
		if e.ID != id {
			continue
		}
		if !e.Custom {
			return ErrNotRemovable
		}
		st.Checklists[line] = append(entries[:i], entries[i+1:]...)
		return nil
	}
	return ErrEntryNotFound
}

// AttachFile records a file reference on a checklist entry. Only the
// extension is checked; content is never inspected.
func AttachFile(st *model.WizardState, line model.ProductLine, id string, ref model.FileRef) error {
	if !AllowedAttachment(ref.Name) {
		return ErrUnsupportedFile
	}
	entries := st.Checklists[line]
	for i := range entries {
		if entries[i].ID == id {
			entries[i].File = &ref
			return nil
		}
	}
	return ErrEntryNotFound
}

// DetachFile clears the file reference on a checklist entry.
func DetachFile(st *model.WizardState, line model.ProductLine, id string) error {
	entries := st.Checklists[line]
	for i := range entries {
		if entries[i].ID == id {
			entries[i].File = nil
			return nil
		}
	}
	return ErrEntryNotFound
}

// FindEntry locates a checklist entry by id within a line.
func FindEntry(st *model.WizardState, line model.ProductLine, id string) (model.ChecklistEntry, bool) {
	for _, e := range st.Checklists[line] {
		if e.ID == id {
			return e, true
		}
	}
	return model.ChecklistEntry{}, false
}

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".doc":  true,
	".docx": true,
}

// AllowedAttachment reports whether a file name carries an accepted
// document/image extension.
func AllowedAttachment(name string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(name))]
}

func resetSelection(st *model.WizardState) {
	all := catalog.PoliciesFor(st.Line)
	st.SelectedIDs = nil
	for i := 0; i < len(all) && i < 2; i++ {
		st.SelectedIDs = append(st.SelectedIDs, all[i].ID)
	}
	if len(all) > 0 {
		st.ChosenID = all[0].ID
	} else {
		st.ChosenID = ""
	}
}

func clampStep(n int) int {
	if n < model.StepFirst {
		return model.StepFirst
	}
	if n > model.StepLast {
		return model.StepLast
	}
	return n
}
