package engine

import (
	"errors"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"quoting-engine/internal/model"
	"quoting-engine/internal/wizard"
)

func newState() *model.WizardState {
	return wizard.New(model.LineLife, "Luis Valencia", "asesor@demo.mx")
}

func act(name, props string) model.Action {
	a := model.Action{Name: name}
	if props != "" {
		a.Properties = json.RawMessage(props)
	}
	return a
}

func TestAutoComparisonScenario(t *testing.T) {
	state := newState()

	resp := Process("s-1", state, []model.Action{
		act("set_product_line", `{"line":"auto"}`),
		act("toggle_select", `{"policy_id":"gnp-elite"}`),
		act("toggle_select", `{"policy_id":"qualitas-flex"}`),
		act("choose_policy", `{"policy_id":"axa-plus"}`),
		act("next_step", ""),
	})

	if resp.Metadata.Outcome != model.OutcomeSuccess {
		t.Fatalf("expected SUCCESS, got %s", resp.Metadata.Outcome)
	}
	if resp.Metadata.SessionID != "s-1" {
		t.Fatalf("expected session id s-1, got %s", resp.Metadata.SessionID)
	}
	if len(resp.Result.Messages) != 0 {
		t.Fatalf("expected 0 messages, got %d", len(resp.Result.Messages))
	}
	if len(resp.Result.Actions) != 5 {
		t.Fatalf("expected 5 processed actions, got %d", len(resp.Result.Actions))
	}

	end := resp.Result.EndState
	if end.Line != model.LineAuto {
		t.Fatalf("expected line auto, got %s", end.Line)
	}
	// Seeded axa-plus + gnp-elite; the first toggle drops gnp-elite,
	// the second adds qualitas-flex.
	if len(end.SelectedIDs) != 2 {
		t.Fatalf("expected 2 selected, got %v", end.SelectedIDs)
	}
	if end.SelectedIDs[0] != "axa-plus" || end.SelectedIDs[1] != "qualitas-flex" {
		t.Fatalf("unexpected selection %v", end.SelectedIDs)
	}
	if end.ChosenID != "axa-plus" {
		t.Fatalf("expected chosen axa-plus, got %s", end.ChosenID)
	}
	if end.Step != model.StepComparison {
		t.Fatalf("expected step 1, got %d", end.Step)
	}

	// Every applied action that changed state carries a patch.
	if resp.Result.Actions[0].StatePatch == nil {
		t.Fatal("expected state patch for set_product_line")
	}
}

func TestUnknownActionHalts(t *testing.T) {
	state := newState()

	resp := Process("s-2", state, []model.Action{
		act("next_step", ""),
		act("launch_rockets", ""),
		act("next_step", ""),
	})

	if resp.Metadata.Outcome != model.OutcomeFailure {
		t.Fatalf("expected FAILURE, got %s", resp.Metadata.Outcome)
	}
	if len(resp.Result.Actions) != 2 {
		t.Fatalf("expected 2 processed actions, got %d", len(resp.Result.Actions))
	}
	if resp.Result.Messages[0].Code != "UNKNOWN_ACTION" {
		t.Fatalf("expected UNKNOWN_ACTION, got %s", resp.Result.Messages[0].Code)
	}
	// First next_step applied; the one after the failure did not.
	if state.Step != model.StepComparison {
		t.Fatalf("expected step 1 after halt, got %d", state.Step)
	}
}

func TestValidationFailureHaltsWithoutApplying(t *testing.T) {
	state := newState()

	resp := Process("s-3", state, []model.Action{
		act("add_document", `{"label":"   "}`),
		act("next_step", ""),
	})

	if resp.Metadata.Outcome != model.OutcomeFailure {
		t.Fatalf("expected FAILURE, got %s", resp.Metadata.Outcome)
	}
	if resp.Result.Messages[0].Code != "EMPTY_LABEL" {
		t.Fatalf("expected EMPTY_LABEL, got %s", resp.Result.Messages[0].Code)
	}
	if resp.Result.Messages[0].Level != model.LevelCritical {
		t.Fatalf("expected CRITICAL, got %s", resp.Result.Messages[0].Level)
	}
	// The failing action applied nothing and the batch halted.
	for _, entries := range state.Checklists {
		for _, e := range entries {
			if e.Custom {
				t.Fatalf("unexpected custom entry %q", e.Label)
			}
		}
	}
	if state.Step != model.StepDiscovery {
		t.Fatalf("expected step 0, got %d", state.Step)
	}
	if resp.Result.Actions[0].StatePatch != nil {
		t.Fatal("failed action must not carry a state patch")
	}
}

func TestUnknownPolicyRejected(t *testing.T) {
	state := newState()

	resp := Process("s-4", state, []model.Action{
		act("toggle_select", `{"policy_id":"axa-plus"}`), // auto id, life line
	})

	if resp.Metadata.Outcome != model.OutcomeFailure {
		t.Fatalf("expected FAILURE, got %s", resp.Metadata.Outcome)
	}
	if resp.Result.Messages[0].Code != "UNKNOWN_POLICY" {
		t.Fatalf("expected UNKNOWN_POLICY, got %s", resp.Result.Messages[0].Code)
	}
}

func TestToggleSelectRoundTrip(t *testing.T) {
	state := newState()

	resp := Process("s-5", state, []model.Action{
		act("toggle_select", `{"policy_id":"sura-vida-simple"}`), // third
		act("toggle_select", `{"policy_id":"sura-vida-simple"}`), // off again
		act("toggle_select", `{"policy_id":"sura-vida-simple"}`), // third
	})
	if resp.Metadata.Outcome != model.OutcomeSuccess {
		t.Fatalf("expected SUCCESS, got %s", resp.Metadata.Outcome)
	}
	if len(state.SelectedIDs) != 3 {
		t.Fatalf("expected 3 selected, got %v", state.SelectedIDs)
	}
	if len(resp.Result.Messages) != 0 {
		t.Fatalf("toggling must stay silent, got %v", resp.Result.Messages)
	}
}

func TestChecklistRoundTrip(t *testing.T) {
	state := newState()

	resp := Process("s-6", state, []model.Action{
		act("add_document", `{"label":"  Carta de no adeudo  "}`),
	})
	if resp.Metadata.Outcome != model.OutcomeSuccess {
		t.Fatalf("expected SUCCESS, got %s", resp.Metadata.Outcome)
	}

	var added model.ChecklistEntry
	for _, e := range state.Checklists[model.LineLife] {
		if e.Custom {
			added = e
		}
	}
	if added.ID == "" {
		t.Fatal("custom entry not added")
	}
	if added.Label != "Carta de no adeudo" {
		t.Fatalf("label not trimmed: %q", added.Label)
	}

	resp = Process("s-6", state, []model.Action{
		act("attach_file", `{"entry_id":"`+added.ID+`","file_name":"ine.pdf","size":1024}`),
		act("detach_file", `{"entry_id":"`+added.ID+`"}`),
		act("remove_document", `{"entry_id":"`+added.ID+`"}`),
	})
	if resp.Metadata.Outcome != model.OutcomeSuccess {
		t.Fatalf("expected SUCCESS, got %s: %v", resp.Metadata.Outcome, resp.Result.Messages)
	}
	for _, e := range state.Checklists[model.LineLife] {
		if e.Custom {
			t.Fatalf("custom entry still present: %q", e.Label)
		}
	}

	resp = Process("s-6", state, []model.Action{
		act("attach_file", `{"entry_id":"`+added.ID+`","file_name":"ine.pdf"}`),
	})
	if resp.Result.Messages[0].Code != "ENTRY_NOT_FOUND" {
		t.Fatalf("expected ENTRY_NOT_FOUND, got %s", resp.Result.Messages[0].Code)
	}
}

func TestAttachFileRejectsUnsupportedExtension(t *testing.T) {
	state := newState()
	entryID := state.Checklists[model.LineLife][0].ID

	resp := Process("s-7", state, []model.Action{
		act("attach_file", `{"entry_id":"`+entryID+`","file_name":"virus.exe"}`),
	})
	if resp.Metadata.Outcome != model.OutcomeFailure {
		t.Fatalf("expected FAILURE, got %s", resp.Metadata.Outcome)
	}
	if resp.Result.Messages[0].Code != "UNSUPPORTED_FILE_TYPE" {
		t.Fatalf("expected UNSUPPORTED_FILE_TYPE, got %s", resp.Result.Messages[0].Code)
	}
}

func TestClearedPrioritiesPatchCarriesNull(t *testing.T) {
	state := newState()

	resp := Process("s-8", state, []model.Action{
		act("update_client", `{"priorities":["   "]}`),
	})
	if resp.Metadata.Outcome != model.OutcomeSuccess {
		t.Fatalf("expected SUCCESS, got %s", resp.Metadata.Outcome)
	}
	if state.Client.Priorities != nil {
		t.Fatalf("blank priorities must clean to nil, got %v", state.Client.Priorities)
	}

	patch := string(resp.Result.Actions[0].StatePatch)
	if !strings.Contains(patch, `"path":"/client/priorities"`) {
		t.Fatalf("patch misses the priorities path: %s", patch)
	}
	// A replace with a null value must still carry the value member.
	if !strings.Contains(patch, `"value":null`) {
		t.Fatalf("null replace lost its value member: %s", patch)
	}
}

func TestStatePatchSurfacesSnapshotError(t *testing.T) {
	state := newState()
	boom := errors.New("snapshot failed")

	if _, err := statePatch(nil, boom, state); err != boom {
		t.Fatalf("expected snapshot error back, got %v", err)
	}

	before, err := snapshot(state)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	patch, err := statePatch(before, nil, state)
	if err != nil {
		t.Fatalf("statePatch: %v", err)
	}
	if patch != nil {
		t.Fatalf("unchanged state must yield no patch, got %s", patch)
	}
}
