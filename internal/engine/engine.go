package engine

import (
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"quoting-engine/internal/actions"
	"quoting-engine/internal/jsonpatch"
	"quoting-engine/internal/model"
)

// Process applies a batch of wizard actions to the state in order.
// A CRITICAL message halts the batch with outcome FAILURE; the failing
// action is never applied, so the state holds the last good result.
// Each applied action carries an RFC 6902 patch of its state change.
func Process(sessionID string, state *model.WizardState, acts []model.Action) *model.ActionResponse {
	start := time.Now()

	var allMessages []model.Message
	var processed []model.ProcessedAction
	outcome := model.OutcomeSuccess
	hasCritical := false

	for _, act := range acts {
		handler, ok := actions.Get(act.Name)
		if !ok {
			msg := model.Message{
				ID:      len(allMessages),
				Level:   model.LevelCritical,
				Code:    "UNKNOWN_ACTION",
				Message: fmt.Sprintf("Unknown action: %s", act.Name),
			}
			allMessages = append(allMessages, msg)
			processed = append(processed, model.ProcessedAction{
				Action:         act,
				MessageIndexes: []int{msg.ID},
			})
			outcome = model.OutcomeFailure
			hasCritical = true
			break
		}

		// Validate
		validationMsgs := handler.Validate(state, &act)
		var msgIndexes []int
		for _, vm := range validationMsgs {
			vm.ID = len(allMessages)
			allMessages = append(allMessages, vm)
			msgIndexes = append(msgIndexes, vm.ID)
			if vm.Level == model.LevelCritical {
				hasCritical = true
			}
		}

		if hasCritical {
			outcome = model.OutcomeFailure
			processed = append(processed, model.ProcessedAction{
				Action:         act,
				MessageIndexes: msgIndexes,
			})
			break
		}

		// Apply, diffing the state around the change
		before, beforeErr := snapshot(state)
		applyMsgs := handler.Apply(state, &act)
		for _, am := range applyMsgs {
			am.ID = len(allMessages)
			allMessages = append(allMessages, am)
			msgIndexes = append(msgIndexes, am.ID)
			if am.Level == model.LevelCritical {
				hasCritical = true
			}
		}

		patch, patchErr := statePatch(before, beforeErr, state)
		if patchErr != nil {
			pm := model.Message{
				ID:      len(allMessages),
				Level:   model.LevelWarning,
				Code:    "PATCH_FAILED",
				Message: fmt.Sprintf("Could not compute state patch: %v", patchErr),
			}
			allMessages = append(allMessages, pm)
			msgIndexes = append(msgIndexes, pm.ID)
		}

		processed = append(processed, model.ProcessedAction{
			Action:         act,
			MessageIndexes: msgIndexes,
			StatePatch:     patch,
		})

		if hasCritical {
			outcome = model.OutcomeFailure
			break
		}
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	if allMessages == nil {
		allMessages = []model.Message{}
	}

	return &model.ActionResponse{
		Metadata: model.ResponseMetadata{
			RequestID:   uuid.New().String(),
			SessionID:   sessionID,
			StartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CompletedAt: now.Format(time.RFC3339),
			DurationMs:  elapsed.Milliseconds(),
			Outcome:     outcome,
		},
		Result: model.ActionResult{
			Messages: allMessages,
			Actions:  processed,
			EndState: state,
		},
	}
}

// snapshot round-trips the state through JSON so the diff sees plain
// maps and slices.
func snapshot(state *model.WizardState) (interface{}, error) {
	b, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// statePatch diffs the pre-apply snapshot against the current state.
func statePatch(before interface{}, beforeErr error, state *model.WizardState) (json.RawMessage, error) {
	if beforeErr != nil {
		return nil, beforeErr
	}
	after, err := snapshot(state)
	if err != nil {
		return nil, err
	}
	ops := jsonpatch.Diff(before, after)
	if len(ops) == 0 {
		return nil, nil
	}
	return json.Marshal(ops)
}
