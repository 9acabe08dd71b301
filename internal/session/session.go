package session

import (
	"context"
	"fmt"

	"github.com/abhisek/valodiag/internal/diagnosis"
)

// Recorder persists a completed diagnosis for a user.
type Recorder interface {
	RecordDiagnosis(ctx context.Context, username, resultTitle string) error
}

// Complete diagnoses the session's answers and records the result title for
// username. The result is returned even if recording fails.
func Complete(ctx context.Context, state *State, rec Recorder, username string) (diagnosis.Result, error) {
	result := diagnosis.Diagnose(state.Answers())
	if rec == nil {
		return result, nil
	}
	if err := rec.RecordDiagnosis(ctx, username, result.Title); err != nil {
		return result, fmt.Errorf("record diagnosis: %w", err)
	}
	return result, nil
}
