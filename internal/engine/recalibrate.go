package engine

import (
	"context"
	"fmt"

	"github.com/rsinha/adaptiq/internal/irt"
)

// calibrationSampleLimit caps how many logged attempts feed one item
// refit.
const calibrationSampleLimit = 500

// RecalibrateItems refits every item with enough logged attempts
// against the ability distribution of its attempting learners. The
// scan honors context cancellation between items and is idempotent:
// with no new attempts a second run reproduces the same parameters.
// Returns the number of items refit.
func (e *Engine) RecalibrateItems(ctx context.Context) (int, error) {
	ids, err := e.events.QuestionIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("list questions: %w", err)
	}

	refit := 0
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return refit, err
		}

		e.mu.Lock()
		data, ok := e.state.Items[id]
		e.mu.Unlock()
		if !ok || data.AttemptCount < irt.CalibrationMinAttempts {
			continue
		}

		records, err := e.events.QuestionObservations(ctx, id, calibrationSampleLimit)
		if err != nil {
			return refit, fmt.Errorf("observations for %s: %w", id, err)
		}
		obs := make([]irt.AttemptObservation, len(records))
		for i, r := range records {
			obs[i] = irt.AttemptObservation{Theta: r.Theta, Correct: r.Correct}
		}

		next := irt.Recalibrate(itemFromData(data), obs)
		if !next.Calibrated {
			continue
		}

		e.mu.Lock()
		e.state.Items[id] = itemToData(next)
		e.mu.Unlock()
		refit++
	}
	return refit, nil
}
