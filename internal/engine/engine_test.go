package engine

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/rsinha/adaptiq/internal/behavior"
	"github.com/rsinha/adaptiq/internal/config"
	"github.com/rsinha/adaptiq/internal/irt"
	"github.com/rsinha/adaptiq/internal/policy"
	"github.com/rsinha/adaptiq/internal/store"
)

// fakeSnapshots is an in-memory SnapshotRepo.
type fakeSnapshots struct {
	snaps []*store.Snapshot
}

func (f *fakeSnapshots) Save(_ context.Context, snap *store.Snapshot) error {
	f.snaps = append(f.snaps, snap)
	return nil
}

func (f *fakeSnapshots) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(f.snaps) == 0 {
		return nil, nil
	}
	latest := f.snaps[len(f.snaps)-1]
	if err := latest.Data.Validate(); err != nil {
		return nil, err
	}
	return latest, nil
}

func (f *fakeSnapshots) Prune(_ context.Context, _ int) error { return nil }

// fakeEvents is an in-memory EventRepo.
type fakeEvents struct {
	answers   []store.AnswerRecord
	behaviors []store.BehaviorEventData
	decisions []store.DecisionEventData
	seq       int64
}

func (f *fakeEvents) AppendAnswer(_ context.Context, data store.AnswerEventData) error {
	f.seq++
	f.answers = append(f.answers, store.AnswerRecord{
		AnswerEventData: data,
		Sequence:        f.seq,
		Timestamp:       time.Now().UTC(),
	})
	return nil
}

func (f *fakeEvents) AppendBehavior(_ context.Context, data store.BehaviorEventData) error {
	f.seq++
	f.behaviors = append(f.behaviors, data)
	return nil
}

func (f *fakeEvents) AppendDecision(_ context.Context, data store.DecisionEventData) error {
	f.seq++
	f.decisions = append(f.decisions, data)
	return nil
}

func (f *fakeEvents) RecentAnswers(_ context.Context, learnerID, conceptID string, n int) ([]store.AnswerRecord, error) {
	var matched []store.AnswerRecord
	for _, r := range f.answers {
		if r.LearnerID == learnerID && r.ConceptID == conceptID {
			matched = append(matched, r)
		}
	}
	if len(matched) > n {
		matched = matched[len(matched)-n:]
	}
	return matched, nil
}

func (f *fakeEvents) RecentBehavior(_ context.Context, learnerID string, n int) ([]store.BehaviorEventData, error) {
	var matched []store.BehaviorEventData
	for _, b := range f.behaviors {
		if b.LearnerID == learnerID {
			matched = append(matched, b)
		}
	}
	if len(matched) > n {
		matched = matched[len(matched)-n:]
	}
	return matched, nil
}

func (f *fakeEvents) QuestionObservations(_ context.Context, questionID string, limit int) ([]store.ObservationRecord, error) {
	var obs []store.ObservationRecord
	for i := len(f.answers) - 1; i >= 0 && len(obs) < limit; i-- {
		if f.answers[i].QuestionID == questionID {
			obs = append(obs, store.ObservationRecord{
				Theta:   f.answers[i].Theta,
				Correct: f.answers[i].Correct,
			})
		}
	}
	return obs, nil
}

func (f *fakeEvents) QuestionIDs(_ context.Context) ([]string, error) {
	seen := map[string]bool{}
	var ids []string
	for _, r := range f.answers {
		if !seen[r.QuestionID] {
			seen[r.QuestionID] = true
			ids = append(ids, r.QuestionID)
		}
	}
	return ids, nil
}

func newTestEngine(t *testing.T) (*Engine, *fakeSnapshots, *fakeEvents) {
	t.Helper()
	snaps := &fakeSnapshots{}
	events := &fakeEvents{}
	e, err := New(context.Background(), config.Default(), snaps, events)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e, snaps, events
}

func answerEvent(correct bool, question string) AnswerEvent {
	return AnswerEvent{
		LearnerID:      "l1",
		ConceptID:      "fractions",
		QuestionID:     question,
		Domain:         "stem",
		QuestionType:   "scenario",
		Correct:        correct,
		ResponseTimeMs: 20000,
		ExpectedTimeMs: 30000,
		AttemptNumber:  1,
	}
}

func TestProcessAnswer_RejectsInvalidEvents(t *testing.T) {
	e, _, events := newTestEngine(t)
	ctx := context.Background()

	bad := answerEvent(true, "q1")
	bad.LearnerID = ""
	_, err := e.ProcessAnswer(ctx, bad)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if len(events.answers) != 0 {
		t.Error("rejected event must not reach the log")
	}

	bad = answerEvent(true, "q1")
	bad.ExpectedTimeMs = 0
	if _, err := e.ProcessAnswer(ctx, bad); err == nil {
		t.Error("expected error for zero expected time")
	}

	// The event store requires a question type, so the engine must
	// reject its absence up front rather than fail mid-append.
	bad = answerEvent(true, "q1")
	bad.QuestionType = ""
	_, err = e.ProcessAnswer(ctx, bad)
	if !errors.As(err, &verr) || verr.Field != "question_type" {
		t.Errorf("error = %v, want ValidationError on question_type", err)
	}
	if len(events.answers) != 0 {
		t.Error("rejected event must not reach the log")
	}
}

func TestProcessAnswer_MasteryTrajectory(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	sequence := []bool{true, true, false, true, true, true}
	wantPL := []float64{0.5333, 0.8860, 0.6450, 0.9237, 0.9874, 0.9980}

	level := DefaultDifficulty
	sawStepDown := false
	var last *Result
	for i, correct := range sequence {
		res, err := e.ProcessAnswer(ctx, answerEvent(correct, "q1"))
		if err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
		if math.Abs(res.MasteryProbability-wantPL[i]) > 0.005 {
			t.Errorf("answer %d: p_l = %.4f, want %.4f", i, res.MasteryProbability, wantPL[i])
		}
		if d := res.Decision.NewDifficulty - level; d < -1 || d > 1 {
			t.Errorf("answer %d: difficulty moved %d levels", i, d)
		}
		if res.Decision.NewDifficulty < level {
			sawStepDown = true
			if !res.ScaffoldingRecommended {
				t.Errorf("answer %d: step down without scaffolding", i)
			}
			// All missed questions are scenario-type.
			if res.Scaffolding.Area != policy.StruggleApplication {
				t.Errorf("answer %d: struggle area = %s, want application", i, res.Scaffolding.Area)
			}
		}
		level = res.Decision.NewDifficulty
		last = res
	}
	if !sawStepDown {
		t.Error("expected the miss at answer 3 to step the difficulty down")
	}

	// stem requires 3 consecutive observations above 0.85; answers 4-6
	// all clear it.
	if !last.Decision.MasteryAchieved {
		t.Error("mastery not declared after sustained above-threshold run")
	}
	if !last.IsMastered {
		t.Error("instantaneous mastery check failed at p_l 0.998")
	}
	if last.LowConfidence {
		t.Error("6 responses should not be low-confidence")
	}
	if last.ThetaSE <= 0 {
		t.Errorf("ThetaSE = %v, want > 0", last.ThetaSE)
	}
}

func TestProcessAnswer_AppendsEventLog(t *testing.T) {
	e, _, events := newTestEngine(t)
	ctx := context.Background()

	if _, err := e.ProcessAnswer(ctx, answerEvent(true, "q1")); err != nil {
		t.Fatalf("ProcessAnswer: %v", err)
	}

	if len(events.answers) != 1 {
		t.Fatalf("answer events = %d, want 1", len(events.answers))
	}
	if len(events.decisions) != 1 {
		t.Fatalf("decision events = %d, want 1", len(events.decisions))
	}
	if len(events.behaviors) != 1 {
		t.Fatalf("behavior events = %d, want 1", len(events.behaviors))
	}
	if events.answers[0].DifficultyLevel != DefaultDifficulty {
		t.Errorf("logged level = %d, want %d", events.answers[0].DifficultyLevel, DefaultDifficulty)
	}
	if events.decisions[0].Reason == "" {
		t.Error("decision event missing reason tag")
	}
}

func TestEngine_SnapshotAndRestore(t *testing.T) {
	e, snaps, events := newTestEngine(t)
	ctx := context.Background()

	for i, correct := range []bool{true, true, false} {
		if _, err := e.ProcessAnswer(ctx, answerEvent(correct, "q1")); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
	}
	if err := e.Snapshot(ctx); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	restored, err := New(ctx, config.Default(), snaps, events)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}

	key := store.StateKey("l1", "fractions")
	orig := e.State()
	got := restored.State()
	if got.Mastery[key].PL != orig.Mastery[key].PL {
		t.Errorf("restored p_l = %v, want %v", got.Mastery[key].PL, orig.Mastery[key].PL)
	}
	if restored.DifficultyFor("l1", "fractions") != e.DifficultyFor("l1", "fractions") {
		t.Error("restored difficulty differs")
	}

	// Processing continues against the restored state.
	res, err := restored.ProcessAnswer(ctx, answerEvent(true, "q1"))
	if err != nil {
		t.Fatalf("post-restore answer: %v", err)
	}
	if math.Abs(res.MasteryProbability-0.9237) > 0.005 {
		t.Errorf("post-restore p_l = %.4f, want 0.9237", res.MasteryProbability)
	}
}

func TestRecordInteraction(t *testing.T) {
	e, _, events := newTestEngine(t)
	ctx := context.Background()

	err := e.RecordInteraction(ctx, "l1", "fractions", behavior.Event{Type: behavior.EventHintRequest})
	if err != nil {
		t.Fatalf("RecordInteraction: %v", err)
	}
	if len(events.behaviors) != 1 || events.behaviors[0].EventType != "hint_request" {
		t.Fatalf("behavior log = %+v, want one hint_request", events.behaviors)
	}

	if err := e.RecordInteraction(ctx, "", "fractions", behavior.Event{Type: behavior.EventAbandon}); err == nil {
		t.Error("expected validation error for empty learner id")
	}
}

func TestSelectNextQuestion_UsesStoredTheta(t *testing.T) {
	e, _, _ := newTestEngine(t)
	candidates := []irt.Candidate{
		{ID: "easy", Params: irt.ItemParams{Discrimination: 1.0, Difficulty: -2.0, Guessing: 0.2}},
		{ID: "matched", Params: irt.ItemParams{Discrimination: 1.0, Difficulty: 0.0, Guessing: 0.2}},
	}
	got, ok := e.SelectNextQuestion("l1", "stem", candidates)
	if !ok {
		t.Fatal("expected a selection")
	}
	if got.ID != "matched" {
		t.Errorf("selected %s, want matched (theta starts at 0)", got.ID)
	}
}

func TestExpectedTimeMs_ScalesWithTimePressure(t *testing.T) {
	e, _, _ := newTestEngine(t)
	if got := e.ExpectedTimeMs(1); got != 45000 {
		t.Errorf("level 1 expected time = %d, want 45000", got)
	}
	if got := e.ExpectedTimeMs(6); got != 21000 {
		t.Errorf("level 6 expected time = %d, want 21000", got)
	}
}

func TestRecalibrateItems(t *testing.T) {
	snaps := &fakeSnapshots{}
	events := &fakeEvents{}
	ctx := context.Background()

	// Seed 60 logged attempts with spread thetas, outcomes from the
	// attempting ability: more able learners succeed.
	itemData := store.ItemStateData{
		DiscriminationA: 1.0, DifficultyB: 0.0, GuessingC: 0.2,
	}
	for i := 0; i < 60; i++ {
		theta := -2.0 + 4.0*float64(i)/59.0
		correct := theta > 0.2
		events.AppendAnswer(ctx, store.AnswerEventData{
			LearnerID: "l1", ConceptID: "fractions", QuestionID: "q1",
			Domain: "stem", QuestionType: "scenario",
			Correct: correct, ResponseTimeMs: 10000, ExpectedTimeMs: 30000,
			AttemptNumber: 1, DifficultyLevel: 3, Theta: theta,
		})
		itemData.AttemptCount++
		if correct {
			itemData.SuccessCount++
		}
	}
	itemData.ObservedRate = float64(itemData.SuccessCount) / float64(itemData.AttemptCount)
	snaps.Save(ctx, &store.Snapshot{
		Sequence:  60,
		Timestamp: time.Now().UTC(),
		Data: store.SnapshotData{
			Version: 1,
			Items:   map[string]store.ItemStateData{"q1": itemData},
		},
	})

	e, err := New(ctx, config.Default(), snaps, events)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	refit, err := e.RecalibrateItems(ctx)
	if err != nil {
		t.Fatalf("RecalibrateItems: %v", err)
	}
	if refit != 1 {
		t.Fatalf("refit = %d, want 1", refit)
	}
	got := e.State().Items["q1"]
	if !got.Calibrated {
		t.Error("item not marked calibrated")
	}
	if got.DifficultyB < -3 || got.DifficultyB > 3 {
		t.Errorf("refit difficulty %v outside bounds", got.DifficultyB)
	}

	// Second run with no new attempts reproduces the same parameters.
	if _, err := e.RecalibrateItems(ctx); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if again := e.State().Items["q1"]; again != got {
		t.Errorf("recalibration not idempotent: %+v != %+v", again, got)
	}
}

func TestRecalibrateItems_Cancellable(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()
	if _, err := e.ProcessAnswer(ctx, answerEvent(true, "q1")); err != nil {
		t.Fatalf("seed answer: %v", err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := e.RecalibrateItems(cancelled); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
