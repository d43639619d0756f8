package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Mastery: map[string]ConceptMasteryData{
				StateKey("learner-1", "fractions"): {
					PL0: 0.1, PT: 0.3, PG: 0.2, PS: 0.1,
					PL: 0.53, ConfidenceLower: 0.2, ConfidenceUpper: 0.9,
					Observations: 1, LastUpdated: now,
				},
			},
			ZPD: map[string]ZPDData{
				StateKey("learner-1", "fractions"): {
					Zone: "optimal", RecentSuccessRate: 0.7,
					RecommendedDifficulty: 3, CurrentDifficulty: 3,
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	m := snap.Data.Mastery[StateKey("learner-1", "fractions")]
	if m.PL != 0.53 {
		t.Errorf("p_l_current = %v, want 0.53", m.PL)
	}
}

func TestSnapshotLatestRejectsCorruptState(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	err := repo.Save(ctx, &Snapshot{
		Sequence:  1,
		Timestamp: time.Now().UTC(),
		Data: SnapshotData{
			Version: 1,
			Items: map[string]ItemStateData{
				"q-1": {
					DiscriminationA: 1.0, DifficultyB: 0, GuessingC: 0.2,
					AttemptCount: 10, SuccessCount: 12, // impossible
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	_, err = repo.Latest(ctx)
	var corrupt *CorruptStateError
	if !errors.As(err, &corrupt) {
		t.Fatalf("Latest error = %v, want *CorruptStateError", err)
	}
	if corrupt.Entity != "item" || corrupt.Key != "q-1" {
		t.Errorf("corrupt state = %s/%s, want item/q-1", corrupt.Entity, corrupt.Key)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if seq != int64(i+1) {
			t.Errorf("seq[%d] = %d, want %d", i, seq, i+1)
		}
	}
}

func testAnswer(learner, concept, question string, correct bool) AnswerEventData {
	return AnswerEventData{
		LearnerID:       learner,
		ConceptID:       concept,
		QuestionID:      question,
		Domain:          "general",
		QuestionType:    "scenario",
		Correct:         correct,
		ResponseTimeMs:  12000,
		ExpectedTimeMs:  30000,
		HintsUsed:       0,
		AttemptNumber:   1,
		DifficultyLevel: 3,
		Theta:           0.25,
	}
}

func TestAnswerEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	ctx := context.Background()

	outcomes := []bool{true, false, true}
	for _, correct := range outcomes {
		if err := repo.AppendAnswer(ctx, testAnswer("l1", "fractions", "q1", correct)); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	// Another learner's answers must not leak into the query.
	if err := repo.AppendAnswer(ctx, testAnswer("l2", "fractions", "q1", false)); err != nil {
		t.Fatalf("append other learner: %v", err)
	}

	records, err := repo.RecentAnswers(ctx, "l1", "fractions", 10)
	if err != nil {
		t.Fatalf("recent answers: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	for i, r := range records {
		if r.Correct != outcomes[i] {
			t.Errorf("record %d correct = %v, want %v (oldest first)", i, r.Correct, outcomes[i])
		}
	}
	for i := 1; i < len(records); i++ {
		if records[i].Sequence <= records[i-1].Sequence {
			t.Errorf("sequences not increasing: %d then %d", records[i-1].Sequence, records[i].Sequence)
		}
	}
}

func TestQuestionObservations(t *testing.T) {
	s := openTestStore(t)
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		a := testAnswer("l1", "fractions", "q9", i%2 == 0)
		a.Theta = float64(i)
		if err := repo.AppendAnswer(ctx, a); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	obs, err := repo.QuestionObservations(ctx, "q9", 10)
	if err != nil {
		t.Fatalf("observations: %v", err)
	}
	if len(obs) != 4 {
		t.Fatalf("got %d observations, want 4", len(obs))
	}

	ids, err := repo.QuestionIDs(ctx)
	if err != nil {
		t.Fatalf("question ids: %v", err)
	}
	if len(ids) != 1 || ids[0] != "q9" {
		t.Errorf("question ids = %v, want [q9]", ids)
	}
}

func TestBehaviorEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	ctx := context.Background()

	correct := false
	events := []BehaviorEventData{
		{LearnerID: "l1", ConceptID: "fractions", EventType: "hint_request", Attempts: 1},
		{LearnerID: "l1", ConceptID: "fractions", EventType: "answer", ResponseTimeMs: 900, ExpectedTimeMs: 30000, Attempts: 1, Correct: &correct},
	}
	for _, e := range events {
		if err := repo.AppendBehavior(ctx, e); err != nil {
			t.Fatalf("append behavior: %v", err)
		}
	}

	got, err := repo.RecentBehavior(ctx, "l1", 10)
	if err != nil {
		t.Fatalf("recent behavior: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	if got[0].EventType != "hint_request" || got[1].EventType != "answer" {
		t.Errorf("order = %s, %s; want hint_request then answer", got[0].EventType, got[1].EventType)
	}
	if got[1].Correct == nil || *got[1].Correct {
		t.Error("answer event lost its correctness flag")
	}
	if got[0].Correct != nil {
		t.Error("hint event should have nil correctness")
	}
}

func TestAppendDecision(t *testing.T) {
	s := openTestStore(t)
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	ctx := context.Background()

	err = repo.AppendDecision(ctx, DecisionEventData{
		LearnerID:           "l1",
		ConceptID:           "fractions",
		Domain:              "general",
		PreviousLevel:       3,
		NewLevel:            2,
		Reason:              "decrease_frustration",
		MasteryAchieved:     false,
		MasteryProbability:  0.42,
		Zone:                "below_zpd",
		BehavioralIndicator: "frustration",
	})
	if err != nil {
		t.Fatalf("append decision: %v", err)
	}

	count, err := s.Client().DecisionEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("decision events = %d, want 1", count)
	}
}
