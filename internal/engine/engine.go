package engine

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/rsinha/adaptiq/internal/behavior"
	"github.com/rsinha/adaptiq/internal/bkt"
	"github.com/rsinha/adaptiq/internal/config"
	"github.com/rsinha/adaptiq/internal/irt"
	"github.com/rsinha/adaptiq/internal/policy"
	"github.com/rsinha/adaptiq/internal/store"
	"github.com/rsinha/adaptiq/internal/zpd"
)

const (
	// DefaultDifficulty is the ladder rung for a first encounter with
	// a concept.
	DefaultDifficulty = 3

	// abilityHistoryLimit caps the in-memory response vector per
	// (learner, domain) used for ability estimation.
	abilityHistoryLimit = 50

	// behaviorHistoryLimit caps how much interaction history the
	// behavioral detectors see.
	behaviorHistoryLimit = 20
)

// Engine holds the working state for all learners and drives the
// per-answer update pipeline. Within one engine, updates are serialized;
// state for distinct learners is logically independent.
type Engine struct {
	cfg       config.Config
	snapshots store.SnapshotRepo
	events    store.EventRepo
	detectors []behavior.Detector

	mu        sync.Mutex
	state     store.SnapshotData
	responses map[string][]irt.Response // StateKey(learner, domain)
	results   map[string][]bool         // StateKey(learner, concept)
	processed int64
}

// New creates an engine, restoring working state from the latest
// snapshot if one exists.
func New(ctx context.Context, cfg config.Config, snapshots store.SnapshotRepo, events store.EventRepo) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}

	e := &Engine{
		cfg:       cfg,
		snapshots: snapshots,
		events:    events,
		detectors: behavior.DefaultDetectors(),
		responses: make(map[string][]irt.Response),
		results:   make(map[string][]bool),
	}
	e.state = store.SnapshotData{
		Version:   1,
		Mastery:   make(map[string]store.ConceptMasteryData),
		Items:     make(map[string]store.ItemStateData),
		Abilities: make(map[string]store.AbilityData),
		ZPD:       make(map[string]store.ZPDData),
	}

	snap, err := snapshots.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("restore snapshot: %w", err)
	}
	if snap != nil {
		e.processed = snap.Sequence
		mergeSnapshot(&e.state, snap.Data)
	}
	return e, nil
}

func mergeSnapshot(dst *store.SnapshotData, src store.SnapshotData) {
	for k, v := range src.Mastery {
		dst.Mastery[k] = v
	}
	for k, v := range src.Items {
		dst.Items[k] = v
	}
	for k, v := range src.Abilities {
		dst.Abilities[k] = v
	}
	for k, v := range src.ZPD {
		dst.ZPD[k] = v
	}
}

// ProcessAnswer runs the full update chain for one answer: BKT mastery,
// item attempt recording, ability re-estimation, zone evaluation,
// behavioral analysis, and the difficulty decision. On a validation
// error no state is applied.
func (e *Engine) ProcessAnswer(ctx context.Context, ev AnswerEvent) (*Result, error) {
	if err := ev.Validate(); err != nil {
		return nil, err
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	conceptKey := store.StateKey(ev.LearnerID, ev.ConceptID)
	abilityKey := store.StateKey(ev.LearnerID, ev.Domain)

	// Mastery update.
	mastery, err := e.masteryState(conceptKey, ev.ConceptID)
	if err != nil {
		return nil, err
	}
	mastery = bkt.Update(mastery, ev.Correct, ev.Timestamp)

	// Item attempt.
	item, err := e.itemState(ev)
	if err != nil {
		return nil, err
	}
	item = irt.RecordAttempt(item, ev.Correct)

	// Ability estimate over the trailing response vector, continuing
	// from the persisted theta.
	prevAbility := e.state.Abilities[abilityKey]
	responses := append(e.responses[abilityKey], irt.Response{Correct: ev.Correct, Item: item.Params})
	if len(responses) > abilityHistoryLimit {
		responses = responses[len(responses)-abilityHistoryLimit:]
	}
	estimate := irt.EstimateAbility(responses, prevAbility.Theta)

	// Zone evaluation over the trailing answer window.
	results, err := e.recentResults(ctx, ev.LearnerID, ev.ConceptID, conceptKey)
	if err != nil {
		return nil, err
	}
	results = append(results, ev.Correct)
	if len(results) > e.cfg.Window {
		results = results[len(results)-e.cfg.Window:]
	}
	prevZPD := e.state.ZPD[conceptKey]
	currentLevel := prevZPD.CurrentDifficulty
	if currentLevel == 0 {
		currentLevel = DefaultDifficulty
	}
	status := zpd.Evaluate(zpdStatusFromData(prevZPD), results, currentLevel, e.cfg.Window)

	// Behavioral analysis over the interaction log plus this answer.
	history, err := e.behaviorHistory(ctx, ev)
	if err != nil {
		return nil, err
	}
	hint := behavior.Analyze(e.detectors, history)

	// Reconcile.
	threshold := e.cfg.ThresholdFor(ev.Domain)
	prevMastery := e.state.Mastery[conceptKey]
	streak := 0
	if mastery.PL >= threshold.MasteryThreshold {
		streak = prevMastery.AboveThresholdStreak + 1
	}
	decision := policy.Decide(policy.Input{
		Mastery:              mastery,
		ZPD:                  status,
		Behavioral:           hint,
		Threshold:            threshold,
		CurrentDifficulty:    currentLevel,
		AboveThresholdStreak: streak,
	})

	// Scaffolding accompanies every step down: the question types the
	// learner missed recently point at the kind of support to offer.
	var scaffolding policy.Scaffolding
	stepDown := decision.NewDifficulty < currentLevel
	if stepDown {
		missed, err := e.missedQuestionTypes(ctx, ev)
		if err != nil {
			return nil, err
		}
		scaffolding = policy.ScaffoldingFor(policy.DetectStruggleArea(missed))
	}

	// The answer event feeds future zone windows and item calibration,
	// so its append is load-bearing: fail the call before committing
	// any state.
	if err := e.events.AppendAnswer(ctx, store.AnswerEventData{
		LearnerID:       ev.LearnerID,
		ConceptID:       ev.ConceptID,
		QuestionID:      ev.QuestionID,
		Domain:          ev.Domain,
		QuestionType:    ev.QuestionType,
		Correct:         ev.Correct,
		ResponseTimeMs:  ev.ResponseTimeMs,
		ExpectedTimeMs:  ev.ExpectedTimeMs,
		HintsUsed:       ev.HintsUsed,
		AttemptNumber:   ev.AttemptNumber,
		DifficultyLevel: currentLevel,
		Theta:           estimate.Theta,
	}); err != nil {
		return nil, fmt.Errorf("append answer: %w", err)
	}
	e.logBehaviorAndDecision(ctx, ev, status, hint, decision, mastery.PL, currentLevel)

	// Commit.
	masteryData := masteryToData(mastery)
	masteryData.AboveThresholdStreak = streak
	e.state.Mastery[conceptKey] = masteryData
	e.state.Items[ev.QuestionID] = itemToData(item)
	e.state.Abilities[abilityKey] = store.AbilityData{
		Theta:         estimate.Theta,
		StandardError: estimate.StandardError,
		Responses:     prevAbility.Responses + 1,
	}
	zpdData := zpdStatusToData(status)
	zpdData.CurrentDifficulty = decision.NewDifficulty
	e.state.ZPD[conceptKey] = zpdData
	e.responses[abilityKey] = responses
	e.results[conceptKey] = results
	e.processed++

	return &Result{
		MasteryProbability:     mastery.PL,
		ConfidenceLower:        mastery.ConfidenceLower,
		ConfidenceUpper:        mastery.ConfidenceUpper,
		IsMastered:             mastery.IsMastered(threshold.MasteryThreshold),
		Theta:                  estimate.Theta,
		ThetaSE:                estimate.StandardError,
		LowConfidence:          estimate.LowConfidence,
		Zone:                   status.Zone,
		RecommendedDifficulty:  status.RecommendedDifficulty,
		BehavioralIndicator:    hint.Indicator,
		BehavioralConfidence:   hint.Confidence,
		ItemCalibrated:         item.Calibrated,
		ScaffoldingRecommended: stepDown,
		Scaffolding:            scaffolding,
		Decision:               decision,
	}, nil
}

// RecordInteraction appends a non-answer interaction event (hint
// request, abandon, rapid attempt, timeout) to the behavioral log.
func (e *Engine) RecordInteraction(ctx context.Context, learnerID, conceptID string, ev behavior.Event) error {
	if learnerID == "" || conceptID == "" {
		return &ValidationError{Field: "learner_id/concept_id", Reason: "must not be empty"}
	}
	ts := ev.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	attempts := ev.Attempts
	if attempts < 1 {
		attempts = 1
	}
	return e.events.AppendBehavior(ctx, store.BehaviorEventData{
		LearnerID:      learnerID,
		ConceptID:      conceptID,
		EventType:      string(ev.Type),
		ResponseTimeMs: ev.ResponseTimeMs,
		ExpectedTimeMs: ev.ExpectedTimeMs,
		HintsUsed:      ev.HintsUsed,
		Attempts:       attempts,
		Correct:        ev.Correct,
		Timestamp:      ts,
	})
}

// SelectNextQuestion picks the most informative candidate at the
// learner's current ability.
func (e *Engine) SelectNextQuestion(learnerID, domain string, candidates []irt.Candidate) (irt.Candidate, bool) {
	e.mu.Lock()
	theta := e.state.Abilities[store.StateKey(learnerID, domain)].Theta
	e.mu.Unlock()
	return irt.SelectOptimalQuestion(theta, candidates)
}

// ExpectedTimeMs returns the expected answer time at a difficulty
// level: the configured base scaled by the level's time pressure.
func (e *Engine) ExpectedTimeMs(level int) int {
	return int(float64(e.cfg.BaseExpectedTimeMs) * policy.LevelFor(level).TimePressure)
}

// DifficultyFor returns the current difficulty level for a (learner,
// concept) pair.
func (e *Engine) DifficultyFor(learnerID, conceptID string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if z, ok := e.state.ZPD[store.StateKey(learnerID, conceptID)]; ok && z.CurrentDifficulty != 0 {
		return z.CurrentDifficulty
	}
	return DefaultDifficulty
}

// Snapshot persists the working state.
func (e *Engine) Snapshot(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshots.Save(ctx, &store.Snapshot{
		Sequence:  e.processed,
		Timestamp: time.Now().UTC(),
		Data:      e.state,
	})
}

// State returns a snapshot-shaped copy of the working state for
// read-only reporting.
func (e *Engine) State() store.SnapshotData {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := store.SnapshotData{
		Version:   e.state.Version,
		Mastery:   make(map[string]store.ConceptMasteryData, len(e.state.Mastery)),
		Items:     make(map[string]store.ItemStateData, len(e.state.Items)),
		Abilities: make(map[string]store.AbilityData, len(e.state.Abilities)),
		ZPD:       make(map[string]store.ZPDData, len(e.state.ZPD)),
	}
	mergeSnapshot(&out, e.state)
	return out
}

func (e *Engine) masteryState(key, conceptID string) (bkt.State, error) {
	if data, ok := e.state.Mastery[key]; ok {
		return masteryFromData(data), nil
	}
	return bkt.NewState(e.cfg.PriorFor(conceptID))
}

func (e *Engine) itemState(ev AnswerEvent) (irt.ItemState, error) {
	if data, ok := e.state.Items[ev.QuestionID]; ok {
		return itemFromData(data), nil
	}
	cs := e.cfg.ColdStartFor(ev.QuestionType)
	params := irt.ItemParams{
		Discrimination: cs.Discrimination,
		Difficulty:     cs.Difficulty,
		Guessing:       cs.Guessing,
	}
	if ev.Complexity > 0 {
		// Question metadata refines the per-category defaults.
		params = irt.ColdStartParams(cs.Discrimination, ev.Complexity, ev.OptionCount)
	}
	return irt.NewItemState(params)
}

// recentResults returns the trailing answer window for a (learner,
// concept) pair, restoring it from the event log on first access after
// a restart.
func (e *Engine) recentResults(ctx context.Context, learnerID, conceptID, key string) ([]bool, error) {
	if cached, ok := e.results[key]; ok {
		return cached, nil
	}
	records, err := e.events.RecentAnswers(ctx, learnerID, conceptID, e.cfg.Window)
	if err != nil {
		return nil, fmt.Errorf("restore answer window: %w", err)
	}
	results := make([]bool, len(records))
	for i, r := range records {
		results[i] = r.Correct
	}
	return results, nil
}

// missedQuestionTypes collects the question types of recently missed
// answers for this (learner, concept), including the current one.
func (e *Engine) missedQuestionTypes(ctx context.Context, ev AnswerEvent) ([]string, error) {
	records, err := e.events.RecentAnswers(ctx, ev.LearnerID, ev.ConceptID, e.cfg.Window)
	if err != nil {
		return nil, fmt.Errorf("load missed answers: %w", err)
	}
	var missed []string
	for _, r := range records {
		if !r.Correct {
			missed = append(missed, r.QuestionType)
		}
	}
	if !ev.Correct {
		missed = append(missed, ev.QuestionType)
	}
	return missed, nil
}

func (e *Engine) behaviorHistory(ctx context.Context, ev AnswerEvent) ([]behavior.Event, error) {
	logged, err := e.events.RecentBehavior(ctx, ev.LearnerID, behaviorHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("load behavior history: %w", err)
	}
	history := make([]behavior.Event, 0, len(logged)+1)
	for _, l := range logged {
		history = append(history, behavior.Event{
			Type:           behavior.EventType(l.EventType),
			ResponseTimeMs: l.ResponseTimeMs,
			ExpectedTimeMs: l.ExpectedTimeMs,
			HintsUsed:      l.HintsUsed,
			Attempts:       l.Attempts,
			Correct:        l.Correct,
			Timestamp:      l.Timestamp,
		})
	}
	correct := ev.Correct
	history = append(history, behavior.Event{
		Type:           behavior.EventAnswer,
		ResponseTimeMs: ev.ResponseTimeMs,
		ExpectedTimeMs: ev.ExpectedTimeMs,
		HintsUsed:      ev.HintsUsed,
		Attempts:       ev.AttemptNumber,
		Correct:        &correct,
		Timestamp:      ev.Timestamp,
	})
	return history, nil
}

// logBehaviorAndDecision appends the observability events. Failures
// are reported but never fail the answer.
func (e *Engine) logBehaviorAndDecision(ctx context.Context, ev AnswerEvent, status zpd.Status, hint behavior.Hint, decision policy.Decision, pl float64, previousLevel int) {
	correct := ev.Correct
	if err := e.events.AppendBehavior(ctx, store.BehaviorEventData{
		LearnerID:      ev.LearnerID,
		ConceptID:      ev.ConceptID,
		EventType:      string(behavior.EventAnswer),
		ResponseTimeMs: ev.ResponseTimeMs,
		ExpectedTimeMs: ev.ExpectedTimeMs,
		HintsUsed:      ev.HintsUsed,
		Attempts:       ev.AttemptNumber,
		Correct:        &correct,
		Timestamp:      ev.Timestamp,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log behavior event: %v\n", err)
	}

	if err := e.events.AppendDecision(ctx, store.DecisionEventData{
		LearnerID:           ev.LearnerID,
		ConceptID:           ev.ConceptID,
		Domain:              ev.Domain,
		PreviousLevel:       previousLevel,
		NewLevel:            decision.NewDifficulty,
		Reason:              string(decision.Reason),
		MasteryAchieved:     decision.MasteryAchieved,
		MasteryProbability:  pl,
		Zone:                string(status.Zone),
		BehavioralIndicator: string(hint.Indicator),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log decision event: %v\n", err)
	}
}

func masteryFromData(d store.ConceptMasteryData) bkt.State {
	return bkt.State{
		Params:          bkt.Params{PL0: d.PL0, PT: d.PT, PG: d.PG, PS: d.PS},
		PL:              d.PL,
		ConfidenceLower: d.ConfidenceLower,
		ConfidenceUpper: d.ConfidenceUpper,
		Observations:    d.Observations,
		LastUpdated:     d.LastUpdated,
	}
}

func masteryToData(s bkt.State) store.ConceptMasteryData {
	return store.ConceptMasteryData{
		PL0:             s.Params.PL0,
		PT:              s.Params.PT,
		PG:              s.Params.PG,
		PS:              s.Params.PS,
		PL:              s.PL,
		ConfidenceLower: s.ConfidenceLower,
		ConfidenceUpper: s.ConfidenceUpper,
		Observations:    s.Observations,
		LastUpdated:     s.LastUpdated,
	}
}

func itemFromData(d store.ItemStateData) irt.ItemState {
	return irt.ItemState{
		Params: irt.ItemParams{
			Discrimination: d.DiscriminationA,
			Difficulty:     d.DifficultyB,
			Guessing:       d.GuessingC,
		},
		AttemptCount: d.AttemptCount,
		SuccessCount: d.SuccessCount,
		ObservedRate: d.ObservedRate,
		Calibrated:   d.Calibrated,
	}
}

func itemToData(s irt.ItemState) store.ItemStateData {
	return store.ItemStateData{
		DiscriminationA: s.Params.Discrimination,
		DifficultyB:     s.Params.Difficulty,
		GuessingC:       s.Params.Guessing,
		AttemptCount:    s.AttemptCount,
		SuccessCount:    s.SuccessCount,
		ObservedRate:    s.ObservedRate,
		Calibrated:      s.Calibrated,
	}
}

func zpdStatusFromData(d store.ZPDData) zpd.Status {
	if d.Zone == "" {
		return zpd.NewStatus(DefaultDifficulty)
	}
	return zpd.Status{
		Zone:                  zpd.Zone(d.Zone),
		RecentSuccessRate:     d.RecentSuccessRate,
		ConsecutiveCorrect:    d.ConsecutiveCorrect,
		ConsecutiveIncorrect:  d.ConsecutiveIncorrect,
		RecommendedDifficulty: d.RecommendedDifficulty,
	}
}

func zpdStatusToData(s zpd.Status) store.ZPDData {
	return store.ZPDData{
		Zone:                  string(s.Zone),
		RecentSuccessRate:     s.RecentSuccessRate,
		ConsecutiveCorrect:    s.ConsecutiveCorrect,
		ConsecutiveIncorrect:  s.ConsecutiveIncorrect,
		RecommendedDifficulty: s.RecommendedDifficulty,
	}
}
