package behavior

import (
	"testing"
	"time"
)

var testStart = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func answerAt(offset time.Duration, correct bool, responseMs, expectedMs, hints int) Event {
	return Event{
		Type:           EventAnswer,
		ResponseTimeMs: responseMs,
		ExpectedTimeMs: expectedMs,
		HintsUsed:      hints,
		Attempts:       1,
		Correct:        &correct,
		Timestamp:      testStart.Add(offset),
	}
}

func hintAt(offset time.Duration) Event {
	return Event{Type: EventHintRequest, Timestamp: testStart.Add(offset)}
}

func TestFrustrationDetector_TwoSignals(t *testing.T) {
	// Three rapid wrong answers plus a rush after a struggle, all
	// inside the window.
	history := []Event{
		answerAt(0, false, 15000, 8000, 0), // struggled: ratio ~1.9
		answerAt(2*time.Second, false, 1000, 8000, 0),
		answerAt(4*time.Second, false, 900, 8000, 0),
		answerAt(6*time.Second, false, 800, 8000, 0), // rush: ratio 0.1
	}
	d := &FrustrationDetector{}
	ind, conf := d.Detect(history)
	if ind != IndicatorFrustration {
		t.Fatalf("got indicator %q, want frustration", ind)
	}
	if conf < 2.0/3-1e-9 {
		t.Errorf("got confidence %f, want >= 2/3 for two signals", conf)
	}
}

func TestFrustrationDetector_OneSignalIsNotEnough(t *testing.T) {
	history := []Event{
		answerAt(0, false, 1000, 8000, 0),
		answerAt(2*time.Second, false, 900, 8000, 0),
		answerAt(4*time.Second, false, 800, 8000, 0),
	}
	d := &FrustrationDetector{}
	if ind, _ := d.Detect(history); ind != IndicatorNone {
		t.Errorf("got indicator %q for a single signal, want none", ind)
	}
}

func TestFrustrationDetector_WindowExcludesOldEvents(t *testing.T) {
	// Identical signals, but the struggle and two of the rapid wrongs
	// fall outside the 10-second window.
	history := []Event{
		answerAt(0, false, 15000, 8000, 0),
		answerAt(1*time.Second, false, 1000, 8000, 0),
		answerAt(2*time.Second, false, 900, 8000, 0),
		answerAt(30*time.Second, false, 800, 8000, 0),
	}
	d := &FrustrationDetector{}
	if ind, _ := d.Detect(history); ind != IndicatorNone {
		t.Errorf("got indicator %q with signals outside the window, want none", ind)
	}
}

func TestFrustrationDetector_HintSpreePlusRapidWrongs(t *testing.T) {
	history := []Event{
		answerAt(0, false, 1000, 8000, 0),
		answerAt(1*time.Second, false, 900, 8000, 0),
		answerAt(2*time.Second, false, 800, 8000, 0),
		hintAt(3 * time.Second),
		hintAt(4 * time.Second),
		hintAt(5 * time.Second),
		hintAt(6 * time.Second),
	}
	d := &FrustrationDetector{}
	ind, conf := d.Detect(history)
	if ind != IndicatorFrustration {
		t.Fatalf("got indicator %q, want frustration", ind)
	}
	if conf < 2.0/3-1e-9 {
		t.Errorf("got confidence %f, want >= 2/3", conf)
	}
}

func TestBoredomDetector_SustainedCoasting(t *testing.T) {
	history := []Event{
		answerAt(0, true, 2000, 8000, 0),
		answerAt(10*time.Second, true, 2500, 8000, 0),
		answerAt(20*time.Second, true, 1800, 8000, 0),
	}
	d := &BoredomDetector{}
	ind, conf := d.Detect(history)
	if ind != IndicatorBoredom {
		t.Fatalf("got indicator %q, want boredom", ind)
	}
	if conf < 0.6 {
		t.Errorf("got confidence %f, want >= 0.6 at the minimum run", conf)
	}
}

func TestBoredomDetector_HintUseBreaksTheRun(t *testing.T) {
	history := []Event{
		answerAt(0, true, 2000, 8000, 0),
		answerAt(10*time.Second, true, 2500, 8000, 1), // used a hint
		answerAt(20*time.Second, true, 1800, 8000, 0),
	}
	d := &BoredomDetector{}
	if ind, _ := d.Detect(history); ind != IndicatorNone {
		t.Errorf("got indicator %q with a hint in the run, want none", ind)
	}
}

func TestBoredomDetector_SlowAnswerBreaksTheRun(t *testing.T) {
	history := []Event{
		answerAt(0, true, 2000, 8000, 0),
		answerAt(10*time.Second, true, 2000, 8000, 0),
		answerAt(20*time.Second, true, 6000, 8000, 0), // ratio 0.75
	}
	d := &BoredomDetector{}
	if ind, _ := d.Detect(history); ind != IndicatorNone {
		t.Errorf("got indicator %q without sustained fast answers, want none", ind)
	}
}

func TestAnalyze_FrustrationOutranksBoredom(t *testing.T) {
	// Rapid *wrong* answers cannot also be a boredom run, so build a
	// history where only frustration fires and confirm the priority
	// detector reports it.
	history := []Event{
		answerAt(0, false, 15000, 8000, 0),
		answerAt(2*time.Second, false, 1000, 8000, 0),
		answerAt(4*time.Second, false, 900, 8000, 0),
		answerAt(6*time.Second, false, 800, 8000, 0),
	}
	hint := Analyze(DefaultDetectors(), history)
	if hint.Indicator != IndicatorFrustration {
		t.Errorf("got indicator %q, want frustration", hint.Indicator)
	}
	if hint.DetectorName != "frustration" {
		t.Errorf("got detector %q, want frustration", hint.DetectorName)
	}
}

func TestAnalyze_NoMatch(t *testing.T) {
	history := []Event{
		answerAt(0, true, 7000, 8000, 0),
		answerAt(15*time.Second, false, 9000, 8000, 1),
	}
	hint := Analyze(DefaultDetectors(), history)
	if hint.Indicator != IndicatorNone {
		t.Errorf("got indicator %q, want none", hint.Indicator)
	}
	if hint.Confidence != 0 {
		t.Errorf("got confidence %f, want 0", hint.Confidence)
	}
}

func TestAnalyze_EmptyHistory(t *testing.T) {
	if hint := Analyze(DefaultDetectors(), nil); hint.Indicator != IndicatorNone {
		t.Errorf("got indicator %q for empty history, want none", hint.Indicator)
	}
}
