package quiz

import (
	"errors"
	"fmt"
	"testing"

	"github.com/raneesh-edsmartly/socratic/internal/api"
)

// threeQuestions builds a quiz where option 0 is always correct.
func threeQuestions() []api.QuizQuestion {
	qs := make([]api.QuizQuestion, 3)
	for i := range qs {
		qs[i] = api.QuizQuestion{
			ID:   fmt.Sprintf("q%d", i+1),
			Text: fmt.Sprintf("question %d", i+1),
			Options: []api.QuizOption{
				{Text: "right", IsCorrect: true},
				{Text: "wrong a"},
				{Text: "wrong b"},
				{Text: "wrong c"},
			},
			Explanation: fmt.Sprintf("because %d", i+1),
		}
	}
	return qs
}

func startQuiz(t *testing.T, c *Controller) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Topic = "cells"
	gen, err := c.BeginGenerate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !c.ApplyQuestions(gen, threeQuestions(), "quiz-sess") {
		t.Fatal("questions were dropped")
	}
}

func TestBeginGenerateValidatesConfig(t *testing.T) {
	c := NewController(false)

	bad := []Config{
		{Grade: 10, Difficulty: 7, NumQuestions: 3, Subject: "biology"},                     // no topic
		{Topic: "cells", Grade: 0, Difficulty: 7, NumQuestions: 3, Subject: "biology"},      // grade low
		{Topic: "cells", Grade: 13, Difficulty: 7, NumQuestions: 3, Subject: "biology"},     // grade high
		{Topic: "cells", Grade: 10, Difficulty: 11, NumQuestions: 3, Subject: "biology"},    // difficulty high
		{Topic: "cells", Grade: 10, Difficulty: 7, NumQuestions: 0, Subject: "biology"},     // no questions
	}
	for i, cfg := range bad {
		if _, err := c.BeginGenerate(cfg); err == nil {
			t.Errorf("config %d: expected validation error", i)
		}
		if c.Phase() != PhaseUnconfigured {
			t.Errorf("config %d: invalid config must not change phase", i)
		}
	}
}

func TestGenerateAndAnswerFlow(t *testing.T) {
	c := NewController(false)
	startQuiz(t, c)

	if c.Phase() != PhaseInProgress {
		t.Fatalf("expected PhaseInProgress, got %v", c.Phase())
	}
	if c.SessionID() != "quiz-sess" {
		t.Errorf("expected session id quiz-sess, got %q", c.SessionID())
	}
	if c.Remaining() != -1 {
		t.Errorf("timer disabled: expected no countdown, got %d", c.Remaining())
	}

	c.Select("q1", 0)
	c.Select("q1", 2) // changing an answer replaces the previous choice
	if got := c.Attempt().Selected["q1"]; got != 2 {
		t.Errorf("expected selection 2 for q1, got %d", got)
	}
	if _, ok := c.Attempt().Selected["q2"]; ok {
		t.Error("selecting q1 must not touch q2")
	}
}

func TestSelectRejectsOutOfRange(t *testing.T) {
	c := NewController(false)
	startQuiz(t, c)

	c.Select("q1", -1)
	c.Select("q1", 4)
	c.Select("missing", 0)
	if len(c.Attempt().Selected) != 0 {
		t.Errorf("expected no selections recorded, got %v", c.Attempt().Selected)
	}
}

func TestFinishRequiresAllAnswers(t *testing.T) {
	c := NewController(false)
	startQuiz(t, c)

	c.Select("q1", 0)
	if err := c.Finish(); !errors.Is(err, ErrIncomplete) {
		t.Fatalf("expected ErrIncomplete, got %v", err)
	}
	if c.Phase() != PhaseInProgress {
		t.Error("incomplete finish must not change phase")
	}
	if c.Attempt().Finished {
		t.Error("incomplete finish must not freeze the attempt")
	}
}

func TestScoringByIndexComparison(t *testing.T) {
	c := NewController(false)
	startQuiz(t, c)

	// Two correct out of three.
	c.Select("q1", 0)
	c.Select("q2", 0)
	c.Select("q3", 3)

	if err := c.Finish(); err != nil {
		t.Fatal(err)
	}
	a := c.Attempt()
	if a.Score != 2 {
		t.Errorf("expected score 2, got %d", a.Score)
	}
	if c.Phase() != PhaseFinished {
		t.Errorf("expected PhaseFinished, got %v", c.Phase())
	}

	r1 := a.Results["q1"]
	if !r1.IsCorrect || r1.SelectedAnswer != "right" || r1.CorrectAnswer != "right" {
		t.Errorf("q1 result wrong: %+v", r1)
	}
	r3 := a.Results["q3"]
	if r3.IsCorrect || r3.SelectedAnswer != "wrong c" || r3.CorrectAnswer != "right" {
		t.Errorf("q3 result wrong: %+v", r3)
	}
	if r3.Explanation != "because 3" {
		t.Errorf("expected explanation carried into result, got %q", r3.Explanation)
	}
}

func TestFinishIsIdempotent(t *testing.T) {
	c := NewController(false)
	startQuiz(t, c)
	for _, id := range []string{"q1", "q2", "q3"} {
		c.Select(id, 0)
	}
	if err := c.Finish(); err != nil {
		t.Fatal(err)
	}
	first := c.Attempt().Score

	// Selections after finishing are ignored and a second Finish does
	// not rescore.
	c.Select("q1", 1)
	if err := c.Finish(); err != nil {
		t.Errorf("second Finish should be a no-op, got %v", err)
	}
	if c.Attempt().Score != first {
		t.Errorf("score changed from %d to %d", first, c.Attempt().Score)
	}
	if got := c.Attempt().Selected["q1"]; got != 0 {
		t.Errorf("selection changed after finish: %d", got)
	}
}

func TestForceFinishScoresUnansweredAsIncorrect(t *testing.T) {
	c := NewController(false)
	startQuiz(t, c)
	c.Select("q1", 0)

	c.ForceFinish()
	a := c.Attempt()
	if c.Phase() != PhaseFinished || !a.Finished {
		t.Fatal("expected the attempt to be finished")
	}
	if a.Score != 1 {
		t.Errorf("expected score 1, got %d", a.Score)
	}
	r2 := a.Results["q2"]
	if r2.IsCorrect || r2.SelectedAnswer != "" {
		t.Errorf("unanswered question should score incorrect with no selection: %+v", r2)
	}
}

func TestCountdownSizedByQuestionCount(t *testing.T) {
	c := NewController(true)
	startQuiz(t, c)

	if want := 3 * SecondsPerQuestion; c.Remaining() != want {
		t.Errorf("expected countdown %d, got %d", want, c.Remaining())
	}
}

func TestTickExpiryForceFinishes(t *testing.T) {
	c := NewController(true)
	startQuiz(t, c)
	c.Select("q1", 0)

	expired := false
	for i := 0; i < 3*SecondsPerQuestion+5; i++ {
		if c.Tick() {
			expired = true
			break
		}
	}
	if !expired {
		t.Fatal("countdown never expired")
	}
	if c.Phase() != PhaseFinished {
		t.Errorf("expected PhaseFinished after expiry, got %v", c.Phase())
	}
	if c.Attempt().Score != 1 {
		t.Errorf("expected score 1 at expiry, got %d", c.Attempt().Score)
	}
	if c.Tick() {
		t.Error("Tick after finish should report nothing")
	}
}

func TestEmptyQuestionListIsFailure(t *testing.T) {
	c := NewController(false)
	cfg := DefaultConfig()
	cfg.Topic = "cells"
	gen, err := c.BeginGenerate(cfg)
	if err != nil {
		t.Fatal(err)
	}

	if !c.ApplyQuestions(gen, nil, "sess") {
		t.Fatal("empty result should still be consumed")
	}
	if c.Phase() != PhaseUnconfigured {
		t.Errorf("expected PhaseUnconfigured, got %v", c.Phase())
	}
	if c.Err() == "" {
		t.Error("expected an error message")
	}
	if c.Attempt() != nil {
		t.Error("no attempt should exist")
	}
}

func TestGenerateErrorReturnsToForm(t *testing.T) {
	c := NewController(false)
	cfg := DefaultConfig()
	cfg.Topic = "cells"
	gen, _ := c.BeginGenerate(cfg)

	if !c.ApplyGenerateError(gen, errors.New("server error (HTTP 503)")) {
		t.Fatal("error should be consumed")
	}
	if c.Phase() != PhaseUnconfigured || c.Err() == "" {
		t.Error("expected Unconfigured with the error surfaced")
	}
}

func TestStaleGenerationDroppedAfterReset(t *testing.T) {
	c := NewController(false)
	cfg := DefaultConfig()
	cfg.Topic = "cells"
	gen, _ := c.BeginGenerate(cfg)

	c.Reset()

	if c.ApplyQuestions(gen, threeQuestions(), "sess") {
		t.Error("questions from before the reset should be dropped")
	}
	if c.Phase() != PhaseUnconfigured || c.Attempt() != nil {
		t.Error("stale result must not change state")
	}
	if c.ApplyGenerateError(gen, errors.New("late")) {
		t.Error("stale error should be dropped too")
	}
}

func TestRegenerateClearsPriorAttempt(t *testing.T) {
	c := NewController(true)
	startQuiz(t, c)
	for _, id := range []string{"q1", "q2", "q3"} {
		c.Select(id, 0)
	}
	if err := c.Finish(); err != nil {
		t.Fatal(err)
	}

	cfg := c.Config()
	cfg.Topic = "mitosis"
	gen, err := c.BeginGenerate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if c.Attempt() != nil || c.SessionID() != "" || c.Remaining() != -1 {
		t.Error("BeginGenerate must clear prior attempt state")
	}
	if !c.ApplyQuestions(gen, threeQuestions(), "sess-2") {
		t.Fatal("fresh result dropped")
	}
	if len(c.Attempt().Selected) != 0 {
		t.Error("fresh attempt should have no selections")
	}
}

func TestResetClearsQueryKeepsSettings(t *testing.T) {
	c := NewController(false)
	cfg := DefaultConfig()
	cfg.Topic = "cells"
	cfg.Query = "focus on organelles"
	gen, _ := c.BeginGenerate(cfg)
	c.ApplyQuestions(gen, threeQuestions(), "sess")

	c.Reset()
	if c.Config().Query != "" {
		t.Errorf("Reset should clear the free-form query, got %q", c.Config().Query)
	}
	if c.Config().Subject != "biology" || c.Config().Grade != 10 {
		t.Error("Reset should keep the other settings for the next form")
	}
}
