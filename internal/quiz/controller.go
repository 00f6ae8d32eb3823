// Package quiz holds the client-side state machine for one MCQ run:
// generation, per-question answer tracking, an optional countdown, and
// index-comparison scoring.
package quiz

import (
	"errors"

	"github.com/raneesh-edsmartly/socratic/internal/api"
)

// Phase is the controller's current state.
type Phase int

const (
	// PhaseUnconfigured: no attempt exists; the settings form is shown.
	PhaseUnconfigured Phase = iota
	// PhaseGenerating: a generation request is in flight.
	PhaseGenerating
	// PhaseInProgress: questions are being answered.
	PhaseInProgress
	// PhaseFinished: the attempt is scored; selections are frozen.
	PhaseFinished
)

// SecondsPerQuestion sizes the countdown when the timer is enabled.
const SecondsPerQuestion = 120

// ErrIncomplete is returned by Finish while unanswered questions
// remain. The countdown path bypasses this check: a timeout must be
// able to end an incomplete attempt.
var ErrIncomplete = errors.New("please answer all questions before finishing")

// Controller drives the MCQ flow. Like the chat controller it is
// single-threaded by design: the UI event loop serializes all calls.
type Controller struct {
	phase     Phase
	cfg       Config
	attempt   *Attempt
	sessionID string
	errMsg    string
	remaining int // countdown seconds; -1 when no timer
	timer     bool
	gen       int
}

// NewController creates an Unconfigured controller. When withTimer is
// set, each generated quiz gets a countdown of questions×120 seconds.
func NewController(withTimer bool) *Controller {
	return &Controller{
		cfg:       DefaultConfig(),
		remaining: -1,
		timer:     withTimer,
	}
}

// Phase returns the current state.
func (c *Controller) Phase() Phase { return c.phase }

// Config returns the active configuration.
func (c *Controller) Config() Config { return c.cfg }

// Attempt returns the current attempt, or nil outside
// InProgress/Finished.
func (c *Controller) Attempt() *Attempt { return c.attempt }

// SessionID returns the server-issued quiz session id, if any.
func (c *Controller) SessionID() string { return c.sessionID }

// Err returns the recorded flow-level error message, if any.
func (c *Controller) Err() string { return c.errMsg }

// Remaining returns the countdown seconds left, or -1 when no timer
// is running.
func (c *Controller) Remaining() int { return c.remaining }

// BeginGenerate validates cfg and enters Generating. All prior attempt
// state (selections, results, score, session id) is cleared first. The
// returned generation token must accompany the eventual ApplyQuestions
// or ApplyGenerateError call.
func (c *Controller) BeginGenerate(cfg Config) (gen int, err error) {
	if err := cfg.Validate(); err != nil {
		c.errMsg = err.Error()
		return 0, err
	}

	c.cfg = cfg
	c.attempt = nil
	c.sessionID = ""
	c.errMsg = ""
	c.remaining = -1
	c.phase = PhaseGenerating
	c.gen++
	return c.gen, nil
}

// ApplyQuestions installs a generation result. An empty question list
// counts as a failure (Unconfigured + error). Results carrying a stale
// generation — the user reset while the request was in flight — are
// discarded.
func (c *Controller) ApplyQuestions(gen int, questions []api.QuizQuestion, sessionID string) bool {
	if gen != c.gen || c.phase != PhaseGenerating {
		return false
	}

	if len(questions) == 0 {
		c.phase = PhaseUnconfigured
		c.errMsg = "No questions were generated. Please try different parameters."
		return true
	}

	c.attempt = &Attempt{
		Questions: questions,
		Selected:  make(map[string]int),
	}
	c.sessionID = sessionID
	c.phase = PhaseInProgress
	if c.timer {
		c.remaining = len(questions) * SecondsPerQuestion
	}
	return true
}

// ApplyGenerateError records a failed generation: back to Unconfigured
// with the error surfaced, no attempt created.
func (c *Controller) ApplyGenerateError(gen int, err error) bool {
	if gen != c.gen || c.phase != PhaseGenerating {
		return false
	}
	c.phase = PhaseUnconfigured
	if err != nil {
		c.errMsg = err.Error()
	} else {
		c.errMsg = "Please try Generate again. This is a server error."
	}
	return true
}

// Select records the chosen option index for one question. Selections
// for other questions are untouched. Ignored outside InProgress — in
// particular once Finished.
func (c *Controller) Select(questionID string, optionIndex int) {
	if c.phase != PhaseInProgress || c.attempt == nil {
		return
	}
	for _, q := range c.attempt.Questions {
		if q.ID != questionID {
			continue
		}
		if optionIndex < 0 || optionIndex >= len(q.Options) {
			return
		}
		c.attempt.Selected[questionID] = optionIndex
		return
	}
}

// Finish scores the attempt. While any question is unanswered it
// returns ErrIncomplete and changes nothing. Calling Finish again once
// Finished is a no-op: score and results are never recomputed.
func (c *Controller) Finish() error {
	if c.phase == PhaseFinished {
		return nil
	}
	if c.phase != PhaseInProgress || c.attempt == nil {
		return errors.New("no quiz in progress")
	}
	if !c.attempt.answered() {
		c.errMsg = ErrIncomplete.Error()
		return ErrIncomplete
	}
	c.score()
	return nil
}

// ForceFinish ends the attempt without the completeness check; the
// countdown uses it when time runs out. Unanswered questions score as
// incorrect.
func (c *Controller) ForceFinish() {
	if c.phase != PhaseInProgress || c.attempt == nil {
		return
	}
	c.score()
}

// score computes per-question correctness by index comparison, the
// total score, and freezes the attempt.
func (c *Controller) score() {
	a := c.attempt
	a.Results = make(map[string]Result, len(a.Questions))
	total := 0

	for _, q := range a.Questions {
		ci := correctIndex(q)
		res := Result{Explanation: q.Explanation}
		if ci >= 0 {
			res.CorrectAnswer = q.Options[ci].Text
		}
		if si, ok := a.Selected[q.ID]; ok {
			res.SelectedAnswer = q.Options[si].Text
			res.IsCorrect = si == ci
		}
		if res.IsCorrect {
			total++
		}
		a.Results[q.ID] = res
	}

	a.Score = total
	a.Finished = true
	c.phase = PhaseFinished
	c.errMsg = ""
	c.remaining = -1
}

// Tick advances the countdown by one second. It reports true when the
// countdown just reached zero, in which case the attempt has been
// force-finished.
func (c *Controller) Tick() bool {
	if c.phase != PhaseInProgress || c.remaining < 0 {
		return false
	}
	if c.remaining > 0 {
		c.remaining--
	}
	if c.remaining == 0 {
		c.ForceFinish()
		return true
	}
	return false
}

// Reset clears everything — attempt, query text, session id, error,
// countdown — and returns to Unconfigured. A reset during Generating
// invalidates the in-flight response.
func (c *Controller) Reset() {
	c.attempt = nil
	c.sessionID = ""
	c.errMsg = ""
	c.cfg.Query = ""
	c.remaining = -1
	c.phase = PhaseUnconfigured
	c.gen++
}
