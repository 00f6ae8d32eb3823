package quiz

import (
	"fmt"
	"strings"

	"github.com/raneesh-edsmartly/socratic/internal/api"
)

// Config is the quiz generation request built from the settings form.
type Config struct {
	Topic        string
	Grade        int // 1–12
	Difficulty   int // depth-of-knowledge scale, 1–10
	NumQuestions int
	Subject      string
	Query        string

	// Optional cognitive-framework parameters (0 = unset).
	BloomsLevel int
	WebbsDOK    int
}

// DefaultConfig mirrors the settings form defaults.
func DefaultConfig() Config {
	return Config{
		Grade:        10,
		Difficulty:   7,
		NumQuestions: 3,
		Subject:      "biology",
	}
}

// Validate rejects out-of-range parameters before any request is made.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Topic) == "" {
		return fmt.Errorf("topic is required")
	}
	if c.Grade < 1 || c.Grade > 12 {
		return fmt.Errorf("grade must be between 1 and 12")
	}
	if c.Difficulty < 1 || c.Difficulty > 10 {
		return fmt.Errorf("difficulty must be between 1 and 10")
	}
	if c.NumQuestions < 1 {
		return fmt.Errorf("at least one question is required")
	}
	return nil
}

// Result is the computed outcome for one question after a finish.
type Result struct {
	IsCorrect      bool
	Explanation    string
	SelectedAnswer string
	CorrectAnswer  string
}

// Attempt is one quiz run: the question set, the per-question
// selections, and — once finished — the score and results.
type Attempt struct {
	Questions []api.QuizQuestion

	// Selected maps question id to the chosen option index.
	Selected map[string]int

	Finished bool
	Score    int
	Results  map[string]Result
}

// answered reports whether every question has a selection.
func (a *Attempt) answered() bool {
	for _, q := range a.Questions {
		if _, ok := a.Selected[q.ID]; !ok {
			return false
		}
	}
	return true
}

// correctIndex returns the index of the option flagged correct, or -1.
func correctIndex(q api.QuizQuestion) int {
	for i, opt := range q.Options {
		if opt.IsCorrect {
			return i
		}
	}
	return -1
}
