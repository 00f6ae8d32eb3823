package quiz

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/raneesh-edsmartly/socratic/internal/api"
	"github.com/raneesh-edsmartly/socratic/internal/auth"
	quizflow "github.com/raneesh-edsmartly/socratic/internal/quiz"
	"github.com/raneesh-edsmartly/socratic/internal/screen"
	"github.com/raneesh-edsmartly/socratic/internal/store"
	"github.com/raneesh-edsmartly/socratic/internal/ui/components"
	"github.com/raneesh-edsmartly/socratic/internal/ui/layout"
)

const saveTimeout = 10 * time.Second

type generatedMsg struct {
	gen  int
	resp *api.GenerateQuizResponse
}

type generateErrMsg struct {
	gen int
	err error
}

type tickMsg struct {
	seq int
}

type savedMsg struct{}

// QuizScreen drives one MCQ run: settings form, generation, answering
// with an optional countdown, and the scored review.
type QuizScreen struct {
	api      *api.Client
	auth     *auth.Store
	attempts store.AttemptRepo

	ctrl *quizflow.Controller
	form form

	// current question index and its option selector.
	current int
	options components.OptionList

	// seq invalidates countdown ticks from an earlier attempt.
	seq int

	// resultScroll offsets the review view.
	resultScroll int
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates the quiz screen. withTimer enables the countdown of two
// minutes per question.
func New(client *api.Client, store *auth.Store, attempts store.AttemptRepo, withTimer bool) *QuizScreen {
	s := &QuizScreen{
		api:      client,
		auth:     store,
		attempts: attempts,
		ctrl:     quizflow.NewController(withTimer),
	}
	s.form = newForm(s.ctrl.Config())
	return s
}

func (s *QuizScreen) Title() string { return "Quiz" }

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.ctrl.Phase() {
	case quizflow.PhaseInProgress:
		return []layout.KeyHint{
			{Key: "←→", Description: "Question"},
			{Key: "↑↓ Enter", Description: "Answer"},
			{Key: "F", Description: "Finish"},
			{Key: "Esc", Description: "Back"},
		}
	case quizflow.PhaseFinished:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "R", Description: "New quiz"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Generate"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.form.init()
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		if !s.ctrl.ApplyQuestions(msg.gen, msg.resp.Questions, msg.resp.SessionID) {
			return s, nil
		}
		if s.ctrl.Phase() != quizflow.PhaseInProgress {
			return s, nil
		}
		s.seq++
		s.current = 0
		s.syncOptions()
		if s.ctrl.Remaining() > 0 {
			return s, s.tick()
		}
		return s, nil

	case generateErrMsg:
		s.ctrl.ApplyGenerateError(msg.gen, msg.err)
		return s, nil

	case tickMsg:
		if msg.seq != s.seq {
			return s, nil
		}
		if timedOut := s.ctrl.Tick(); timedOut {
			return s, s.persistResults()
		}
		if s.ctrl.Phase() == quizflow.PhaseInProgress && s.ctrl.Remaining() > 0 {
			return s, s.tick()
		}
		return s, nil

	case savedMsg:
		return s, nil

	case tea.KeyMsg:
		switch s.ctrl.Phase() {
		case quizflow.PhaseUnconfigured:
			return s.updateForm(msg)
		case quizflow.PhaseInProgress:
			return s.updateQuestion(msg)
		case quizflow.PhaseFinished:
			return s.updateReview(msg)
		}
	}
	return s, nil
}

func (s *QuizScreen) tick() tea.Cmd {
	seq := s.seq
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{seq: seq}
	})
}

func (s *QuizScreen) updateForm(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		return s, s.form.focusNext()
	case "shift+tab", "up":
		return s, s.form.focusPrev()
	case "enter":
		return s, s.generate()
	}
	s.form.errMsg = ""

	var cmd tea.Cmd
	s.form, cmd = s.form.update(msg)
	return s, cmd
}

func (s *QuizScreen) generate() tea.Cmd {
	cfg, err := s.form.config()
	if err != nil {
		s.form.errMsg = err.Error()
		return nil
	}

	gen, err := s.ctrl.BeginGenerate(cfg)
	if err != nil {
		s.form.errMsg = err.Error()
		return nil
	}
	s.form.errMsg = ""

	client := s.api
	return func() tea.Msg {
		resp, err := client.GenerateQuiz(context.Background(), api.GenerateQuizRequest{
			Topic:        cfg.Topic,
			Grade:        cfg.Grade,
			Difficulty:   cfg.Difficulty,
			NumQuestions: cfg.NumQuestions,
			Subject:      cfg.Subject,
			Query:        cfg.Query,
			BloomsLevel:  cfg.BloomsLevel,
			WebbsDOK:     cfg.WebbsDOK,
		})
		if err != nil {
			return generateErrMsg{gen: gen, err: err}
		}
		return generatedMsg{gen: gen, resp: resp}
	}
}

func (s *QuizScreen) updateQuestion(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	attempt := s.ctrl.Attempt()
	if attempt == nil {
		return s, nil
	}

	switch msg.String() {
	case "left", "h":
		if s.current > 0 {
			s.current--
			s.syncOptions()
		}
		return s, nil
	case "right", "l":
		if s.current < len(attempt.Questions)-1 {
			s.current++
			s.syncOptions()
		}
		return s, nil
	case "f":
		if err := s.ctrl.Finish(); err == nil {
			return s, s.persistResults()
		}
		return s, nil
	}

	before := s.options.Chosen
	var cmd tea.Cmd
	s.options, cmd = s.options.Update(msg)
	if s.options.Chosen != before {
		q := attempt.Questions[s.current]
		s.ctrl.Select(q.ID, s.options.Chosen)
	}
	return s, cmd
}

func (s *QuizScreen) updateReview(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "r":
		s.ctrl.Reset()
		s.seq++
		s.current = 0
		s.resultScroll = 0
		s.form = newForm(s.ctrl.Config())
		return s, s.form.init()
	case "up", "k":
		if s.resultScroll > 0 {
			s.resultScroll--
		}
	case "down", "j":
		s.resultScroll++
	}
	return s, nil
}

// syncOptions rebuilds the option selector for the current question,
// restoring any previous selection.
func (s *QuizScreen) syncOptions() {
	attempt := s.ctrl.Attempt()
	if attempt == nil || s.current >= len(attempt.Questions) {
		return
	}
	q := attempt.Questions[s.current]
	texts := make([]string, 0, len(q.Options))
	for _, o := range q.Options {
		texts = append(texts, o.Text)
	}
	chosen := -1
	if idx, ok := attempt.Selected[q.ID]; ok {
		chosen = idx
	}
	s.options = components.NewOptionList(texts, chosen)
}

// persistResults saves the finished attempt: to the backend when a
// session id exists, and always to local history. Both are best-effort;
// the review is already on screen.
func (s *QuizScreen) persistResults() tea.Cmd {
	attempt := s.ctrl.Attempt()
	if attempt == nil || !attempt.Finished {
		return nil
	}

	cfg := s.ctrl.Config()
	sessionID := s.ctrl.SessionID()
	total := len(attempt.Questions)
	score := attempt.Score

	apiResults := make(map[string]api.QuestionResult, len(attempt.Results))
	localResults := make(map[string]any, len(attempt.Results))
	for id, r := range attempt.Results {
		apiResults[id] = api.QuestionResult{
			IsCorrect:      r.IsCorrect,
			Explanation:    r.Explanation,
			SelectedAnswer: r.SelectedAnswer,
			CorrectAnswer:  r.CorrectAnswer,
		}
		localResults[id] = map[string]any{
			"isCorrect":      r.IsCorrect,
			"explanation":    r.Explanation,
			"selectedAnswer": r.SelectedAnswer,
			"correctAnswer":  r.CorrectAnswer,
		}
	}

	client := s.api
	attempts := s.attempts
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()

		if sessionID != "" {
			_ = client.SaveQuizResults(ctx, sessionID, apiResults, score, total)
		}
		// History rows keep a stable id even when the backend issued
		// no session.
		localID := sessionID
		if localID == "" {
			localID = uuid.New().String()
		}
		if attempts != nil {
			_ = attempts.Save(ctx, &store.AttemptRecord{
				SessionID:  localID,
				Topic:      cfg.Topic,
				Subject:    cfg.Subject,
				Grade:      cfg.Grade,
				Difficulty: cfg.Difficulty,
				Score:      score,
				Total:      total,
				Results:    localResults,
			})
		}
		return savedMsg{}
	}
}
