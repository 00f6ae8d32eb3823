package quiz

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	quizflow "github.com/raneesh-edsmartly/socratic/internal/quiz"
	"github.com/raneesh-edsmartly/socratic/internal/ui/components"
)

const (
	fieldTopic = iota
	fieldSubject
	fieldGrade
	fieldDifficulty
	fieldCount2 // question count; named to avoid clashing with the total
	fieldBlooms
	fieldWebbs
	fieldQuery
	formFieldCount
)

var fieldLabels = [formFieldCount]string{
	"Topic",
	"Subject",
	"Grade (1-12)",
	"Difficulty (1-10)",
	"Questions",
	"Bloom's level (optional)",
	"Webb's DOK (optional)",
	"Focus query (optional)",
}

// form is the quiz settings form state.
type form struct {
	inputs [formFieldCount]components.TextInput
	focus  int
	errMsg string
}

func newForm(cfg quizflow.Config) form {
	var f form
	f.inputs[fieldTopic] = components.NewTextInput("photosynthesis", false, 120)
	f.inputs[fieldSubject] = components.NewTextInput("biology", false, 60)
	f.inputs[fieldGrade] = components.NewTextInput("10", true, 2)
	f.inputs[fieldDifficulty] = components.NewTextInput("7", true, 2)
	f.inputs[fieldCount2] = components.NewTextInput("3", true, 2)
	f.inputs[fieldBlooms] = components.NewTextInput("", true, 1)
	f.inputs[fieldWebbs] = components.NewTextInput("", true, 1)
	f.inputs[fieldQuery] = components.NewTextInput("", false, 200)

	f.inputs[fieldSubject].Model.SetValue(cfg.Subject)
	f.inputs[fieldGrade].Model.SetValue(strconv.Itoa(cfg.Grade))
	f.inputs[fieldDifficulty].Model.SetValue(strconv.Itoa(cfg.Difficulty))
	f.inputs[fieldCount2].Model.SetValue(strconv.Itoa(cfg.NumQuestions))
	return f
}

func (f *form) init() tea.Cmd {
	return f.inputs[fieldTopic].Model.Focus()
}

func (f *form) focusNext() tea.Cmd {
	return f.setFocus((f.focus + 1) % formFieldCount)
}

func (f *form) focusPrev() tea.Cmd {
	return f.setFocus((f.focus + formFieldCount - 1) % formFieldCount)
}

func (f *form) setFocus(idx int) tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].Model.Blur()
	}
	f.focus = idx
	return f.inputs[idx].Model.Focus()
}

func (f form) update(msg tea.Msg) (form, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

// config assembles a Config from the form, reporting the first parse
// problem. Range validation happens in the controller.
func (f *form) config() (quizflow.Config, error) {
	cfg := quizflow.Config{
		Topic:   strings.TrimSpace(f.inputs[fieldTopic].Value()),
		Subject: strings.TrimSpace(f.inputs[fieldSubject].Value()),
		Query:   strings.TrimSpace(f.inputs[fieldQuery].Value()),
	}

	var err error
	if cfg.Grade, err = requiredInt(f.inputs[fieldGrade].Value(), "grade"); err != nil {
		return cfg, err
	}
	if cfg.Difficulty, err = requiredInt(f.inputs[fieldDifficulty].Value(), "difficulty"); err != nil {
		return cfg, err
	}
	if cfg.NumQuestions, err = requiredInt(f.inputs[fieldCount2].Value(), "question count"); err != nil {
		return cfg, err
	}
	if cfg.BloomsLevel, err = optionalInt(f.inputs[fieldBlooms].Value(), "Bloom's level"); err != nil {
		return cfg, err
	}
	if cfg.WebbsDOK, err = optionalInt(f.inputs[fieldWebbs].Value(), "Webb's DOK"); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func requiredInt(s, name string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return v, nil
}

func optionalInt(s, name string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return requiredInt(s, name)
}
