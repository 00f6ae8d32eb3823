package quiz

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestFormRejectsNonNumericGrade(t *testing.T) {
	s := New(nil, nil, nil, false)
	s.form.inputs[fieldGrade].Model.SetValue("x")

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.form.errMsg != "grade must be a number" {
		t.Fatalf("expected a parse error, got %q", s.form.errMsg)
	}
}

func TestFormSurfacesValidationError(t *testing.T) {
	// Topic empty, everything else at its default.
	s := New(nil, nil, nil, false)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.form.errMsg != "topic is required" {
		t.Fatalf("expected the topic error, got %q", s.form.errMsg)
	}
}

func TestEditingClearsFormError(t *testing.T) {
	s := New(nil, nil, nil, false)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.form.errMsg == "" {
		t.Fatal("expected an error for the empty topic")
	}

	s.Update(tea.KeyPressMsg{Code: 'p', Text: "p"})
	if s.form.errMsg != "" {
		t.Errorf("editing a field should clear the form error, still have %q", s.form.errMsg)
	}
}

func TestFocusChangeKeepsFormError(t *testing.T) {
	s := New(nil, nil, nil, false)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if s.form.errMsg == "" {
		t.Error("moving focus should not clear the error")
	}
}
