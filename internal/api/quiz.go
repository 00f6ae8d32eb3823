package api

import (
	"context"
	"encoding/json"
)

// QuizOption is one answer choice. Exactly one option per question is
// flagged correct by the backend; the client assumes but does not
// enforce this.
type QuizOption struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// QuizQuestion is immutable once received.
type QuizQuestion struct {
	ID          string       `json:"question_id"`
	LegacyID    string       `json:"_id,omitempty"`
	Text        string       `json:"question_text"`
	Options     []QuizOption `json:"options"`
	Explanation string       `json:"explanation"`
}

// GenerateQuizRequest carries the quiz configuration. BloomsLevel and
// WebbsDOK are pedagogical-difficulty parameters, opaque to the client
// beyond their numeric range.
type GenerateQuizRequest struct {
	Topic        string `json:"topic"`
	Grade        int    `json:"grade"`
	Difficulty   int    `json:"difficulty"`
	NumQuestions int    `json:"num_questions"`
	Subject      string `json:"subject,omitempty"`
	Query        string `json:"query,omitempty"`
	BloomsLevel  int    `json:"blooms_level,omitempty"`
	WebbsDOK     int    `json:"webbs_dok,omitempty"`
}

// GenerateQuizResponse is the validated generation result.
type GenerateQuizResponse struct {
	Questions []QuizQuestion `json:"questions"`
	SessionID string         `json:"session_id"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// GenerateQuiz requests a question set from the backend. The raw body
// is schema-validated before decoding so that malformed payloads
// surface as a single, well-typed failure.
func (c *Client) GenerateQuiz(ctx context.Context, req GenerateQuizRequest) (*GenerateQuizResponse, error) {
	var raw json.RawMessage
	if err := c.post(ctx, "/mcq-new/generate", nil, req, &raw); err != nil {
		return nil, err
	}

	if err := validateQuizPayload(raw); err != nil {
		return nil, err
	}

	var resp GenerateQuizResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &InvalidResponseError{Err: err}
	}

	// Older backends identify questions by _id only.
	for i := range resp.Questions {
		if resp.Questions[i].ID == "" {
			resp.Questions[i].ID = resp.Questions[i].LegacyID
		}
	}
	return &resp, nil
}

// LegacyGenerateQuiz calls the older generation endpoint, which has no
// session id and no cognitive-framework parameters.
func (c *Client) LegacyGenerateQuiz(ctx context.Context, req GenerateQuizRequest) (*GenerateQuizResponse, error) {
	req.BloomsLevel = 0
	req.WebbsDOK = 0
	var raw json.RawMessage
	if err := c.post(ctx, "/mcq/generate/", nil, req, &raw); err != nil {
		return nil, err
	}
	if err := validateQuizPayload(raw); err != nil {
		return nil, err
	}
	var resp GenerateQuizResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &InvalidResponseError{Err: err}
	}
	for i := range resp.Questions {
		if resp.Questions[i].ID == "" {
			resp.Questions[i].ID = resp.Questions[i].LegacyID
		}
	}
	return &resp, nil
}

// QuestionResult is the per-question outcome persisted after a finish.
type QuestionResult struct {
	IsCorrect      bool   `json:"isCorrect"`
	Explanation    string `json:"explanation"`
	SelectedAnswer string `json:"selectedAnswer"`
	CorrectAnswer  string `json:"correctAnswer"`
}

// SaveQuizResults persists a finished attempt's summary. Best-effort:
// callers never block the local finish on this call.
func (c *Client) SaveQuizResults(ctx context.Context, sessionID string, results map[string]QuestionResult, score, totalQuestions int) error {
	body := struct {
		SessionID      string                    `json:"sessionId"`
		Results        map[string]QuestionResult `json:"results"`
		Score          int                       `json:"score"`
		TotalQuestions int                       `json:"totalQuestions"`
	}{sessionID, results, score, totalQuestions}
	return c.post(ctx, "/mcq-new/save-results", nil, body, nil)
}
