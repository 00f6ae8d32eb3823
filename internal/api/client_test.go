package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// fastRetry keeps retry-path tests quick.
func fastRetry() Option {
	return WithRetry(RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	})
}

func TestErrorDetailExtracted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "Invalid credentials"}`))
	}))
	defer srv.Close()

	err := New(srv.URL).Login(context.Background(), "asha", "wrong")
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.StatusCode != 401 || apiErr.Detail != "Invalid credentials" {
		t.Errorf("wrong error: %+v", apiErr)
	}
	if apiErr.Error() != "Invalid credentials" {
		t.Errorf("detail should be the message, got %q", apiErr.Error())
	}
}

func TestErrorWithoutDetailFallsBackToStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	err := New(srv.URL).Login(context.Background(), "asha", "pw")
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.Detail != "" {
		t.Errorf("non-JSON body should yield no detail, got %q", apiErr.Detail)
	}
	if apiErr.Error() != "server error (HTTP 502)" {
		t.Errorf("unexpected message %q", apiErr.Error())
	}
}

func TestUnreachableBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	c := New(srv.URL, WithRetry(RetryConfig{MaxAttempts: 1}))
	_, err := c.GetProfile(context.Background(), "asha")
	var unavail *UnavailableError
	if !errors.As(err, &unavail) {
		t.Fatalf("expected *UnavailableError, got %v", err)
	}
}

func TestGetRetriesTransientFailures(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"name": "Asha"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, fastRetry())
	p, err := c.GetProfile(context.Background(), "asha")
	if err != nil {
		t.Fatal(err)
	}
	if calls != 3 {
		t.Errorf("expected 3 attempts, got %d", calls)
	}
	if p.Name != "Asha" {
		t.Errorf("unexpected profile %+v", p)
	}
}

func TestGetDoesNotRetryClientErrors(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail": "User not found"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, fastRetry())
	_, err := c.GetProfile(context.Background(), "ghost")
	if !IsStatus(err, 404) {
		t.Fatalf("expected 404, got %v", err)
	}
	if calls != 1 {
		t.Errorf("4xx must not be retried, got %d attempts", calls)
	}
}

func TestPostNeverRetried(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, fastRetry())
	err := c.Login(context.Background(), "asha", "pw")
	if !IsStatus(err, 500) {
		t.Fatalf("expected 500, got %v", err)
	}
	if calls != 1 {
		t.Errorf("POST must run exactly once, got %d attempts", calls)
	}
}

func TestGetProfileSendsUsernameQuery(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("username")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	if _, err := New(srv.URL).GetProfile(context.Background(), "asha"); err != nil {
		t.Fatal(err)
	}
	if gotQuery != "asha" {
		t.Errorf("expected username query param, got %q", gotQuery)
	}
}

func TestChatTurnRejectsEmptyReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response": "", "session_id": "s1"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).ChatTurn(context.Background(), ChatTurnRequest{Username: "asha", Query: "hi"})
	var invalid *InvalidResponseError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *InvalidResponseError, got %v", err)
	}
}

func TestChatTurnSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/socratic-flow/chat" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{
			"response": "What do you already know about cells?",
			"session_id": "s1",
			"processing_details": {"cognitive_level": "recall"}
		}`))
	}))
	defer srv.Close()

	resp, err := New(srv.URL).ChatTurn(context.Background(), ChatTurnRequest{
		Username: "asha", Query: "teach me about cells", IsNewTopic: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.SessionID != "s1" {
		t.Errorf("session id not decoded: %q", resp.SessionID)
	}
	if resp.ProcessingDetails["cognitive_level"] != "recall" {
		t.Errorf("processing details not decoded: %v", resp.ProcessingDetails)
	}
}

func TestGenerateQuizValidPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"session_id": "qs1",
			"questions": [{
				"question_id": "q1",
				"question_text": "What is the powerhouse of the cell?",
				"options": [
					{"text": "Mitochondria", "is_correct": true},
					{"text": "Nucleus", "is_correct": false}
				],
				"explanation": "Mitochondria produce ATP."
			}]
		}`))
	}))
	defer srv.Close()

	resp, err := New(srv.URL).GenerateQuiz(context.Background(), GenerateQuizRequest{
		Topic: "cells", Grade: 10, Difficulty: 7, NumQuestions: 1,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Questions) != 1 || resp.Questions[0].ID != "q1" {
		t.Errorf("unexpected questions %+v", resp.Questions)
	}
	if resp.SessionID != "qs1" {
		t.Errorf("session id not decoded: %q", resp.SessionID)
	}
}

func TestGenerateQuizLegacyIDBackfill(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"questions": [{
				"_id": "legacy-1",
				"question_text": "2+2?",
				"options": [
					{"text": "4", "is_correct": true},
					{"text": "5", "is_correct": false}
				]
			}]
		}`))
	}))
	defer srv.Close()

	resp, err := New(srv.URL).GenerateQuiz(context.Background(), GenerateQuizRequest{
		Topic: "math", Grade: 5, Difficulty: 3, NumQuestions: 1,
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Questions[0].ID != "legacy-1" {
		t.Errorf("expected _id backfill, got %q", resp.Questions[0].ID)
	}
}

func TestGenerateQuizRejectsMalformedPayload(t *testing.T) {
	bodies := []string{
		`{"questions": []}`,                                              // empty list
		`{"questions": [{"question_text": "q?"}]}`,                       // no options
		`{"questions": [{"question_text": "q?", "options": [{"text": "a", "is_correct": true}]}]}`, // one option
		`{"sessions": "wrong shape"}`,
	}
	for i, body := range bodies {
		body := body
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		}))

		_, err := New(srv.URL).GenerateQuiz(context.Background(), GenerateQuizRequest{
			Topic: "cells", Grade: 10, Difficulty: 7, NumQuestions: 1,
		})
		srv.Close()

		var invalid *InvalidResponseError
		if !errors.As(err, &invalid) {
			t.Errorf("body %d: expected *InvalidResponseError, got %v", i, err)
		}
	}
}

func TestSaveQuizResultsBody(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	results := map[string]QuestionResult{
		"q1": {IsCorrect: true, SelectedAnswer: "4", CorrectAnswer: "4"},
	}
	if err := New(srv.URL).SaveQuizResults(context.Background(), "qs1", results, 1, 1); err != nil {
		t.Fatal(err)
	}
	if gotPath != "/mcq-new/save-results" {
		t.Errorf("unexpected path %s", gotPath)
	}
}

func TestLegacyChatTurnRoutesBySession(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		_, _ = w.Write([]byte(`{"response": "Why do you think so?", "session_id": "legacy-7"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	first, err := c.LegacyChatTurn(context.Background(), LegacyChatRequest{
		Query: "what is photosynthesis", Grade: 10, Difficulty: 7, Subject: "biology",
	})
	if err != nil {
		t.Fatal(err)
	}
	if first.SessionID != "legacy-7" {
		t.Errorf("session id not decoded: %q", first.SessionID)
	}

	_, err = c.LegacyChatTurn(context.Background(), LegacyChatRequest{
		Query: "tell me more", Grade: 10, Difficulty: 7, Subject: "biology",
		SessionID: first.SessionID,
	})
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"/chat-new/chat/", "/chat-new/chat/legacy-7/follow-up"}
	if len(paths) != 2 || paths[0] != want[0] || paths[1] != want[1] {
		t.Errorf("expected paths %v, got %v", want, paths)
	}
}

func TestLegacyGenerateQuizStripsCognitiveParams(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		_, _ = w.Write([]byte(`{
			"questions": [{
				"_id": "legacy-q1",
				"question_text": "2+2?",
				"options": [
					{"text": "4", "is_correct": true},
					{"text": "5", "is_correct": false}
				]
			}]
		}`))
	}))
	defer srv.Close()

	resp, err := New(srv.URL).LegacyGenerateQuiz(context.Background(), GenerateQuizRequest{
		Topic: "arithmetic", Grade: 5, Difficulty: 3, NumQuestions: 1,
		BloomsLevel: 4, WebbsDOK: 2,
	})
	if err != nil {
		t.Fatal(err)
	}
	if gotPath != "/mcq/generate/" {
		t.Errorf("unexpected path %s", gotPath)
	}
	if _, ok := gotBody["blooms_level"]; ok {
		t.Error("blooms_level must not be sent to the legacy endpoint")
	}
	if _, ok := gotBody["webbs_dok"]; ok {
		t.Error("webbs_dok must not be sent to the legacy endpoint")
	}
	if resp.Questions[0].ID != "legacy-q1" {
		t.Errorf("expected _id backfill, got %q", resp.Questions[0].ID)
	}
}

func TestBaseURLTrailingSlashTrimmed(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	if err := New(srv.URL + "/").Login(context.Background(), "a", "b"); err != nil {
		t.Fatal(err)
	}
	if gotPath != "/auth/login/" {
		t.Errorf("expected clean path, got %q", gotPath)
	}
}
