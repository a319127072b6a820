package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/campusmind/mindmate/backend/internal/config"
	model "github.com/campusmind/mindmate/backend/internal/model/chat"
	chatService "github.com/campusmind/mindmate/backend/internal/service/chat"
)

type stubCompleter struct {
	reply string
	err   error
	calls int
}

func (c *stubCompleter) Complete(context.Context, string) (string, error) {
	c.calls++
	return c.reply, c.err
}

func setupRouter(completer chatService.Completer) *chi.Mux {
	svc := chatService.NewService(completer, config.ChatConfig{MaxMessageChars: 5000})
	handler := New(svc)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func postChat(r *chi.Mux, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestChatValidMessage(t *testing.T) {
	completer := &stubCompleter{reply: "That sounds tough. What part worries you most?"}
	r := setupRouter(completer)

	payload, _ := json.Marshal(map[string]string{
		"message": "I am stressed about placements",
		"userId":  "stu-1",
	})
	resp := postChat(r, payload)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body model.Response
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Reply != completer.reply {
		t.Fatalf("unexpected reply: %q", body.Reply)
	}
	if body.Warning {
		t.Fatal("expected warning=false")
	}
	if body.UserID != "stu-1" {
		t.Fatalf("unexpected userId: %q", body.UserID)
	}
	if body.Timestamp == "" {
		t.Fatal("expected a timestamp")
	}
}

func TestChatCrisisMessage(t *testing.T) {
	completer := &stubCompleter{reply: "I hear you. You are not alone."}
	r := setupRouter(completer)

	payload, _ := json.Marshal(map[string]string{"message": "I want to end it all"})
	resp := postChat(r, payload)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body model.Response
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.Warning {
		t.Fatal("expected warning=true")
	}
	if body.SafetyMessage == "" {
		t.Fatal("expected a safety message")
	}
	if len(body.Resources) == 0 {
		t.Fatal("expected crisis resources")
	}
}

func TestChatMissingMessage(t *testing.T) {
	completer := &stubCompleter{reply: "hello"}
	r := setupRouter(completer)

	resp := postChat(r, []byte(`{}`))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}

	var body struct {
		Reply   string `json:"reply"`
		Warning bool   `json:"warning"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Reply != promptMissing {
		t.Fatalf("unexpected reply: %q", body.Reply)
	}
	if completer.calls != 0 {
		t.Fatalf("completer should not be called, got %d calls", completer.calls)
	}
}

func TestChatEmptyMessage(t *testing.T) {
	completer := &stubCompleter{reply: "hello"}
	r := setupRouter(completer)

	resp := postChat(r, []byte(`{"message":"   "}`))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}

	var body struct {
		Reply string `json:"reply"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Reply != promptEmpty {
		t.Fatalf("unexpected reply: %q", body.Reply)
	}
	if completer.calls != 0 {
		t.Fatalf("completer should not be called, got %d calls", completer.calls)
	}
}

func TestChatMessageTooLong(t *testing.T) {
	completer := &stubCompleter{reply: "hello"}
	r := setupRouter(completer)

	payload, _ := json.Marshal(map[string]string{
		"message": strings.Repeat("a", 6000),
	})
	resp := postChat(r, payload)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}

	var body struct {
		Reply string `json:"reply"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Reply != promptTooLong {
		t.Fatalf("unexpected reply: %q", body.Reply)
	}
	if completer.calls != 0 {
		t.Fatalf("completer should not be called, got %d calls", completer.calls)
	}
}

func TestChatMalformedBody(t *testing.T) {
	completer := &stubCompleter{reply: "hello"}
	r := setupRouter(completer)

	resp := postChat(r, []byte(`{not json`))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if completer.calls != 0 {
		t.Fatalf("completer should not be called, got %d calls", completer.calls)
	}
}

func TestChatUpstreamFailure(t *testing.T) {
	completer := &stubCompleter{err: errors.New("model offline")}
	r := setupRouter(completer)

	payload, _ := json.Marshal(map[string]string{
		"message": "I am stressed about placements",
		"userId":  "stu-1",
	})
	resp := postChat(r, payload)

	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", resp.Code)
	}

	var body model.Response
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.Contains(body.Reply, "trouble responding") {
		t.Fatalf("expected fallback reply, got %q", body.Reply)
	}
	if strings.Contains(body.Reply, "model offline") {
		t.Fatal("upstream error text must not reach the client")
	}
	if body.Warning {
		t.Fatal("expected warning=false")
	}
	if body.UserID != "stu-1" {
		t.Fatalf("unexpected userId: %q", body.UserID)
	}
}

func TestChatWithoutCompleter(t *testing.T) {
	r := setupRouter(nil)

	payload, _ := json.Marshal(map[string]string{"message": "hello there"})
	resp := postChat(r, payload)

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}

	var body model.Response
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.Contains(body.Reply, "trouble responding") {
		t.Fatalf("expected fallback reply, got %q", body.Reply)
	}
}
