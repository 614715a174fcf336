// Package aitest runs a fake Gemini generateContent endpoint for tests.
package aitest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
)

// Server answers every :generateContent call with the configured reply.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	status   int
	body     string
	requests []map[string]any
	apiKeys  []string
	calls    atomic.Int64
}

func NewServer() *Server {
	s := &Server{status: http.StatusOK}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// ReplyText makes the server return one candidate whose text is text.
func (s *Server) ReplyText(text string) {
	b, _ := json.Marshal(map[string]any{
		"candidates": []any{map[string]any{
			"content": map[string]any{
				"role":  "model",
				"parts": []any{map[string]any{"text": text}},
			},
			"finishReason": "STOP",
		}},
	})
	s.set(http.StatusOK, string(b))
}

// ReplyEmpty makes the server return a response with no candidates.
func (s *Server) ReplyEmpty() {
	s.set(http.StatusOK, `{"candidates":[]}`)
}

// ReplyError makes the server fail with a Google RPC style error body.
func (s *Server) ReplyError(code int, status, message, reason string) {
	errBody := map[string]any{"code": code, "message": message, "status": status}
	if reason != "" {
		errBody["details"] = []any{map[string]any{
			"@type":  "type.googleapis.com/google.rpc.ErrorInfo",
			"reason": reason,
			"domain": "googleapis.com",
		}}
	}
	b, _ := json.Marshal(map[string]any{"error": errBody})
	s.set(code, string(b))
}

func (s *Server) set(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status, s.body = status, body
}

// Calls is the number of generateContent requests received.
func (s *Server) Calls() int { return int(s.calls.Load()) }

// LastRequest returns the decoded body of the most recent request.
func (s *Server) LastRequest() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return nil
	}
	return s.requests[len(s.requests)-1]
}

// LastAPIKey returns the API key sent with the most recent request.
func (s *Server) LastAPIKey() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.apiKeys) == 0 {
		return ""
	}
	return s.apiKeys[len(s.apiKeys)-1]
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || !strings.HasSuffix(r.URL.Path, ":generateContent") {
		http.NotFound(w, r)
		return
	}
	s.calls.Add(1)

	raw, _ := io.ReadAll(r.Body)
	var req map[string]any
	_ = json.Unmarshal(raw, &req)

	key := r.Header.Get("x-goog-api-key")
	if key == "" {
		key = r.URL.Query().Get("key")
	}

	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.apiKeys = append(s.apiKeys, key)
	status, body := s.status, s.body
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}
