package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
)

// FakeMessage is one message in a fake participant response.
type FakeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// FakeSession is one session known to the fake platform server.
type FakeSession struct {
	ID               string
	Topic            string
	Goal             string
	Status           string
	NumParticipants  int
	CreatedAt        string
	UpdatedAt        string
	CriticalQuestion string
	Context          string
	Summary          string          // empty means the summary endpoint answers 404
	Responses        [][]FakeMessage // one entry per participant

	// Non-zero values force that HTTP status on the matching endpoint.
	DetailStatus    int
	ResponsesStatus int
}

// FakePlatform serves the subset of the platform REST API that
// dialogue-sync consumes, and records per-endpoint call counts so tests
// can assert which fetches happened.
type FakePlatform struct {
	Sessions []FakeSession

	// APIKey, when set, makes every endpoint reject other credentials.
	APIKey string

	// SearchStatus, when non-zero, forces that HTTP status on search.
	SearchStatus int

	SearchCalls    int
	DetailCalls    map[string]int
	SummaryCalls   map[string]int
	ResponsesCalls map[string]int
}

// NewFakePlatform creates a FakePlatform seeded with the given sessions.
func NewFakePlatform(sessions ...FakeSession) *FakePlatform {
	return &FakePlatform{
		Sessions:       sessions,
		DetailCalls:    make(map[string]int),
		SummaryCalls:   make(map[string]int),
		ResponsesCalls: make(map[string]int),
	}
}

// Start returns a running test server. Callers must Close it.
func (f *FakePlatform) Start() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(f.handle))
}

func (f *FakePlatform) handle(w http.ResponseWriter, r *http.Request) {
	if f.APIKey != "" && r.Header.Get("Authorization") != "Bearer "+f.APIKey {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/v1/sessions")
	path = strings.Trim(path, "/")

	if path == "" {
		f.handleSearch(w, r)
		return
	}

	parts := strings.SplitN(path, "/", 2)
	session := f.find(parts[0])
	if session == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return
	}

	if len(parts) == 1 {
		f.DetailCalls[session.ID]++
		if session.DetailStatus != 0 {
			writeJSON(w, session.DetailStatus, map[string]string{"error": "detail unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, sessionJSON(session, true))
		return
	}

	switch parts[1] {
	case "responses":
		f.ResponsesCalls[session.ID]++
		if session.ResponsesStatus != 0 {
			writeJSON(w, session.ResponsesStatus, map[string]string{"error": "responses unavailable"})
			return
		}
		responses := make([]map[string]interface{}, 0, len(session.Responses))
		for _, messages := range session.Responses {
			responses = append(responses, map[string]interface{}{
				"session_id": session.ID,
				"messages":   messages,
			})
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"responses": responses})
	case "summary":
		f.SummaryCalls[session.ID]++
		if session.Summary == "" {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "summary not found"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"summary":      session.Summary,
			"generated_at": session.UpdatedAt,
		})
	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown endpoint"})
	}
}

// handleSearch matches sessions whose topic or goal contains the query
// (case-insensitively) and whose status equals the status filter; empty
// filters match everything.
func (f *FakePlatform) handleSearch(w http.ResponseWriter, r *http.Request) {
	f.SearchCalls++
	if f.SearchStatus != 0 {
		writeJSON(w, f.SearchStatus, map[string]string{"error": "search unavailable"})
		return
	}

	query := strings.ToLower(r.URL.Query().Get("query"))
	status := r.URL.Query().Get("status")
	limit := len(f.Sessions)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	var matched []map[string]interface{}
	for i := range f.Sessions {
		s := &f.Sessions[i]
		if status != "" && s.Status != status {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(s.Topic+" "+s.Goal), query) {
			continue
		}
		if len(matched) < limit {
			matched = append(matched, sessionJSON(s, false))
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sessions": matched,
		"total":    len(matched),
		"limit":    limit,
		"offset":   0,
	})
}

func (f *FakePlatform) find(id string) *FakeSession {
	for i := range f.Sessions {
		if f.Sessions[i].ID == id {
			return &f.Sessions[i]
		}
	}
	return nil
}

func sessionJSON(s *FakeSession, detail bool) map[string]interface{} {
	m := map[string]interface{}{
		"id":               s.ID,
		"topic":            s.Topic,
		"goal":             s.Goal,
		"status":           s.Status,
		"num_participants": s.NumParticipants,
		"created_at":       s.CreatedAt,
		"updated_at":       s.UpdatedAt,
	}
	if detail {
		m["critical_question"] = s.CriticalQuestion
		m["context"] = s.Context
	}
	return m
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
