package internal

// Session status values recognized by the platform API.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// Message roles within a participant response.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// SessionSummary is the search-result view of a session.
type SessionSummary struct {
	ID              string `json:"id"`
	Topic           string `json:"topic"`
	Goal            string `json:"goal"`
	Status          string `json:"status"` // "active" or "completed"
	NumParticipants int    `json:"num_participants"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

// SessionDetail is the full session record fetched by ID.
type SessionDetail struct {
	SessionSummary
	CriticalQuestion string `json:"critical_question,omitempty"`
	Context          string `json:"context,omitempty"`
	Summary          string `json:"summary,omitempty"`
}

// Message is a single message within a participant response.
type Message struct {
	Role    string `json:"role"` // "user" (originator) or "assistant"
	Content string `json:"content"`
}

// ParticipantResponse holds one participant's message history for a session.
type ParticipantResponse struct {
	SessionID string    `json:"session_id,omitempty"`
	Messages  []Message `json:"messages"`
}

// SearchResult is one page of session search results.
type SearchResult struct {
	Sessions []SessionSummary `json:"sessions"`
	Total    int              `json:"total"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}

// SessionSummaryResult is the platform-generated summary for a session.
// Summary is nil when no summary has been generated yet.
type SessionSummaryResult struct {
	Summary     *string `json:"summary"`
	GeneratedAt string  `json:"generated_at,omitempty"`
}

// Candidate is a session discovered by search, together with the labels of
// every configured query that returned it (first-seen order, no duplicates).
type Candidate struct {
	Summary        SessionSummary
	MatchedQueries []string
}

// Participant is one contributor's retained messages, numbered sequentially.
// Participants with zero retained messages are dropped before numbering, so
// numbers are always contiguous from 1.
type Participant struct {
	Number   int
	Messages []ParticipantMessage
}

// ParticipantMessage is a single retained originator-authored message.
type ParticipantMessage struct {
	Content string
}

// TemplateData is the renderer-facing projection of one session.
type TemplateData struct {
	ID               string
	Topic            string
	Goal             string
	Status           string
	NumParticipants  int
	CreatedAt        string
	Date             string
	CriticalQuestion string
	Context          string
	Summary          string
	Tags             []string
	HasResponses     bool
	Participants     []Participant
}
