package internal

// CreateTestSummary creates a test session summary with sample data
func CreateTestSummary(id string) SessionSummary {
	return SessionSummary{
		ID:              id,
		Topic:           "Test Topic",
		Goal:            "Test goal",
		Status:          StatusCompleted,
		NumParticipants: 3,
		CreatedAt:       "2026-02-24T10:30:00Z",
		UpdatedAt:       "2026-02-25T08:00:00Z",
	}
}

// CreateTestDetail creates a test session detail with sample data
func CreateTestDetail(id string) *SessionDetail {
	return &SessionDetail{
		SessionSummary:   CreateTestSummary(id),
		CriticalQuestion: "What should we do?",
		Context:          "Some background context",
	}
}

// CreateTestResponses creates participant responses with custom messages
func CreateTestResponses(sessionID string, messages ...[]Message) []ParticipantResponse {
	responses := make([]ParticipantResponse, 0, len(messages))
	for _, msgs := range messages {
		responses = append(responses, ParticipantResponse{
			SessionID: sessionID,
			Messages:  msgs,
		})
	}
	return responses
}
