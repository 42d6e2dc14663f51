package internal

// ProjectTemplateData builds the renderer-facing projection of one session.
// Only originator-authored (user role) messages are retained; participants
// left with zero retained messages are dropped and the remaining ones are
// renumbered contiguously from 1.
func ProjectTemplateData(detail *SessionDetail, matchedQueries []string, summary string, responses []ParticipantResponse) TemplateData {
	var participants []Participant
	for _, resp := range responses {
		var messages []ParticipantMessage
		for _, msg := range resp.Messages {
			if msg.Role == RoleUser {
				messages = append(messages, ParticipantMessage{Content: msg.Content})
			}
		}
		if len(messages) == 0 {
			continue
		}
		participants = append(participants, Participant{
			Number:   len(participants) + 1,
			Messages: messages,
		})
	}

	return TemplateData{
		ID:               detail.ID,
		Topic:            detail.Topic,
		Goal:             detail.Goal,
		Status:           detail.Status,
		NumParticipants:  detail.NumParticipants,
		CreatedAt:        detail.CreatedAt,
		Date:             DateToken(detail.CreatedAt),
		CriticalQuestion: detail.CriticalQuestion,
		Context:          detail.Context,
		Summary:          summary,
		Tags:             matchedQueries,
		HasResponses:     len(participants) > 0,
		Participants:     participants,
	}
}
