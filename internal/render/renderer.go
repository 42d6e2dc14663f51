package render

import (
	"fmt"
	"os"

	"github.com/cbroglie/mustache"
	"github.com/iksnae/dialogue-sync/internal"
)

// Renderer renders session projections through a mustache template file.
type Renderer struct {
	defaultTemplate string
}

// NewRenderer creates a Renderer that falls back to defaultTemplate when
// no explicit template path is given.
func NewRenderer(defaultTemplate string) *Renderer {
	return &Renderer{defaultTemplate: defaultTemplate}
}

// Render renders the session projection. templatePath selects an explicit
// template; empty selects the renderer's default. A path that does not
// resolve to an existing file yields internal.ErrTemplateNotFound.
func (r *Renderer) Render(data internal.TemplateData, templatePath string) (string, error) {
	path := templatePath
	if path == "" {
		path = r.defaultTemplate
	}

	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %s", internal.ErrTemplateNotFound, path)
	}

	out, err := mustache.RenderFile(path, templateContext(data))
	if err != nil {
		return "", fmt.Errorf("rendering template %s: %w", path, err)
	}
	return out, nil
}

// templateContext flattens the typed projection into the map the template
// sees. Absent optional fields become nil so mustache sections treat them
// as falsy.
func templateContext(data internal.TemplateData) map[string]interface{} {
	participants := make([]map[string]interface{}, 0, len(data.Participants))
	for _, p := range data.Participants {
		messages := make([]map[string]interface{}, 0, len(p.Messages))
		for _, m := range p.Messages {
			messages = append(messages, map[string]interface{}{"content": m.Content})
		}
		participants = append(participants, map[string]interface{}{
			"number":   p.Number,
			"messages": messages,
		})
	}

	return map[string]interface{}{
		"id":                data.ID,
		"topic":             data.Topic,
		"goal":              data.Goal,
		"status":            data.Status,
		"num_participants":  data.NumParticipants,
		"created_at":        data.CreatedAt,
		"date":              data.Date,
		"critical_question": nullable(data.CriticalQuestion),
		"context":           nullable(data.Context),
		"summary":           nullable(data.Summary),
		"tags":              data.Tags,
		"has_responses":     data.HasResponses,
		"participants":      participants,
	}
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
