package internal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// searchPageSize is the fixed page size for every search call. The
// pipeline never paginates past the first page of a query/status pair.
const searchPageSize = 100

// SessionAPI is the subset of the platform API the pipeline consumes.
type SessionAPI interface {
	Search(ctx context.Context, query, status string, limit, offset int) (*SearchResult, error)
	GetSession(ctx context.Context, id string) (*SessionDetail, error)
	GetResponses(ctx context.Context, id string) ([]ParticipantResponse, error)
	GetSummary(ctx context.Context, id string) (*SessionSummaryResult, error)
}

// Renderer renders a session projection to markdown. templatePath selects
// an explicit template; empty means the renderer's default.
type Renderer interface {
	Render(data TemplateData, templatePath string) (string, error)
}

// Pipeline drives one end-to-end synchronization pass.
type Pipeline struct {
	api      SessionAPI
	renderer Renderer
	cfg      *Config
	baseDir  string
}

// NewPipeline creates a Pipeline. Relative paths in cfg are resolved
// against baseDir.
func NewPipeline(api SessionAPI, renderer Renderer, cfg *Config, baseDir string) *Pipeline {
	return &Pipeline{
		api:      api,
		renderer: renderer,
		cfg:      cfg,
		baseDir:  baseDir,
	}
}

// Run performs one synchronization pass and returns the number of newly
// written session files. Individual query or candidate failures are logged
// and skipped; only setup failures (output directory, missing template)
// abort the run.
func (p *Pipeline) Run(ctx context.Context) (int, error) {
	outputDir := p.cfg.Output.Dir
	if !filepath.IsAbs(outputDir) {
		outputDir = filepath.Join(p.baseDir, outputDir)
	}

	synced, err := scanSyncedIDs(outputDir)
	if err != nil {
		return 0, err
	}
	LogDebug("found %d previously synced session(s) in %s", len(synced), outputDir)

	candidates := p.searchCandidates(ctx)

	fresh := make([]*Candidate, 0, len(candidates))
	for _, cand := range candidates {
		if synced[cand.Summary.ID] {
			LogDebug("already synced, skipping %s", cand.Summary.ID)
			continue
		}
		fresh = append(fresh, cand)
	}

	if len(fresh) == 0 {
		LogInfo("no new sessions to sync")
		return 0, nil
	}
	LogInfo("found %d new session(s)", len(fresh))

	count := 0
	for _, cand := range fresh {
		written, err := p.processCandidate(ctx, cand, outputDir)
		if err != nil {
			return count, err
		}
		if written {
			count++
		}
	}
	return count, nil
}

// scanSyncedIDs lists the output directory (creating it if absent) and
// collects every session identifier embedded in a filename.
func scanSyncedIDs(outputDir string) (map[string]bool, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", outputDir, err)
	}

	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return nil, fmt.Errorf("reading output directory %s: %w", outputDir, err)
	}

	ids := make(map[string]bool)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if id, ok := ExtractSessionID(entry.Name()); ok {
			ids[id] = true
		}
	}
	return ids, nil
}

// searchCandidates runs every configured query against both session
// statuses and merges the results by session ID, accumulating the labels
// of every query that matched. Candidates keep the order of their first
// appearance; a failing search call only drops that query/status pair.
func (p *Pipeline) searchCandidates(ctx context.Context) []*Candidate {
	var ordered []*Candidate
	byID := make(map[string]*Candidate)

	statuses := []string{StatusCompleted, StatusActive}
	for _, query := range p.cfg.Sync.Queries {
		for _, status := range statuses {
			result, err := p.api.Search(ctx, query, status, searchPageSize, 0)
			if err != nil {
				LogWarn("search failed for query %q (status %s): %v", query, status, err)
				continue
			}
			for i := range result.Sessions {
				session := result.Sessions[i]
				cand, seen := byID[session.ID]
				if !seen {
					cand = &Candidate{Summary: session}
					byID[session.ID] = cand
					ordered = append(ordered, cand)
				}
				if !containsString(cand.MatchedQueries, query) {
					cand.MatchedQueries = append(cand.MatchedQueries, query)
				}
			}
		}
	}
	return ordered
}

// processCandidate runs one candidate through fetch, filter, render and
// write. It returns true when a file was written. The only error returned
// is a missing template, which aborts the whole run; everything else is
// logged and swallowed so the next candidate still gets processed.
func (p *Pipeline) processCandidate(ctx context.Context, cand *Candidate, outputDir string) (bool, error) {
	id := cand.Summary.ID

	detail, err := p.api.GetSession(ctx, id)
	if err != nil {
		LogWarn("failed to fetch session %s: %v", id, err)
		return false, nil
	}

	if len(p.cfg.Sync.Keywords) > 0 && !matchesKeywords(detail, p.cfg.Sync.Keywords) {
		LogInfo("skipping %s: no keyword match", id)
		return false, nil
	}

	if detail.NumParticipants < p.cfg.Sync.MinParticipants {
		LogInfo("skipping %s: %d participant(s), need at least %d",
			id, detail.NumParticipants, p.cfg.Sync.MinParticipants)
		return false, nil
	}

	summary := fetchSummary(ctx, p.api, id)
	if p.cfg.Sync.RequireSummary && summary == "" {
		LogInfo("skipping %s: no summary available", id)
		return false, nil
	}

	responses, err := p.api.GetResponses(ctx, id)
	if err != nil {
		LogWarn("failed to fetch responses for %s, continuing without: %v", id, err)
		responses = nil
	}

	data := ProjectTemplateData(detail, cand.MatchedQueries, summary, responses)

	rendered, err := p.renderer.Render(data, p.cfg.Output.Template)
	if err != nil {
		if errors.Is(err, ErrTemplateNotFound) {
			return false, err
		}
		LogWarn("failed to render session %s: %v", id, err)
		return false, nil
	}

	filename := ResolveFilename(p.cfg.Output.Filename, detail)
	path := filepath.Join(outputDir, filename)
	if err := os.WriteFile(path, []byte(rendered), 0644); err != nil {
		LogError("failed to write %s: %v", path, err)
		return false, nil
	}

	LogInfo("synced %s -> %s", id, filename)
	return true, nil
}

// matchesKeywords reports whether at least one configured keyword occurs
// (case-insensitively) in the session's topic, goal or context.
func matchesKeywords(detail *SessionDetail, keywords []string) bool {
	haystack := strings.ToLower(detail.Topic + " " + detail.Goal + " " + detail.Context)
	for _, keyword := range keywords {
		if strings.Contains(haystack, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}

// fetchSummary returns the platform summary for a session, or the empty
// string when none exists or the fetch fails. Summary absence is a filter
// input, never a hard error.
func fetchSummary(ctx context.Context, api SessionAPI, id string) string {
	result, err := api.GetSummary(ctx, id)
	if err != nil {
		LogDebug("no summary for %s: %v", id, err)
		return ""
	}
	if result.Summary == nil {
		return ""
	}
	return *result.Summary
}

func containsString(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}
