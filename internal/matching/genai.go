package matching

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"pulse-network-organizer/internal/entities"

	"google.golang.org/genai"
)

// GenAI asks a Gemini model to rank candidates.
type GenAI struct {
	model    string
	timeout  time.Duration
	generate func(ctx context.Context, prompt string) (string, error)
}

// NewGenAI creates a matcher backed by the Gemini API.
func NewGenAI(ctx context.Context, apiKey, model string, timeout time.Duration) (*GenAI, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("genai api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	m := &GenAI{model: model, timeout: timeout}
	m.generate = func(ctx context.Context, prompt string) (string, error) {
		resp, err := client.Models.GenerateContent(ctx, m.model, genai.Text(prompt), &genai.GenerateContentConfig{
			Temperature:      genai.Ptr[float32](0.2),
			ResponseMIMEType: "application/json",
		})
		if err != nil {
			return "", err
		}
		return responseText(resp), nil
	}
	return m, nil
}

// Name identifies the matcher in logs and responses.
func (m *GenAI) Name() string { return "genai:" + m.model }

// Match implements Matcher.
func (m *GenAI) Match(ctx context.Context, req Request) ([]entities.MatchSuggestion, error) {
	if len(req.Candidates) == 0 {
		return []entities.MatchSuggestion{}, nil
	}
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	text, err := m.generate(ctx, buildPrompt(req))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrMatcherUnavailable, err)
	}
	res, err := parseSuggestions(text, req.Candidates, req.Limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrMatcherUnavailable, err)
	}
	return res, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part != nil {
				b.WriteString(part.Text)
			}
		}
		break
	}
	return b.String()
}

func buildPrompt(req Request) string {
	var b strings.Builder
	b.WriteString("You help a research institute practise Giver's Gain networking.\n")
	b.WriteString("Rank the candidates who would be the most valuable introduction for the contact below.\n")
	b.WriteString(`Answer with a JSON array only: [{"contact_id": "...", "score": 0.0-1.0, "reason": "one sentence"}].` + "\n\n")

	c := req.Contact
	fmt.Fprintf(&b, "Contact: %s, %s at %s (%s). Tags: %s.\n", c.Name, c.Position, c.Company, c.Affiliation, strings.Join(c.Tags, ", "))
	if len(req.Goals) > 0 {
		b.WriteString("Goals:\n")
		for _, g := range req.Goals {
			if g.Achieved {
				continue
			}
			fmt.Fprintf(&b, "- [%s] %s: %s\n", g.Category, g.Title, g.Description)
		}
	}

	b.WriteString("\nCandidates:\n")
	for _, cand := range req.Candidates {
		fmt.Fprintf(&b, "- id=%s | %s | %s at %s | tags: %s\n", cand.ID, cand.Name, cand.Position, cand.Company, strings.Join(cand.Tags, ", "))
	}
	if req.Limit > 0 {
		fmt.Fprintf(&b, "\nReturn at most %d entries.\n", req.Limit)
	}
	return b.String()
}

type rawSuggestion struct {
	ContactID string  `json:"contact_id"`
	Score     float64 `json:"score"`
	Reason    string  `json:"reason"`
}

func parseSuggestions(text string, candidates []entities.Contact, limit int) ([]entities.MatchSuggestion, error) {
	start, end := strings.Index(text, "["), strings.LastIndex(text, "]")
	if start < 0 || end < start {
		return nil, fmt.Errorf("no json array in model response")
	}

	var raw []rawSuggestion
	if err := json.Unmarshal([]byte(text[start:end+1]), &raw); err != nil {
		return nil, fmt.Errorf("decode model response: %w", err)
	}

	names := make(map[string]string, len(candidates))
	for _, c := range candidates {
		names[c.ID] = c.Name
	}

	seen := make(map[string]struct{}, len(raw))
	res := make([]entities.MatchSuggestion, 0, len(raw))
	for _, r := range raw {
		name, ok := names[r.ContactID]
		if !ok {
			continue
		}
		if _, dup := seen[r.ContactID]; dup {
			continue
		}
		seen[r.ContactID] = struct{}{}
		res = append(res, entities.MatchSuggestion{
			ContactID: r.ContactID,
			Name:      name,
			Score:     min(max(r.Score, 0), 1),
			Reason:    strings.TrimSpace(r.Reason),
		})
	}
	return rank(res, limit), nil
}
