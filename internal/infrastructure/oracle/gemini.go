package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"wavemate/internal/domain/matching"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

// result is the JSON shape the model is asked for. Area strings are
// validated against the canonical set by the caller, not here.
type result struct {
	Areas []string `json:"areas"`
	Towns []string `json:"towns"`
}

// GeminiNormalizer classifies free-text destination input into compass
// areas and, when asked, towns. It is stateless and safe for concurrent
// use.
type GeminiNormalizer struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

func NewGeminiNormalizer(ctx context.Context, apiKey, model string, logger *zap.Logger) (*GeminiNormalizer, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	return &GeminiNormalizer{client: client, model: model, logger: logger}, nil
}

func (g *GeminiNormalizer) Normalize(ctx context.Context, country, areaText string, intent matching.Intent) ([]string, []string, error) {
	if g == nil || g.client == nil {
		return nil, nil, errors.New("gemini normalizer is not initialized")
	}

	prompt := buildPrompt(country, areaText, intent.TownGranular())

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("generate content: %w", err)
	}

	raw := collectText(resp)
	if raw == "" {
		return nil, nil, errors.New("gemini api returned empty response")
	}

	g.logger.Debug("destination oracle response",
		zap.String("country", country),
		zap.String("area_text", areaText),
		zap.String("raw", raw),
	)

	res, err := parseResult(raw)
	if err != nil {
		return nil, nil, err
	}
	if !intent.TownGranular() {
		res.Towns = nil
	}
	return res.Areas, res.Towns, nil
}

func buildPrompt(country, areaText string, withTowns bool) string {
	var b strings.Builder
	b.WriteString("Classify a surf-trip destination into compass regions of the country.\n")
	b.WriteString("Allowed areas: north, south, east, west, northeast, northwest, southeast, southwest.\n")
	fmt.Fprintf(&b, "Country: %s\nArea description: %s\n", strings.TrimSpace(country), strings.TrimSpace(areaText))
	if withTowns {
		b.WriteString("Also list the specific towns named in the description.\n")
	} else {
		b.WriteString("Do not list towns.\n")
	}
	b.WriteString("Answer with JSON only: {\"areas\": [...], \"towns\": [...]}. ")
	b.WriteString("Use multiple areas when the description spans more than one region. Use empty arrays when unsure.")
	return b.String()
}

func collectText(resp *genai.GenerateContentResponse) string {
	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}
	return strings.TrimSpace(builder.String())
}

func parseResult(raw string) (result, error) {
	cleaned := extractJSON(raw)

	var res result
	if err := json.Unmarshal([]byte(cleaned), &res); err != nil {
		return result{}, fmt.Errorf("parse oracle response: %w", err)
	}
	return res, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}
