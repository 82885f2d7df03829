// Package extraction turns raw OCR text from an identity document into a
// structured ExtractedRecord using LLM extraction, and canonicalizes the
// well-known section paths into profile field names.
package extraction

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/identity-verifier/internal/llm"
	"github.com/jonathan/identity-verifier/internal/prompts"
	"github.com/jonathan/identity-verifier/internal/schemas"
	"github.com/jonathan/identity-verifier/internal/types"
)

// Extractor extracts structured personal details from document text.
type Extractor struct {
	client llm.Client
	tier   llm.ModelTier
}

// New creates an Extractor on top of an LLM client. Extraction runs on the
// standard model tier.
func New(client llm.Client) *Extractor {
	return &Extractor{client: client, tier: llm.TierStandard}
}

// WithTier returns an Extractor using a specific model tier.
func (e *Extractor) WithTier(tier llm.ModelTier) *Extractor {
	return &Extractor{client: e.client, tier: tier}
}

// Extract runs LLM extraction over document text and returns the nested
// structured record. The response is schema-checked before decoding so that
// malformed extractions fail here, at the boundary, rather than inside the
// reconciliation engine.
func (e *Extractor) Extract(ctx context.Context, docText string) (types.ExtractedRecord, error) {
	if strings.TrimSpace(docText) == "" {
		return nil, &ParseError{Message: "no text found in document"}
	}

	prompt := buildExtractionPrompt(docText)

	response, err := e.client.GenerateJSON(ctx, prompt, e.tier)
	if err != nil {
		return nil, &APICallError{Message: "extraction request failed", Cause: err}
	}

	jsonStr, ok := extractJSONObject(response)
	if !ok {
		return nil, &ParseError{Message: "no JSON object found in response"}
	}

	if err := schemas.ValidateExtractedDetails(jsonStr); err != nil {
		return nil, &ParseError{Message: "extracted details failed schema validation", Cause: err}
	}

	var record types.ExtractedRecord
	if err := json.Unmarshal([]byte(jsonStr), &record); err != nil {
		return nil, &ParseError{Message: "failed to decode extracted details", Cause: err}
	}
	return record, nil
}

func buildExtractionPrompt(docText string) string {
	system := prompts.MustGet("extraction.json", "extract-system")
	template := prompts.MustGet("extraction.json", "extract-personal-details")
	return system + "\n\n" + prompts.Format(template, map[string]string{
		"DocumentText": docText,
	})
}

// extractJSONObject returns the outermost JSON object embedded in the
// response text. Models occasionally prepend commentary despite the JSON
// response mode.
func extractJSONObject(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}
