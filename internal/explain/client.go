package explain

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const systemPrompt = `You are a clinical pharmacogenomics assistant. Given a drug,
gene, diplotype, phenotype and risk classification, respond with a single JSON
object containing exactly these string fields: "summary", "mechanism",
"variant_effects", "clinical_context", "references". Do not add fields, markdown,
or commentary. Do not speculate beyond the provided classification.`

// Config holds settings for the explanation-service client.
type Config struct {
	Endpoint string // base URL, e.g. "https://api.openai.com/v1"
	Model    string
	APIKey   string
}

// Client calls an OpenAI-compatible chat endpoint to narrate risk results.
type Client struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// NewClient creates an explanation-service client.
func NewClient(cfg *Config, logger *zap.Logger) (*Client, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("model is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = strings.TrimSuffix(cfg.Endpoint, "/")
	}

	return &Client{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.Model,
		logger: logger.Named("explain"),
	}, nil
}

// Explain requests a narrative for the summary. Any transport or decode
// failure is returned as an error; callers fall back to Fallback.
func (c *Client) Explain(ctx context.Context, s Summary) (*Explanation, error) {
	payload, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode summary: %w", err)
	}

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: string(payload)},
		},
		Temperature: 0.2,
	})
	if err != nil {
		c.logger.Warn("explanation request failed",
			zap.String("drug", s.Drug),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return nil, fmt.Errorf("explanation request: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("explanation response has no choices")
	}

	var e Explanation
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &e); err != nil {
		return nil, fmt.Errorf("decode explanation: %w", err)
	}
	if e.Summary == "" || e.Mechanism == "" {
		return nil, fmt.Errorf("explanation response missing required fields")
	}
	e.Generated = true

	c.logger.Debug("explanation generated",
		zap.String("drug", s.Drug),
		zap.Duration("elapsed", time.Since(start)))

	return &e, nil
}

// Fallback builds the deterministic local explanation from the summary and
// the risk entry's pre-computed mechanism text. It performs no I/O and always
// succeeds.
func Fallback(s Summary, mechanism string) *Explanation {
	variantText := "No catalog variants were detected for this gene."
	if len(s.Variants) > 0 {
		variantText = strings.Join(s.Variants, "; ")
	}

	return &Explanation{
		Summary: fmt.Sprintf("%s is classified %q for this patient based on the %s diplotype %s (%s).",
			s.Drug, s.RiskLabel, s.Gene, s.Diplotype, s.Phenotype),
		Mechanism:      mechanism,
		VariantEffects: variantText,
		ClinicalNotes: fmt.Sprintf("Severity is rated %s. This assessment reflects published consensus "+
			"pharmacogenomic guidance and does not replace clinical judgment.", s.Severity),
		References: "CPIC guideline cited in the recommendation block",
		Generated:  false,
	}
}
