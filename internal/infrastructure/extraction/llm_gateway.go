package extraction

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"invoicedash/internal/domain/entities"
	"invoicedash/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"
)

var (
	ErrUnknownModel  = errors.New("unknown extraction model")
	ErrMissingAPIKey = errors.New("extraction provider API key not configured")
	ErrEmptyResponse = errors.New("empty response from extraction provider")
)

const extractionPrompt = `Extract invoice data from the following text and return ONLY a valid JSON object with this exact structure:

{
  "vendor": {
    "name": "vendor company name",
    "address": "vendor address if available",
    "taxId": "tax ID if available"
  },
  "invoice": {
    "number": "invoice number",
    "date": "invoice date in YYYY-MM-DD format",
    "currency": "currency code like USD, EUR etc",
    "subtotal": 0,
    "taxPercent": 0,
    "total": 0,
    "poNumber": "purchase order number if available",
    "poDate": "PO date if available",
    "lineItems": [
      {
        "description": "item description",
        "unitPrice": 0,
        "quantity": 0,
        "total": 0
      }
    ]
  }
}

Text to extract from:
`

// provider describes one hosted LLM backend. Both Gemini and Groq expose
// OpenAI-compatible chat completion endpoints, so a single client library
// serves both; only the base URL, key and model name differ.
type provider struct {
	keyEnv       string
	modelEnv     string
	baseURL      string
	defaultModel string
}

var providers = map[string]provider{
	"gemini": {
		keyEnv:       "GEMINI_API_KEY",
		modelEnv:     "GEMINI_MODEL",
		baseURL:      "https://generativelanguage.googleapis.com/v1beta/openai/",
		defaultModel: "gemini-2.0-flash",
	},
	"groq": {
		keyEnv:       "GROQ_API_KEY",
		modelEnv:     "GROQ_MODEL",
		baseURL:      "https://api.groq.com/openai/v1",
		defaultModel: "llama-3.3-70b-versatile",
	},
}

// LLMExtractionGateway turns a PDF into structured invoice fields by running
// the document text through a hosted chat model.
type LLMExtractionGateway struct {
	clients  map[string]*openai.Client
	models   map[string]string
	mockMode bool
}

var _ interfaces.IExtractionGateway = (*LLMExtractionGateway)(nil)

// NewLLMExtractionGateway builds clients for every provider with a configured
// API key. Providers without a key stay unconfigured and fail per-call, so a
// deployment with only one key keeps the other endpoint rejecting cleanly.
func NewLLMExtractionGateway() *LLMExtractionGateway {
	g := &LLMExtractionGateway{
		clients: map[string]*openai.Client{},
		models:  map[string]string{},
	}

	if isExtractionMockEnabled() {
		log.Info().Msg("extraction gateway mock mode enabled")
		g.mockMode = true
		return g
	}

	for name, p := range providers {
		key := strings.TrimSpace(os.Getenv(p.keyEnv))
		if key == "" {
			log.Warn().Str("provider", name).Str("env", p.keyEnv).Msg("extraction provider not configured")
			continue
		}
		cfg := openai.DefaultConfig(key)
		cfg.BaseURL = p.baseURL
		g.clients[name] = openai.NewClientWithConfig(cfg)

		model := strings.TrimSpace(os.Getenv(p.modelEnv))
		if model == "" {
			model = p.defaultModel
		}
		g.models[name] = model
		log.Info().Str("provider", name).Str("model", model).Msg("extraction provider initialized")
	}

	return g
}

func (g *LLMExtractionGateway) ExtractInvoice(ctx context.Context, pdfData []byte, model string) (entities.InvoiceRecord, error) {
	if g.mockMode {
		return mockExtraction(), nil
	}

	if _, ok := providers[model]; !ok {
		return entities.InvoiceRecord{}, fmt.Errorf("%w: %s", ErrUnknownModel, model)
	}
	client, ok := g.clients[model]
	if !ok {
		return entities.InvoiceRecord{}, fmt.Errorf("%w: %s", ErrMissingAPIKey, providers[model].keyEnv)
	}

	text, err := extractPDFText(pdfData)
	if err != nil {
		return entities.InvoiceRecord{}, err
	}

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.models[model],
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: extractionPrompt + text,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Str("provider", model).Msg("chat completion failed")
		return entities.InvoiceRecord{}, err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return entities.InvoiceRecord{}, ErrEmptyResponse
	}

	rec, err := parseExtractionPayload(resp.Choices[0].Message.Content)
	if err != nil {
		log.Error().Err(err).Str("provider", model).Msg("model response had no parseable payload")
		return entities.InvoiceRecord{}, err
	}
	return rec, nil
}

// mockExtraction returns a stable record for local runs without API keys.
func mockExtraction() entities.InvoiceRecord {
	return entities.InvoiceRecord{
		Vendor: entities.Vendor{Name: "Mock Vendor Ltd", Address: "1 Mock Street"},
		Invoice: entities.InvoiceDetails{
			Number:     "MOCK-0001",
			Date:       "2025-01-01",
			Currency:   "USD",
			TaxPercent: 10,
			LineItems: []entities.LineItem{
				{Description: "Mock item", UnitPrice: 10, Quantity: 2, Total: 20},
			},
		},
	}
}

func isExtractionMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("EXTRACTION_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
