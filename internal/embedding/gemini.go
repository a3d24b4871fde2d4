package embedding

import (
	"context"
	"fmt"
	"math"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultModel is the embedding model used when none is configured.
const DefaultModel = "text-embedding-004"

// GeminiProvider implements Provider using Google's Gemini embedding models.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a Gemini embedding provider. Construction is
// cheap; the expensive work happens per call, so callers that want lazy
// initialization should wrap the constructor in a LazyProvider.
func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{client: client, model: model}, nil
}

// Embed generates an embedding for the given text.
func (p *GeminiProvider) Embed(ctx context.Context, text string) ([]float64, error) {
	em := p.client.EmbeddingModel(p.model)
	resp, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, &UnavailableError{Message: "embed call failed", Cause: err}
	}
	if resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
		return nil, &UnavailableError{Message: "empty embedding in response"}
	}

	vec := make([]float64, len(resp.Embedding.Values))
	for i, v := range resp.Embedding.Values {
		vec[i] = float64(v)
	}
	return normalize(vec), nil
}

// Close releases the underlying API client.
func (p *GeminiProvider) Close() error {
	if p.client != nil {
		return p.client.Close()
	}
	return nil
}

// normalize scales vec to unit length. The API already returns normalized
// vectors for the embedding models in use; this guards against model
// changes. Zero vectors are returned unchanged.
func normalize(vec []float64) []float64 {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	if sum == 0 {
		return vec
	}
	mag := math.Sqrt(sum)
	for i := range vec {
		vec[i] /= mag
	}
	return vec
}
