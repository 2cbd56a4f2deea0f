package llm

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/medkb/medical-chatbot-rag/internal/rag"
	"google.golang.org/genai"
)

const (
	geminiEmbeddingModel = "models/text-embedding-004"
	geminiChatModel      = "gemini-2.5-flash"
)

type GeminiClient struct {
	client   *genai.Client
	embedDim int
}

func NewGeminiClient(ctx context.Context, embedDim int) (*GeminiClient, error) {
	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("missing GOOGLE_API_KEY or GEMINI_API_KEY")
	}

	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiClient{client: c, embedDim: embedDim}, nil
}

func (g *GeminiClient) Embed(ctx context.Context, text string) ([]float32, error) {
	clean := normalizeWhitespace(text)
	if clean == "" {
		return nil, fmt.Errorf("empty text for embedding")
	}

	resp, err := g.client.Models.EmbedContent(
		ctx,
		geminiEmbeddingModel,
		genai.Text(clean),
		&genai.EmbedContentConfig{
			OutputDimensionality: genai.Ptr(int32(g.embedDim)),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini embed error: %w", err)
	}

	if len(resp.Embeddings) == 0 {
		return nil, fmt.Errorf("no embeddings returned")
	}

	values := resp.Embeddings[0].Values
	if len(values) != g.embedDim {
		return nil, fmt.Errorf("unexpected embedding size %d (expected %d)", len(values), g.embedDim)
	}

	out := make([]float32, g.embedDim)
	for i, v := range values {
		out[i] = float32(v)
	}
	return out, nil
}

func (g *GeminiClient) GenerateAnswer(
	ctx context.Context,
	question string,
	chunks []rag.DocChunk,
	lang string,
) (string, error) {
	if len(chunks) == 0 {
		return "I couldn't find anything in the indexed documents for this question.", nil
	}

	systemPrompt, contextText := buildSystemPrompt(chunks, lang)

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.Text(systemPrompt)[0],
	}

	resp, err := g.client.Models.GenerateContent(
		ctx,
		geminiChatModel,
		genai.Text(userPrompt(question, contextText)),
		cfg,
	)
	if err != nil {
		return "", fmt.Errorf("gemini generateContent error: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("empty response from gemini")
	}

	txt := strings.TrimSpace(resp.Text())
	if txt == "" {
		return "", fmt.Errorf("model returned empty text")
	}

	return txt, nil
}

var _ rag.EmbeddingsClient = (*GeminiClient)(nil)
var _ rag.LLMClient = (*GeminiClient)(nil)
