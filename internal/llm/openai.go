package llm

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/openai/openai-go"

	"github.com/medkb/medical-chatbot-rag/internal/rag"
)

type OpenAIClient struct {
	client         *openai.Client
	chatModel      openai.ChatModel
	embeddingModel openai.EmbeddingModel
	embedDim       int
}

// NewOpenAIClient reads OPENAI_API_KEY from the environment (the SDK default).
// embedDim > 0 asks the API to truncate embeddings to that dimension.
func NewOpenAIClient(embedDim int) (*OpenAIClient, error) {
	if os.Getenv("OPENAI_API_KEY") == "" {
		return nil, fmt.Errorf("missing OPENAI_API_KEY")
	}

	client := openai.NewClient()
	return &OpenAIClient{
		client:         &client,
		chatModel:      openai.ChatModelGPT4oMini,
		embeddingModel: openai.EmbeddingModelTextEmbedding3Small,
		embedDim:       embedDim,
	}, nil
}

func (o *OpenAIClient) Embed(ctx context.Context, text string) ([]float32, error) {
	clean := normalizeWhitespace(text)
	if clean == "" {
		return nil, fmt.Errorf("empty text for embedding")
	}

	params := openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: []string{clean},
		},
		Model: o.embeddingModel,
	}
	if o.embedDim > 0 {
		params.Dimensions = openai.Int(int64(o.embedDim))
	}

	resp, err := o.client.Embeddings.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai embed error: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("no embeddings returned")
	}

	values := resp.Data[0].Embedding
	out := make([]float32, len(values))
	for i, v := range values {
		out[i] = float32(v)
	}
	return out, nil
}

func (o *OpenAIClient) GenerateAnswer(
	ctx context.Context,
	question string,
	chunks []rag.DocChunk,
	lang string,
) (string, error) {
	if len(chunks) == 0 {
		return "I couldn't find anything in the indexed documents for this question.", nil
	}

	systemPrompt, contextText := buildSystemPrompt(chunks, lang)

	completion, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt(question, contextText)),
		},
		Model: o.chatModel,
	})
	if err != nil {
		return "", fmt.Errorf("openai completion error: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("empty response from openai")
	}

	txt := strings.TrimSpace(completion.Choices[0].Message.Content)
	if txt == "" {
		return "", fmt.Errorf("model returned empty text")
	}

	return txt, nil
}

var _ rag.EmbeddingsClient = (*OpenAIClient)(nil)
var _ rag.LLMClient = (*OpenAIClient)(nil)
