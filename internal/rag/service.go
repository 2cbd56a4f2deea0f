package rag

import (
	"context"
	"errors"
	"fmt"
	"strings"

	wl "github.com/abadojack/whatlanggo"

	"github.com/medkb/medical-chatbot-rag/internal/extract"
	"github.com/medkb/medical-chatbot-rag/internal/textsplit"
)

const fallbackAnswer = "I couldn't find anything in the indexed documents for this question."

type Service struct {
	repo       Repository
	embeddings EmbeddingsClient
	llm        LLMClient
	splitter   *textsplit.Splitter
	topK       int
}

func NewService(repo Repository, embeddings EmbeddingsClient, llm LLMClient, splitter *textsplit.Splitter, topK int) *Service {
	if topK <= 0 {
		topK = 3
	}
	return &Service{
		repo:       repo,
		embeddings: embeddings,
		llm:        llm,
		splitter:   splitter,
		topK:       topK,
	}
}

func (s *Service) Ask(ctx context.Context, req AskRequest) (*AskResponse, error) {
	q := strings.TrimSpace(req.Question)
	if q == "" {
		return nil, errors.New("question is required")
	}

	if req.Lang == "" || req.Lang == "auto" {
		req.Lang = detectLang(q)
	}

	// Embedding da pergunta
	vec, err := s.embeddings.Embed(ctx, q)
	if err != nil {
		return nil, err
	}

	topK := req.TopK
	if topK <= 0 {
		topK = s.topK
	}

	// Busca vetorial
	chunks, err := s.repo.SearchSimilarChunks(ctx, vec, topK)
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return &AskResponse{
			Answer:  fallbackAnswer,
			Sources: []SourceRef{},
		}, nil
	}

	// Gera resposta final com LLM usando os chunks
	answer, err := s.llm.GenerateAnswer(ctx, q, chunks, req.Lang)
	if err != nil {
		return nil, err
	}

	// Monta fontes
	sources := make([]SourceRef, 0, len(chunks))
	for _, c := range chunks {
		sources = append(sources, SourceRef{
			ChunkID: c.ID,
			Source:  c.Source,
			Page:    c.Page,
		})
	}

	return &AskResponse{
		Answer:  answer,
		Sources: sources,
	}, nil
}

// IngestDocument splits one extracted document, embeds each chunk and stores
// chunk + vector. Returns the number of chunks stored.
func (s *Service) IngestDocument(ctx context.Context, doc Document) (int, error) {
	content := extract.SanitizeUTF8(strings.TrimSpace(doc.Content))
	if content == "" {
		return 0, nil
	}

	chunks := s.splitter.Split(content)
	stored := 0

	for _, c := range chunks {
		c = extract.SanitizeUTF8(strings.TrimSpace(c))
		if c == "" {
			continue
		}

		vec, err := s.embeddings.Embed(ctx, c)
		if err != nil {
			return stored, fmt.Errorf("embedding error: %w", err)
		}

		chunk := &DocChunk{
			Source:  doc.Source,
			Page:    doc.Page,
			Content: c,
		}

		if _, err := s.repo.InsertChunk(ctx, chunk, vec); err != nil {
			return stored, fmt.Errorf("insert chunk error: %w", err)
		}
		stored++
	}

	return stored, nil
}

func detectLang(s string) string {
	info := wl.Detect(s)
	switch strings.ToLower(wl.LangToString(info.Lang)) {
	case "por":
		return "pt"
	case "spa":
		return "es"
	case "eng":
		return "en"
	default:
		return "en"
	}
}
