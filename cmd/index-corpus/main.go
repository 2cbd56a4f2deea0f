package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/medkb/medical-chatbot-rag/internal/config"
	"github.com/medkb/medical-chatbot-rag/internal/db"
	"github.com/medkb/medical-chatbot-rag/internal/extract"
	"github.com/medkb/medical-chatbot-rag/internal/llm"
	"github.com/medkb/medical-chatbot-rag/internal/rag"
	"github.com/medkb/medical-chatbot-rag/internal/textsplit"
)

func main() {
	_ = godotenv.Load()

	pathFlag := flag.String("path", "", "corpus directory (default: DATA_DIR)")
	flag.Parse()

	ctx := context.Background()
	cfg := config.Load()

	root := *pathFlag
	if root == "" {
		root = cfg.DataDir
	}

	var repo rag.Repository
	switch cfg.VectorStore {
	case "pgvector":
		pool := db.NewPool(cfg.DatabaseURL)
		defer pool.Close()
		if err := db.EnsureSchema(ctx, pool, cfg.EmbeddingDim); err != nil {
			log.Fatalf("failed to ensure schema: %v", err)
		}
		repo = rag.NewPgRepository(pool)
	case "qdrant":
		qr, err := rag.NewQdrantRepository(cfg.QdrantHost, cfg.QdrantPort, cfg.QdrantCollection, uint64(cfg.EmbeddingDim))
		if err != nil {
			log.Fatalf("failed to init qdrant: %v", err)
		}
		repo = qr
	default:
		log.Fatalf("unknown vector store: %s", cfg.VectorStore)
	}

	client, err := newAIClient(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to init %s client: %v", cfg.LLMProvider, err)
	}

	splitter := textsplit.New(cfg.ChunkSize, cfg.ChunkOverlap)
	svc := rag.NewService(repo, client, client, splitter, cfg.TopK)

	log.Printf("📂 Indexing corpus from %s (store=%s provider=%s)", root, cfg.VectorStore, cfg.LLMProvider)

	files, totalChunks := 0, 0
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isCorpusFile(path) {
			return nil
		}

		docs, err := loadDocuments(path)
		if err != nil {
			return fmt.Errorf("loading %s: %w", path, err)
		}

		fileChunks := 0
		for _, doc := range docs {
			n, err := svc.IngestDocument(ctx, doc)
			if err != nil {
				return fmt.Errorf("indexing %s: %w", path, err)
			}
			fileChunks += n
		}

		files++
		totalChunks += fileChunks
		log.Printf("indexed %s pages=%d chunks=%d", filepath.Base(path), len(docs), fileChunks)
		return nil
	})
	if err != nil {
		log.Fatalf("indexing failed: %v", err)
	}

	log.Printf("✅ Indexing complete: %d files, %d chunks.", files, totalChunks)
}

type aiClient interface {
	rag.EmbeddingsClient
	rag.LLMClient
}

func newAIClient(ctx context.Context, cfg *config.Config) (aiClient, error) {
	switch cfg.LLMProvider {
	case "openai":
		return llm.NewOpenAIClient(cfg.EmbeddingDim)
	default:
		return llm.NewGeminiClient(ctx, cfg.EmbeddingDim)
	}
}

func isCorpusFile(path string) bool {
	l := strings.ToLower(path)
	return strings.HasSuffix(l, ".pdf") ||
		strings.HasSuffix(l, ".md") ||
		strings.HasSuffix(l, ".txt") ||
		strings.HasSuffix(l, ".html") ||
		strings.HasSuffix(l, ".htm")
}

// loadDocuments extracts one Document per PDF page, or a single Document for
// flat text and HTML sources. Only the source filename and page number are
// kept as metadata.
func loadDocuments(path string) ([]rag.Document, error) {
	source := filepath.Base(path)
	lpath := strings.ToLower(path)

	switch {
	case strings.HasSuffix(lpath, ".pdf"):
		pages, err := extract.PDFPages(path)
		if err != nil {
			return nil, err
		}
		docs := make([]rag.Document, 0, len(pages))
		for _, p := range pages {
			docs = append(docs, rag.Document{Source: source, Page: p.Number, Content: p.Text})
		}
		return docs, nil

	case strings.HasSuffix(lpath, ".html") || strings.HasSuffix(lpath, ".htm"):
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		content := extract.MainText(string(data))
		if strings.TrimSpace(content) == "" {
			return nil, nil
		}
		return []rag.Document{{Source: source, Content: content}}, nil

	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		content := strings.TrimSpace(string(data))
		if content == "" {
			return nil, nil
		}
		return []rag.Document{{Source: source, Content: content}}, nil
	}
}
