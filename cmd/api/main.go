package main

import (
	"context"
	"log"
	"net/http"

	"github.com/medkb/medical-chatbot-rag/internal/config"
	"github.com/medkb/medical-chatbot-rag/internal/db"
	apphttp "github.com/medkb/medical-chatbot-rag/internal/http"
	"github.com/medkb/medical-chatbot-rag/internal/llm"
	"github.com/medkb/medical-chatbot-rag/internal/rag"
	"github.com/medkb/medical-chatbot-rag/internal/textsplit"
)

func main() {
	ctx := context.Background()

	cfg := config.Load()

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
	ragService := rag.NewService(repo, client, client, splitter, cfg.TopK)

	h := apphttp.NewHandler(ragService)
	router := apphttp.NewRouter(h)

	handler := corsMiddleware(router)

	addr := ":" + cfg.Port
	log.Printf("API listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
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

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if origin == "http://localhost:3000" || origin == "http://127.0.0.1:3000" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
