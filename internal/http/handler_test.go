package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medkb/medical-chatbot-rag/internal/rag"
	"github.com/medkb/medical-chatbot-rag/internal/textsplit"
)

type stubRepo struct {
	results []rag.DocChunk
}

func (s *stubRepo) InsertChunk(ctx context.Context, c *rag.DocChunk, embedding []float32) (string, error) {
	return "id", nil
}

func (s *stubRepo) GetChunksByIDs(ctx context.Context, ids []string) ([]rag.DocChunk, error) {
	return nil, nil
}

func (s *stubRepo) SearchSimilarChunks(ctx context.Context, embedding []float32, limit int) ([]rag.DocChunk, error) {
	return s.results, nil
}

type stubEmbedder struct{}

func (s *stubEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return []float32{1, 0}, nil
}

type stubLLM struct{ answer string }

func (s *stubLLM) GenerateAnswer(ctx context.Context, question string, chunks []rag.DocChunk, lang string) (string, error) {
	return s.answer, nil
}

func newTestHandler(results []rag.DocChunk, answer string) *Handler {
	svc := rag.NewService(&stubRepo{results: results}, &stubEmbedder{}, &stubLLM{answer: answer}, textsplit.New(500, 20), 3)
	return NewHandler(svc)
}

func TestHealth_OK(t *testing.T) {
	h := newTestHandler(nil, "")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.Health(w, req)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Equal(t, "ok", w.Body.String())
}

func TestHome_ServesChatForm(t *testing.T) {
	h := newTestHandler(nil, "")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	h.Home(w, req)

	resp := w.Result()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Medical Chatbot")
	assert.Contains(t, w.Body.String(), "/ask")
}

func TestAsk_ReturnsAnswerAndSources(t *testing.T) {
	chunks := []rag.DocChunk{{ID: "c1", Source: "book.pdf", Page: 3, Content: "Insulin text."}}
	h := newTestHandler(chunks, "Insulin regulates glucose.")

	body := `{"question":"what is insulin?"}`
	req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Ask(w, req)

	resp := w.Result()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out rag.AskResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Insulin regulates glucose.", out.Answer)
	require.Len(t, out.Sources, 1)
	assert.Equal(t, "book.pdf", out.Sources[0].Source)
	assert.Equal(t, 3, out.Sources[0].Page)
}

func TestAsk_InvalidJSON(t *testing.T) {
	h := newTestHandler(nil, "")

	req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	h.Ask(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestAsk_EmptyQuestion(t *testing.T) {
	h := newTestHandler(nil, "")

	req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(`{"question":""}`))
	w := httptest.NewRecorder()
	h.Ask(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestRouter_MethodRouting(t *testing.T) {
	h := newTestHandler(nil, "")
	router := NewRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/ask", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Result().StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Result().StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}
