package rag

import "time"

// DocChunk
// Um pedaço de uma fonte do corpus: um trecho de uma página de PDF,
// uma seção de um arquivo markdown etc.
type DocChunk struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	Page      int       `json:"page"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Document is a unit of extracted corpus text before chunking.
// Page is zero for sources without page structure (txt, md, html).
type Document struct {
	Source  string `json:"source"`
	Page    int    `json:"page"`
	Content string `json:"content"`
}

// AskRequest
// Payload da API /ask.
type AskRequest struct {
	Question string `json:"question"`
	TopK     int    `json:"topK,omitempty"` // opcional; default interno
	Lang     string `json:"lang,omitempty"` // opcional; "auto" detecta pelo texto
}

// SourceRef
// Metadados dos trechos usados para montar a resposta.
type SourceRef struct {
	ChunkID string `json:"chunkId"`
	Source  string `json:"source"`
	Page    int    `json:"page"`
}

// AskResponse
// Resposta da API: texto + fontes.
type AskResponse struct {
	Answer  string      `json:"answer"`
	Sources []SourceRef `json:"sources"`
}
