package rag

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
)

type Repository interface {
	InsertChunk(ctx context.Context, c *DocChunk, embedding []float32) (string, error)
	GetChunksByIDs(ctx context.Context, ids []string) ([]DocChunk, error)
	SearchSimilarChunks(ctx context.Context, embedding []float32, limit int) ([]DocChunk, error)
}

type PgRepository struct {
	db *pgxpool.Pool
}

func NewPgRepository(db *pgxpool.Pool) *PgRepository {
	return &PgRepository{db: db}
}

func (r *PgRepository) InsertChunk(ctx context.Context, c *DocChunk, embedding []float32) (string, error) {
	id := c.ID
	if id == "" {
		id = uuid.NewString()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO doc_chunk (id, source, page, content)
		VALUES ($1, $2, $3, $4)
	`,
		id,
		c.Source,
		c.Page,
		c.Content,
	)
	if err != nil {
		return "", err
	}

	if embedding != nil {
		vec := pgvector.NewVector(embedding)
		_, err = r.db.Exec(ctx, `
			INSERT INTO doc_chunk_embedding (chunk_id, embedding)
			VALUES ($1, $2)
		`, id, vec)
		if err != nil {
			return "", err
		}
	}

	return id, nil
}

func (r *PgRepository) GetChunksByIDs(ctx context.Context, ids []string) ([]DocChunk, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, source, page, content, created_at, updated_at
		FROM doc_chunk
		WHERE id = ANY($1)
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chunks []DocChunk
	for rows.Next() {
		var c DocChunk
		if err := rows.Scan(
			&c.ID,
			&c.Source,
			&c.Page,
			&c.Content,
			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		chunks = append(chunks, c)
	}

	return chunks, rows.Err()
}

// SearchSimilarChunks faz a busca vetorial por vizinhos mais próximos.
// Chunks sem embedding nunca aparecem no resultado (join obrigatório).
func (r *PgRepository) SearchSimilarChunks(ctx context.Context, embedding []float32, limit int) ([]DocChunk, error) {
	if limit <= 0 {
		limit = 3
	}

	vec := pgvector.NewVector(embedding)

	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.source, c.page, c.content, c.created_at, c.updated_at
		FROM doc_chunk c
		JOIN doc_chunk_embedding e ON c.id = e.chunk_id
		ORDER BY e.embedding <-> $1
		LIMIT $2
	`, vec, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chunks []DocChunk
	for rows.Next() {
		var c DocChunk
		if err := rows.Scan(
			&c.ID,
			&c.Source,
			&c.Page,
			&c.Content,
			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		chunks = append(chunks, c)
	}

	return chunks, rows.Err()
}
