package rag

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
)

// QdrantRepository implements Repository on a hosted Qdrant collection.
// Chunk text and metadata live in the point payload, so vector and content
// are written atomically.
type QdrantRepository struct {
	client     *qdrant.Client
	collection string
	vectorSize uint64
}

func NewQdrantRepository(host string, port int, collection string, vectorSize uint64) (*QdrantRepository, error) {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host: host,
		Port: port,
	})
	if err != nil {
		return nil, fmt.Errorf("create qdrant client: %w", err)
	}

	repo := &QdrantRepository{
		client:     client,
		collection: collection,
		vectorSize: vectorSize,
	}

	if err := repo.initCollection(context.Background()); err != nil {
		return nil, err
	}

	return repo, nil
}

func (r *QdrantRepository) initCollection(ctx context.Context) error {
	exists, err := r.client.CollectionExists(ctx, r.collection)
	if err != nil {
		return fmt.Errorf("check collection existence: %w", err)
	}
	if exists {
		return nil
	}

	err = r.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: r.collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     r.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("create collection: %w", err)
	}
	return nil
}

func (r *QdrantRepository) InsertChunk(ctx context.Context, c *DocChunk, embedding []float32) (string, error) {
	if embedding == nil {
		return "", fmt.Errorf("qdrant requires an embedding for every chunk")
	}

	id := c.ID
	if id == "" {
		id = uuid.NewString()
	}

	payload := map[string]*qdrant.Value{
		"source":  qdrant.NewValueString(c.Source),
		"page":    qdrant.NewValueInt(int64(c.Page)),
		"content": qdrant.NewValueString(c.Content),
	}

	wait := true
	_, err := r.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: r.collection,
		Points: []*qdrant.PointStruct{{
			Id:      qdrant.NewIDUUID(id),
			Vectors: qdrant.NewVectors(embedding...),
			Payload: payload,
		}},
		Wait: &wait,
	})
	if err != nil {
		return "", err
	}

	return id, nil
}

func (r *QdrantRepository) GetChunksByIDs(ctx context.Context, ids []string) ([]DocChunk, error) {
	pointIDs := make([]*qdrant.PointId, len(ids))
	for i, id := range ids {
		pointIDs[i] = qdrant.NewIDUUID(id)
	}

	points, err := r.client.Get(ctx, &qdrant.GetPoints{
		CollectionName: r.collection,
		Ids:            pointIDs,
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, err
	}

	chunks := make([]DocChunk, 0, len(points))
	for _, p := range points {
		chunks = append(chunks, chunkFromPayload(p.Id.GetUuid(), p.Payload))
	}
	return chunks, nil
}

func (r *QdrantRepository) SearchSimilarChunks(ctx context.Context, embedding []float32, limit int) ([]DocChunk, error) {
	if limit <= 0 {
		limit = 3
	}
	limit64 := uint64(limit)

	hits, err := r.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: r.collection,
		Query:          qdrant.NewQuery(embedding...),
		Limit:          &limit64,
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, err
	}

	chunks := make([]DocChunk, 0, len(hits))
	for _, hit := range hits {
		chunks = append(chunks, chunkFromPayload(hit.Id.GetUuid(), hit.Payload))
	}
	return chunks, nil
}

func chunkFromPayload(id string, payload map[string]*qdrant.Value) DocChunk {
	c := DocChunk{ID: id}
	if v, ok := payload["source"]; ok {
		c.Source = v.GetStringValue()
	}
	if v, ok := payload["page"]; ok {
		c.Page = int(v.GetIntegerValue())
	}
	if v, ok := payload["content"]; ok {
		c.Content = v.GetStringValue()
	}
	return c
}

var _ Repository = (*QdrantRepository)(nil)
var _ Repository = (*PgRepository)(nil)
