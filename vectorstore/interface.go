package vectorstore

import "context"

// VectorStore is a technology-agnostic handle on a vector search backend.
// The console uses it to verify an operator-supplied backend address before
// an AiVector configuration record referencing it is saved. Implementations
// can use Qdrant, Pinecone, Weaviate, etc.
type VectorStore interface {
	// Ping verifies the backend is reachable and serving.
	Ping(ctx context.Context) error

	// Search performs vector similarity search with optional filtering.
	Search(ctx context.Context, vector []float32, filter SearchFilter, limit int) ([]SearchResult, error)

	// Close releases any resources held by the vector store.
	Close() error
}

// SearchFilter defines filtering options for vector search.
type SearchFilter struct {
	// Metadata filters results by metadata key-value pairs.
	Metadata map[string]any

	// MinScore filters results below this similarity threshold (0.0-1.0).
	MinScore float32
}

// SearchResult represents a single result from vector similarity search.
type SearchResult struct {
	// ID is the unique identifier of the result.
	ID string

	// Score is the similarity score (0.0-1.0, higher is more similar).
	Score float32

	// Content is the text content associated with this vector.
	Content string

	// Metadata contains additional key-value pairs.
	Metadata map[string]any
}
