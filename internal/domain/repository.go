package domain

import (
	"context"
	"time"
)

// VisionClient defines the interface for the hosted vision-language model
// that turns a shoe photo into a structured description.
type VisionClient interface {
	AnalyzeShoe(ctx context.Context, req *AnalysisRequest) (*ShoeAnalysis, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// CatalogSource provides the current catalog snapshot for ranking calls.
// Implementations must hand out a fully built snapshot; a ranking call takes
// one reference and uses it for the whole computation.
type CatalogSource interface {
	Current() Catalog
}
