package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Mousify/shoe-recognition-app-v2-Backend/internal/domain"
)

// AnalysisServiceConfig holds configuration for the analysis service
type AnalysisServiceConfig struct {
	CacheTTL        time.Duration
	Recommendations RecommendationConfig
}

// AnalysisService orchestrates a shoe analysis: cache lookup, vision model
// call, keyword ranking against the catalog, response assembly.
type AnalysisService struct {
	cache       domain.CacheRepository
	vision      domain.VisionClient
	recommender *RecommendationService
	cacheTTL    time.Duration
}

// NewAnalysisService creates a new analysis service with dependencies
func NewAnalysisService(
	cache domain.CacheRepository,
	vision domain.VisionClient,
	catalog domain.CatalogSource,
	config AnalysisServiceConfig,
) *AnalysisService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}

	return &AnalysisService{
		cache:       cache,
		vision:      vision,
		recommender: NewRecommendationService(catalog, config.Recommendations),
		cacheTTL:    cacheTTL,
	}
}

// AnalyzeShoe runs the full analysis flow for one photo.
// Flow: check cache -> call vision model -> rank catalog -> cache -> return
func (s *AnalysisService) AnalyzeShoe(
	ctx context.Context,
	request *domain.AnalysisRequest,
) (*domain.AnalysisResponse, error) {
	if request == nil || request.Image == "" {
		return nil, domain.ErrInvalidRequest
	}

	cacheKey := s.generateCacheKey(request)

	// Try cache first: the same photo produces the same answer.
	cached, err := s.getFromCache(ctx, cacheKey)
	if err == nil && cached != nil {
		cached.Source = "Cache"
		return cached, nil
	}

	analysis, err := s.vision.AnalyzeShoe(ctx, request)
	if err != nil {
		return nil, err
	}

	response := &domain.AnalysisResponse{
		Analysis:            *analysis,
		RecommendedProducts: s.recommender.Recommend(&analysis.StructuredDescription),
		Source:              "OpenAI",
	}

	if err := s.setInCache(ctx, cacheKey, response); err != nil {
		// A cold cache is not worth failing the request over.
		log.Printf("[ANALYSIS] cache store failed: %v", err)
	}

	return response, nil
}

// generateCacheKey hashes the image payload so re-uploads of the same photo
// skip the model round trip. The language is part of the key: the same photo
// asked in Lithuanian gets a Lithuanian answer.
func (s *AnalysisService) generateCacheKey(request *domain.AnalysisRequest) string {
	sum := sha256.Sum256([]byte(request.Image))
	return fmt.Sprintf("analysis:%x:%s", sum, strings.ToLower(request.Language))
}

// getFromCache retrieves a cached analysis response. The cache stores values
// JSON-roundtripped, so rebuild the typed response from the stored shape.
func (s *AnalysisService) getFromCache(ctx context.Context, key string) (*domain.AnalysisResponse, error) {
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return nil, domain.ErrCacheMiss
	}

	var response domain.AnalysisResponse
	if err := json.Unmarshal(raw, &response); err != nil {
		return nil, domain.ErrCacheMiss
	}

	return &response, nil
}

// setInCache stores an analysis response in cache
func (s *AnalysisService) setInCache(ctx context.Context, key string, response *domain.AnalysisResponse) error {
	response.CachedAt = time.Now()
	return s.cache.Set(ctx, key, response, s.cacheTTL)
}
