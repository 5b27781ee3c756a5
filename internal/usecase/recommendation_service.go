package usecase

import (
	"log"
	"sort"

	"github.com/Mousify/shoe-recognition-app-v2-Backend/internal/domain"
)

// Defaults for the recommendation engine.
const (
	// DefaultTopK is the production result cutoff. Earlier releases used 5;
	// the mobile app grid shows 6 cards, so 6 is the driving value.
	DefaultTopK = 6

	// DefaultProductBaseURL prefixes product handles to build shop links.
	DefaultProductBaseURL = "https://mousify.lt/products/"

	// DefaultPlaceholderImage is served when a product has no image.
	DefaultPlaceholderImage = "https://via.placeholder.com/300?text=No+Image"

	priceNotAvailable = "Price not available"
)

// RecommendationConfig holds configuration for the recommendation service
type RecommendationConfig struct {
	TopK                int
	ProductBaseURL      string
	PlaceholderImageURL string
	EnableDebugLogging  bool
}

// RecommendationService ranks the product catalog against a shoe description
// and returns the top scoring products as client-facing summaries.
type RecommendationService struct {
	catalog             domain.CatalogSource
	topK                int
	productBaseURL      string
	placeholderImageURL string
	enableDebugLogging  bool
}

// scoredMatch pairs a product with its relevance score for one ranking call.
type scoredMatch struct {
	product domain.ProductRecord
	score   int
}

// NewRecommendationService creates a new recommendation service with the given configuration
func NewRecommendationService(catalog domain.CatalogSource, config RecommendationConfig) *RecommendationService {
	topK := config.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}

	baseURL := config.ProductBaseURL
	if baseURL == "" {
		baseURL = DefaultProductBaseURL
	}

	placeholder := config.PlaceholderImageURL
	if placeholder == "" {
		placeholder = DefaultPlaceholderImage
	}

	return &RecommendationService{
		catalog:             catalog,
		topK:                topK,
		productBaseURL:      baseURL,
		placeholderImageURL: placeholder,
		enableDebugLogging:  config.EnableDebugLogging,
	}
}

// Recommend derives keywords from the description and ranks the current
// catalog snapshot. Never returns an error: a degenerate description or an
// empty catalog yields an empty result.
func (s *RecommendationService) Recommend(desc *domain.StructuredDescription) []domain.ProductSummary {
	keywords := ExtractKeywords(desc)
	return s.SelectTopK(s.catalog.Current(), keywords)
}

// SelectTopK scores every product in catalog order, keeps those with a
// positive score, sorts by score descending and truncates to the configured
// cutoff. The sort is stable, so equal-score products keep their catalog
// order; that is the only tie-break rule.
func (s *RecommendationService) SelectTopK(catalog domain.Catalog, keywords []string) []domain.ProductSummary {
	summaries := make([]domain.ProductSummary, 0, s.topK)
	if len(catalog) == 0 {
		return summaries
	}

	var matches []scoredMatch
	for _, product := range catalog {
		if score := ScoreProduct(keywords, product); score > 0 {
			matches = append(matches, scoredMatch{product: product, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	if len(matches) > s.topK {
		matches = matches[:s.topK]
	}

	for _, m := range matches {
		if s.enableDebugLogging {
			log.Printf("[RECOMMEND] %q score=%d", m.product.Title, m.score)
		}
		summaries = append(summaries, s.toSummary(m.product))
	}

	return summaries
}

// toSummary maps a catalog record to the client-facing summary shape.
func (s *RecommendationService) toSummary(p domain.ProductRecord) domain.ProductSummary {
	price := priceNotAvailable
	if p.VariantPrice != "" {
		price = "$" + p.VariantPrice
	}

	image := p.ImageSrc
	if image == "" {
		image = s.placeholderImageURL
	}

	return domain.ProductSummary{
		ID:     p.Handle,
		Title:  p.Title,
		Price:  price,
		Image:  image,
		Vendor: p.Vendor,
		URL:    s.productBaseURL + p.Handle,
	}
}
