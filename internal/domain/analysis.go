package domain

import "time"

// Sentinel material values the vision model returns when it cannot determine
// a material. They carry no signal and are excluded from keyword derivation.
const (
	MaterialUnknown     = "unknown"
	MaterialUnspecified = "unspecified"
)

// Materials maps the fixed material slots of a shoe to the material name the
// vision model identified. Empty values mean the slot was not reported.
type Materials struct {
	Upper   string `json:"upper,omitempty"`
	Lining  string `json:"lining,omitempty"`
	Insole  string `json:"insole,omitempty"`
	Outsole string `json:"outsole,omitempty"`
	Laces   string `json:"laces,omitempty"`
	Tongue  string `json:"tongue,omitempty"`
}

// SlotValues returns the material values in fixed slot order:
// upper, lining, insole, outsole, laces, tongue. Safe on a nil receiver.
func (m *Materials) SlotValues() []string {
	if m == nil {
		return nil
	}
	return []string{m.Upper, m.Lining, m.Insole, m.Outsole, m.Laces, m.Tongue}
}

// CleaningRecommendation pairs an affected shoe part with the care steps the
// model recommends for it.
type CleaningRecommendation struct {
	AffectedPart    string   `json:"affectedPart,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// StructuredDescription is the parsed shoe description produced by the vision
// model. Every field is optional; an absent field contributes no keywords.
type StructuredDescription struct {
	BrandAndModel           string                   `json:"brandAndModel,omitempty"`
	Materials               *Materials               `json:"materials,omitempty"`
	CleaningRecommendations []CleaningRecommendation `json:"cleaningRecommendations,omitempty"`
	RecommendedTags         []string                 `json:"recommendedTags,omitempty"`
}

// ShoeAnalysis is the complete vision model output for one photo.
type ShoeAnalysis struct {
	StructuredDescription
	GeneralCare string `json:"generalCare,omitempty"`
}

// AnalysisRequest is an incoming shoe analysis request.
type AnalysisRequest struct {
	Image    string `json:"image" binding:"required"` // base64-encoded photo
	Language string `json:"language,omitempty"`
	Question string `json:"question,omitempty"`
}

// AnalysisResponse is the payload returned to the client: the model's answer
// merged with the ranked product recommendations.
type AnalysisResponse struct {
	Analysis            ShoeAnalysis     `json:"analysis"`
	RecommendedProducts []ProductSummary `json:"recommendedProducts"`
	Source              string           `json:"source"` // "OpenAI" or "Cache"
	CachedAt            time.Time        `json:"cachedAt,omitempty"`
}
