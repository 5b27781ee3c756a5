package usecase

import (
	"strings"

	"github.com/Mousify/shoe-recognition-app-v2-Backend/internal/domain"
)

// sentinelMaterials are placeholder values meaning "no determinable material".
// They are matched case-insensitively and never become keywords.
var sentinelMaterials = map[string]bool{
	domain.MaterialUnknown:     true,
	domain.MaterialUnspecified: true,
}

// recommendationStopWords are common words filtered out of care instruction
// text during keyword derivation.
var recommendationStopWords = map[string]bool{
	"with": true, "and": true, "the": true, "for": true, "your": true,
	"that": true, "this": true, "then": true, "use": true,
}

// Care instruction words this short carry no matching signal.
const maxSkippedWordLen = 3

// ExtractKeywords derives the ordered keyword sequence from a structured shoe
// description: brand/model tokens, then material values in slot order, then
// affected parts and filtered care instruction words, then recommended tags.
// All keywords are lower-cased. Duplicates are kept on purpose: a material
// mentioned again in a care step scores that product again.
func ExtractKeywords(desc *domain.StructuredDescription) []string {
	if desc == nil {
		return nil
	}

	var keywords []string

	if desc.BrandAndModel != "" {
		keywords = append(keywords, strings.Fields(strings.ToLower(desc.BrandAndModel))...)
	}

	for _, material := range desc.Materials.SlotValues() {
		if material == "" {
			continue
		}
		m := strings.ToLower(material)
		if sentinelMaterials[m] {
			continue
		}
		keywords = append(keywords, m)
	}

	for _, rec := range desc.CleaningRecommendations {
		if rec.AffectedPart != "" {
			keywords = append(keywords, strings.ToLower(rec.AffectedPart))
		}
		for _, line := range rec.Recommendations {
			for _, word := range strings.Fields(strings.ToLower(line)) {
				if len(word) <= maxSkippedWordLen {
					continue
				}
				if recommendationStopWords[word] {
					continue
				}
				keywords = append(keywords, word)
			}
		}
	}

	for _, tag := range desc.RecommendedTags {
		keywords = append(keywords, strings.ToLower(tag))
	}

	return keywords
}
