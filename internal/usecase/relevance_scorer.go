package usecase

import (
	"strings"

	"github.com/Mousify/shoe-recognition-app-v2-Backend/internal/domain"
)

// Score tiers by match location. A keyword found in the title outweighs one
// found only in the tags, which outweighs one found anywhere else.
const (
	scoreTitleMatch = 3
	scoreTagsMatch  = 2
	scoreOtherMatch = 1
)

// ScoreProduct computes the relevance of one product against the keyword
// sequence. Each keyword occurrence contributes independently, so a keyword
// appearing twice in the sequence is counted twice. Matching is substring
// containment over lower-cased text, not token equality: "leather" matches
// inside "leatherette".
func ScoreProduct(keywords []string, product domain.ProductRecord) int {
	if len(keywords) == 0 {
		return 0
	}

	title := strings.ToLower(product.Title)
	tags := strings.ToLower(product.Tags)
	combined := strings.ToLower(product.Title + " " + product.Body + " " + product.Tags + " " + product.Vendor)

	score := 0
	for _, keyword := range keywords {
		if !strings.Contains(combined, keyword) {
			continue
		}
		switch {
		case strings.Contains(title, keyword):
			score += scoreTitleMatch
		case strings.Contains(tags, keyword):
			score += scoreTagsMatch
		default:
			score += scoreOtherMatch
		}
	}

	return score
}
