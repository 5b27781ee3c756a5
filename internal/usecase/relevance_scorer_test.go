package usecase

import (
	"testing"

	"github.com/Mousify/shoe-recognition-app-v2-Backend/internal/domain"
)

func TestScoreProduct(t *testing.T) {
	product := domain.ProductRecord{
		Handle: "p1",
		Title:  "Leather Cleaner Spray",
		Body:   "removes stains from suede too",
		Tags:   "cleaner,leather",
		Vendor: "Acme",
	}

	t.Run("returns 0 for empty keyword sequence", func(t *testing.T) {
		if got := ScoreProduct(nil, product); got != 0 {
			t.Errorf("score = %d, want 0", got)
		}
	})

	t.Run("returns 0 when no keyword matches", func(t *testing.T) {
		if got := ScoreProduct([]string{"rubber", "mesh"}, product); got != 0 {
			t.Errorf("score = %d, want 0", got)
		}
	})

	t.Run("title match scores 3", func(t *testing.T) {
		if got := ScoreProduct([]string{"spray"}, product); got != 3 {
			t.Errorf("score = %d, want 3", got)
		}
	})

	t.Run("tags match scores 2 when not in title", func(t *testing.T) {
		p := domain.ProductRecord{Title: "Shoe Brush", Tags: "suede,nubuck"}
		if got := ScoreProduct([]string{"suede"}, p); got != 2 {
			t.Errorf("score = %d, want 2", got)
		}
	})

	t.Run("body match scores 1 when not in title or tags", func(t *testing.T) {
		if got := ScoreProduct([]string{"stains"}, product); got != 1 {
			t.Errorf("score = %d, want 1", got)
		}
	})

	t.Run("vendor match scores 1", func(t *testing.T) {
		if got := ScoreProduct([]string{"acme"}, product); got != 1 {
			t.Errorf("score = %d, want 1", got)
		}
	})

	t.Run("contributions sum across keywords", func(t *testing.T) {
		// "leather" in title (3) + "suede" in body (1)
		if got := ScoreProduct([]string{"leather", "suede"}, product); got != 4 {
			t.Errorf("score = %d, want 4", got)
		}
	})

	t.Run("duplicate keywords score every occurrence", func(t *testing.T) {
		if got := ScoreProduct([]string{"leather", "leather"}, product); got != 6 {
			t.Errorf("score = %d, want 6", got)
		}
	})

	t.Run("match is substring containment not token equality", func(t *testing.T) {
		p := domain.ProductRecord{Title: "Leatherette Conditioner"}
		if got := ScoreProduct([]string{"leather"}, p); got != 3 {
			t.Errorf("score = %d, want 3 (substring inside longer word)", got)
		}
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		// Keywords arrive lowercased from extraction; product text may not be.
		if got := ScoreProduct([]string{"leather"}, product); got != 3 {
			t.Errorf("score = %d, want 3", got)
		}
	})

	t.Run("empty-string keyword matches every product via the title tier", func(t *testing.T) {
		// Substring containment of "" is always true. This degenerate input
		// is an observed behavior of the engine and is pinned here so a
		// change shows up as a test failure rather than a silent reordering.
		if got := ScoreProduct([]string{""}, product); got != 3 {
			t.Errorf("score = %d, want 3", got)
		}
		empty := domain.ProductRecord{}
		if got := ScoreProduct([]string{""}, empty); got != 3 {
			t.Errorf("score on empty product = %d, want 3", got)
		}
	})

	t.Run("multi-word keyword matches as a phrase", func(t *testing.T) {
		p := domain.ProductRecord{Body: "made from gum rubber compound"}
		if got := ScoreProduct([]string{"gum rubber"}, p); got != 1 {
			t.Errorf("score = %d, want 1", got)
		}
	})
}
