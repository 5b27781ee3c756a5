// Package catalog loads the Shopify product export and holds it as an
// immutable snapshot for ranking calls.
package catalog

import (
	"log"
	"sync/atomic"

	"github.com/Mousify/shoe-recognition-app-v2-Backend/internal/domain"
)

// Column names of the Shopify product export. Rows missing a column are
// treated as having it empty, never as an error.
const (
	columnHandle       = "Handle"
	columnTitle        = "Title"
	columnBody         = "Body (HTML)"
	columnTags         = "Tags"
	columnVendor       = "Vendor"
	columnVariantPrice = "Variant Price"
	columnImageSrc     = "Image Src"
)

// Store holds the current catalog snapshot behind an atomic pointer.
// Writers build a complete new catalog and swap the pointer in one step;
// readers take one reference per ranking call and never observe a partially
// built catalog. No locks are needed.
type Store struct {
	snapshot atomic.Pointer[domain.Catalog]
}

// NewStore creates a store serving an empty catalog until the first load.
func NewStore() *Store {
	s := &Store{}
	empty := domain.Catalog{}
	s.snapshot.Store(&empty)
	return s
}

// Load builds a new catalog from the row maps, preserving row order, and
// swaps it in atomically.
func (s *Store) Load(rows []map[string]string) {
	records := make(domain.Catalog, 0, len(rows))
	for _, row := range rows {
		records = append(records, domain.ProductRecord{
			Handle:       row[columnHandle],
			Title:        row[columnTitle],
			Body:         row[columnBody],
			Tags:         row[columnTags],
			Vendor:       row[columnVendor],
			VariantPrice: row[columnVariantPrice],
			ImageSrc:     row[columnImageSrc],
		})
	}
	s.snapshot.Store(&records)
	log.Printf("[CATALOG] loaded %d products", len(records))
}

// Clear drops the snapshot to an empty catalog. Used when a load fails:
// ranking calls keep working and return no matches.
func (s *Store) Clear() {
	empty := domain.Catalog{}
	s.snapshot.Store(&empty)
}

// Current returns the live snapshot. Never nil.
func (s *Store) Current() domain.Catalog {
	return *s.snapshot.Load()
}
