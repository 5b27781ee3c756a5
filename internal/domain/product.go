package domain

// ProductRecord represents one catalog entry from the Shopify product export.
// Records are immutable once loaded; the catalog they belong to is replaced
// wholesale on reload, never mutated in place.
type ProductRecord struct {
	Handle       string `json:"handle"`
	Title        string `json:"title"`
	Body         string `json:"body,omitempty"`
	Tags         string `json:"tags,omitempty"`
	Vendor       string `json:"vendor,omitempty"`
	VariantPrice string `json:"variantPrice,omitempty"`
	ImageSrc     string `json:"imageSrc,omitempty"`
}

// Catalog is an ordered snapshot of product records. Order is the ingestion
// order from the export file and is semantically meaningful: it is the sole
// tie-break key when two products score equally.
type Catalog []ProductRecord

// ProductSummary is the shape returned to clients under recommendedProducts.
type ProductSummary struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Price  string `json:"price"`
	Image  string `json:"image"`
	Vendor string `json:"vendor"`
	URL    string `json:"url"`
}
