package catalog

// Product is one entry in the store catalog. The catalog is static: rows are
// seeded by migrations and never written at runtime.
type Product struct {
	ID          string
	Name        string
	Category    string
	Description string
	Price       float64
	Rating      float64
	Stock       int
	ImageURL    string
}

// SortOrder selects how a product listing is ordered.
type SortOrder string

const (
	SortDefault    SortOrder = "default"
	SortPriceAsc   SortOrder = "price-asc"
	SortPriceDesc  SortOrder = "price-desc"
	SortRatingDesc SortOrder = "rating-desc"
)

// AllCategories matches every category when used as a filter.
const AllCategories = "All Products"

// Filter narrows and orders a product listing. Zero value lists everything
// in default order.
type Filter struct {
	Category string
	Search   string
	Sort     SortOrder
}
