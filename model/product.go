package model

// ProductEntity mirrors one row of the hosted products table. The
// table is read-only from this service's perspective.
type ProductEntity struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image,omitempty"`
	Category string  `json:"category,omitempty"`
}

type ProductListResponse struct {
	Items []ProductEntity `json:"items"`
}
