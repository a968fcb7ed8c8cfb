package entity

import (
	"strconv"
	"time"
)

// StockUnknown is rendered when a legacy document carries no stock field.
const StockUnknown = "N/A"

type Product struct {
	ID       string  `json:"id" firestore:"id"`
	Name     string  `json:"name" firestore:"name"`
	Category string  `json:"category" firestore:"category"`
	Price    float64 `json:"price" firestore:"price"`

	// Stock is a pointer so documents written before the field existed
	// read back as "unknown" rather than zero.
	Stock *int `json:"stock,omitempty" firestore:"stock"`

	Image      string `json:"image" firestore:"image"`
	IsFeatured bool   `json:"is_featured" firestore:"isFeatured"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

// StockLabel returns the display value for stock, substituting the
// unknown sentinel for documents missing the field.
func (p *Product) StockLabel() string {
	if p.Stock == nil {
		return StockUnknown
	}
	return strconv.Itoa(*p.Stock)
}
