package model

import "time"

// CustomerEntity mirrors one row of the hosted customers table. A new
// row is created per submission; customers are never deduplicated.
type CustomerEntity struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}
