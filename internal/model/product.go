package model

import "time"

// Product is a catalogue entry. Timestamps are kept in UTC and serialise as
// RFC 3339 with a trailing Z, which keeps the on-disk file format stable.
type Product struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Currency    string        `json:"currency"`
	Subcategory []Subcategory `json:"subcategory"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// Subcategory is a purchasable variant of a product (print size, finish, ...).
type Subcategory struct {
	Name        string  `json:"name"`
	Img         string  `json:"img"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// CreateProductRequest is the POST /products/ body. Every field is optional;
// id and timestamps are always server-assigned.
type CreateProductRequest struct {
	Name        string        `json:"name"`
	Currency    string        `json:"currency"`
	Subcategory []Subcategory `json:"subcategory"`
}

// UpdateProductRequest is the PUT /products/{id} body. Absent fields keep the
// stored value; id and created_at are immutable.
type UpdateProductRequest struct {
	Name        *string        `json:"name"`
	Currency    *string        `json:"currency"`
	Subcategory *[]Subcategory `json:"subcategory"`
}
