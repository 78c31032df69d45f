package models

import "time"

type Product struct {
	ID          string    `json:"id" bson:"_id" gorm:"primaryKey;size:64"`
	Title       string    `json:"title" bson:"title" gorm:"not null"`
	Description string    `json:"description" bson:"description" gorm:"not null"`
	Code        string    `json:"code" bson:"code" gorm:"not null;index"`
	Price       float64   `json:"price" bson:"price" gorm:"not null"`
	Stock       int       `json:"stock" bson:"stock" gorm:"not null"`
	Category    string    `json:"category" bson:"category" gorm:"not null;index"`
	Thumbnails  []string  `json:"thumbnails" bson:"thumbnails" gorm:"serializer:json;type:text"`
	Status      bool      `json:"status" bson:"status"` // availability flag
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// ProductPage is the paginated listing returned by GET /api/products.
type ProductPage struct {
	Status      string    `json:"status"`
	Payload     []Product `json:"payload"`
	TotalPages  int       `json:"totalPages"`
	PrevPage    *int      `json:"prevPage"`
	NextPage    *int      `json:"nextPage"`
	Page        int       `json:"page"`
	HasPrevPage bool      `json:"hasPrevPage"`
	HasNextPage bool      `json:"hasNextPage"`
	PrevLink    *string   `json:"prevLink"`
	NextLink    *string   `json:"nextLink"`
}
