package models

import "time"

type Cart struct {
	ID          string     `json:"id" bson:"_id" gorm:"primaryKey;size:64"`
	Description string     `json:"description" bson:"description"`
	Products    []CartItem `json:"products" bson:"products" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt" bson:"updatedAt"`
}

// IndexOf returns the position of productID in the cart, or -1.
func (c *Cart) IndexOf(productID string) int {
	for i := range c.Products {
		if c.Products[i].ProductID == productID {
			return i
		}
	}
	return -1
}

type CartSummary struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// PopulatedItem is a cart entry with its product resolved. Product is nil
// when the referenced product no longer exists.
type PopulatedItem struct {
	ProductID string   `json:"productId"`
	Product   *Product `json:"product"`
	Quantity  int      `json:"quantity"`
}

type PopulatedCart struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Products    []PopulatedItem `json:"products"`
}
