package models

// CartItem is one product reference inside a cart. ID and CartID only exist
// for the relational backend; documents and JSON files embed the items.
type CartItem struct {
	ID        uint   `json:"-" bson:"-" gorm:"primaryKey;autoIncrement"`
	CartID    string `json:"-" bson:"-" gorm:"index;size:64"`
	Position  int    `json:"-" bson:"-"`
	ProductID string `json:"productId" bson:"productId" gorm:"not null;size:64"`
	Quantity  int    `json:"quantity" bson:"quantity" gorm:"not null;default:1"`
}
