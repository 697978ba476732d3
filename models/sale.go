package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ItemKindArtwork = "artwork"
	ItemKindProduct = "product"
)

// Sale is an immutable record of one item transferring to a client.
// There is no update or delete path for sales anywhere in the API.
type Sale struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	ClientID uuid.UUID  `gorm:"type:uuid;index;not null" json:"clientId"`
	SellerID *uuid.UUID `gorm:"type:uuid;index" json:"sellerId"`

	ItemKind string    `gorm:"type:varchar(10);not null" json:"itemKind"` // 'artwork' or 'product'
	ItemID   uuid.UUID `gorm:"type:uuid;not null" json:"itemId"`

	SaleDate    time.Time `gorm:"not null" json:"saleDate"`
	TotalAmount float64   `gorm:"type:decimal(10,2);not null" json:"totalAmount"`

	CreatedAt time.Time `json:"-"`
}

func (s *Sale) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
