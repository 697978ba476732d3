package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	Name      string `gorm:"not null" json:"name"`
	Category  string `json:"category"`
	ImagePath string `json:"imagePath"`

	// Optional link to the artwork this product reproduces
	ArtworkID *uuid.UUID `gorm:"type:uuid;index" json:"artworkId"`

	StockCount int     `gorm:"not null;default:0;check:stock_count >= 0" json:"stockCount"`
	UnitPrice  float64 `gorm:"type:decimal(10,2);not null;default:0.0" json:"unitPrice"`

	gorm.Model `json:"-"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}

// Sellable reports whether the product may be offered for sale.
func (p *Product) Sellable() bool {
	return p.StockCount >= 1
}
