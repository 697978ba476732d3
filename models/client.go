package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Client struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	Name      string     `gorm:"not null" json:"name"`
	Address   string     `json:"address"`
	Phone     string     `gorm:"not null" json:"phone"`
	BirthDate *time.Time `json:"birthDate"` // year stored but ignored by birthday matching

	Sales []Sale `gorm:"foreignKey:ClientID" json:"-"`

	gorm.Model `json:"-"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
