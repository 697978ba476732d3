package models

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ArtworkOnDisplay  = "on_display"
	ArtworkWithClient = "with_client"
)

var ErrArtworkOwnerRequired = errors.New("artwork with status with_client requires an owning client")

type Artwork struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	Name          string `gorm:"not null" json:"name"`
	CatalogNumber string `gorm:"uniqueIndex;not null" json:"catalogNumber"`
	Collection    string `json:"collection"`
	Certificate   string `json:"certificate"`
	ImagePath     string `json:"imagePath"`

	Status   string     `gorm:"type:varchar(20);not null;default:'on_display'" json:"status"`
	ClientID *uuid.UUID `gorm:"type:uuid;index" json:"clientId"`

	gorm.Model `json:"-"`
}

func (a *Artwork) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}

// BeforeSave keeps the status/owner pairing consistent no matter which
// code path writes the row: on_display artwork never carries an owner,
// with_client artwork always does.
func (a *Artwork) BeforeSave(tx *gorm.DB) (err error) {
	switch a.Status {
	case ArtworkOnDisplay:
		a.ClientID = nil
	case ArtworkWithClient:
		if a.ClientID == nil {
			return ErrArtworkOwnerRequired
		}
	}
	return
}
