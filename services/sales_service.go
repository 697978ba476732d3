// services/sales_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"galeria-backend/models"
)

var (
	// Precondition failures, reported before any write happens.
	ErrClientNotFound  = errors.New("client not found")
	ErrInvalidItemKind = errors.New("item kind must be 'artwork' or 'product'")
	ErrItemNotFound    = errors.New("item not found")
	ErrItemUnavailable = errors.New("item is not available for sale")
	ErrInvalidAmount   = errors.New("total amount must be non-negative")

	// ErrSaleRecordFailed means the sale insert itself failed; the
	// transaction guarantees no other writes were applied.
	ErrSaleRecordFailed = errors.New("failed to record sale")

	// ErrItemNoLongerAvailable means the conditional item update matched
	// zero rows: a concurrent sale won the race between validation and
	// commit. The whole transaction is rolled back.
	ErrItemNoLongerAvailable = errors.New("item was sold by a concurrent transaction")

	// ErrCompensationFailed means the item update failed for a reason other
	// than losing the race. The transaction is rolled back, so no orphaned
	// sale is left behind.
	ErrCompensationFailed = errors.New("failed to update sold item")
)

// ValidationError wraps a precondition failure. No side effects occurred;
// the caller may retry after correcting the input.
type ValidationError struct {
	Reason error
}

func (e *ValidationError) Error() string { return e.Reason.Error() }
func (e *ValidationError) Unwrap() error { return e.Reason }

// RecordSaleInput carries everything a sale needs, including the seller
// identity. The seller is always passed in explicitly, never read from
// ambient session state.
type RecordSaleInput struct {
	ClientID    uuid.UUID
	ItemKind    string // models.ItemKindArtwork or models.ItemKindProduct
	ItemID      uuid.UUID
	TotalAmount float64
	SellerID    *uuid.UUID
}

// SaleService orchestrates the creation of a sale together with the update
// to the sold item. Both writes happen in one database transaction: either
// the sale exists and the item reflects it, or neither happened.
type SaleService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewSaleService(db *gorm.DB) *SaleService {
	return &SaleService{db: db, now: time.Now}
}

// RecordSale validates the input against the current database state, then
// inserts the sale and applies the item update in a single transaction.
//
// The item update is conditional on the item still being sellable, so two
// concurrent sales of the same artwork cannot both succeed: the loser gets
// ErrItemNoLongerAvailable. A product sale always consumes exactly one unit;
// the amount is caller-supplied and never derived from the stored price.
func (s *SaleService) RecordSale(ctx context.Context, input RecordSaleInput) (*models.Sale, error) {
	db := s.db.WithContext(ctx)

	if err := s.validate(db, input); err != nil {
		return nil, err
	}

	sale := &models.Sale{
		ClientID:    input.ClientID,
		SellerID:    input.SellerID,
		ItemKind:    input.ItemKind,
		ItemID:      input.ItemID,
		SaleDate:    s.now(),
		TotalAmount: input.TotalAmount,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sale).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrSaleRecordFailed, err)
		}

		if input.ItemKind == models.ItemKindArtwork {
			return claimArtwork(tx, input.ItemID, input.ClientID)
		}
		return consumeProductStock(tx, input.ItemID)
	})
	if err != nil {
		return nil, err
	}

	return sale, nil
}

// validate re-checks every precondition against the store. The sale screen
// already filters its listings, but the listing is never trusted here.
func (s *SaleService) validate(db *gorm.DB, input RecordSaleInput) error {
	if input.TotalAmount < 0 {
		return &ValidationError{ErrInvalidAmount}
	}
	if input.ItemKind != models.ItemKindArtwork && input.ItemKind != models.ItemKindProduct {
		return &ValidationError{ErrInvalidItemKind}
	}

	var client models.Client
	if err := db.First(&client, "id = ?", input.ClientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ValidationError{ErrClientNotFound}
		}
		return err
	}

	switch input.ItemKind {
	case models.ItemKindArtwork:
		var artwork models.Artwork
		if err := db.First(&artwork, "id = ?", input.ItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &ValidationError{ErrItemNotFound}
			}
			return err
		}
		if artwork.Status != models.ArtworkOnDisplay {
			return &ValidationError{ErrItemUnavailable}
		}
	case models.ItemKindProduct:
		var product models.Product
		if err := db.First(&product, "id = ?", input.ItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &ValidationError{ErrItemNotFound}
			}
			return err
		}
		if !product.Sellable() {
			return &ValidationError{ErrItemUnavailable}
		}
	}

	return nil
}

// claimArtwork transfers an artwork to its buyer, but only if it is still on
// display. Zero rows affected means another sale got there first.
func claimArtwork(tx *gorm.DB, artworkID, clientID uuid.UUID) error {
	result := tx.Model(&models.Artwork{}).
		Where("id = ? AND status = ?", artworkID, models.ArtworkOnDisplay).
		Updates(map[string]interface{}{
			"status":    models.ArtworkWithClient,
			"client_id": clientID,
		})
	if result.Error != nil {
		return fmt.Errorf("%w: %v", ErrCompensationFailed, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrItemNoLongerAvailable
	}
	return nil
}

// consumeProductStock decrements stock by one, but only while stock remains.
func consumeProductStock(tx *gorm.DB, productID uuid.UUID) error {
	result := tx.Model(&models.Product{}).
		Where("id = ? AND stock_count >= 1", productID).
		Update("stock_count", gorm.Expr("stock_count - 1"))
	if result.Error != nil {
		return fmt.Errorf("%w: %v", ErrCompensationFailed, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrItemNoLongerAvailable
	}
	return nil
}

// Reconcile repairs artwork sales whose item update never landed, which can
// happen to rows written by the legacy client that had no transaction around
// the two writes. A sale only counts as orphaned while the artwork row has
// not been touched since the sale: an artwork someone deliberately returned
// to display was edited after its sale and must not be re-claimed. For each
// orphaned sale the ownership transfer is re-applied; when several sales
// reference the same artwork the earliest one wins and the rest are left for
// manual review. Returns the number of repaired artworks.
func (s *SaleService) Reconcile(ctx context.Context) (int, error) {
	db := s.db.WithContext(ctx)

	var orphaned []models.Sale
	err := db.
		Select("sales.*").
		Joins("JOIN artworks ON artworks.id = sales.item_id").
		Where("sales.item_kind = ? AND artworks.status = ? AND sales.sale_date > artworks.updated_at",
			models.ItemKindArtwork, models.ArtworkOnDisplay).
		Order("sales.sale_date ASC").
		Find(&orphaned).Error
	if err != nil {
		return 0, err
	}

	repaired := 0
	for _, sale := range orphaned {
		err := claimArtwork(db, sale.ItemID, sale.ClientID)
		if errors.Is(err, ErrItemNoLongerAvailable) {
			// An earlier sale of the same artwork already claimed it.
			continue
		}
		if err != nil {
			return repaired, err
		}
		repaired++
	}

	return repaired, nil
}
