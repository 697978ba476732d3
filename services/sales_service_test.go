package services

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"galeria-backend/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A pooled second connection would see its own empty in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Client{},
		&models.Artwork{},
		&models.Product{},
		&models.Sale{},
	))

	return db
}

func seedClient(t *testing.T, db *gorm.DB, name string) models.Client {
	t.Helper()
	client := models.Client{Name: name, Phone: "+5511999990000"}
	require.NoError(t, db.Create(&client).Error)
	return client
}

func seedArtwork(t *testing.T, db *gorm.DB, name, catalog string) models.Artwork {
	t.Helper()
	artwork := models.Artwork{
		Name:          name,
		CatalogNumber: catalog,
		Status:        models.ArtworkOnDisplay,
	}
	require.NoError(t, db.Create(&artwork).Error)
	return artwork
}

func seedProduct(t *testing.T, db *gorm.DB, name string, stock int) models.Product {
	t.Helper()
	product := models.Product{Name: name, StockCount: stock, UnitPrice: 80}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func TestRecordSale_ArtworkTransfersOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := NewSaleService(db)
	ctx := context.Background()

	client := seedClient(t, db, "C1")
	artwork := seedArtwork(t, db, "A7", "CAT-A7")
	seller := uuid.New()

	sale, err := svc.RecordSale(ctx, RecordSaleInput{
		ClientID:    client.ID,
		ItemKind:    models.ItemKindArtwork,
		ItemID:      artwork.ID,
		TotalAmount: 1500.00,
		SellerID:    &seller,
	})
	require.NoError(t, err)
	require.Equal(t, models.ItemKindArtwork, sale.ItemKind)
	require.Equal(t, artwork.ID, sale.ItemID)
	require.Equal(t, 1500.00, sale.TotalAmount)
	require.NotNil(t, sale.SellerID)
	require.Equal(t, seller, *sale.SellerID)
	require.False(t, sale.SaleDate.IsZero())

	var updated models.Artwork
	require.NoError(t, db.First(&updated, "id = ?", artwork.ID).Error)
	require.Equal(t, models.ArtworkWithClient, updated.Status)
	require.NotNil(t, updated.ClientID)
	require.Equal(t, client.ID, *updated.ClientID)

	var persisted models.Sale
	require.NoError(t, db.First(&persisted, "id = ?", sale.ID).Error)
	require.Equal(t, client.ID, persisted.ClientID)
}

func TestRecordSale_ArtworkNoLongerOnDisplay(t *testing.T) {
	db := newTestDB(t)
	svc := NewSaleService(db)
	ctx := context.Background()

	buyer := seedClient(t, db, "First buyer")
	other := seedClient(t, db, "Second buyer")
	artwork := seedArtwork(t, db, "A9", "CAT-A9")

	_, err := svc.RecordSale(ctx, RecordSaleInput{
		ClientID: buyer.ID, ItemKind: models.ItemKindArtwork,
		ItemID: artwork.ID, TotalAmount: 900,
	})
	require.NoError(t, err)

	// The artwork is now with_client, so a second sale must be rejected
	// before any write happens.
	_, err = svc.RecordSale(ctx, RecordSaleInput{
		ClientID: other.ID, ItemKind: models.ItemKindArtwork,
		ItemID: artwork.ID, TotalAmount: 900,
	})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.ErrorIs(t, err, ErrItemUnavailable)

	var count int64
	db.Model(&models.Sale{}).Count(&count)
	require.EqualValues(t, 1, count)

	// The first buyer keeps the artwork
	var updated models.Artwork
	require.NoError(t, db.First(&updated, "id = ?", artwork.ID).Error)
	require.Equal(t, buyer.ID, *updated.ClientID)
}

func TestRecordSale_ProductConsumesExactlyOneUnit(t *testing.T) {
	db := newTestDB(t)
	svc := NewSaleService(db)
	ctx := context.Background()

	client := seedClient(t, db, "C2")
	product := seedProduct(t, db, "P3", 1)

	sale, err := svc.RecordSale(ctx, RecordSaleInput{
		ClientID: client.ID, ItemKind: models.ItemKindProduct,
		ItemID: product.ID, TotalAmount: 80.00,
	})
	require.NoError(t, err)
	require.Equal(t, models.ItemKindProduct, sale.ItemKind)

	var updated models.Product
	require.NoError(t, db.First(&updated, "id = ?", product.ID).Error)
	require.Equal(t, 0, updated.StockCount)

	// Stock is exhausted: the next attempt fails validation and the
	// count never goes negative.
	_, err = svc.RecordSale(ctx, RecordSaleInput{
		ClientID: client.ID, ItemKind: models.ItemKindProduct,
		ItemID: product.ID, TotalAmount: 80.00,
	})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.ErrorIs(t, err, ErrItemUnavailable)

	require.NoError(t, db.First(&updated, "id = ?", product.ID).Error)
	require.Equal(t, 0, updated.StockCount)
}

func TestRecordSale_ValidationFailures(t *testing.T) {
	db := newTestDB(t)
	svc := NewSaleService(db)
	ctx := context.Background()

	client := seedClient(t, db, "C3")
	artwork := seedArtwork(t, db, "A1", "CAT-A1")

	tests := []struct {
		name  string
		input RecordSaleInput
		want  error
	}{
		{
			name: "unknown client",
			input: RecordSaleInput{
				ClientID: uuid.New(), ItemKind: models.ItemKindArtwork,
				ItemID: artwork.ID, TotalAmount: 100,
			},
			want: ErrClientNotFound,
		},
		{
			name: "unknown item",
			input: RecordSaleInput{
				ClientID: client.ID, ItemKind: models.ItemKindProduct,
				ItemID: uuid.New(), TotalAmount: 100,
			},
			want: ErrItemNotFound,
		},
		{
			name: "bad item kind",
			input: RecordSaleInput{
				ClientID: client.ID, ItemKind: "sculpture",
				ItemID: artwork.ID, TotalAmount: 100,
			},
			want: ErrInvalidItemKind,
		},
		{
			name: "negative amount",
			input: RecordSaleInput{
				ClientID: client.ID, ItemKind: models.ItemKindArtwork,
				ItemID: artwork.ID, TotalAmount: -1,
			},
			want: ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RecordSale(ctx, tt.input)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.ErrorIs(t, err, tt.want)
		})
	}

	// None of the rejected attempts wrote anything
	var count int64
	db.Model(&models.Sale{}).Count(&count)
	require.EqualValues(t, 0, count)
}

func TestClaimArtwork_LostRaceReturnsItemNoLongerAvailable(t *testing.T) {
	db := newTestDB(t)

	winner := seedClient(t, db, "Winner")
	loser := seedClient(t, db, "Loser")

	// The artwork was claimed by a concurrent sale after this request
	// passed validation.
	artwork := models.Artwork{
		Name:          "A9",
		CatalogNumber: "CAT-RACE",
		Status:        models.ArtworkWithClient,
		ClientID:      &winner.ID,
	}
	require.NoError(t, db.Create(&artwork).Error)

	err := claimArtwork(db, artwork.ID, loser.ID)
	require.ErrorIs(t, err, ErrItemNoLongerAvailable)

	// The winner's ownership is untouched
	var unchanged models.Artwork
	require.NoError(t, db.First(&unchanged, "id = ?", artwork.ID).Error)
	require.Equal(t, winner.ID, *unchanged.ClientID)
}

func TestConsumeProductStock_EmptyReturnsItemNoLongerAvailable(t *testing.T) {
	db := newTestDB(t)

	product := seedProduct(t, db, "Sold out", 0)

	err := consumeProductStock(db, product.ID)
	require.ErrorIs(t, err, ErrItemNoLongerAvailable)

	var unchanged models.Product
	require.NoError(t, db.First(&unchanged, "id = ?", product.ID).Error)
	require.Equal(t, 0, unchanged.StockCount)
}

func TestRecordSale_RaceLoserRollsBackSale(t *testing.T) {
	db := newTestDB(t)
	svc := NewSaleService(db)
	ctx := context.Background()

	client := seedClient(t, db, "Racer")
	artwork := seedArtwork(t, db, "Contested", "CAT-C1")

	// Flip the artwork to with_client between validation and the item
	// update, the window a concurrent sale would win in.
	winner := seedClient(t, db, "Other racer")
	svc.now = func() time.Time {
		require.NoError(t, db.Model(&models.Artwork{}).
			Where("id = ?", artwork.ID).
			Updates(map[string]interface{}{
				"status":    models.ArtworkWithClient,
				"client_id": winner.ID,
			}).Error)
		return time.Now()
	}

	_, err := svc.RecordSale(ctx, RecordSaleInput{
		ClientID: client.ID, ItemKind: models.ItemKindArtwork,
		ItemID: artwork.ID, TotalAmount: 500,
	})
	require.ErrorIs(t, err, ErrItemNoLongerAvailable)

	// The transaction rolled the sale insert back; no orphaned record
	var count int64
	db.Model(&models.Sale{}).Count(&count)
	require.EqualValues(t, 0, count)
}

func TestReconcile_RepairsLegacyArtworkSale(t *testing.T) {
	db := newTestDB(t)
	svc := NewSaleService(db)
	ctx := context.Background()

	client := seedClient(t, db, "Legacy buyer")
	artwork := seedArtwork(t, db, "Orphan", "CAT-O1")

	// A sale written by the legacy client whose item update never landed:
	// the sale postdates the artwork row's last write.
	sale := models.Sale{
		ClientID:    client.ID,
		ItemKind:    models.ItemKindArtwork,
		ItemID:      artwork.ID,
		SaleDate:    time.Now().Add(time.Second),
		TotalAmount: 1200,
	}
	require.NoError(t, db.Create(&sale).Error)

	repaired, err := svc.Reconcile(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, repaired)

	var updated models.Artwork
	require.NoError(t, db.First(&updated, "id = ?", artwork.ID).Error)
	require.Equal(t, models.ArtworkWithClient, updated.Status)
	require.Equal(t, client.ID, *updated.ClientID)

	// Nothing left to repair
	repaired, err = svc.Reconcile(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, repaired)
}

func TestReconcile_DoesNotUndoDeliberateRedisplay(t *testing.T) {
	db := newTestDB(t)
	svc := NewSaleService(db)
	ctx := context.Background()

	client := seedClient(t, db, "Returning buyer")
	artwork := seedArtwork(t, db, "Returned piece", "CAT-R1")

	_, err := svc.RecordSale(ctx, RecordSaleInput{
		ClientID: client.ID, ItemKind: models.ItemKindArtwork,
		ItemID: artwork.ID, TotalAmount: 700,
	})
	require.NoError(t, err)

	// A manager puts the piece back on display through the artwork edit
	// screen. Sales are immutable, so only the artwork row changes.
	var edited models.Artwork
	require.NoError(t, db.First(&edited, "id = ?", artwork.ID).Error)
	edited.Status = models.ArtworkOnDisplay
	edited.ClientID = nil
	require.NoError(t, db.Save(&edited).Error)

	repaired, err := svc.Reconcile(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, repaired)

	var unchanged models.Artwork
	require.NoError(t, db.First(&unchanged, "id = ?", artwork.ID).Error)
	require.Equal(t, models.ArtworkOnDisplay, unchanged.Status)
	require.Nil(t, unchanged.ClientID)
}

func TestReconcile_EarliestSaleWinsDuplicates(t *testing.T) {
	db := newTestDB(t)
	svc := NewSaleService(db)
	ctx := context.Background()

	first := seedClient(t, db, "First")
	second := seedClient(t, db, "Second")
	artwork := seedArtwork(t, db, "Double sold", "CAT-D1")

	// The legacy double-sale defect: two sales of the same artwork, both
	// after the artwork row's last write
	early := models.Sale{
		ClientID: first.ID, ItemKind: models.ItemKindArtwork,
		ItemID: artwork.ID, SaleDate: time.Now().Add(time.Second), TotalAmount: 800,
	}
	late := models.Sale{
		ClientID: second.ID, ItemKind: models.ItemKindArtwork,
		ItemID: artwork.ID, SaleDate: time.Now().Add(time.Minute), TotalAmount: 850,
	}
	require.NoError(t, db.Create(&early).Error)
	require.NoError(t, db.Create(&late).Error)

	repaired, err := svc.Reconcile(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, repaired)

	var updated models.Artwork
	require.NoError(t, db.First(&updated, "id = ?", artwork.ID).Error)
	require.Equal(t, first.ID, *updated.ClientID)
}
