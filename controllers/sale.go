package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"galeria-backend/config"
	"galeria-backend/models"
	"galeria-backend/services"
	"galeria-backend/utils"
)

// CreateSaleInput defines the expected JSON structure for recording a sale.
// The amount is caller-supplied; it is not derived from the stored price.
type CreateSaleInput struct {
	ClientID    uuid.UUID `json:"clientId" binding:"required"`
	ItemKind    string    `json:"itemKind" binding:"required,oneof=artwork product"`
	ItemID      uuid.UUID `json:"itemId" binding:"required"`
	TotalAmount float64   `json:"totalAmount" binding:"min=0"`
}

// SaleController exposes the sales workflow over HTTP. Sales are immutable:
// there is deliberately no update or delete handler here.
type SaleController struct {
	Sales *services.SaleService
}

// CreateSale records a sale and the matching item update
func (s *SaleController) CreateSale(c *gin.Context) {
	var input CreateSaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Stamp the seller from the authenticated session
	var sellerID *uuid.UUID
	if raw, exists := c.Get("userId"); exists {
		if str, ok := raw.(string); ok {
			if id, err := uuid.Parse(str); err == nil {
				sellerID = &id
			}
		}
	}

	sale, err := s.Sales.RecordSale(c.Request.Context(), services.RecordSaleInput{
		ClientID:    input.ClientID,
		ItemKind:    input.ItemKind,
		ItemID:      input.ItemID,
		TotalAmount: input.TotalAmount,
		SellerID:    sellerID,
	})
	if err != nil {
		var validationErr *services.ValidationError
		switch {
		case errors.As(err, &validationErr):
			utils.RespondWithError(c, http.StatusBadRequest, validationErr.Error())
		case errors.Is(err, services.ErrItemNoLongerAvailable):
			utils.RespondWithError(c, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to record sale")
		}
		return
	}

	c.JSON(http.StatusCreated, sale)
}

// GetSales retrieves all sales, most recent first
func (s *SaleController) GetSales(c *gin.Context) {
	var sales []models.Sale
	if err := config.DB.Order("sale_date DESC").Find(&sales).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve sales")
		return
	}

	c.JSON(http.StatusOK, sales)
}

// GetSale retrieves a specific sale by ID
func (s *SaleController) GetSale(c *gin.Context) {
	saleUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid sale ID format")
		return
	}

	var sale models.Sale
	if err := config.DB.First(&sale, "id = ?", saleUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Sale not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, sale)
}
