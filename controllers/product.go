package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"galeria-backend/config"
	"galeria-backend/models"
	"galeria-backend/utils"
)

// CreateProductInput defines the expected JSON structure for creating a product
type CreateProductInput struct {
	Name       string     `json:"name" binding:"required"`
	Category   string     `json:"category"`
	ImagePath  string     `json:"imagePath"`
	ArtworkID  *uuid.UUID `json:"artworkId"`
	StockCount int        `json:"stockCount" binding:"min=0"`
	UnitPrice  float64    `json:"unitPrice" binding:"min=0"`
}

// UpdateProductInput defines the expected JSON structure for updating a product
type UpdateProductInput struct {
	Name       *string    `json:"name"`
	Category   *string    `json:"category"`
	ImagePath  *string    `json:"imagePath"`
	ArtworkID  *uuid.UUID `json:"artworkId"`
	StockCount *int       `json:"stockCount" binding:"omitempty,min=0"`
	UnitPrice  *float64   `json:"unitPrice" binding:"omitempty,min=0"`
}

// CreateProduct creates a new retail product
func CreateProduct(c *gin.Context) {
	var input CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.ArtworkID != nil && !artworkExists(*input.ArtworkID) {
		utils.RespondWithError(c, http.StatusBadRequest, "Linked artwork not found")
		return
	}

	product := models.Product{
		Name:       input.Name,
		Category:   input.Category,
		ImagePath:  input.ImagePath,
		ArtworkID:  input.ArtworkID,
		StockCount: input.StockCount,
		UnitPrice:  input.UnitPrice,
	}

	if err := config.DB.Create(&product).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create product")
		return
	}

	c.JSON(http.StatusCreated, product)
}

// GetProducts retrieves products; ?sellable=true limits the listing to
// products with stock, which is what the sale screen offers
func GetProducts(c *gin.Context) {
	query := config.DB.Order("name")

	if c.Query("sellable") == "true" {
		query = query.Where("stock_count >= 1")
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve products")
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct retrieves a specific product by ID
func GetProduct(c *gin.Context) {
	productUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	var product models.Product
	if err := config.DB.First(&product, "id = ?", productUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, product)
}

// UpdateProduct updates an existing product
func UpdateProduct(c *gin.Context) {
	productUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	var input UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var product models.Product
	if err := config.DB.First(&product, "id = ?", productUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.ImagePath != nil {
		product.ImagePath = *input.ImagePath
	}
	if input.ArtworkID != nil {
		if !artworkExists(*input.ArtworkID) {
			utils.RespondWithError(c, http.StatusBadRequest, "Linked artwork not found")
			return
		}
		product.ArtworkID = input.ArtworkID
	}
	if input.StockCount != nil {
		product.StockCount = *input.StockCount
	}
	if input.UnitPrice != nil {
		product.UnitPrice = *input.UnitPrice
	}

	if err := config.DB.Save(&product).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update product")
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct soft deletes a product
func DeleteProduct(c *gin.Context) {
	productUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	result := config.DB.Where("id = ?", productUUID).Delete(&models.Product{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete product")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

func artworkExists(id uuid.UUID) bool {
	var count int64
	config.DB.Model(&models.Artwork{}).Where("id = ?", id).Count(&count)
	return count > 0
}
