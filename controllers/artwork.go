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

// CreateArtworkInput defines the expected JSON structure for creating an artwork
type CreateArtworkInput struct {
	Name          string     `json:"name" binding:"required"`
	CatalogNumber string     `json:"catalogNumber" binding:"required"`
	Collection    string     `json:"collection"`
	Certificate   string     `json:"certificate"`
	ImagePath     string     `json:"imagePath"`
	Status        string     `json:"status" binding:"omitempty,oneof=on_display with_client"`
	ClientID      *uuid.UUID `json:"clientId"`
}

// UpdateArtworkInput defines the expected JSON structure for updating an artwork
type UpdateArtworkInput struct {
	Name          *string    `json:"name"`
	CatalogNumber *string    `json:"catalogNumber"`
	Collection    *string    `json:"collection"`
	Certificate   *string    `json:"certificate"`
	ImagePath     *string    `json:"imagePath"`
	Status        *string    `json:"status" binding:"omitempty,oneof=on_display with_client"`
	ClientID      *uuid.UUID `json:"clientId"`
}

// CreateArtwork creates a new artwork
func CreateArtwork(c *gin.Context) {
	var input CreateArtworkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	status := input.Status
	if status == "" {
		status = models.ArtworkOnDisplay
	}

	if status == models.ArtworkWithClient {
		if input.ClientID == nil {
			utils.RespondWithError(c, http.StatusBadRequest, "An artwork held by a client requires clientId")
			return
		}
		if !clientExists(*input.ClientID) {
			utils.RespondWithError(c, http.StatusBadRequest, "Client not found")
			return
		}
	}

	artwork := models.Artwork{
		Name:          input.Name,
		CatalogNumber: input.CatalogNumber,
		Collection:    input.Collection,
		Certificate:   input.Certificate,
		ImagePath:     input.ImagePath,
		Status:        status,
		ClientID:      input.ClientID,
	}

	if err := config.DB.Create(&artwork).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create artwork")
		return
	}

	c.JSON(http.StatusCreated, artwork)
}

// GetArtworks retrieves artworks, optionally filtered by status
// (?status=on_display powers the sale screen listing)
func GetArtworks(c *gin.Context) {
	query := config.DB.Order("created_at DESC")

	if status := c.Query("status"); status != "" {
		if status != models.ArtworkOnDisplay && status != models.ArtworkWithClient {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid status filter")
			return
		}
		query = query.Where("status = ?", status)
	}

	var artworks []models.Artwork
	if err := query.Find(&artworks).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve artworks")
		return
	}

	c.JSON(http.StatusOK, artworks)
}

// GetArtwork retrieves a specific artwork by ID
func GetArtwork(c *gin.Context) {
	artworkUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid artwork ID format")
		return
	}

	var artwork models.Artwork
	if err := config.DB.First(&artwork, "id = ?", artworkUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Artwork not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, artwork)
}

// UpdateArtwork updates an existing artwork, keeping the status/owner pairing
func UpdateArtwork(c *gin.Context) {
	artworkUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid artwork ID format")
		return
	}

	var input UpdateArtworkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var artwork models.Artwork
	if err := config.DB.First(&artwork, "id = ?", artworkUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Artwork not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		artwork.Name = *input.Name
	}
	if input.CatalogNumber != nil {
		artwork.CatalogNumber = *input.CatalogNumber
	}
	if input.Collection != nil {
		artwork.Collection = *input.Collection
	}
	if input.Certificate != nil {
		artwork.Certificate = *input.Certificate
	}
	if input.ImagePath != nil {
		artwork.ImagePath = *input.ImagePath
	}
	if input.Status != nil {
		artwork.Status = *input.Status
	}
	if input.ClientID != nil {
		artwork.ClientID = input.ClientID
	}

	if artwork.Status == models.ArtworkWithClient {
		if artwork.ClientID == nil {
			utils.RespondWithError(c, http.StatusBadRequest, "An artwork held by a client requires clientId")
			return
		}
		if !clientExists(*artwork.ClientID) {
			utils.RespondWithError(c, http.StatusBadRequest, "Client not found")
			return
		}
	}

	// The model hook clears the owner when the artwork returns to display
	if err := config.DB.Save(&artwork).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update artwork")
		return
	}

	c.JSON(http.StatusOK, artwork)
}

// DeleteArtwork soft deletes an artwork
func DeleteArtwork(c *gin.Context) {
	artworkUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid artwork ID format")
		return
	}

	result := config.DB.Where("id = ?", artworkUUID).Delete(&models.Artwork{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete artwork")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Artwork not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Artwork deleted successfully"})
}

func clientExists(id uuid.UUID) bool {
	var count int64
	config.DB.Model(&models.Client{}).Where("id = ?", id).Count(&count)
	return count > 0
}
