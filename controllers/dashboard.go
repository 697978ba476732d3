package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"galeria-backend/config"
	"galeria-backend/models"
	"galeria-backend/utils"
)

// GetDashboardOverview returns the numbers the landing screen shows:
// entity counts, this month's revenue and today's birthday clients.
func GetDashboardOverview(c *gin.Context) {
	var totalClients int64
	config.DB.Model(&models.Client{}).Count(&totalClients)

	var totalArtworks int64
	config.DB.Model(&models.Artwork{}).Count(&totalArtworks)

	var artworksOnDisplay int64
	config.DB.Model(&models.Artwork{}).
		Where("status = ?", models.ArtworkOnDisplay).
		Count(&artworksOnDisplay)

	var totalProducts int64
	config.DB.Model(&models.Product{}).Count(&totalProducts)

	var totalSales int64
	config.DB.Model(&models.Sale{}).Count(&totalSales)

	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	var monthlyRevenue float64
	config.DB.Model(&models.Sale{}).
		Where("sale_date >= ?", firstOfMonth).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&monthlyRevenue)

	var clients []models.Client
	if err := config.DB.Order("name").Find(&clients).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve clients")
		return
	}
	birthdays := models.BirthdaysOn(now, clients)
	if birthdays == nil {
		birthdays = []models.Client{}
	}

	c.JSON(http.StatusOK, gin.H{
		"totalClients":      totalClients,
		"totalArtworks":     totalArtworks,
		"artworksOnDisplay": artworksOnDisplay,
		"totalProducts":     totalProducts,
		"totalSales":        totalSales,
		"monthlyRevenue":    monthlyRevenue,
		"birthdaysToday":    birthdays,
	})
}
