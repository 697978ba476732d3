package controllers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"galeria-backend/config"
	"galeria-backend/utils"
)

// UploadController stores gallery images on disk and hands back their
// public URL. Same constraints as the original uploader: image content
// type, at most the configured size (5 MiB by default).
type UploadController struct {
	Cfg *config.Config
}

// UploadImage handles a multipart upload under the "file" field
func (u *UploadController) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing file upload")
		return
	}

	if file.Size > u.Cfg.Uploads.MaxSizeBytes {
		utils.RespondWithError(c, http.StatusBadRequest, "Image must be at most 5MB")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		utils.RespondWithError(c, http.StatusBadRequest, "File must be an image")
		return
	}

	if err := os.MkdirAll(u.Cfg.Uploads.Dir, 0o755); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to prepare upload directory")
		return
	}

	ext := filepath.Ext(file.Filename)
	name := utils.GenerateRandomString(16) + ext
	dest := filepath.Join(u.Cfg.Uploads.Dir, name)

	if err := c.SaveUploadedFile(file, dest); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to store image")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"path": name,
		"url":  u.Cfg.Uploads.PublicPrefix + "/" + name,
	})
}
