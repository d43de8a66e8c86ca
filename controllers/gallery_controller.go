// controllers/gallery_controller.go
package controllers

import (
	"log"
	"net/http"
	"strings"

	"hotel-dd-backend/config"
	"hotel-dd-backend/models"
	"hotel-dd-backend/utils"

	"github.com/gin-gonic/gin"
)

func GetGallery(c *gin.Context) {
	skip, limit := utils.ParseSkipLimit(c)

	var images []models.GalleryImage
	if err := config.DB.Offset(skip).Limit(limit).Find(&images).Error; err != nil {
		log.Printf("❌ DB ERROR listing gallery: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, images)
}

// CreateGalleryImage registers image metadata; the file itself is expected to
// already live under static storage.
func CreateGalleryImage(c *gin.Context) {
	var img models.GalleryImage
	if err := c.ShouldBindJSON(&img); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	if strings.TrimSpace(img.URL) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Image URL is required.",
		})
		return
	}

	if err := config.DB.Create(&img).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Database error",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusCreated, img)
}

func UpdateGalleryImage(c *gin.Context) {
	id := c.Param("id")
	var updateData map[string]interface{}

	if err := c.ShouldBindJSON(&updateData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	delete(updateData, "id")
	delete(updateData, "created_at")
	delete(updateData, "updated_at")
	delete(updateData, "deleted_at")

	if err := config.DB.Model(&models.GalleryImage{}).Where("id = ?", id).Updates(updateData).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Update failed",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Gallery image updated successfully"})
}

func DeleteGalleryImage(c *gin.Context) {
	result := config.DB.Delete(&models.GalleryImage{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Delete failed",
			"details": result.Error.Error(),
		})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Image not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
