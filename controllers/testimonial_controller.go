// controllers/testimonial_controller.go
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

// GetTestimonials (GET /testimonials) only exposes approved entries; the full
// list (?all=true) is for the back office.
func GetTestimonials(c *gin.Context) {
	skip, limit := utils.ParseSkipLimit(c)

	query := config.DB.Offset(skip).Limit(limit).Order("id DESC")
	if c.Query("all") != "true" {
		query = query.Where("approved = ?", true)
	}

	var list []models.Testimonial
	if err := query.Find(&list).Error; err != nil {
		log.Printf("❌ DB ERROR listing testimonials: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// CreateTestimonial (POST /testimonials) is the public submit form. New
// entries always start unapproved.
func CreateTestimonial(c *gin.Context) {
	var t models.Testimonial
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	if strings.TrimSpace(t.Name) == "" || strings.TrimSpace(t.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Name and text are required.",
		})
		return
	}
	if t.Rating < 1 || t.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Rating must be between 1 and 5.",
		})
		return
	}

	t.Approved = false
	if err := config.DB.Create(&t).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Database error",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusCreated, t)
}

// ApproveTestimonial (PATCH /testimonials/:id/approve)
func ApproveTestimonial(c *gin.Context) {
	result := config.DB.Model(&models.Testimonial{}).
		Where("id = ?", c.Param("id")).
		Update("approved", true)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Update failed",
			"details": result.Error.Error(),
		})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Testimonial not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Testimonial approved"})
}

func DeleteTestimonial(c *gin.Context) {
	result := config.DB.Delete(&models.Testimonial{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Delete failed",
			"details": result.Error.Error(),
		})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Testimonial not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
