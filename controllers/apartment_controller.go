// controllers/apartment_controller.go
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

func GetApartments(c *gin.Context) {
	skip, limit := utils.ParseSkipLimit(c)

	var apartments []models.Apartment
	if err := config.DB.Offset(skip).Limit(limit).Find(&apartments).Error; err != nil {
		log.Printf("❌ DB ERROR listing apartments: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, apartments)
}

func GetApartmentByID(c *gin.Context) {
	var apt models.Apartment
	if err := config.DB.First(&apt, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Apartment not found",
		})
		return
	}
	c.JSON(http.StatusOK, apt)
}

func CreateApartment(c *gin.Context) {
	var apt models.Apartment

	if err := c.ShouldBindJSON(&apt); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	apt.Name = strings.TrimSpace(apt.Name)
	if apt.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Apartment name is required.",
		})
		return
	}
	if apt.PricePerNight < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Price per night must be non-negative.",
		})
		return
	}

	if result := config.DB.Create(&apt); result.Error != nil {
		log.Printf("❌ DB ERROR: %v", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Database error",
			"details": result.Error.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, apt)
}

func UpdateApartment(c *gin.Context) {
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

	if err := config.DB.Model(&models.Apartment{}).Where("id = ?", id).Updates(updateData).Error; err != nil {
		log.Printf("❌ Update Error for Apartment %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Update failed",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Apartment updated successfully",
	})
}

func DeleteApartment(c *gin.Context) {
	id := c.Param("id")

	result := config.DB.Delete(&models.Apartment{}, "id = ?", id)
	if result.Error != nil {
		log.Printf("❌ Delete Error for Apartment %s: %v", id, result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Delete failed",
			"details": result.Error.Error(),
		})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Apartment not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
