// controllers/service_controller.go
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

func GetServices(c *gin.Context) {
	skip, limit := utils.ParseSkipLimit(c)

	var list []models.Service
	if err := config.DB.Offset(skip).Limit(limit).Find(&list).Error; err != nil {
		log.Printf("❌ DB ERROR listing services: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func CreateService(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	if strings.TrimSpace(svc.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Service title is required.",
		})
		return
	}

	if err := config.DB.Create(&svc).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Database error",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusCreated, svc)
}

func UpdateService(c *gin.Context) {
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

	if err := config.DB.Model(&models.Service{}).Where("id = ?", id).Updates(updateData).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Update failed",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Service updated successfully"})
}

func DeleteService(c *gin.Context) {
	result := config.DB.Delete(&models.Service{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Delete failed",
			"details": result.Error.Error(),
		})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Service not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
