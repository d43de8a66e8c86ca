// controllers/user_controller.go
package controllers

import (
	"log"
	"net/http"
	"strings"

	"hotel-dd-backend/config"
	"hotel-dd-backend/models"
	"hotel-dd-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type CreateUserPayload struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	IsAdmin  bool   `json:"is_admin"`
}

func GetUsers(c *gin.Context) {
	skip, limit := utils.ParseSkipLimit(c)

	var users []models.User
	if err := config.DB.Offset(skip).Limit(limit).Find(&users).Error; err != nil {
		log.Printf("❌ DB ERROR listing users: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, users)
}

func CreateUser(c *gin.Context) {
	var payload CreateUserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "full_name, email and password are required")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := models.User{
		FullName: strings.TrimSpace(payload.FullName),
		Email:    strings.ToLower(strings.TrimSpace(payload.Email)),
		Password: string(hash),
		IsAdmin:  payload.IsAdmin,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") || strings.Contains(err.Error(), "UNIQUE constraint failed") {
			utils.JSONError(c, http.StatusConflict, "Email already registered")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, user)
}

func DeleteUser(c *gin.Context) {
	result := config.DB.Delete(&models.User{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Delete failed")
		return
	}
	if result.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "User not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Deleted"})
}
