package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nanalmoa/nanalmoa/models"
)

// GetMe godoc
// @Summary Get the authenticated user
// @Description Returns the authenticated user's profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User "User profile"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User not found"
// @Router /api/users/me [get]
func GetMe(c *gin.Context) {
	userUUID := c.MustGet("userUUID").(string)

	user, err := userDirectory.FindByUUID(userUUID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// SearchUsers godoc
// @Summary Search users by name or email
// @Description Prefix search used when picking someone to invite
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search term"
// @Success 200 {object} map[string]interface{} "Matching users"
// @Failure 400 {object} map[string]string "Missing search term"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/users/search [get]
func SearchUsers(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}

	var users []models.User
	if err := db.Where("name LIKE ? OR email LIKE ?", term+"%", term+"%").
		Limit(20).Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search users"})
		return
	}

	results := make([]gin.H, 0, len(users))
	for _, user := range users {
		results = append(results, gin.H{
			"user_uuid": user.UserUUID,
			"name":      user.Name,
			"email":     user.Email,
		})
	}

	c.JSON(http.StatusOK, gin.H{"users": results})
}
