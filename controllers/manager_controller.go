package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetManagers godoc
// @Summary List the authenticated user's managers
// @Description Returns the users who oversee the authenticated user
// @Tags managers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "List of managers"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/managers [get]
func GetManagers(c *gin.Context) {
	userUUID := c.MustGet("userUUID").(string)

	managers, err := managerService.Managers(userUUID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"managers": managers})
}

// GetSubordinates godoc
// @Summary List the authenticated user's subordinates
// @Description Returns the users the authenticated user oversees
// @Tags managers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "List of subordinates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/managers/subordinates [get]
func GetSubordinates(c *gin.Context) {
	userUUID := c.MustGet("userUUID").(string)

	subordinates, err := managerService.Subordinates(userUUID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"subordinates": subordinates})
}

// RemoveManagerEdge godoc
// @Summary End a manager relation
// @Description Dissolves a manager-subordinate relation; either participant may do it
// @Tags managers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param managerUuid path string true "Manager UUID"
// @Param subordinateUuid path string true "Subordinate UUID"
// @Success 200 {object} map[string]string "Relation removed"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Relation not found"
// @Router /api/managers/{managerUuid}/subordinates/{subordinateUuid} [delete]
func RemoveManagerEdge(c *gin.Context) {
	userUUID := c.MustGet("userUUID").(string)
	managerUUID := c.Param("managerUuid")
	subordinateUUID := c.Param("subordinateUuid")

	if err := managerService.RemoveEdge(managerUUID, subordinateUUID, userUUID); err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Manager relation removed successfully"})
}
