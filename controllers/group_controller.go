package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CreateGroupInput struct {
	GroupName string `json:"group_name" binding:"required" example:"Family"`
}

// CreateGroup godoc
// @Summary Create a new group
// @Description Creates a group with the authenticated user as its first admin member
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param group body CreateGroupInput true "Group Creation"
// @Success 201 {object} services.GroupInfo "Group created"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/groups [post]
func CreateGroup(c *gin.Context) {
	userUUID := c.MustGet("userUUID").(string)

	var input CreateGroupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	info, err := groupService.CreateGroup(userUUID, input.GroupName)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, info)
}

// GetGroups godoc
// @Summary List the authenticated user's groups
// @Description Returns every group the user belongs to, with member counts
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "List of groups"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/groups [get]
func GetGroups(c *gin.Context) {
	userUUID := c.MustGet("userUUID").(string)

	groups, err := groupService.ListUserGroups(userUUID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// GetGroup godoc
// @Summary Get a group's details
// @Description Returns a group with its member list; members only
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} services.GroupDetail "Group details"
// @Failure 400 {object} map[string]string "Invalid group ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Group not found"
// @Router /api/groups/{id} [get]
func GetGroup(c *gin.Context) {
	userUUID := c.MustGet("userUUID").(string)
	groupID, ok := parseGroupID(c)
	if !ok {
		return
	}

	detail, err := groupService.GetGroupDetail(groupID, userUUID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// DeleteGroup godoc
// @Summary Delete a group
// @Description Deletes a group and its memberships; group admin only
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} map[string]string "Group deleted"
// @Failure 400 {object} map[string]string "Invalid group ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Group not found"
// @Router /api/groups/{id} [delete]
func DeleteGroup(c *gin.Context) {
	userUUID := c.MustGet("userUUID").(string)
	groupID, ok := parseGroupID(c)
	if !ok {
		return
	}

	if err := groupService.DeleteGroup(groupID, userUUID); err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Group deleted successfully"})
}

// RemoveGroupMember godoc
// @Summary Remove a member from a group
// @Description Expels a member; group admin only, and the originating invitation is marked removed
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Param userUuid path string true "Member UUID"
// @Success 200 {object} map[string]string "Member removed"
// @Failure 400 {object} map[string]string "Invalid group ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Group or member not found"
// @Router /api/groups/{id}/members/{userUuid} [delete]
func RemoveGroupMember(c *gin.Context) {
	userUUID := c.MustGet("userUUID").(string)
	groupID, ok := parseGroupID(c)
	if !ok {
		return
	}
	memberUUID := c.Param("userUuid")

	if err := groupService.RemoveMember(groupID, memberUUID, userUUID); err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member removed successfully"})
}

func parseGroupID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid group ID"})
		return 0, false
	}
	return uint(id), true
}
