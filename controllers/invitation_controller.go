package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nanalmoa/nanalmoa/models"
	"github.com/nanalmoa/nanalmoa/services"
)

type CreateInvitationInput struct {
	InvitationType string `json:"invitation_type" binding:"required,oneof=group manager" example:"group"`
	InviteeUUID    string `json:"invitee_uuid" binding:"required" example:"5f0e9b8a-4c1d-4a7e-9b2f-1c3d5e7f9a0b"`
	GroupID        *uint  `json:"group_id" example:"5"`
}

// CreateInvitation godoc
// @Summary Create an invitation
// @Description Sends a group or manager invitation with the authenticated user as inviter
// @Tags invitations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param invitation body CreateInvitationInput true "Invitation Creation"
// @Success 201 {object} map[string]interface{} "Invitation created"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "User or group not found"
// @Failure 409 {object} map[string]string "Conflict"
// @Router /api/invitations [post]
func CreateInvitation(c *gin.Context) {
	userUUID := c.MustGet("userUUID").(string)

	var input CreateInvitationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	invitation, err := invitationService.Create(userUUID, services.CreateInvitationInput{
		Kind:        models.InvitationKind(input.InvitationType),
		InviteeUUID: input.InviteeUUID,
		GroupID:     input.GroupID,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Invitation sent successfully",
		"invitation": invitation,
	})
}

// GetUserInvitations godoc
// @Summary List the authenticated user's invitations
// @Description Returns invitations partitioned into sent/received and group/manager buckets
// @Tags invitations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.InvitationBuckets "Partitioned invitations"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User not found"
// @Router /api/invitations/user [get]
func GetUserInvitations(c *gin.Context) {
	userUUID := c.MustGet("userUUID").(string)

	buckets, err := queryAggregator.ListForUser(userUUID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, buckets)
}

// GetInvitation godoc
// @Summary Get one invitation
// @Description Returns a single invitation; only its participants may see it
// @Tags invitations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Invitation ID"
// @Success 200 {object} services.InvitationView "Invitation"
// @Failure 400 {object} map[string]string "Invalid invitation ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Invitation not found"
// @Router /api/invitations/{id} [get]
func GetInvitation(c *gin.Context) {
	userUUID := c.MustGet("userUUID").(string)
	invitationID, ok := parseInvitationID(c)
	if !ok {
		return
	}

	view, err := queryAggregator.GetForParticipant(invitationID, userUUID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// AcceptInvitation godoc
// @Summary Accept an invitation
// @Description Accepts a pending invitation, creating the group membership or manager relation
// @Tags invitations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Invitation ID"
// @Success 200 {object} map[string]interface{} "Invitation accepted"
// @Failure 400 {object} map[string]string "Invalid invitation ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Invitation not found"
// @Failure 409 {object} map[string]string "Conflict"
// @Router /api/invitations/{id}/accept [patch]
func AcceptInvitation(c *gin.Context) {
	respondToInvitation(c, invitationService.Accept, "Invitation accepted successfully")
}

// RejectInvitation godoc
// @Summary Reject an invitation
// @Description Rejects a pending invitation without creating a relationship
// @Tags invitations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Invitation ID"
// @Success 200 {object} map[string]interface{} "Invitation rejected"
// @Failure 400 {object} map[string]string "Invalid invitation ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Invitation not found"
// @Failure 409 {object} map[string]string "Conflict"
// @Router /api/invitations/{id}/reject [patch]
func RejectInvitation(c *gin.Context) {
	respondToInvitation(c, invitationService.Reject, "Invitation rejected successfully")
}

// CancelInvitation godoc
// @Summary Cancel an invitation
// @Description Lets the inviter withdraw a pending invitation
// @Tags invitations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Invitation ID"
// @Success 200 {object} map[string]interface{} "Invitation canceled"
// @Failure 400 {object} map[string]string "Invalid invitation ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Invitation not found"
// @Failure 409 {object} map[string]string "Conflict"
// @Router /api/invitations/{id}/cancel [patch]
func CancelInvitation(c *gin.Context) {
	respondToInvitation(c, invitationService.Cancel, "Invitation canceled successfully")
}

func respondToInvitation(c *gin.Context, transition func(uint, string) (*models.Invitation, error), message string) {
	userUUID := c.MustGet("userUUID").(string)
	invitationID, ok := parseInvitationID(c)
	if !ok {
		return
	}

	invitation, err := transition(invitationID, userUUID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    message,
		"invitation": invitation,
	})
}

func parseInvitationID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invitation ID"})
		return 0, false
	}
	return uint(id), true
}
