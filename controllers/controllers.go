package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nanalmoa/nanalmoa/services"
	"gorm.io/gorm"
)

var (
	invitationService *services.InvitationService
	queryAggregator   *services.QueryAggregator
	groupService      *services.GroupService
	managerService    *services.ManagerService
	userDirectory     *services.UserDirectory
	db                *gorm.DB
)

// Setup wires the controllers to a database and a notification sink.
// Called once from main, and from tests with an in-memory database.
func Setup(database *gorm.DB, notifier services.NotificationSink) {
	db = database
	invitationService = services.NewInvitationService(database, notifier)
	queryAggregator = services.NewQueryAggregator(database)
	groupService = services.NewGroupService(database, invitationService)
	managerService = services.NewManagerService(database, invitationService)
	userDirectory = services.NewUserDirectory(database)
}

// abortWithServiceError maps a business error code to an HTTP status.
func abortWithServiceError(c *gin.Context, err error) {
	var svcErr *services.Error
	if !errors.As(err, &svcErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	status := http.StatusInternalServerError
	switch svcErr.Code {
	case services.CodeValidation:
		status = http.StatusBadRequest
	case services.CodeForbidden:
		status = http.StatusForbidden
	case services.CodeNotFound:
		status = http.StatusNotFound
	case services.CodeConflict:
		status = http.StatusConflict
	}

	c.JSON(status, gin.H{"error": svcErr.Message, "code": string(svcErr.Code)})
}
