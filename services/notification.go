package services

import (
	"github.com/nanalmoa/nanalmoa/models"
)

// Notification event types, one per invitation lifecycle step.
const (
	EventInvitationCreated  = "invitation_created"
	EventInvitationAccepted = "invitation_accepted"
	EventInvitationRejected = "invitation_rejected"
	EventInvitationCanceled = "invitation_canceled"
	EventInvitationRemoved  = "invitation_removed"
)

// NotificationSink receives invitation lifecycle events after the
// transaction that produced them has committed. Delivery is
// fire-and-forget: implementations must not block and their failures
// never affect the request.
type NotificationSink interface {
	Notify(recipientUUID string, eventType string, invitation *models.Invitation)
}

// NopSink discards all notifications.
type NopSink struct{}

func (NopSink) Notify(string, string, *models.Invitation) {}
