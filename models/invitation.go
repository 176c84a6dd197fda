package models

import (
	"time"
)

// InvitationKind discriminates what relationship an invitation forms.
type InvitationKind string

const (
	InvitationKindGroup   InvitationKind = "group"
	InvitationKindManager InvitationKind = "manager"
)

// InvitationStatus is the invitation lifecycle state. Pending is the
// only non-terminal state; Removed is reached from Accepted when the
// resulting relationship is later dissolved.
type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusRejected InvitationStatus = "rejected"
	InvitationStatusCanceled InvitationStatus = "canceled"
	InvitationStatusRemoved  InvitationStatus = "removed"
)

// Invitation is a persisted request to form a group membership or a
// manager edge. GroupID is set if and only if Kind is group. Rows are
// never deleted; terminal states are permanent history.
type Invitation struct {
	ID          uint             `gorm:"primaryKey" json:"invitation_id"`
	Kind        InvitationKind   `gorm:"size:20;not null" json:"invitation_type"`
	Status      InvitationStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
	InviterUUID string           `gorm:"size:36;not null;index" json:"inviter_uuid"`
	InviteeUUID string           `gorm:"size:36;not null;index" json:"invitee_uuid"`
	GroupID     *uint            `json:"group_id,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// IsPending reports whether the invitation can still be acted on.
func (i *Invitation) IsPending() bool {
	return i.Status == InvitationStatusPending
}

func (i *Invitation) IsGroupInvitation() bool {
	return i.Kind == InvitationKindGroup
}

func (i *Invitation) IsManagerInvitation() bool {
	return i.Kind == InvitationKindManager
}
