package services

import (
	"errors"

	"github.com/nanalmoa/nanalmoa/models"
	"gorm.io/gorm"
)

// InvitationStore persists invitation records. All business rules live
// in InvitationService; the store only reads and writes rows.
type InvitationStore struct {
	db *gorm.DB
}

func NewInvitationStore(db *gorm.DB) *InvitationStore {
	return &InvitationStore{db: db}
}

// WithTx returns a store bound to the given transaction.
func (s *InvitationStore) WithTx(tx *gorm.DB) *InvitationStore {
	return &InvitationStore{db: tx}
}

// Save inserts a new invitation row. A duplicate-pending-tuple index
// violation surfaces as Conflict.
func (s *InvitationStore) Save(invitation *models.Invitation) error {
	if err := s.db.Create(invitation).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrConflict("an invitation is already pending")
		}
		return err
	}
	return nil
}

// FindByID loads an invitation, failing with NotFound if absent.
func (s *InvitationStore) FindByID(id uint) (*models.Invitation, error) {
	var invitation models.Invitation
	if err := s.db.First(&invitation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound("invitation not found")
		}
		return nil, err
	}
	return &invitation, nil
}

// FindPendingByTuple returns the pending invitation for the exact
// (inviter, invitee, kind, group) tuple, or nil if none exists.
func (s *InvitationStore) FindPendingByTuple(inviterUUID, inviteeUUID string, kind models.InvitationKind, groupID *uint) (*models.Invitation, error) {
	query := s.db.Where("inviter_uuid = ? AND invitee_uuid = ? AND kind = ? AND status = ?",
		inviterUUID, inviteeUUID, kind, models.InvitationStatusPending)
	if groupID != nil {
		query = query.Where("group_id = ?", *groupID)
	} else {
		query = query.Where("group_id IS NULL")
	}

	var invitation models.Invitation
	err := query.First(&invitation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// FindAllByParticipant lists every invitation the user sent or
// received, newest first.
func (s *InvitationStore) FindAllByParticipant(userUUID string) ([]models.Invitation, error) {
	var invitations []models.Invitation
	err := s.db.Where("inviter_uuid = ? OR invitee_uuid = ?", userUUID, userUUID).
		Order("created_at DESC").
		Find(&invitations).Error
	if err != nil {
		return nil, err
	}
	return invitations, nil
}

// FindAcceptedGroupInvitation returns the accepted invitation that
// admitted a user to a group, or nil if the membership did not come
// from an invitation.
func (s *InvitationStore) FindAcceptedGroupInvitation(groupID uint, inviteeUUID string) (*models.Invitation, error) {
	var invitation models.Invitation
	err := s.db.Where("kind = ? AND group_id = ? AND invitee_uuid = ? AND status = ?",
		models.InvitationKindGroup, groupID, inviteeUUID, models.InvitationStatusAccepted).
		First(&invitation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// FindAcceptedManagerInvitation returns the accepted invitation behind
// a manager edge, or nil if none exists.
func (s *InvitationStore) FindAcceptedManagerInvitation(managerUUID, subordinateUUID string) (*models.Invitation, error) {
	var invitation models.Invitation
	err := s.db.Where("kind = ? AND inviter_uuid = ? AND invitee_uuid = ? AND status = ?",
		models.InvitationKindManager, managerUUID, subordinateUUID, models.InvitationStatusAccepted).
		First(&invitation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}
