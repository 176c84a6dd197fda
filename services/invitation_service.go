package services

import (
	"github.com/nanalmoa/nanalmoa/models"
	"gorm.io/gorm"
)

// CreateInvitationInput carries the client-supplied fields of a new
// invitation. GroupID is required for group invitations and must be
// absent for manager invitations.
type CreateInvitationInput struct {
	Kind        models.InvitationKind
	InviteeUUID string
	GroupID     *uint
}

// InvitationService is the invitation state machine. It is the only
// writer of Invitation.Status and the only component that mutates the
// relationship graph as a consequence of an invitation transition.
// Every operation validates, authorizes and writes inside a single
// transaction.
type InvitationService struct {
	db       *gorm.DB
	users    *UserDirectory
	groups   *GroupDirectory
	store    *InvitationStore
	graph    *RelationshipGraph
	guard    *AuthorizationGuard
	notifier NotificationSink
}

func NewInvitationService(db *gorm.DB, notifier NotificationSink) *InvitationService {
	if notifier == nil {
		notifier = NopSink{}
	}
	graph := NewRelationshipGraph(db)
	return &InvitationService{
		db:       db,
		users:    NewUserDirectory(db),
		groups:   NewGroupDirectory(db),
		store:    NewInvitationStore(db),
		graph:    graph,
		guard:    NewAuthorizationGuard(graph),
		notifier: notifier,
	}
}

// Create validates and persists a new pending invitation. The duplicate
// checks and the insert share one transaction; the partial unique index
// on the pending tuple backstops racing creates that both pass the
// existence check.
func (s *InvitationService) Create(inviterUUID string, input CreateInvitationInput) (*models.Invitation, error) {
	var invitation *models.Invitation

	err := s.db.Transaction(func(tx *gorm.DB) error {
		users := s.users.WithTx(tx)

		inviterExists, err := users.Exists(inviterUUID)
		if err != nil {
			return err
		}
		if !inviterExists {
			return ErrNotFound("inviter not found")
		}

		inviteeExists, err := users.Exists(input.InviteeUUID)
		if err != nil {
			return err
		}
		if !inviteeExists {
			return ErrNotFound("invitee not found")
		}

		if inviterUUID == input.InviteeUUID {
			return ErrConflict("cannot invite yourself")
		}

		switch input.Kind {
		case models.InvitationKindGroup:
			if err := s.validateGroupCreate(tx, inviterUUID, input); err != nil {
				return err
			}
		case models.InvitationKindManager:
			if input.GroupID != nil {
				return ErrValidation("group_id is not allowed for a manager invitation")
			}
			exists, err := s.graph.WithTx(tx).HasManagerEdge(inviterUUID, input.InviteeUUID)
			if err != nil {
				return err
			}
			if exists {
				return ErrConflict("manager relation already exists")
			}
		default:
			return ErrValidation("unknown invitation type")
		}

		store := s.store.WithTx(tx)
		existing, err := store.FindPendingByTuple(inviterUUID, input.InviteeUUID, input.Kind, input.GroupID)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrConflict("an invitation is already pending")
		}

		invitation = &models.Invitation{
			Kind:        input.Kind,
			Status:      models.InvitationStatusPending,
			InviterUUID: inviterUUID,
			InviteeUUID: input.InviteeUUID,
			GroupID:     input.GroupID,
		}
		return store.Save(invitation)
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(invitation.InviteeUUID, EventInvitationCreated, invitation)
	return invitation, nil
}

func (s *InvitationService) validateGroupCreate(tx *gorm.DB, inviterUUID string, input CreateInvitationInput) error {
	if input.GroupID == nil {
		return ErrValidation("group_id is required for a group invitation")
	}

	exists, err := s.groups.WithTx(tx).Exists(*input.GroupID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound("group not found")
	}

	guard := s.guard.WithTx(tx)
	isAdmin, err := guard.IsGroupAdmin(inviterUUID, *input.GroupID)
	if err != nil {
		return err
	}
	if !isAdmin {
		return ErrForbidden("only a group admin can invite members")
	}

	isMember, err := guard.IsGroupMember(input.InviteeUUID, *input.GroupID)
	if err != nil {
		return err
	}
	if isMember {
		return ErrConflict("user is already a member of this group")
	}
	return nil
}

// Accept transitions a pending invitation to accepted and creates the
// resulting relationship in the same transaction. Only the invitee may
// accept. Two concurrent accepts resolve to one success and one
// Conflict: the status flip is a guarded update and the loser's
// transaction rolls back whole.
func (s *InvitationService) Accept(invitationID uint, actingUUID string) (*models.Invitation, error) {
	var invitation *models.Invitation

	err := s.db.Transaction(func(tx *gorm.DB) error {
		inv, err := s.transition(tx, invitationID, actingUUID, actorInvitee, models.InvitationStatusAccepted)
		if err != nil {
			return err
		}

		graph := s.graph.WithTx(tx)
		if inv.IsGroupInvitation() {
			if err := graph.AddGroupMember(*inv.GroupID, inv.InviteeUUID, false); err != nil {
				return err
			}
		} else {
			if err := graph.AddManagerEdge(inv.InviterUUID, inv.InviteeUUID); err != nil {
				return err
			}
			// The inviter now oversees someone.
			if err := tx.Model(&models.User{}).
				Where("user_uuid = ?", inv.InviterUUID).
				Update("is_manager", true).Error; err != nil {
				return err
			}
		}

		invitation = inv
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(invitation.InviterUUID, EventInvitationAccepted, invitation)
	return invitation, nil
}

// Reject transitions a pending invitation to rejected. Only the invitee
// may reject; no relationship is created.
func (s *InvitationService) Reject(invitationID uint, actingUUID string) (*models.Invitation, error) {
	var invitation *models.Invitation

	err := s.db.Transaction(func(tx *gorm.DB) error {
		inv, err := s.transition(tx, invitationID, actingUUID, actorInvitee, models.InvitationStatusRejected)
		if err != nil {
			return err
		}
		invitation = inv
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(invitation.InviterUUID, EventInvitationRejected, invitation)
	return invitation, nil
}

// Cancel transitions a pending invitation to canceled. Only the inviter
// may cancel.
func (s *InvitationService) Cancel(invitationID uint, actingUUID string) (*models.Invitation, error) {
	var invitation *models.Invitation

	err := s.db.Transaction(func(tx *gorm.DB) error {
		inv, err := s.transition(tx, invitationID, actingUUID, actorInviter, models.InvitationStatusCanceled)
		if err != nil {
			return err
		}
		invitation = inv
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(invitation.InviteeUUID, EventInvitationCanceled, invitation)
	return invitation, nil
}

// MarkRemoved flips an accepted invitation to removed. It is invoked by
// the relationship-removal flows on their own transaction, never by
// clients, so the audit trail cannot diverge from the graph.
func (s *InvitationService) MarkRemoved(tx *gorm.DB, invitationID uint) error {
	result := tx.Model(&models.Invitation{}).
		Where("id = ? AND status = ?", invitationID, models.InvitationStatusAccepted).
		Update("status", models.InvitationStatusRemoved)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrConflict("only an accepted invitation can be marked removed")
	}
	return nil
}

// Store exposes the invitation store for the removal flows that need to
// locate the accepted invitation behind a relationship.
func (s *InvitationService) Store() *InvitationStore {
	return s.store
}

type actorRole int

const (
	actorInviter actorRole = iota
	actorInvitee
)

// transition loads the invitation, checks the acting user's role and
// flips Pending to the target status with a guarded update. The
// RowsAffected check is the compare-and-swap that serializes concurrent
// transitions: whichever transaction loses the race sees zero rows and
// fails Conflict.
func (s *InvitationService) transition(tx *gorm.DB, invitationID uint, actingUUID string, role actorRole, target models.InvitationStatus) (*models.Invitation, error) {
	inv, err := s.store.WithTx(tx).FindByID(invitationID)
	if err != nil {
		return nil, err
	}

	switch role {
	case actorInvitee:
		if inv.InviteeUUID != actingUUID {
			return nil, ErrForbidden("only the invited user can do this")
		}
	case actorInviter:
		if inv.InviterUUID != actingUUID {
			return nil, ErrForbidden("only the inviting user can do this")
		}
	}

	if !inv.IsPending() {
		return nil, ErrConflict("invitation is no longer pending")
	}

	result := tx.Model(&models.Invitation{}).
		Where("id = ? AND status = ?", inv.ID, models.InvitationStatusPending).
		Update("status", target)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrConflict("invitation is no longer pending")
	}

	updated, err := s.store.WithTx(tx).FindByID(inv.ID)
	if err != nil {
		return nil, err
	}
	return updated, nil
}
