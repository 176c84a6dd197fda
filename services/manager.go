package services

import (
	"github.com/nanalmoa/nanalmoa/models"
	"gorm.io/gorm"
)

// UserSummary is the public shape of a user in manager listings.
type UserSummary struct {
	UserUUID string `json:"user_uuid"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// ManagerService reads the oversight graph and dissolves manager
// edges. Dissolution marks the accepted invitation that created the
// edge as removed, in the same transaction.
type ManagerService struct {
	db          *gorm.DB
	users       *UserDirectory
	graph       *RelationshipGraph
	invitations *InvitationService
}

func NewManagerService(db *gorm.DB, invitations *InvitationService) *ManagerService {
	return &ManagerService{
		db:          db,
		users:       NewUserDirectory(db),
		graph:       NewRelationshipGraph(db),
		invitations: invitations,
	}
}

// Managers lists the users overseeing the given subordinate.
func (s *ManagerService) Managers(subordinateUUID string) ([]UserSummary, error) {
	edges, err := s.graph.ManagersOf(subordinateUUID)
	if err != nil {
		return nil, err
	}

	summaries := make([]UserSummary, 0, len(edges))
	for _, edge := range edges {
		summary, err := s.summarize(edge.ManagerUUID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// Subordinates lists the users the given manager oversees.
func (s *ManagerService) Subordinates(managerUUID string) ([]UserSummary, error) {
	edges, err := s.graph.SubordinatesOf(managerUUID)
	if err != nil {
		return nil, err
	}

	summaries := make([]UserSummary, 0, len(edges))
	for _, edge := range edges {
		summary, err := s.summarize(edge.SubordinateUUID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// RemoveEdge dissolves a manager relation. Either party may end it; the
// edge delete and the invitation flip to removed share one transaction,
// and the other party is notified once it commits.
func (s *ManagerService) RemoveEdge(managerUUID, subordinateUUID, actingUUID string) error {
	if actingUUID != managerUUID && actingUUID != subordinateUUID {
		return ErrForbidden("only a participant can end a manager relation")
	}

	var removed *models.Invitation

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.graph.WithTx(tx).RemoveManagerEdge(managerUUID, subordinateUUID); err != nil {
			return err
		}

		invitation, err := s.invitations.Store().WithTx(tx).FindAcceptedManagerInvitation(managerUUID, subordinateUUID)
		if err != nil {
			return err
		}
		if invitation != nil {
			if err := s.invitations.MarkRemoved(tx, invitation.ID); err != nil {
				return err
			}
			invitation.Status = models.InvitationStatusRemoved
			removed = invitation
		}

		// Drop the manager flag when the last subordinate is gone.
		remaining, err := s.graph.WithTx(tx).SubordinatesOf(managerUUID)
		if err != nil {
			return err
		}
		if len(remaining) == 0 {
			return tx.Model(&models.User{}).
				Where("user_uuid = ?", managerUUID).
				Update("is_manager", false).Error
		}
		return nil
	})
	if err != nil {
		return err
	}

	if removed != nil {
		counterparty := managerUUID
		if actingUUID == managerUUID {
			counterparty = subordinateUUID
		}
		s.invitations.notifier.Notify(counterparty, EventInvitationRemoved, removed)
	}
	return nil
}

func (s *ManagerService) summarize(userUUID string) (UserSummary, error) {
	user, err := s.users.FindByUUID(userUUID)
	if err != nil {
		if svcErr, ok := err.(*Error); ok && svcErr.Code == CodeNotFound {
			return UserSummary{UserUUID: userUUID}, nil
		}
		return UserSummary{}, err
	}
	return UserSummary{
		UserUUID: user.UserUUID,
		Name:     user.Name,
		Email:    user.Email,
	}, nil
}
