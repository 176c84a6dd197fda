package services

import (
	"time"

	"github.com/nanalmoa/nanalmoa/models"
	"gorm.io/gorm"
)

// GroupInfo is the list-view shape of a group for one user, with the
// derived member count.
type GroupInfo struct {
	GroupID     uint      `json:"group_id"`
	GroupName   string    `json:"group_name"`
	CreatedAt   time.Time `json:"created_at"`
	MemberCount int64     `json:"member_count"`
	IsAdmin     bool      `json:"is_admin"`
}

// GroupMemberView is a member row joined with the user's display name.
type GroupMemberView struct {
	UserUUID string    `json:"user_uuid"`
	Name     string    `json:"name"`
	IsAdmin  bool      `json:"is_admin"`
	JoinedAt time.Time `json:"joined_at"`
}

// GroupDetail is GroupInfo plus the full member list.
type GroupDetail struct {
	GroupInfo
	Members []GroupMemberView `json:"members"`
}

// GroupService owns group CRUD and membership removal. Removal marks
// the accepted invitation that formed the membership as removed, inside
// the same transaction, via the invitation state machine.
type GroupService struct {
	db          *gorm.DB
	users       *UserDirectory
	groups      *GroupDirectory
	graph       *RelationshipGraph
	invitations *InvitationService
}

func NewGroupService(db *gorm.DB, invitations *InvitationService) *GroupService {
	return &GroupService{
		db:          db,
		users:       NewUserDirectory(db),
		groups:      NewGroupDirectory(db),
		graph:       NewRelationshipGraph(db),
		invitations: invitations,
	}
}

// CreateGroup creates a group with the creator as its first admin
// member, atomically.
func (s *GroupService) CreateGroup(creatorUUID, name string) (*GroupInfo, error) {
	if name == "" {
		return nil, ErrValidation("group name is required")
	}

	var group models.Group
	err := s.db.Transaction(func(tx *gorm.DB) error {
		group = models.Group{Name: name}
		if err := tx.Create(&group).Error; err != nil {
			return err
		}
		return s.graph.WithTx(tx).AddGroupMember(group.ID, creatorUUID, true)
	})
	if err != nil {
		return nil, err
	}

	return &GroupInfo{
		GroupID:     group.ID,
		GroupName:   group.Name,
		CreatedAt:   group.CreatedAt,
		MemberCount: 1,
		IsAdmin:     true,
	}, nil
}

// ListUserGroups returns the groups the user belongs to, with member
// counts.
func (s *GroupService) ListUserGroups(userUUID string) ([]GroupInfo, error) {
	memberships, err := s.graph.MembershipsOf(userUUID)
	if err != nil {
		return nil, err
	}

	infos := make([]GroupInfo, 0, len(memberships))
	for _, membership := range memberships {
		group, err := s.groups.FindByID(membership.GroupID)
		if err != nil {
			return nil, err
		}
		count, err := s.graph.MemberCount(group.ID)
		if err != nil {
			return nil, err
		}
		infos = append(infos, GroupInfo{
			GroupID:     group.ID,
			GroupName:   group.Name,
			CreatedAt:   group.CreatedAt,
			MemberCount: count,
			IsAdmin:     membership.IsAdmin,
		})
	}
	return infos, nil
}

// GetGroupDetail returns a group with its member list. Only members may
// look inside.
func (s *GroupService) GetGroupDetail(groupID uint, userUUID string) (*GroupDetail, error) {
	group, err := s.groups.FindByID(groupID)
	if err != nil {
		return nil, err
	}

	membership, err := s.graph.FindGroupMember(groupID, userUUID)
	if err != nil {
		return nil, err
	}
	if membership == nil {
		return nil, ErrForbidden("you are not a member of this group")
	}

	members, err := s.graph.GroupMembers(groupID)
	if err != nil {
		return nil, err
	}

	views := make([]GroupMemberView, 0, len(members))
	for _, member := range members {
		name, err := s.users.NameOf(member.UserUUID)
		if err != nil {
			if svcErr, ok := err.(*Error); !ok || svcErr.Code != CodeNotFound {
				return nil, err
			}
		}
		views = append(views, GroupMemberView{
			UserUUID: member.UserUUID,
			Name:     name,
			IsAdmin:  member.IsAdmin,
			JoinedAt: member.CreatedAt,
		})
	}

	return &GroupDetail{
		GroupInfo: GroupInfo{
			GroupID:     group.ID,
			GroupName:   group.Name,
			CreatedAt:   group.CreatedAt,
			MemberCount: int64(len(members)),
			IsAdmin:     membership.IsAdmin,
		},
		Members: views,
	}, nil
}

// DeleteGroup deletes a group and its membership rows. Admin only.
// Every membership dissolved here marks its originating accepted
// invitation removed in the same transaction; the invitation rows
// themselves are history and stay behind.
func (s *GroupService) DeleteGroup(groupID uint, adminUUID string) error {
	var removed []*models.Invitation

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.groups.WithTx(tx).FindByID(groupID); err != nil {
			return err
		}

		graph := s.graph.WithTx(tx)
		membership, err := graph.FindGroupMember(groupID, adminUUID)
		if err != nil {
			return err
		}
		if membership == nil || !membership.IsAdmin {
			return ErrForbidden("only a group admin can delete the group")
		}

		members, err := graph.GroupMembers(groupID)
		if err != nil {
			return err
		}
		store := s.invitations.Store().WithTx(tx)
		for _, member := range members {
			invitation, err := store.FindAcceptedGroupInvitation(groupID, member.UserUUID)
			if err != nil {
				return err
			}
			if invitation != nil {
				if err := s.invitations.MarkRemoved(tx, invitation.ID); err != nil {
					return err
				}
				invitation.Status = models.InvitationStatusRemoved
				removed = append(removed, invitation)
			}
		}

		if err := tx.Where("group_id = ?", groupID).Delete(&models.GroupMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Group{}, groupID).Error
	})
	if err != nil {
		return err
	}

	for _, invitation := range removed {
		s.invitations.notifier.Notify(invitation.InviteeUUID, EventInvitationRemoved, invitation)
	}
	return nil
}

// RemoveMember expels a member from a group. Admin only, and admins
// cannot expel themselves. The membership delete and the invitation
// status flip to removed are one transaction.
func (s *GroupService) RemoveMember(groupID uint, memberUUID, adminUUID string) error {
	var removed *models.Invitation

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.groups.WithTx(tx).FindByID(groupID); err != nil {
			return err
		}

		graph := s.graph.WithTx(tx)
		adminMembership, err := graph.FindGroupMember(groupID, adminUUID)
		if err != nil {
			return err
		}
		if adminMembership == nil || !adminMembership.IsAdmin {
			return ErrForbidden("only a group admin can remove members")
		}
		if adminUUID == memberUUID {
			return ErrForbidden("cannot remove yourself from the group")
		}

		if err := graph.RemoveGroupMember(groupID, memberUUID); err != nil {
			return err
		}

		// Members admitted at group creation have no invitation behind
		// them; only invited members leave an audit row to flip.
		invitation, err := s.invitations.Store().WithTx(tx).FindAcceptedGroupInvitation(groupID, memberUUID)
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
		return nil
	})
	if err != nil {
		return err
	}

	if removed != nil {
		s.invitations.notifier.Notify(removed.InviteeUUID, EventInvitationRemoved, removed)
	}
	return nil
}
