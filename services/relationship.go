package services

import (
	"errors"

	"github.com/nanalmoa/nanalmoa/models"
	"gorm.io/gorm"
)

// RelationshipGraph owns the two standing relations: group membership
// and manager edges. It knows nothing about invitations; preconditions
// beyond row-level uniqueness are the caller's responsibility.
type RelationshipGraph struct {
	db *gorm.DB
}

func NewRelationshipGraph(db *gorm.DB) *RelationshipGraph {
	return &RelationshipGraph{db: db}
}

// WithTx returns a graph bound to the given transaction.
func (g *RelationshipGraph) WithTx(tx *gorm.DB) *RelationshipGraph {
	return &RelationshipGraph{db: tx}
}

// AddGroupMember inserts a membership row, failing with Conflict if the
// user already belongs to the group.
func (g *RelationshipGraph) AddGroupMember(groupID uint, userUUID string, isAdmin bool) error {
	member := models.GroupMember{
		GroupID:  groupID,
		UserUUID: userUUID,
		IsAdmin:  isAdmin,
	}
	if err := g.db.Create(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrConflict("user is already a member of this group")
		}
		return err
	}
	return nil
}

// RemoveGroupMember deletes a membership row, failing with NotFound if
// the user is not a member.
func (g *RelationshipGraph) RemoveGroupMember(groupID uint, userUUID string) error {
	result := g.db.Where("group_id = ? AND user_uuid = ?", groupID, userUUID).Delete(&models.GroupMember{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound("user is not a member of this group")
	}
	return nil
}

// AddManagerEdge inserts a directional oversight edge, failing with
// Conflict if the exact pair already exists.
func (g *RelationshipGraph) AddManagerEdge(managerUUID, subordinateUUID string) error {
	edge := models.ManagerEdge{
		ManagerUUID:     managerUUID,
		SubordinateUUID: subordinateUUID,
	}
	if err := g.db.Create(&edge).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrConflict("manager relation already exists")
		}
		return err
	}
	return nil
}

// RemoveManagerEdge deletes an oversight edge, failing with NotFound if
// it does not exist.
func (g *RelationshipGraph) RemoveManagerEdge(managerUUID, subordinateUUID string) error {
	result := g.db.Where("manager_uuid = ? AND subordinate_uuid = ?", managerUUID, subordinateUUID).
		Delete(&models.ManagerEdge{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound("manager relation not found")
	}
	return nil
}

// FindGroupMember returns the membership row for a user in a group, or
// nil if the user is not a member.
func (g *RelationshipGraph) FindGroupMember(groupID uint, userUUID string) (*models.GroupMember, error) {
	var member models.GroupMember
	err := g.db.Where("group_id = ? AND user_uuid = ?", groupID, userUUID).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// HasManagerEdge reports whether the exact (manager, subordinate) pair
// exists.
func (g *RelationshipGraph) HasManagerEdge(managerUUID, subordinateUUID string) (bool, error) {
	var count int64
	err := g.db.Model(&models.ManagerEdge{}).
		Where("manager_uuid = ? AND subordinate_uuid = ?", managerUUID, subordinateUUID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GroupMembers lists a group's membership rows ordered by join time.
func (g *RelationshipGraph) GroupMembers(groupID uint) ([]models.GroupMember, error) {
	var members []models.GroupMember
	if err := g.db.Where("group_id = ?", groupID).Order("created_at ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// MemberCount derives the number of members in a group.
func (g *RelationshipGraph) MemberCount(groupID uint) (int64, error) {
	var count int64
	err := g.db.Model(&models.GroupMember{}).Where("group_id = ?", groupID).Count(&count).Error
	return count, err
}

// MembershipsOf lists the groups a user belongs to.
func (g *RelationshipGraph) MembershipsOf(userUUID string) ([]models.GroupMember, error) {
	var members []models.GroupMember
	if err := g.db.Where("user_uuid = ?", userUUID).Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// ManagersOf lists the oversight edges pointing at a subordinate.
func (g *RelationshipGraph) ManagersOf(subordinateUUID string) ([]models.ManagerEdge, error) {
	var edges []models.ManagerEdge
	if err := g.db.Where("subordinate_uuid = ?", subordinateUUID).Find(&edges).Error; err != nil {
		return nil, err
	}
	return edges, nil
}

// SubordinatesOf lists the oversight edges originating from a manager.
func (g *RelationshipGraph) SubordinatesOf(managerUUID string) ([]models.ManagerEdge, error) {
	var edges []models.ManagerEdge
	if err := g.db.Where("manager_uuid = ?", managerUUID).Find(&edges).Error; err != nil {
		return nil, err
	}
	return edges, nil
}
