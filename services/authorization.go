package services

import (
	"gorm.io/gorm"
)

// AuthorizationGuard evaluates role rules over the relationship graph.
// It never mutates; each check is a point-in-time read performed on the
// caller's transaction so authorization cannot race the write it gates.
type AuthorizationGuard struct {
	graph *RelationshipGraph
}

func NewAuthorizationGuard(graph *RelationshipGraph) *AuthorizationGuard {
	return &AuthorizationGuard{graph: graph}
}

// WithTx returns a guard whose reads run on the given transaction.
func (a *AuthorizationGuard) WithTx(tx *gorm.DB) *AuthorizationGuard {
	return &AuthorizationGuard{graph: a.graph.WithTx(tx)}
}

// IsGroupAdmin reports whether the user is an admin member of the group.
func (a *AuthorizationGuard) IsGroupAdmin(userUUID string, groupID uint) (bool, error) {
	member, err := a.graph.FindGroupMember(groupID, userUUID)
	if err != nil {
		return false, err
	}
	return member != nil && member.IsAdmin, nil
}

// IsGroupMember reports whether the user belongs to the group.
func (a *AuthorizationGuard) IsGroupMember(userUUID string, groupID uint) (bool, error) {
	member, err := a.graph.FindGroupMember(groupID, userUUID)
	if err != nil {
		return false, err
	}
	return member != nil, nil
}

// HasManagerEdge reports whether the exact oversight pair exists.
func (a *AuthorizationGuard) HasManagerEdge(managerUUID, subordinateUUID string) (bool, error) {
	return a.graph.HasManagerEdge(managerUUID, subordinateUUID)
}
