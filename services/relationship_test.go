package services

import (
	"testing"
)

func TestGroupMembershipUniqueness(t *testing.T) {
	db := setupDB(t)
	graph := NewRelationshipGraph(db)
	user := seedUser(t, db, "user")
	admin := seedUser(t, db, "admin")
	groupID := seedGroup(t, db, "team", admin)

	if err := graph.AddGroupMember(groupID, user, false); err != nil {
		t.Fatalf("AddGroupMember failed: %v", err)
	}
	err := graph.AddGroupMember(groupID, user, false)
	wantCode(t, err, CodeConflict)

	if err := graph.RemoveGroupMember(groupID, user); err != nil {
		t.Fatalf("RemoveGroupMember failed: %v", err)
	}
	err = graph.RemoveGroupMember(groupID, user)
	wantCode(t, err, CodeNotFound)
}

func TestManagerEdgeDirectionality(t *testing.T) {
	db := setupDB(t)
	graph := NewRelationshipGraph(db)
	a := seedUser(t, db, "a")
	b := seedUser(t, db, "b")

	if err := graph.AddManagerEdge(a, b); err != nil {
		t.Fatalf("AddManagerEdge failed: %v", err)
	}
	err := graph.AddManagerEdge(a, b)
	wantCode(t, err, CodeConflict)

	// The inverse edge is distinct.
	has, err := graph.HasManagerEdge(b, a)
	if err != nil {
		t.Fatalf("HasManagerEdge failed: %v", err)
	}
	if has {
		t.Error("edge must be directional")
	}
	if err := graph.AddManagerEdge(b, a); err != nil {
		t.Fatalf("inverse AddManagerEdge failed: %v", err)
	}

	err = graph.RemoveManagerEdge(a, "nobody")
	wantCode(t, err, CodeNotFound)
}

func TestAuthorizationGuard(t *testing.T) {
	db := setupDB(t)
	graph := NewRelationshipGraph(db)
	guard := NewAuthorizationGuard(graph)
	admin := seedUser(t, db, "admin")
	member := seedUser(t, db, "member")
	outsider := seedUser(t, db, "outsider")
	groupID := seedGroup(t, db, "team", admin)

	if err := graph.AddGroupMember(groupID, member, false); err != nil {
		t.Fatalf("AddGroupMember failed: %v", err)
	}

	cases := []struct {
		user        string
		wantAdmin   bool
		wantMember  bool
		description string
	}{
		{admin, true, true, "admin"},
		{member, false, true, "member"},
		{outsider, false, false, "outsider"},
	}
	for _, tc := range cases {
		isAdmin, err := guard.IsGroupAdmin(tc.user, groupID)
		if err != nil {
			t.Fatalf("IsGroupAdmin(%s) failed: %v", tc.description, err)
		}
		if isAdmin != tc.wantAdmin {
			t.Errorf("IsGroupAdmin(%s) = %v, want %v", tc.description, isAdmin, tc.wantAdmin)
		}

		isMember, err := guard.IsGroupMember(tc.user, groupID)
		if err != nil {
			t.Fatalf("IsGroupMember(%s) failed: %v", tc.description, err)
		}
		if isMember != tc.wantMember {
			t.Errorf("IsGroupMember(%s) = %v, want %v", tc.description, isMember, tc.wantMember)
		}
	}
}
