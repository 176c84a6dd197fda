package services

import (
	"testing"

	"github.com/nanalmoa/nanalmoa/models"
)

func TestManagersAndSubordinates(t *testing.T) {
	db := setupDB(t)
	invitations := NewInvitationService(db, nil)
	svc := NewManagerService(db, invitations)

	manager := seedUser(t, db, "manager")
	s1 := seedUser(t, db, "s1")
	s2 := seedUser(t, db, "s2")
	db.Create(&models.ManagerEdge{ManagerUUID: manager, SubordinateUUID: s1})
	db.Create(&models.ManagerEdge{ManagerUUID: manager, SubordinateUUID: s2})

	subordinates, err := svc.Subordinates(manager)
	if err != nil {
		t.Fatalf("Subordinates failed: %v", err)
	}
	if len(subordinates) != 2 {
		t.Fatalf("want 2 subordinates, got %d", len(subordinates))
	}

	managers, err := svc.Managers(s1)
	if err != nil {
		t.Fatalf("Managers failed: %v", err)
	}
	if len(managers) != 1 || managers[0].Name != "manager" {
		t.Errorf("want single manager, got %+v", managers)
	}

	// The relation is directional: the manager has no managers.
	managers, err = svc.Managers(manager)
	if err != nil {
		t.Fatalf("Managers failed: %v", err)
	}
	if len(managers) != 0 {
		t.Errorf("manager should have no managers, got %+v", managers)
	}
}

func TestRemoveEdgeMarksInvitationRemoved(t *testing.T) {
	db := setupDB(t)
	sink := &recordingSink{}
	invitations := NewInvitationService(db, sink)
	svc := NewManagerService(db, invitations)

	manager := seedUser(t, db, "manager")
	subordinate := seedUser(t, db, "subordinate")
	outsider := seedUser(t, db, "outsider")

	invitation, err := invitations.Create(manager, managerInput(subordinate))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := invitations.Accept(invitation.ID, subordinate); err != nil {
		t.Fatalf("Accept failed: %v", err)
	}

	err = svc.RemoveEdge(manager, subordinate, outsider)
	wantCode(t, err, CodeForbidden)

	if err := svc.RemoveEdge(manager, subordinate, subordinate); err != nil {
		t.Fatalf("RemoveEdge failed: %v", err)
	}

	var count int64
	db.Model(&models.ManagerEdge{}).Where("manager_uuid = ?", manager).Count(&count)
	if count != 0 {
		t.Error("edge survived removal")
	}
	if got := loadInvitation(t, db, invitation.ID).Status; got != models.InvitationStatusRemoved {
		t.Errorf("want invitation marked removed, got %s", got)
	}

	// The subordinate ended the relation, so the manager hears about it.
	want := EventInvitationRemoved + ":" + manager
	if got := sink.events[len(sink.events)-1]; got != want {
		t.Errorf("want removal notification %q, got %q", want, got)
	}

	// The manager flag drops with the last subordinate.
	var user models.User
	db.Where("user_uuid = ?", manager).First(&user)
	if user.IsManager {
		t.Error("manager flag should be cleared after losing the last subordinate")
	}

	err = svc.RemoveEdge(manager, subordinate, manager)
	wantCode(t, err, CodeNotFound)
}
