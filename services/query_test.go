package services

import (
	"testing"

	"github.com/nanalmoa/nanalmoa/models"
)

func TestListForUserBuckets(t *testing.T) {
	db := setupDB(t)
	svc := NewInvitationService(db, nil)
	aggregator := NewQueryAggregator(db)

	u1 := seedUser(t, db, "u1")
	u2 := seedUser(t, db, "u2")
	u3 := seedUser(t, db, "u3")
	groupID := seedGroup(t, db, "group5", u1)

	// u1 invites u2 to the group, and u1's manager invitation to u3 gets
	// canceled.
	groupInvitation, err := svc.Create(u1, groupInput(u2, groupID))
	if err != nil {
		t.Fatalf("Create group invitation failed: %v", err)
	}
	managerInvitation, err := svc.Create(u1, managerInput(u3))
	if err != nil {
		t.Fatalf("Create manager invitation failed: %v", err)
	}
	if _, err := svc.Cancel(managerInvitation.ID, u1); err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}

	buckets, err := aggregator.ListForUser(u1)
	if err != nil {
		t.Fatalf("ListForUser failed: %v", err)
	}

	if len(buckets.Sent.Group) != 1 || buckets.Sent.Group[0].ID != groupInvitation.ID {
		t.Errorf("want group invitation in sent.group, got %+v", buckets.Sent.Group)
	}
	if len(buckets.Sent.Manager) != 1 || buckets.Sent.Manager[0].ID != managerInvitation.ID {
		t.Errorf("want manager invitation in sent.manager, got %+v", buckets.Sent.Manager)
	}
	if buckets.Sent.Manager[0].Status != models.InvitationStatusCanceled {
		t.Errorf("want canceled status, got %s", buckets.Sent.Manager[0].Status)
	}
	if len(buckets.Received.Group) != 0 || len(buckets.Received.Manager) != 0 {
		t.Errorf("u1 received nothing, got %+v", buckets.Received)
	}

	if got := buckets.Sent.Group[0].InviterName; got != "u1" {
		t.Errorf("want inviter name u1, got %q", got)
	}
	if got := buckets.Sent.Group[0].InviteeName; got != "u2" {
		t.Errorf("want invitee name u2, got %q", got)
	}
	if got := buckets.Sent.Group[0].GroupName; got != "group5" {
		t.Errorf("want group name group5, got %q", got)
	}

	// The invitee sees the same invitation under received.group.
	inviteeBuckets, err := aggregator.ListForUser(u2)
	if err != nil {
		t.Fatalf("ListForUser(u2) failed: %v", err)
	}
	if len(inviteeBuckets.Received.Group) != 1 || inviteeBuckets.Received.Group[0].ID != groupInvitation.ID {
		t.Errorf("want group invitation in u2 received.group, got %+v", inviteeBuckets.Received.Group)
	}
	if len(inviteeBuckets.Sent.Group) != 0 {
		t.Errorf("u2 sent nothing, got %+v", inviteeBuckets.Sent.Group)
	}
}

func TestListForUserUnknownUser(t *testing.T) {
	db := setupDB(t)
	aggregator := NewQueryAggregator(db)

	_, err := aggregator.ListForUser("no-such-user")
	wantCode(t, err, CodeNotFound)
}

func TestGetForParticipant(t *testing.T) {
	db := setupDB(t)
	svc := NewInvitationService(db, nil)
	aggregator := NewQueryAggregator(db)

	manager := seedUser(t, db, "manager")
	subordinate := seedUser(t, db, "subordinate")
	outsider := seedUser(t, db, "outsider")

	invitation, err := svc.Create(manager, managerInput(subordinate))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	for _, participant := range []string{manager, subordinate} {
		view, err := aggregator.GetForParticipant(invitation.ID, participant)
		if err != nil {
			t.Fatalf("GetForParticipant(%s) failed: %v", participant, err)
		}
		if view.InviterName != "manager" || view.InviteeName != "subordinate" {
			t.Errorf("names not joined: %+v", view)
		}
	}

	_, err = aggregator.GetForParticipant(invitation.ID, outsider)
	wantCode(t, err, CodeForbidden)

	_, err = aggregator.GetForParticipant(invitation.ID+999, manager)
	wantCode(t, err, CodeNotFound)
}
