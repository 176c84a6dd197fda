package services

import (
	"testing"

	"github.com/nanalmoa/nanalmoa/models"
)

func TestCreateGroupCreatorIsAdmin(t *testing.T) {
	db := setupDB(t)
	invitations := NewInvitationService(db, nil)
	svc := NewGroupService(db, invitations)
	creator := seedUser(t, db, "creator")

	info, err := svc.CreateGroup(creator, "family")
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	if !info.IsAdmin || info.MemberCount != 1 {
		t.Errorf("creator should be sole admin member, got %+v", info)
	}

	var member models.GroupMember
	if err := db.Where("group_id = ? AND user_uuid = ?", info.GroupID, creator).First(&member).Error; err != nil {
		t.Fatalf("creator membership missing: %v", err)
	}
	if !member.IsAdmin {
		t.Error("creator membership must be admin")
	}

	if _, err := svc.CreateGroup(creator, ""); err == nil {
		t.Error("empty group name must fail")
	}
}

func TestListUserGroups(t *testing.T) {
	db := setupDB(t)
	invitations := NewInvitationService(db, nil)
	svc := NewGroupService(db, invitations)
	creator := seedUser(t, db, "creator")
	other := seedUser(t, db, "other")

	info, err := svc.CreateGroup(creator, "family")
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	db.Create(&models.GroupMember{GroupID: info.GroupID, UserUUID: other})

	groups, err := svc.ListUserGroups(creator)
	if err != nil {
		t.Fatalf("ListUserGroups failed: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("want 1 group, got %d", len(groups))
	}
	if groups[0].MemberCount != 2 {
		t.Errorf("want derived member count 2, got %d", groups[0].MemberCount)
	}
}

func TestGetGroupDetailMembersOnly(t *testing.T) {
	db := setupDB(t)
	invitations := NewInvitationService(db, nil)
	svc := NewGroupService(db, invitations)
	creator := seedUser(t, db, "creator")
	outsider := seedUser(t, db, "outsider")

	info, err := svc.CreateGroup(creator, "family")
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	detail, err := svc.GetGroupDetail(info.GroupID, creator)
	if err != nil {
		t.Fatalf("GetGroupDetail failed: %v", err)
	}
	if len(detail.Members) != 1 || detail.Members[0].Name != "creator" {
		t.Errorf("want creator in member list, got %+v", detail.Members)
	}

	_, err = svc.GetGroupDetail(info.GroupID, outsider)
	wantCode(t, err, CodeForbidden)

	_, err = svc.GetGroupDetail(info.GroupID+999, creator)
	wantCode(t, err, CodeNotFound)
}

func TestDeleteGroupAdminOnly(t *testing.T) {
	db := setupDB(t)
	invitations := NewInvitationService(db, nil)
	svc := NewGroupService(db, invitations)
	creator := seedUser(t, db, "creator")
	member := seedUser(t, db, "member")

	info, err := svc.CreateGroup(creator, "family")
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	db.Create(&models.GroupMember{GroupID: info.GroupID, UserUUID: member})

	err = svc.DeleteGroup(info.GroupID, member)
	wantCode(t, err, CodeForbidden)

	if err := svc.DeleteGroup(info.GroupID, creator); err != nil {
		t.Fatalf("DeleteGroup failed: %v", err)
	}

	var count int64
	db.Model(&models.GroupMember{}).Where("group_id = ?", info.GroupID).Count(&count)
	if count != 0 {
		t.Errorf("memberships survived group deletion: %d", count)
	}

	err = svc.DeleteGroup(info.GroupID, creator)
	wantCode(t, err, CodeNotFound)
}

func TestDeleteGroupMarksInvitationsRemoved(t *testing.T) {
	db := setupDB(t)
	sink := &recordingSink{}
	invitations := NewInvitationService(db, sink)
	svc := NewGroupService(db, invitations)
	admin := seedUser(t, db, "admin")
	invitee := seedUser(t, db, "invitee")

	info, err := svc.CreateGroup(admin, "family")
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	invitation, err := invitations.Create(admin, groupInput(invitee, info.GroupID))
	if err != nil {
		t.Fatalf("Create invitation failed: %v", err)
	}
	if _, err := invitations.Accept(invitation.ID, invitee); err != nil {
		t.Fatalf("Accept failed: %v", err)
	}

	if err := svc.DeleteGroup(info.GroupID, admin); err != nil {
		t.Fatalf("DeleteGroup failed: %v", err)
	}

	// The membership is gone, so its audit row must read removed too.
	if got := loadInvitation(t, db, invitation.ID).Status; got != models.InvitationStatusRemoved {
		t.Errorf("want invitation marked removed after group deletion, got %s", got)
	}

	want := EventInvitationRemoved + ":" + invitee
	if got := sink.events[len(sink.events)-1]; got != want {
		t.Errorf("want removal notification %q, got %q", want, got)
	}
}

func TestRemoveMemberMarksInvitationRemoved(t *testing.T) {
	db := setupDB(t)
	sink := &recordingSink{}
	invitations := NewInvitationService(db, sink)
	svc := NewGroupService(db, invitations)
	admin := seedUser(t, db, "admin")
	invitee := seedUser(t, db, "invitee")

	info, err := svc.CreateGroup(admin, "family")
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	invitation, err := invitations.Create(admin, groupInput(invitee, info.GroupID))
	if err != nil {
		t.Fatalf("Create invitation failed: %v", err)
	}
	if _, err := invitations.Accept(invitation.ID, invitee); err != nil {
		t.Fatalf("Accept failed: %v", err)
	}

	// Only admins may expel, and never themselves.
	err = svc.RemoveMember(info.GroupID, admin, invitee)
	wantCode(t, err, CodeForbidden)
	err = svc.RemoveMember(info.GroupID, admin, admin)
	wantCode(t, err, CodeForbidden)

	if err := svc.RemoveMember(info.GroupID, invitee, admin); err != nil {
		t.Fatalf("RemoveMember failed: %v", err)
	}

	var count int64
	db.Model(&models.GroupMember{}).Where("group_id = ? AND user_uuid = ?", info.GroupID, invitee).Count(&count)
	if count != 0 {
		t.Error("membership row survived removal")
	}
	if got := loadInvitation(t, db, invitation.ID).Status; got != models.InvitationStatusRemoved {
		t.Errorf("want invitation marked removed, got %s", got)
	}

	want := EventInvitationRemoved + ":" + invitee
	if got := sink.events[len(sink.events)-1]; got != want {
		t.Errorf("want removal notification %q, got %q", want, got)
	}

	err = svc.RemoveMember(info.GroupID, invitee, admin)
	wantCode(t, err, CodeNotFound)
}

func TestRemoveMemberWithoutInvitation(t *testing.T) {
	db := setupDB(t)
	invitations := NewInvitationService(db, nil)
	svc := NewGroupService(db, invitations)
	admin := seedUser(t, db, "admin")
	member := seedUser(t, db, "member")

	info, err := svc.CreateGroup(admin, "family")
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	// Directly seeded membership, no invitation behind it.
	db.Create(&models.GroupMember{GroupID: info.GroupID, UserUUID: member})

	if err := svc.RemoveMember(info.GroupID, member, admin); err != nil {
		t.Fatalf("RemoveMember failed: %v", err)
	}
}
