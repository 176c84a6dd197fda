package services

import (
	"gorm.io/gorm"

	"github.com/nanalmoa/nanalmoa/models"
)

// InvitationView is an invitation enriched with display names for the
// two participants and, for group invitations, the group name.
type InvitationView struct {
	models.Invitation
	InviterName string `json:"inviter_name"`
	InviteeName string `json:"invitee_name"`
	GroupName   string `json:"group_name,omitempty"`
}

// InvitationBucket splits invitations by kind.
type InvitationBucket struct {
	Group   []InvitationView `json:"group_invitations"`
	Manager []InvitationView `json:"manager_invitations"`
}

// InvitationBuckets is the four-way partition of a user's invitations.
type InvitationBuckets struct {
	Sent     InvitationBucket `json:"sent"`
	Received InvitationBucket `json:"received"`
}

// QueryAggregator is the read side of the invitation subsystem. It
// never mutates and never sees transactions.
type QueryAggregator struct {
	db     *gorm.DB
	users  *UserDirectory
	groups *GroupDirectory
	store  *InvitationStore
}

func NewQueryAggregator(db *gorm.DB) *QueryAggregator {
	return &QueryAggregator{
		db:     db,
		users:  NewUserDirectory(db),
		groups: NewGroupDirectory(db),
		store:  NewInvitationStore(db),
	}
}

// ListForUser partitions every invitation the user participates in into
// sent/received x group/manager and joins display names. Fails NotFound
// only when the user itself is unknown.
func (q *QueryAggregator) ListForUser(userUUID string) (*InvitationBuckets, error) {
	exists, err := q.users.Exists(userUUID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound("user not found")
	}

	invitations, err := q.store.FindAllByParticipant(userUUID)
	if err != nil {
		return nil, err
	}

	buckets := &InvitationBuckets{
		Sent:     InvitationBucket{Group: []InvitationView{}, Manager: []InvitationView{}},
		Received: InvitationBucket{Group: []InvitationView{}, Manager: []InvitationView{}},
	}

	names := map[string]string{}
	groupNames := map[uint]string{}

	for _, inv := range invitations {
		view, err := q.enrich(inv, names, groupNames)
		if err != nil {
			return nil, err
		}

		bucket := &buckets.Received
		if inv.InviterUUID == userUUID {
			bucket = &buckets.Sent
		}
		if inv.IsGroupInvitation() {
			bucket.Group = append(bucket.Group, view)
		} else {
			bucket.Manager = append(bucket.Manager, view)
		}
	}

	return buckets, nil
}

// GetForParticipant loads a single invitation with names, visible only
// to its inviter or invitee.
func (q *QueryAggregator) GetForParticipant(invitationID uint, userUUID string) (*InvitationView, error) {
	invitation, err := q.store.FindByID(invitationID)
	if err != nil {
		return nil, err
	}

	if invitation.InviterUUID != userUUID && invitation.InviteeUUID != userUUID {
		return nil, ErrForbidden("no access to this invitation")
	}

	view, err := q.enrich(*invitation, map[string]string{}, map[uint]string{})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (q *QueryAggregator) enrich(inv models.Invitation, names map[string]string, groupNames map[uint]string) (InvitationView, error) {
	view := InvitationView{Invitation: inv}

	for _, uuid := range []string{inv.InviterUUID, inv.InviteeUUID} {
		if _, ok := names[uuid]; ok {
			continue
		}
		name, err := q.users.NameOf(uuid)
		if err != nil {
			// A participant deleted after the fact is history, not an
			// error; the invitation row stays visible without a name.
			if svcErr, ok := err.(*Error); ok && svcErr.Code == CodeNotFound {
				names[uuid] = ""
				continue
			}
			return view, err
		}
		names[uuid] = name
	}
	view.InviterName = names[inv.InviterUUID]
	view.InviteeName = names[inv.InviteeUUID]

	if inv.GroupID != nil {
		if _, ok := groupNames[*inv.GroupID]; !ok {
			group, err := q.groups.FindByID(*inv.GroupID)
			if err != nil {
				if svcErr, ok := err.(*Error); ok && svcErr.Code == CodeNotFound {
					groupNames[*inv.GroupID] = ""
				} else {
					return view, err
				}
			} else {
				groupNames[*inv.GroupID] = group.Name
			}
		}
		view.GroupName = groupNames[*inv.GroupID]
	}

	return view, nil
}
