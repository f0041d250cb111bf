// internal/permissions/permissions_test.go
package permissions

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestActionSafe(t *testing.T) {
	assert.True(t, ActionList.Safe())
	assert.True(t, ActionRetrieve.Safe())
	assert.False(t, ActionCreate.Safe())
	assert.False(t, ActionUpdate.Safe())
	assert.False(t, ActionDestroy.Safe())
}

func TestAuthorizeDecisionTable(t *testing.T) {
	selfID := uuid.New()
	otherID := uuid.New()

	anonymous := Actor{}
	regular := Actor{ID: selfID, Username: "alice", Authenticated: true}
	staff := Actor{ID: selfID, Username: "stella", IsStaff: true, Authenticated: true}
	superuser := Actor{ID: selfID, Username: "root", IsSuperuser: true, Authenticated: true}

	actions := []Action{ActionList, ActionRetrieve, ActionCreate, ActionUpdate, ActionDestroy}

	tests := []struct {
		name  string
		actor Actor
		owner *uuid.UUID
		want  func(Action) Decision
	}{
		{
			name:  "anonymous is denied everything, reads included",
			actor: anonymous,
			owner: nil,
			want:  func(Action) Decision { return Denied },
		},
		{
			name:  "staff is admin for every action",
			actor: staff,
			owner: &otherID,
			want:  func(Action) Decision { return Admin },
		},
		{
			name:  "superuser is admin for every action",
			actor: superuser,
			owner: &otherID,
			want:  func(Action) Decision { return Admin },
		},
		{
			name:  "authenticated user may read but not write ownerless resources",
			actor: regular,
			owner: nil,
			want: func(a Action) Decision {
				if a.Safe() {
					return ReadOnly
				}
				return Denied
			},
		},
		{
			name:  "owner may write their own resources",
			actor: regular,
			owner: &selfID,
			want: func(a Action) Decision {
				if a.Safe() {
					return ReadOnly
				}
				return Owner
			},
		},
		{
			name:  "non-owner may only read someone else's resources",
			actor: regular,
			owner: &otherID,
			want: func(a Action) Decision {
				if a.Safe() {
					return ReadOnly
				}
				return Denied
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, action := range actions {
				got := Authorize(tt.actor, action, tt.owner)
				assert.Equal(t, tt.want(action), got, "action %s", action)
			}
		})
	}
}

func TestDecisionAllowed(t *testing.T) {
	assert.False(t, Denied.Allowed())
	assert.True(t, Admin.Allowed())
	assert.True(t, Owner.Allowed())
	assert.True(t, ReadOnly.Allowed())
}

func TestActorAdmin(t *testing.T) {
	assert.True(t, Actor{IsStaff: true, Authenticated: true}.Admin())
	assert.True(t, Actor{IsSuperuser: true, Authenticated: true}.Admin())
	assert.False(t, Actor{Authenticated: true}.Admin())
	// Staff flags on an unauthenticated actor carry no weight.
	assert.False(t, Actor{IsStaff: true}.Admin())
}
