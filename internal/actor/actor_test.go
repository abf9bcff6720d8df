package actor

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set(ActorIDHeader, "42")
	r.Header.Set(ActorRoleHeader, "organizer")

	a, ok := FromRequest(r)
	assert.True(t, ok)
	assert.Equal(t, 42, a.ID)
	assert.Equal(t, RoleOrganizer, a.Role)
}

func TestFromRequest_Missing(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	_, ok := FromRequest(r)
	assert.False(t, ok)
}

func TestFromRequest_BadRole(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set(ActorIDHeader, "7")
	r.Header.Set(ActorRoleHeader, "superuser")

	_, ok := FromRequest(r)
	assert.False(t, ok)
}

func TestRoleOrdering(t *testing.T) {
	a := Actor{ID: 1, Role: RoleOrganizer}
	assert.True(t, a.AtLeast(RoleParticipant))
	assert.True(t, a.AtLeast(RoleOrganizer))
	assert.False(t, a.AtLeast(RoleDirector))
	assert.False(t, a.IsParticipant())

	p := Actor{ID: 2, Role: RoleParticipant}
	assert.True(t, p.IsParticipant())
}
