package actor

import (
	"net/http"
	"strconv"
	"strings"
)

// Role is an already-resolved access level for the calling user. Resolution
// happens upstream (the API gateway authenticates and scopes each request);
// this service only performs role-shape checks on what it is handed.
type Role int

const (
	RoleUnknown Role = iota
	RoleParticipant
	RoleOrganizer
	RoleDirector
)

const (
	ActorIDHeader   = "X-Actor-ID"
	ActorRoleHeader = "X-Actor-Role"
)

func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "participant":
		return RoleParticipant
	case "organizer":
		return RoleOrganizer
	case "director":
		return RoleDirector
	}
	return RoleUnknown
}

func (r Role) String() string {
	switch r {
	case RoleParticipant:
		return "participant"
	case RoleOrganizer:
		return "organizer"
	case RoleDirector:
		return "director"
	}
	return "unknown"
}

// Actor identifies the resolved caller of a request.
type Actor struct {
	ID   int
	Role Role
}

// FromRequest reads the gateway-resolved actor headers. The boolean is false
// when the headers are missing or malformed.
func FromRequest(r *http.Request) (Actor, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(r.Header.Get(ActorIDHeader)))
	if err != nil {
		return Actor{}, false
	}

	role := ParseRole(r.Header.Get(ActorRoleHeader))
	if role == RoleUnknown {
		return Actor{}, false
	}

	return Actor{ID: id, Role: role}, true
}

// IsParticipant reports whether the actor holds exactly the participant role.
func (a Actor) IsParticipant() bool {
	return a.Role == RoleParticipant
}

// AtLeast reports whether the actor's role is at or above the given role.
func (a Actor) AtLeast(role Role) bool {
	return a.Role >= role
}
