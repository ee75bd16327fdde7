package entities

import (
	"fmt"
	"strings"
)

// Role is the privilege a seller holds on a raffle
type Role string

const (
	RoleOwner     Role = "owner"
	RoleModerator Role = "moderator"
	RoleSeller    Role = "seller"
)

// ParseRole converts a string into a Role, rejecting unknown values
func ParseRole(s string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	if !role.IsValid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return role, nil
}

// IsValid reports whether the role is one of the known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleModerator, RoleSeller:
		return true
	}
	return false
}

// CanManageMembers returns true if the role may assign or remove memberships
func (r Role) CanManageMembers() bool {
	return r == RoleOwner || r == RoleModerator
}

// CanChangeRaffleState returns true if the role may transition the raffle state
func (r Role) CanChangeRaffleState() bool {
	return r == RoleOwner || r == RoleModerator
}

// CanRegisterNumbers returns true if the role may register sold numbers
func (r Role) CanRegisterNumbers() bool {
	return r.IsValid()
}

// CanChat returns true if the role may post to and read the raffle chat
func (r Role) CanChat() bool {
	return r.IsValid()
}

func (r Role) String() string {
	return string(r)
}
