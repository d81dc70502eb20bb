package auth

import "context"

// Role names a coarse permission level an actor holds.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCoach   Role = "coach"
	RoleLearner Role = "learner"
)

// ElevatedRoles are the roles allowed to create mock challenges.
func ElevatedRoles() []Role {
	return []Role{RoleAdmin, RoleCoach}
}

// Checker answers whether an actor holds one of a set of roles.
type Checker interface {
	HasRole(ctx context.Context, actorID string, allowed []Role) (bool, error)
}

// StaticChecker resolves roles from a fixed actor-to-role map, typically
// loaded from the config file. Actors absent from the map are learners.
type StaticChecker struct {
	roles map[string]Role
}

// NewStaticChecker creates a StaticChecker from an actor-to-role map.
func NewStaticChecker(roles map[string]Role) *StaticChecker {
	if roles == nil {
		roles = make(map[string]Role)
	}
	return &StaticChecker{roles: roles}
}

func (c *StaticChecker) HasRole(_ context.Context, actorID string, allowed []Role) (bool, error) {
	role, ok := c.roles[actorID]
	if !ok {
		role = RoleLearner
	}
	for _, a := range allowed {
		if role == a {
			return true, nil
		}
	}
	return false, nil
}
