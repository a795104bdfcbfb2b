package user

import "strings"

// Role is a staff permission level. A higher role holds every right of the lower ones.
type Role string

const (
	RoleViewer   Role = "viewer"
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

var roleRank = map[Role]int{
	RoleViewer:   1,
	RoleOperator: 2,
	RoleAdmin:    3,
}

func NewRole(s string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

// Covers reports whether r grants at least the rights of min.
// Unknown roles cover nothing.
func (r Role) Covers(min Role) bool {
	have, ok := roleRank[r]
	need, minOK := roleRank[min]
	return ok && minOK && have >= need
}
