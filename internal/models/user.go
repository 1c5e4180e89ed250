package models

type UserRole string

const (
	RoleSuperAdmin UserRole = "SUPER_ADMIN"
	RoleAdmin      UserRole = "ADMIN"
	RoleEditor     UserRole = "EDITOR"
)

// ValidUserRole reports whether r is one of the known roles.
func ValidUserRole(r UserRole) bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleEditor:
		return true
	}
	return false
}

// User is a back-office account. There is no public registration;
// accounts are provisioned by the seeder or by another admin.
type User struct {
	BaseModel
	Email     string   `gorm:"uniqueIndex" json:"email"`
	Password  string   `json:"-"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Role      UserRole `json:"role"`
	IsActive  bool     `json:"isActive"`
}
