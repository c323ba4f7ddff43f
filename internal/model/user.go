package model

const (
	RoleSuperuser  = "superuser"
	RoleFleetOwner = "fleet_owner"
	RoleSales      = "sales"
	RoleService    = "service"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"size:150;not null" json:"name"`
	Email    string `gorm:"size:254;uniqueIndex;not null" json:"email"`
	Password string `gorm:"size:128;not null" json:"-"`
	Role     string `gorm:"size:20;not null;default:fleet_owner" json:"role"`
}

func (User) TableName() string {
	return "users"
}

func (u User) IsAdmin() bool {
	return u.Role == RoleSuperuser
}

func ValidRole(role string) bool {
	switch role {
	case RoleSuperuser, RoleFleetOwner, RoleSales, RoleService:
		return true
	}
	return false
}
