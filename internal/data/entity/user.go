package entity

import "time"

type UserRole string

const (
	RoleVisitor        UserRole = "visitor"
	RoleUMKMOwner      UserRole = "umkm_owner"
	RoleUMKMAdmin      UserRole = "umkm_admin"
	RoleTicketOfficer  UserRole = "ticket_officer"
	RoleContentManager UserRole = "content_manager"
	RoleAreaManager    UserRole = "area_manager"
	RoleTourismOfficer UserRole = "tourism_officer"
	RoleRegionalAdmin  UserRole = "regional_admin"
	RoleSuperadmin     UserRole = "superadmin"
)

type User struct {
	Base
	Username     string     `db:"username"`
	Email        string     `db:"email"`
	PasswordHash string     `db:"password"`
	Name         string     `db:"name"`
	Phone        *string    `db:"phone"`
	Role         UserRole   `db:"role"`
	AssignedArea *string    `db:"assigned_area"`
	ProfileImage *string    `db:"profile_image"`
	IsActive     bool       `db:"is_active"`
	LastLogin    *time.Time `db:"last_login"`
}
