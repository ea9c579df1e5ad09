package users

import "time"

// AdminUser is an operator account for the admin dashboard. Password is nil
// for accounts that only ever signed in with Google.
type AdminUser struct {
	ID           uint `gorm:"primaryKey"`
	Name         string
	Email        string  `gorm:"not null;uniqueIndex:idx_admin_users_email"`
	Password     *string
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_admin_users_google_sub"`
	Role         string

	CreatedAt time.Time
	UpdatedAt time.Time
}
