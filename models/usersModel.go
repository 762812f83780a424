package models

import (
	"time"

	"gorm.io/gorm"
)

// Staff role names. The role set is closed: route guards compare against
// these constants, not free-text strings.
const (
	RoleAdmin        = "Admin"
	RoleDoctor       = "Doctor"
	RolePsychologist = "Psychologist"
	RoleCanteen      = "Canteen"
)

// AllRoles returns every seeded role name.
func AllRoles() []string {
	return []string{RoleAdmin, RoleDoctor, RolePsychologist, RoleCanteen}
}

// Role represents a staff role
type Role struct {
	ID          int64     `gorm:"primaryKey;column:id" json:"id"`
	Name        string    `gorm:"size:50;not null;unique;index;column:name" json:"name"`
	Description string    `gorm:"type:text;column:description" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (Role) TableName() string {
	return "roles"
}

// SeedRoles inserts initial roles into the database
func SeedRoles(db *gorm.DB) error {
	initialRoles := []Role{
		{Name: RoleAdmin, Description: "Full access to the system"},
		{Name: RoleDoctor, Description: "Can manage patients and medical records"},
		{Name: RolePsychologist, Description: "Can write session notes and export"},
		{Name: RoleCanteen, Description: "Can record canteen sales"},
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for _, role := range initialRoles {
			if err := tx.FirstOrCreate(&role, Role{Name: role.Name}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// User represents a staff account
type User struct {
	ID        int64     `gorm:"primaryKey;column:id" json:"id"`
	Username  string    `gorm:"size:100;not null;unique;index;column:username" json:"username"`
	Email     string    `gorm:"size:255;not null;unique;index;column:email" json:"email"`
	Password  string    `gorm:"size:255;not null;column:password" json:"password"`
	RoleID    int64     `gorm:"index;not null;column:role_id" json:"role_id"`
	Role      Role      `gorm:"foreignKey:RoleID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
