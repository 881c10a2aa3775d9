package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoleModel merepresentasikan tabel roles.
type RoleModel struct {
	RoleID   uuid.UUID `gorm:"column:role_id;type:uuid;primaryKey" json:"role_id"`
	RoleName string    `gorm:"column:role_name;type:varchar(50);unique;not null" json:"role_name"`
}

func (RoleModel) TableName() string {
	return "roles"
}

func (r *RoleModel) BeforeCreate(tx *gorm.DB) error {
	if r.RoleID == uuid.Nil {
		r.RoleID = uuid.New()
	}
	return nil
}

// UserRoleModel adalah join table user ↔ role.
type UserRoleModel struct {
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	RoleID uuid.UUID `gorm:"column:role_id;type:uuid;primaryKey" json:"role_id"`
}

func (UserRoleModel) TableName() string {
	return "user_roles"
}
