package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel merepresentasikan tabel users.
type UserModel struct {
	// default diisi BeforeCreate, bukan DEFAULT di DB, supaya migrasi portabel
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`

	UserName string `gorm:"column:user_name;type:varchar(100);not null" json:"user_name" validate:"required,min=3,max=100"`
	Email    string `gorm:"column:email;type:varchar(255);unique;not null" json:"email" validate:"required,email"`
	Password string `gorm:"column:password;not null" json:"-" validate:"required,min=8"`

	// Afiliasi instansi & unit kerja
	AgencyID *uuid.UUID `gorm:"column:agency_id;type:uuid;index" json:"agency_id,omitempty"`
	WorkUnit *string    `gorm:"column:work_unit;type:varchar(255)" json:"work_unit,omitempty"`

	// non_aktif sampai disetujui admin
	IsActive bool `gorm:"column:is_active;not null;default:false" json:"is_active"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`

	Roles []RoleModel `gorm:"many2many:user_roles;foreignKey:UserID;joinForeignKey:UserID;References:RoleID;joinReferences:RoleID" json:"roles,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	return nil
}

// RoleName mengembalikan nama role pertama user (satu user satu role utama).
func (u *UserModel) RoleName() string {
	if len(u.Roles) == 0 {
		return ""
	}
	return u.Roles[0].RoleName
}
