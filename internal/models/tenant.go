package models

import (
	"time"
)

// Tenant represents the tenants table
type Tenant struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"column:name;not null"`
	Email     string    `json:"email" gorm:"column:email"`
	Phone     string    `json:"phone" gorm:"column:phone"`
	Room      string    `json:"room" gorm:"column:room"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the insert table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}
