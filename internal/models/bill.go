package models

import (
	"time"
)

// Bill status values
const (
	BillStatusPending = "Pending"
	BillStatusPaid    = "Paid"
)

// Service types used by convention for Bill.Type. Not enforced by the schema.
var BillTypes = []string{"Rent", "Electricity", "Gas", "Water", "Internet", "Parking", "Security"}

// Bill represents the bills table
type Bill struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	TenantID  uint      `json:"tenant_id" gorm:"column:tenant_id;index"`
	Tenant    *Tenant   `json:"tenant,omitempty" gorm:"foreignKey:TenantID"`
	Type      string    `json:"type" gorm:"column:type"`
	Amount    float64   `json:"amount" gorm:"column:amount"`
	Date      time.Time `json:"date" gorm:"column:date"`
	Status    string    `json:"status" gorm:"column:status;default:Pending"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the insert table name for Bill
func (Bill) TableName() string {
	return "bills"
}

// MonthLabel returns the month bucket key for the bill date, e.g. "Jan 2024"
func (b *Bill) MonthLabel() string {
	return b.Date.Format("Jan 2006")
}
