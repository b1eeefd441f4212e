package device

import (
	"time"
)

// Device represents one inventory record in the devices table.
//
// Hardware is the free-text hardware description ("System Unit - Lab PC",
// "HP Laptop", ...). The column predates this tool and is nullable, so it is
// mapped as a pointer; maintenance passes must treat nil and "" the same way.
type Device struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`

	Hardware     *string `json:"hardware" gorm:"column:hardware;size:100"`
	SystemModel  string  `json:"system_model,omitempty" gorm:"column:system_model;size:100"`
	Processor    string  `json:"processor,omitempty" gorm:"column:processor;size:100"`
	SerialNumber string  `json:"serial_number,omitempty" gorm:"column:serial_number;size:100"`
	Category     string  `json:"category" gorm:"column:category;size:200;default:other"`
	Assignee     string  `json:"assignee,omitempty" gorm:"column:assignee_cache;size:255"`
	Status       string  `json:"status,omitempty" gorm:"column:status;size:255"`
	IsDisposed   bool    `json:"is_disposed" gorm:"column:is_disposed;default:false"`
}

// TableName sets the table name for GORM
func (Device) TableName() string {
	return "devices_import"
}

// HardwareLabel returns the hardware description, or "" when the column is
// null.
func (d *Device) HardwareLabel() string {
	if d.Hardware == nil {
		return ""
	}
	return *d.Hardware
}
