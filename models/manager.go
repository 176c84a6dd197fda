package models

import (
	"time"
)

// ManagerEdge is a directional oversight relation between two users. An
// edge from A to B does not imply one from B to A.
type ManagerEdge struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	ManagerUUID     string    `gorm:"size:36;not null;index:idx_manager_subordinate,unique" json:"manager_uuid"`
	SubordinateUUID string    `gorm:"size:36;not null;index:idx_manager_subordinate,unique" json:"subordinate_uuid"`
	CreatedAt       time.Time `json:"created_at"`
}
