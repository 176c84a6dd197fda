package models

import (
	"time"
)

type Group struct {
	ID        uint          `gorm:"primaryKey" json:"group_id"`
	Name      string        `gorm:"size:255;not null" json:"group_name"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	Members   []GroupMember `gorm:"foreignKey:GroupID" json:"members,omitempty"`
}

// GroupMember is a standing user-to-group relation. The group's creator
// is its first member with IsAdmin set. Member count is derived, never
// stored.
type GroupMember struct {
	GroupID   uint      `gorm:"primaryKey" json:"group_id"`
	UserUUID  string    `gorm:"primaryKey;size:36" json:"user_uuid"`
	IsAdmin   bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt time.Time `json:"joined_at"`
}
