package services

import (
	"errors"

	"github.com/nanalmoa/nanalmoa/models"
	"gorm.io/gorm"
)

// GroupDirectory resolves group identifiers. Like UserDirectory it
// holds no rules, it only answers existence and lookup.
type GroupDirectory struct {
	db *gorm.DB
}

func NewGroupDirectory(db *gorm.DB) *GroupDirectory {
	return &GroupDirectory{db: db}
}

// WithTx returns a directory bound to the given transaction.
func (d *GroupDirectory) WithTx(tx *gorm.DB) *GroupDirectory {
	return &GroupDirectory{db: tx}
}

// Exists reports whether a group with the given ID exists.
func (d *GroupDirectory) Exists(groupID uint) (bool, error) {
	var count int64
	if err := d.db.Model(&models.Group{}).Where("id = ?", groupID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByID loads a group record, failing with NotFound if absent.
func (d *GroupDirectory) FindByID(groupID uint) (*models.Group, error) {
	var group models.Group
	if err := d.db.First(&group, groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound("group not found")
		}
		return nil, err
	}
	return &group, nil
}
