package services

import (
	"errors"

	"github.com/nanalmoa/nanalmoa/models"
	"gorm.io/gorm"
)

// UserDirectory resolves user identifiers to existence and display
// names. It holds no business rules.
type UserDirectory struct {
	db *gorm.DB
}

func NewUserDirectory(db *gorm.DB) *UserDirectory {
	return &UserDirectory{db: db}
}

// WithTx returns a directory bound to the given transaction.
func (d *UserDirectory) WithTx(tx *gorm.DB) *UserDirectory {
	return &UserDirectory{db: tx}
}

// Exists reports whether a user with the given UUID is registered.
func (d *UserDirectory) Exists(userUUID string) (bool, error) {
	var count int64
	if err := d.db.Model(&models.User{}).Where("user_uuid = ?", userUUID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// NameOf returns the display name for a user UUID.
func (d *UserDirectory) NameOf(userUUID string) (string, error) {
	user, err := d.FindByUUID(userUUID)
	if err != nil {
		return "", err
	}
	return user.Name, nil
}

// FindByUUID loads a user record, failing with NotFound if absent.
func (d *UserDirectory) FindByUUID(userUUID string) (*models.User, error) {
	var user models.User
	if err := d.db.Where("user_uuid = ?", userUUID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound("user not found")
		}
		return nil, err
	}
	return &user, nil
}
