package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/nanalmoa/nanalmoa/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupDB opens a fresh in-memory database for one test. A single
// connection keeps sqlite's locking out of the way while still
// serializing concurrent transactions.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(&models.User{}, &models.Group{}, &models.GroupMember{}, &models.ManagerEdge{}, &models.Invitation{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_invitation_pending_tuple
		ON invitations (inviter_uuid, invitee_uuid, kind, COALESCE(group_id, 0))
		WHERE status = 'pending'`)

	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string) string {
	t.Helper()

	user := models.User{
		UserUUID: uuid.NewString(),
		Name:     name,
		Email:    name + "@example.com",
		Password: "secret",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user %s: %v", name, err)
	}
	return user.UserUUID
}

// seedGroup creates a group with the given admin as its first member.
func seedGroup(t *testing.T, db *gorm.DB, name, adminUUID string) uint {
	t.Helper()

	group := models.Group{Name: name}
	if err := db.Create(&group).Error; err != nil {
		t.Fatalf("failed to seed group %s: %v", name, err)
	}
	member := models.GroupMember{GroupID: group.ID, UserUUID: adminUUID, IsAdmin: true}
	if err := db.Create(&member).Error; err != nil {
		t.Fatalf("failed to seed group admin: %v", err)
	}
	return group.ID
}

func wantCode(t *testing.T, err error, code ErrorCode) {
	t.Helper()

	if err == nil {
		t.Fatalf("want %s error, got nil", code)
	}
	svcErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("want *Error with code %s, got %T: %v", code, err, err)
	}
	if svcErr.Code != code {
		t.Fatalf("want code %s, got %s (%s)", code, svcErr.Code, svcErr.Message)
	}
}

func loadInvitation(t *testing.T, db *gorm.DB, id uint) *models.Invitation {
	t.Helper()

	var invitation models.Invitation
	if err := db.First(&invitation, id).Error; err != nil {
		t.Fatalf("failed to load invitation %d: %v", id, err)
	}
	return &invitation
}
