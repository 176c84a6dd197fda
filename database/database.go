package database

import (
	"fmt"
	"log"
	"os"

	"github.com/nanalmoa/nanalmoa/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect establishes a connection to the database
func Connect() {
	var err error

	host := os.Getenv("DB_HOST")
	if host == "" {
		host = "localhost"
	}

	user := os.Getenv("DB_USER")
	if user == "" {
		user = "postgres"
	}

	password := os.Getenv("DB_PASS")
	if password == "" {
		password = "postgres"
	}

	dbname := os.Getenv("DB_NAME")
	if dbname == "" {
		dbname = "nanalmoa"
	}

	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		host, user, password, dbname, port)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")
}

// Migrate automatically migrates the database schema
func Migrate() {
	DB.AutoMigrate(&models.User{}, &models.Group{}, &models.GroupMember{}, &models.ManagerEdge{}, &models.Invitation{})

	// AutoMigrate cannot express a partial index; duplicate pending
	// invitations along the same edge are also rejected here so a racing
	// pair of creates cannot both commit.
	DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_invitation_pending_tuple
		ON invitations (inviter_uuid, invitee_uuid, kind, COALESCE(group_id, 0))
		WHERE status = 'pending'`)

	log.Println("Database migration completed")
}
