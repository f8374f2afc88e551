package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	// TranslateError matches the production gorm config, so constraint
	// violations surface as gorm.ErrDuplicatedKey here too.
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		username TEXT UNIQUE NOT NULL,
		email TEXT UNIQUE NOT NULL,
		phone_code TEXT,
		phone_number TEXT,
		date_of_birth DATETIME,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'user',
		bio TEXT,
		profile_image_url TEXT,
		cover_image_url TEXT,
		expo_push_token TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createOtpTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE otp_verifications (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		otp_code TEXT NOT NULL,
		expires_at DATETIME NOT NULL,
		verified BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME
	);`)
}

func createComplaintTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE complaints (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		text TEXT,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE complaint_files (
		id TEXT PRIMARY KEY,
		complaint_id TEXT NOT NULL,
		file_url TEXT NOT NULL,
		file_type TEXT NOT NULL
	);`)
}

func createSocialTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE likes (
		user_id TEXT NOT NULL,
		complaint_id TEXT NOT NULL,
		created_at DATETIME,
		UNIQUE (user_id, complaint_id)
	);`)
	mustExec(t, db, `CREATE TABLE saves (
		user_id TEXT NOT NULL,
		complaint_id TEXT NOT NULL,
		created_at DATETIME,
		UNIQUE (user_id, complaint_id)
	);`)
	mustExec(t, db, `CREATE TABLE reposts (
		user_id TEXT NOT NULL,
		complaint_id TEXT NOT NULL,
		created_at DATETIME,
		UNIQUE (user_id, complaint_id)
	);`)
	mustExec(t, db, `CREATE TABLE comments (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		complaint_id TEXT NOT NULL,
		comment TEXT NOT NULL,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE followers (
		follower_id TEXT NOT NULL,
		following_id TEXT NOT NULL,
		created_at DATETIME,
		UNIQUE (follower_id, following_id)
	);`)
}

func createAllTables(t *testing.T, db *gorm.DB) {
	createUserTable(t, db)
	createOtpTable(t, db)
	createComplaintTables(t, db)
	createSocialTables(t, db)
}

func seedUser(t *testing.T, db *gorm.DB, username string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	mustExec(t, db, `INSERT INTO users (id, first_name, last_name, username, email, password_hash, role, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, 'user', ?, ?)`,
		id.String(), "Test", "User", username, username+"@example.com", "hash", time.Now(), time.Now())
	return id
}

func seedComplaint(t *testing.T, db *gorm.DB, userID uuid.UUID, text string, createdAt time.Time) uuid.UUID {
	t.Helper()
	id := uuid.New()
	mustExec(t, db, `INSERT INTO complaints (id, user_id, text, created_at) VALUES (?, ?, ?, ?)`,
		id.String(), userID.String(), text, createdAt)
	return id
}

func seedFile(t *testing.T, db *gorm.DB, complaintID uuid.UUID, url, fileType string) {
	t.Helper()
	mustExec(t, db, `INSERT INTO complaint_files (id, complaint_id, file_url, file_type) VALUES (?, ?, ?, ?)`,
		uuid.New().String(), complaintID.String(), url, fileType)
}
