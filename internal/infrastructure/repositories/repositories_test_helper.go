package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
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
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createProfileTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE profiles (
		user_id TEXT PRIMARY KEY,
		email TEXT NOT NULL,
		age INTEGER DEFAULT 0,
		user_type TEXT,
		net_worth REAL DEFAULT 0,
		savings_rate REAL DEFAULT 0,
		total_debt REAL DEFAULT 0,
		monthly_net_salary REAL DEFAULT 0,
		currency TEXT DEFAULT 'USD',
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createPlanTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE plans (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		title TEXT NOT NULL,
		plan_text TEXT NOT NULL,
		goals TEXT DEFAULT '[]',
		net_worth REAL DEFAULT 0,
		savings_rate REAL DEFAULT 0,
		debt_to_income REAL DEFAULT 0,
		total_debt REAL DEFAULT 0,
		monthly_net_salary REAL DEFAULT 0,
		currency TEXT DEFAULT 'USD',
		saved INTEGER DEFAULT 0,
		created_at DATETIME
	);`)
}

func createReminderTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE reminders (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		title TEXT NOT NULL,
		goal_name TEXT,
		cadence TEXT NOT NULL,
		next_run_at DATETIME NOT NULL,
		created_at DATETIME,
		deleted INTEGER DEFAULT 0
	);`)
}

func createAchievementTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE achievements (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		title TEXT NOT NULL,
		icon TEXT NOT NULL,
		code TEXT NOT NULL,
		created_at DATETIME
	);`)
}
