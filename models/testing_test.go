package models

import (
	"fmt"
	"testing"

	"scribe/db"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points db.Instance at a fresh in-memory database and
// runs the migrations.
func setupTestDB(t *testing.T) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	db.Instance = gdb
	Init()
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})
}

func mustCreateUser(t *testing.T, username string) User {
	t.Helper()
	u, err := UserCreate(username, username, username+"@example.com", "password123")
	if err != nil {
		t.Fatalf("creating user %s: %v", username, err)
	}
	return u
}

func mustCreateGroup(t *testing.T, slug string) Group {
	t.Helper()
	g := Group{Title: slug, Slug: slug, Description: "about " + slug}
	if err := db.Instance.Create(&g).Error; err != nil {
		t.Fatalf("creating group %s: %v", slug, err)
	}
	return g
}

func mustCreatePost(t *testing.T, author User, groupID *uint64, text string, createdAt int64) Post {
	t.Helper()
	p := Post{UserID: author.ID, GroupID: groupID, Text: text, CreatedAt: createdAt}
	if err := p.Create(); err != nil {
		t.Fatalf("creating post %q: %v", text, err)
	}
	return p
}
