package store

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSQLiteKV(t *testing.T) (*SQLiteKV, func()) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	kv, err := NewSQLiteKV(gdb)
	if err != nil {
		t.Fatalf("failed to init kv: %v", err)
	}

	return kv, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestSQLiteKVGetMissingKey(t *testing.T) {
	kv, cleanup := setupSQLiteKV(t)
	defer cleanup()

	value, ok, err := kv.Get("zenlog_missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok || value != "" {
		t.Fatalf("expected missing key, got ok=%v value=%q", ok, value)
	}
}

func TestSQLiteKVSetOverwrites(t *testing.T) {
	kv, cleanup := setupSQLiteKV(t)
	defer cleanup()

	if err := kv.Set("zenlog_posts", `[{"id":"a"}]`); err != nil {
		t.Fatalf("failed to set: %v", err)
	}
	if err := kv.Set("zenlog_posts", `[{"id":"b"}]`); err != nil {
		t.Fatalf("failed to overwrite: %v", err)
	}

	value, ok, err := kv.Get("zenlog_posts")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || value != `[{"id":"b"}]` {
		t.Fatalf("expected overwritten value, got ok=%v value=%q", ok, value)
	}

	var count int64
	if err := kv.db.Model(&kvEntry{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count entries: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single row per key, got %d", count)
	}
}

func TestContentStoreOnSQLiteKV(t *testing.T) {
	kv, cleanup := setupSQLiteKV(t)
	defer cleanup()

	s := NewContentStore(kv)
	if err := s.EnsureSeed(); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}
	if err := s.SavePost(Post{ID: "a", Title: "京都小店"}); err != nil {
		t.Fatalf("failed to save post: %v", err)
	}

	posts := s.ListPosts()
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].ID != "a" {
		t.Fatalf("expected new post first, got %q", posts[0].ID)
	}
}
