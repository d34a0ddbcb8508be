package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kvEntry 是键值条目的数据库模型，每个集合对应一行 JSON 数组。
type kvEntry struct {
	gorm.Model
	Key   string `gorm:"uniqueIndex;not null"`
	Value string
}

// SQLiteKV 是基于 gorm + sqlite 的 KeyValue 实现。
type SQLiteKV struct {
	db *gorm.DB
}

// OpenSQLiteKV 打开（必要时创建）数据库文件并执行自动迁移。
// databasePath 为空时将回退到默认值 zenlog.db。
func OpenSQLiteKV(databasePath string) (*SQLiteKV, error) {
	path := strings.TrimSpace(databasePath)
	if path == "" {
		path = "zenlog.db"
	}

	if err := ensureParentDir(path); err != nil {
		return nil, err
	}

	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return NewSQLiteKV(gdb)
}

// NewSQLiteKV 在已有连接上构造 SQLiteKV，测试可传入内存库。
func NewSQLiteKV(gdb *gorm.DB) (*SQLiteKV, error) {
	if err := gdb.AutoMigrate(&kvEntry{}); err != nil {
		return nil, err
	}
	return &SQLiteKV{db: gdb}, nil
}

// Get 返回键对应的值，键不存在时 ok 为 false。
func (s *SQLiteKV) Get(key string) (string, bool, error) {
	var entry kvEntry
	if err := s.db.Where("key = ?", key).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return entry.Value, true, nil
}

// Set 覆盖写入键值，已存在的键做原地更新。
func (s *SQLiteKV) Set(key, value string) error {
	entry := kvEntry{Key: key, Value: value}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
