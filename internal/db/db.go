package db

import (
	"fmt"
	"os"
	"path/filepath"

	glebarez "github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Handle struct {
	DB     *gorm.DB
	Driver string
}

// Open otwiera bazę eksportu.
// Sterowniki: sqlite (czysty Go, domyślny), sqlite3 (cgo), postgres, mysql.
func Open(driver, dsn string) (*Handle, error) {
	var d gorm.Dialector
	switch driver {
	case "", "sqlite":
		if err := ensureDir(dsn); err != nil {
			return nil, err
		}
		driver = "sqlite"
		d = glebarez.Open(dsn)
	case "sqlite3":
		if err := ensureDir(dsn); err != nil {
			return nil, err
		}
		d = sqlite.Open(dsn)
	case "postgres":
		d = postgres.Open(dsn)
	case "mysql":
		d = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}

	gdb, err := gorm.Open(d, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // logger.Info dla pełnego SQL
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	return &Handle{DB: gdb, Driver: driver}, nil
}

// Close zamyka pulę połączeń.
func (h *Handle) Close() error {
	sqlDB, err := h.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func ensureDir(path string) error {
	if path == "" || path == ":memory:" {
		return nil
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}
