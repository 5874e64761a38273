package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the store selected by cfg. The returned handle is owned by
// the caller, which must release it with CloseDB.
func InitDB(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "", DriverSQLite:
		dialector = sqlite.Open(SQLiteDSN(cfg.DBPath))
	case DriverMySQL:
		if cfg.MySQLDSN == "" {
			return nil, errors.New("MYSQL_DSN is required when DB_DRIVER=mysql")
		}
		dialector = mysql.Open(cfg.MySQLDSN)
	default:
		return nil, errors.Newf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	gormCfg := &gorm.Config{}
	if cfg.AppEnv != "development" {
		gormCfg.Logger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s store", cfg.DBDriver)
	}
	return db, nil
}

// CloseDB closes the connection pool underneath db.
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SQLiteDSN turns a file path into a DSN with foreign-key enforcement off,
// so deleting a customer never fails because of its orders.
func SQLiteDSN(path string) string {
	if strings.Contains(path, "_foreign_keys=") || strings.Contains(path, "_fk=") {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=0"
}
