package db

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/millworks/prodtrack/pkg/config"
	"github.com/millworks/prodtrack/pkg/logutils"
)

const (
	maxIdleConns    = 5
	maxOpenConns    = 10
	connMaxLifetime = time.Hour

	connectAttempts = 10
	connectBackoff  = time.Second
	maxBackoff      = 30 * time.Second
)

// Init opens the Postgres connection described by the config. The connect is
// retried with backoff instead of exiting on the first failure, so a database
// that comes up slightly after the service does not kill the process.
func Init(conf *config.Config) (*gorm.DB, error) {
	pg := conf.Postgres
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		pg.Host, pg.User, pg.Password, pg.DBName, pg.Port, pg.SSLMode, pg.TimeZone)

	var (
		instance *gorm.DB
		err      error
	)
	backoff := connectBackoff
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		instance, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		logutils.Log.WithField("attempt", attempt).Warnf("postgres connect failed: %v", err)
		if attempt == connectAttempts {
			return nil, fmt.Errorf("connect postgres after %d attempts: %w", connectAttempts, err)
		}
		time.Sleep(backoff)
		backoff *= 2
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
	}

	sqlDB, err := instance.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	logutils.Log.Info("Postgres init success!")
	return instance, nil
}

// Ping runs the connectivity probe query and returns the probe row.
func Ping(ctx context.Context, db *gorm.DB) (int, error) {
	var number int
	if err := db.WithContext(ctx).Raw("SELECT 1 AS number").Scan(&number).Error; err != nil {
		return 0, err
	}
	return number, nil
}
