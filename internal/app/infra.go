package app

import (
	"database/sql"

	"go-paie/internal/config"
	"go-paie/internal/shared/connection"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Infra is the set of shared connections a binary runs on. Redis is nil
// when REDIS_ADDR is empty.
type Infra struct {
	Gorm  *gorm.DB
	DB    *sql.DB
	Redis *redis.Client
}

func connect(cfg config.Config, withRedis bool) (*Infra, error) {
	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		cfg.DBSSLMode,
		cfg.MaxRetries,
	)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	infra := &Infra{Gorm: gormDB, DB: sqlDB}
	if withRedis && cfg.RedisAddr != "" {
		rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.MaxRetries)
		if err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		infra.Redis = rdb
	}

	return infra, nil
}

func (i *Infra) Close() {
	if i.Redis != nil {
		_ = i.Redis.Close()
	}
	if i.DB != nil {
		_ = i.DB.Close()
	}
}
