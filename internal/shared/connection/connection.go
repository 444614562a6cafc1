package connection

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const retryDelay = 5 * time.Second

// withRetry calls attempt up to maxRetries times, sleeping retryDelay between
// failures, and returns the last error.
func withRetry(log *zap.Logger, maxRetries int, attempt func() error) error {
	var err error
	for i := 1; i <= maxRetries; i++ {
		if err = attempt(); err == nil {
			return nil
		}
		log.Warn("connect attempt failed", zap.Int("attempt", i), zap.Int("max", maxRetries), zap.Error(err))
		if i < maxRetries {
			time.Sleep(retryDelay)
		}
	}
	return fmt.Errorf("failed after %d attempts: %w", maxRetries, err)
}

func ConnectGORMWithRetry(
	host, user, password, dbname, port, sslmode string,
	maxRetries int,
) (*gorm.DB, error) {
	log := zap.L().Named("connection.postgres")
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, dbname, port, sslmode,
	)

	var db *gorm.DB
	err := withRetry(log, maxRetries, func() error {
		gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return err
		}
		sqlDB, err := gdb.DB()
		if err != nil {
			return err
		}
		if err := sqlDB.Ping(); err != nil {
			return err
		}
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(time.Hour)
		db = gdb
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("postgres: %w", err)
	}

	log.Info("connected to postgres", zap.String("host", host), zap.String("db", dbname))
	return db, nil
}

func ConnectRedisWithRetry(addr string, maxRetries int) (*redis.Client, error) {
	log := zap.L().Named("connection.redis")
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	err := withRetry(log, maxRetries, func() error {
		return rdb.Ping(context.Background()).Err()
	})
	if err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis: %w", err)
	}

	log.Info("connected to redis", zap.String("addr", addr))
	return rdb, nil
}

// ConnectKafkaWithRetry dials the first broker until it answers, then hands
// back a writer. Topics are set per message, so the writer has none.
func ConnectKafkaWithRetry(brokers string, maxRetries int) (*kafkago.Writer, error) {
	log := zap.L().Named("connection.kafka")
	addrs := SplitBrokers(brokers)
	if len(addrs) == 0 {
		return nil, fmt.Errorf("no kafka broker configured")
	}

	err := withRetry(log, maxRetries, func() error {
		conn, err := kafkago.Dial("tcp", addrs[0])
		if err != nil {
			return err
		}
		return conn.Close()
	})
	if err != nil {
		return nil, fmt.Errorf("kafka: %w", err)
	}

	log.Info("connected to kafka", zap.Strings("brokers", addrs))
	return &kafkago.Writer{
		Addr:                   kafkago.TCP(addrs...),
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
	}, nil
}

// SplitBrokers parses a comma separated KAFKA_BROKER value.
func SplitBrokers(v string) []string {
	var out []string
	for _, b := range strings.Split(v, ",") {
		b = strings.TrimSpace(b)
		if b == "" {
			continue
		}
		if _, _, err := net.SplitHostPort(b); err != nil {
			b = net.JoinHostPort(b, "9092")
		}
		out = append(out, b)
	}
	return out
}
