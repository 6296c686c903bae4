package app

import (
	"context"
	"fmt"

	"github.com/MRigonM/EmployeeManagement/internal/account"
	"github.com/MRigonM/EmployeeManagement/internal/bootstrap"
	"github.com/MRigonM/EmployeeManagement/internal/department"
	"github.com/MRigonM/EmployeeManagement/internal/employee"
	"github.com/MRigonM/EmployeeManagement/internal/shared/config"
	"github.com/MRigonM/EmployeeManagement/internal/shared/connection"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App owns the process-wide resources and the wired HTTP registry.
type App struct {
	DB       *gorm.DB
	Redis    *redis.Client
	Kafka    *kafka.Writer
	Registry *Registry
}

// Build connects the infrastructure, migrates the schema, seeds roles and
// the admin account, and wires every module. Redis and Kafka are optional:
// without them the department cache and the employee event stream degrade
// to direct reads and a no-op publisher.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	db, err := connection.ConnectGORMWithRetry(cfg.Database, 5)
	if err != nil {
		return nil, err
	}

	if err := db.WithContext(ctx).AutoMigrate(
		&department.Department{},
		&employee.Employee{},
		&account.User{},
		&account.Role{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.RedisAddr, 3)
		if err != nil {
			zap.L().Warn("redis unavailable, caching disabled", zap.Error(err))
			rdb = nil
		}
	}

	var writer *kafka.Writer
	if len(cfg.KafkaBrokers) > 0 {
		writer = &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
	}

	registry := NewRegistry(db, rdb, writer, cfg)

	if err := bootstrap.Seed(ctx, registry.AccountRepo, cfg.SeedAdmin); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}

	return &App{DB: db, Redis: rdb, Kafka: writer, Registry: registry}, nil
}

// Close releases the infrastructure handles in reverse order of acquisition.
func (a *App) Close() {
	if a.Kafka != nil {
		if err := a.Kafka.Close(); err != nil {
			zap.L().Warn("close kafka writer", zap.Error(err))
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			zap.L().Warn("close redis client", zap.Error(err))
		}
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			zap.L().Warn("close database", zap.Error(err))
		}
	}
}
