package app

import (
	"github.com/MRigonM/EmployeeManagement/internal/account"
	"github.com/MRigonM/EmployeeManagement/internal/department"
	"github.com/MRigonM/EmployeeManagement/internal/employee"
	"github.com/MRigonM/EmployeeManagement/internal/middleware"
	"github.com/MRigonM/EmployeeManagement/internal/rbac"
	"github.com/MRigonM/EmployeeManagement/internal/shared/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Registry holds every wired module so routes and the seeder share the
// same instances.
type Registry struct {
	AccountRepo account.Repository

	departmentHandler *department.Handler
	employeeHandler   *employee.Handler
	accountHandler    *account.Handler

	jwt config.JWT
}

func NewRegistry(db *gorm.DB, rdb *redis.Client, writer *kafka.Writer, cfg config.Config) *Registry {
	departmentRepo := department.NewRepository(db)
	departmentService := department.NewService(departmentRepo, rdb)

	var publisher employee.EventPublisher
	if writer != nil {
		publisher = employee.NewKafkaEventPublisher(writer)
	}
	employeeRepo := employee.NewRepository(db)
	employeeService := employee.NewService(employeeRepo, publisher)

	accountRepo := account.NewRepository(db)
	tokens := account.NewTokenIssuer(cfg.JWT)
	accountService := account.NewService(accountRepo, employeeService, tokens)

	return &Registry{
		AccountRepo:       accountRepo,
		departmentHandler: department.NewHandler(departmentService),
		employeeHandler:   employee.NewHandler(employeeService),
		accountHandler:    account.NewHandler(accountService),
		jwt:               cfg.JWT,
	}
}

// MountRoutes attaches every module under /api/v1.
func (r *Registry) MountRoutes(router *gin.Engine) error {
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}

	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")

	account.RegisterRoutes(api, r.accountHandler, enforcer, r.jwt)
	department.RegisterRoutes(api, r.departmentHandler, enforcer, r.jwt)
	employee.RegisterRoutes(api, r.employeeHandler, enforcer, r.jwt)

	zap.L().Info("routes mounted", zap.String("base", "/api/v1"))
	return nil
}
