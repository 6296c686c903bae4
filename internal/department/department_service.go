package department

import (
	"context"
	"encoding/json"
	"time"

	departmenterrors "github.com/MRigonM/EmployeeManagement/internal/department/errors"
	"github.com/MRigonM/EmployeeManagement/internal/shared/contextutil"
	"github.com/MRigonM/EmployeeManagement/internal/shared/result"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	allDepartmentsCacheKey = "departments:all"
	allDepartmentsCacheTTL = 30 * time.Minute
)

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	GetByID(ctx context.Context, id uint) result.Result[DepartmentResponse]
	GetAll(ctx context.Context) result.Result[[]DepartmentResponse]
	Create(ctx context.Context, req CreateDepartmentRequest) result.Result[DepartmentResponse]
	Update(ctx context.Context, id uint, req UpdateDepartmentRequest) result.Result[DepartmentResponse]
	Delete(ctx context.Context, id uint) result.Result[bool]
	Count(ctx context.Context) result.Result[int64]
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{repo: repo, rdb: rdb, logger: l}
}

func (s *service) GetByID(ctx context.Context, id uint) result.Result[DepartmentResponse] {
	s.logger.Debug("get department by id requested", zap.Uint("department_id", id))

	dept, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Warn("get department by id failed", zap.Uint("department_id", id), zap.Error(err))
		return result.Failure[DepartmentResponse](classify(err, id, departmenterrors.RetrievalError()))
	}

	return result.Success(mapToResponse(*dept))
}

// GetAll returns every non-deleted department. An empty set is a valid
// success. The list is cached; concurrent cache misses collapse into one
// database read.
func (s *service) GetAll(ctx context.Context) result.Result[[]DepartmentResponse] {
	s.logger.Debug("get all departments requested", contextutil.Fields(ctx)...)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, allDepartmentsCacheKey).Result(); err == nil {
			var resp []DepartmentResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return result.Success(resp)
			}
		}
	}

	v, err, _ := s.sf.Do(allDepartmentsCacheKey, func() (interface{}, error) {
		depts, err := s.repo.GetAll(ctx)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(depts)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, allDepartmentsCacheKey, jsonData, allDepartmentsCacheTTL)
			}
		}

		return resp, nil
	})
	if err != nil {
		s.logger.Error("get all departments failed", zap.Error(err))
		return result.Failure[[]DepartmentResponse](departmenterrors.RetrievalError())
	}

	return result.Success(v.([]DepartmentResponse))
}

func (s *service) Create(ctx context.Context, req CreateDepartmentRequest) result.Result[DepartmentResponse] {
	s.logger.Debug("create department requested", zap.String("name", req.Name))

	dept := &Department{
		Name:        req.Name,
		Description: req.Description,
	}

	rows, err := s.repo.Create(ctx, dept)
	if err != nil {
		s.logger.Error("create department failed", zap.String("name", req.Name), zap.Error(err))
		return result.Failure[DepartmentResponse](departmenterrors.CreationUnexpectedError())
	}
	if rows == 0 {
		return result.Failure[DepartmentResponse](departmenterrors.CreationFailed())
	}

	s.invalidateCache(ctx)
	s.logger.Info("create department success", zap.Uint("department_id", dept.ID))

	return result.Success(mapToResponse(*dept))
}

func (s *service) Update(ctx context.Context, id uint, req UpdateDepartmentRequest) result.Result[DepartmentResponse] {
	s.logger.Debug("update department requested", zap.Uint("department_id", id))

	dept, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Warn("update department fetch existing failed", zap.Uint("department_id", id), zap.Error(err))
		return result.Failure[DepartmentResponse](classify(err, id, departmenterrors.UpdateUnexpectedError()))
	}

	applyUpdate(dept, req)

	rows, err := s.repo.Update(ctx, dept)
	if err != nil {
		s.logger.Error("update department persist failed", zap.Uint("department_id", id), zap.Error(err))
		return result.Failure[DepartmentResponse](departmenterrors.UpdateUnexpectedError())
	}
	if rows == 0 {
		return result.Failure[DepartmentResponse](departmenterrors.NoChangesDetected())
	}

	s.invalidateCache(ctx)
	s.logger.Info("update department success", zap.Uint("department_id", id))

	return result.Success(mapToResponse(*dept))
}

// Delete refuses to remove a department that still has live employees. The
// existence check and the employee-reference check both run before any
// mutation is attempted.
func (s *service) Delete(ctx context.Context, id uint) result.Result[bool] {
	s.logger.Debug("delete department requested", zap.Uint("department_id", id))

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		s.logger.Warn("delete department fetch existing failed", zap.Uint("department_id", id), zap.Error(err))
		return result.Failure[bool](classify(err, id, departmenterrors.DeletionUnexpectedError()))
	}

	hasEmployees, err := s.repo.HasEmployees(ctx, id)
	if err != nil {
		s.logger.Error("delete department reference check failed", zap.Uint("department_id", id), zap.Error(err))
		return result.Failure[bool](departmenterrors.DeletionUnexpectedError())
	}
	if hasEmployees {
		return result.Failure[bool](departmenterrors.HasEmployees(id))
	}

	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete department failed", zap.Uint("department_id", id), zap.Error(err))
		return result.Failure[bool](departmenterrors.DeletionUnexpectedError())
	}
	if rows == 0 {
		return result.Failure[bool](departmenterrors.NoChangesDetected())
	}

	s.invalidateCache(ctx)
	s.logger.Info("delete department success", zap.Uint("department_id", id))

	return result.Success(true)
}

func (s *service) Count(ctx context.Context) result.Result[int64] {
	count, err := s.repo.Count(ctx)
	if err != nil {
		s.logger.Error("count departments failed", zap.Error(err))
		return result.Failure[int64](departmenterrors.RetrievalError())
	}
	return result.Success(count)
}

func (s *service) invalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, allDepartmentsCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate department cache",
			zap.String("key", allDepartmentsCacheKey),
			zap.Error(err),
		)
	}
}
