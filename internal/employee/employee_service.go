package employee

import (
	"context"
	"time"

	employeeerrors "github.com/MRigonM/EmployeeManagement/internal/employee/errors"
	"github.com/MRigonM/EmployeeManagement/internal/events"
	"github.com/MRigonM/EmployeeManagement/internal/shared/contextutil"
	"github.com/MRigonM/EmployeeManagement/internal/shared/result"

	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	GetByID(ctx context.Context, id uint) result.Result[EmployeeResponse]
	GetAll(ctx context.Context) result.Result[[]EmployeeResponse]
	GetByDepartment(ctx context.Context, departmentID uint) result.Result[[]EmployeeResponse]
	Create(ctx context.Context, req CreateEmployeeRequest) result.Result[EmployeeResponse]
	Update(ctx context.Context, id uint, req UpdateEmployeeRequest) result.Result[EmployeeResponse]
	Delete(ctx context.Context, id uint) result.Result[bool]
	Count(ctx context.Context) result.Result[int64]
	CountByDepartment(ctx context.Context, departmentID uint) result.Result[int64]
	CountJoinedInLastDays(ctx context.Context, days int) result.Result[int64]
}

type service struct {
	repo      Repository
	publisher EventPublisher
	logger    *zap.Logger
}

func NewService(repo Repository, publisher EventPublisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if publisher == nil {
		publisher = noopEventPublisher{}
	}
	return &service{repo: repo, publisher: publisher, logger: l}
}

func (s *service) GetByID(ctx context.Context, id uint) result.Result[EmployeeResponse] {
	s.logger.Debug("get employee by id requested", zap.Uint("employee_id", id))

	empl, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Warn("get employee by id failed", zap.Uint("employee_id", id), zap.Error(err))
		return result.Failure[EmployeeResponse](classify(err, id, employeeerrors.RetrievalError()))
	}

	return result.Success(mapToResponse(*empl))
}

// GetAll returns every non-deleted employee; an empty set is a valid
// success.
func (s *service) GetAll(ctx context.Context) result.Result[[]EmployeeResponse] {
	s.logger.Debug("get all employees requested", contextutil.Fields(ctx)...)

	empls, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return result.Failure[[]EmployeeResponse](employeeerrors.RetrievalError())
	}

	return result.Success(mapToListResponse(empls))
}

func (s *service) GetByDepartment(ctx context.Context, departmentID uint) result.Result[[]EmployeeResponse] {
	s.logger.Debug("get employees by department requested", zap.Uint("department_id", departmentID))

	empls, err := s.repo.GetByDepartment(ctx, departmentID)
	if err != nil {
		s.logger.Error("get employees by department failed",
			zap.Uint("department_id", departmentID), zap.Error(err))
		return result.Failure[[]EmployeeResponse](employeeerrors.RetrievalError())
	}

	return result.Success(mapToListResponse(empls))
}

// Create stamps the join timestamp with the current instant; callers cannot
// supply it.
func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) result.Result[EmployeeResponse] {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
		zap.Uint("department_id", req.DepartmentID),
	)

	empl := &Employee{
		Name:          req.Name,
		Surname:       req.Surname,
		Email:         req.Email,
		PhoneNumber:   req.PhoneNumber,
		DateOfJoining: time.Now().UTC(),
		DepartmentID:  req.DepartmentID,
	}

	rows, err := s.repo.Create(ctx, empl)
	if err != nil {
		if isUniqueViolation(err) {
			s.logger.Warn("create employee email already in use", zap.String("email", req.Email))
			return result.Failure[EmployeeResponse](employeeerrors.CreationFailed())
		}
		s.logger.Error("create employee persist failed", zap.String("email", req.Email), zap.Error(err))
		return result.Failure[EmployeeResponse](employeeerrors.CreationUnexpectedError())
	}
	if rows == 0 {
		return result.Failure[EmployeeResponse](employeeerrors.CreationFailed())
	}

	event := events.EmployeeCreatedEvent{
		EventType:    "employee_created",
		RequestID:    rid,
		EmployeeID:   empl.ID,
		DepartmentID: empl.DepartmentID,
		Email:        empl.Email,
		OccurredAt:   time.Now().UTC(),
	}
	if err := s.publisher.PublishEmployeeCreated(ctx, event); err != nil {
		// Best effort only; the record is already persisted.
		s.logger.Warn("publish employee created event failed",
			zap.Uint("employee_id", empl.ID), zap.Error(err))
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Uint("employee_id", empl.ID),
	)

	return result.Success(mapToResponse(*empl))
}

func (s *service) Update(ctx context.Context, id uint, req UpdateEmployeeRequest) result.Result[EmployeeResponse] {
	s.logger.Debug("update employee requested", zap.Uint("employee_id", id))

	empl, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Warn("update employee fetch existing failed", zap.Uint("employee_id", id), zap.Error(err))
		return result.Failure[EmployeeResponse](classify(err, id, employeeerrors.UpdateUnexpectedError()))
	}

	applyUpdate(empl, req)

	rows, err := s.repo.Update(ctx, empl)
	if err != nil {
		s.logger.Error("update employee persist failed", zap.Uint("employee_id", id), zap.Error(err))
		return result.Failure[EmployeeResponse](employeeerrors.UpdateUnexpectedError())
	}
	if rows == 0 {
		return result.Failure[EmployeeResponse](employeeerrors.NoChangesDetected())
	}

	s.logger.Info("update employee success", zap.Uint("employee_id", id))

	return result.Success(mapToResponse(*empl))
}

// Delete has no referential guard; employees have no dependents.
func (s *service) Delete(ctx context.Context, id uint) result.Result[bool] {
	s.logger.Debug("delete employee requested", zap.Uint("employee_id", id))

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		s.logger.Warn("delete employee fetch existing failed", zap.Uint("employee_id", id), zap.Error(err))
		return result.Failure[bool](classify(err, id, employeeerrors.DeletionUnexpectedError()))
	}

	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete employee failed", zap.Uint("employee_id", id), zap.Error(err))
		return result.Failure[bool](employeeerrors.DeletionUnexpectedError())
	}
	if rows == 0 {
		return result.Failure[bool](employeeerrors.NoChangesDetected())
	}

	s.logger.Info("delete employee success", zap.Uint("employee_id", id))

	return result.Success(true)
}

func (s *service) Count(ctx context.Context) result.Result[int64] {
	count, err := s.repo.Count(ctx)
	if err != nil {
		s.logger.Error("count employees failed", zap.Error(err))
		return result.Failure[int64](employeeerrors.RetrievalError())
	}
	return result.Success(count)
}

func (s *service) CountByDepartment(ctx context.Context, departmentID uint) result.Result[int64] {
	count, err := s.repo.CountByDepartment(ctx, departmentID)
	if err != nil {
		s.logger.Error("count employees by department failed",
			zap.Uint("department_id", departmentID), zap.Error(err))
		return result.Failure[int64](employeeerrors.RetrievalError())
	}
	return result.Success(count)
}

func (s *service) CountJoinedInLastDays(ctx context.Context, days int) result.Result[int64] {
	if days < 0 {
		return result.Failure[int64](employeeerrors.RetrievalError())
	}

	count, err := s.repo.CountJoinedInLastDays(ctx, days)
	if err != nil {
		s.logger.Error("count employees joined in last days failed",
			zap.Int("days", days), zap.Error(err))
		return result.Failure[int64](employeeerrors.RetrievalError())
	}
	return result.Success(count)
}
