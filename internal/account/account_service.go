package account

import (
	"context"
	"errors"
	"strings"
	"unicode"

	accounterrors "github.com/MRigonM/EmployeeManagement/internal/account/errors"
	"github.com/MRigonM/EmployeeManagement/internal/employee"
	"github.com/MRigonM/EmployeeManagement/internal/rbac"
	"github.com/MRigonM/EmployeeManagement/internal/shared/result"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=account_service.go -destination=mock/account_service_mock.go -package=mock
type Service interface {
	RegisterEmployee(ctx context.Context, req RegisterEmployeeRequest) result.Result[string]
	Login(ctx context.Context, req LoginRequest) result.Result[AuthResponse]
}

type service struct {
	repo      Repository
	employees employee.Service
	tokens    *TokenIssuer
	logger    *zap.Logger
}

func NewService(repo Repository, employees employee.Service, tokens *TokenIssuer, logger ...*zap.Logger) Service {
	l := zap.L().Named("account.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("account.service")
	}
	return &service{repo: repo, employees: employees, tokens: tokens, logger: l}
}

// RegisterEmployee provisions an identity principal, assigns it the
// Employee role and creates the linked employee record. If the employee
// record cannot be created the principal is deleted again, so a failed
// registration never leaves an orphaned login. The Admin/Employee roles
// themselves are seeded once at startup.
func (s *service) RegisterEmployee(ctx context.Context, req RegisterEmployeeRequest) result.Result[string] {
	s.logger.Info("registering new employee", zap.String("email", req.Email))

	if reasons := validatePassword(req.Password); len(reasons) > 0 {
		return result.Failure[string](accounterrors.RegistrationFailed(strings.Join(reasons, ", ")))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hash password failed", zap.String("email", req.Email), zap.Error(err))
		return result.Failure[string](accounterrors.RegistrationUnexpectedError())
	}

	user := &User{
		ID:           uuid.New(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(hashed),
		PhoneNumber:  req.PhoneNumber,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if isUniqueViolation(err) {
			s.logger.Warn("registration email already taken", zap.String("email", req.Email))
			return result.Failure[string](accounterrors.RegistrationFailed("email is already registered."))
		}
		s.logger.Error("create principal failed", zap.String("email", req.Email), zap.Error(err))
		return result.Failure[string](accounterrors.RegistrationUnexpectedError())
	}

	if err := s.repo.AssignRole(ctx, user.ID, rbac.RoleEmployee); err != nil {
		s.logger.Error("assign role failed", zap.String("user_id", user.ID.String()), zap.Error(err))
		s.compensate(ctx, user.ID)
		return result.Failure[string](accounterrors.RegistrationUnexpectedError())
	}

	employeeResult := s.employees.Create(ctx, employee.CreateEmployeeRequest{
		Name:         req.FirstName,
		Surname:      req.LastName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		DepartmentID: req.DepartmentID,
	})
	if !employeeResult.IsSuccess() {
		s.logger.Warn("identity created but employee record failed",
			zap.String("email", req.Email))
		s.compensate(ctx, user.ID)
		return result.Failure[string](accounterrors.EmployeeCreationFailed())
	}

	s.logger.Info("successfully registered employee", zap.String("user_id", user.ID.String()))
	return result.Success("Employee registered successfully.")
}

// Login verifies credentials and issues a signed token. Unknown email and
// wrong password collapse into the identical failure so callers cannot
// enumerate accounts.
func (s *service) Login(ctx context.Context, req LoginRequest) result.Result[AuthResponse] {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return result.Failure[AuthResponse](accounterrors.InvalidCredentials())
		}
		s.logger.Error("login lookup failed", zap.String("email", req.Email), zap.Error(err))
		return result.Failure[AuthResponse](accounterrors.LoginUnexpectedError())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return result.Failure[AuthResponse](accounterrors.InvalidCredentials())
	}

	// A principal without an assigned role should not occur, but must not
	// crash either.
	role := rbac.RoleEmployee
	if len(user.Roles) > 0 {
		role = user.Roles[0].Name
	}

	var departmentID *uint
	if role == rbac.RoleEmployee {
		departmentID = s.resolveDepartment(ctx, user.Email)
	}

	token, err := s.tokens.Issue(user.ID, user.Email, role)
	if err != nil {
		s.logger.Error("issue token failed", zap.String("user_id", user.ID.String()), zap.Error(err))
		return result.Failure[AuthResponse](accounterrors.LoginUnexpectedError())
	}

	return result.Success(AuthResponse{
		Token:        token,
		UserID:       user.ID.String(),
		Email:        user.Email,
		Role:         role,
		DepartmentID: departmentID,
	})
}

// resolveDepartment matches the employee record by email. Linear over the
// full list; fine at this system's scale.
func (s *service) resolveDepartment(ctx context.Context, email string) *uint {
	all := s.employees.GetAll(ctx)
	if !all.IsSuccess() {
		return nil
	}
	for _, e := range all.Value() {
		if e.Email == email {
			departmentID := e.DepartmentID
			return &departmentID
		}
	}
	return nil
}

func (s *service) compensate(ctx context.Context, userID uuid.UUID) {
	if err := s.repo.Delete(ctx, userID); err != nil {
		s.logger.Error("compensating principal deletion failed",
			zap.String("user_id", userID.String()), zap.Error(err))
	}
}

// validatePassword mirrors the registration password policy: 8-20
// characters with at least one uppercase letter, one digit and one special
// character.
func validatePassword(password string) []string {
	var reasons []string

	if len(password) < 8 || len(password) > 20 {
		reasons = append(reasons, "password must be 8-20 characters long")
	}

	var hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune("@$!%*?&", r):
			hasSpecial = true
		}
	}

	if !hasUpper {
		reasons = append(reasons, "password must contain an uppercase letter")
	}
	if !hasDigit {
		reasons = append(reasons, "password must contain a digit")
	}
	if !hasSpecial {
		reasons = append(reasons, "password must contain a special character")
	}

	return reasons
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
