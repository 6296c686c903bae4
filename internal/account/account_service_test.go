package account_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MRigonM/EmployeeManagement/internal/account"
	accountMock "github.com/MRigonM/EmployeeManagement/internal/account/mock"
	"github.com/MRigonM/EmployeeManagement/internal/employee"
	employeeMock "github.com/MRigonM/EmployeeManagement/internal/employee/mock"
	"github.com/MRigonM/EmployeeManagement/internal/shared/config"
	"github.com/MRigonM/EmployeeManagement/internal/shared/result"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var testJWTConfig = config.JWT{
	Secret:   "test-secret",
	Issuer:   "EmployeeManagement",
	Audience: "EmployeeManagementClient",
	Expiry:   2 * time.Hour,
}

type accountServiceDeps struct {
	service   account.Service
	repo      *accountMock.MockRepository
	employees *employeeMock.MockService
}

func setupAccountServiceTest(t *testing.T) *accountServiceDeps {
	ctrl := gomock.NewController(t)

	repo := accountMock.NewMockRepository(ctrl)
	employees := employeeMock.NewMockService(ctrl)
	tokens := account.NewTokenIssuer(testJWTConfig)

	svc := account.NewService(repo, employees, tokens)

	return &accountServiceDeps{service: svc, repo: repo, employees: employees}
}

func validRegisterRequest() account.RegisterEmployeeRequest {
	return account.RegisterEmployeeRequest{
		FirstName:    "Arta",
		LastName:     "Krasniqi",
		Email:        "arta@company.com",
		Password:     "Str0ngPass!",
		PhoneNumber:  "38344123456",
		DepartmentID: 2,
	}
}

func TestAccountService_RegisterEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("success creates principal, role and employee record", func(t *testing.T) {
		deps := setupAccountServiceTest(t)
		req := validRegisterRequest()

		var createdID uuid.UUID
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, u *account.User) error {
				assert.Equal(t, req.Email, u.Email)
				assert.NotEqual(t, req.Password, u.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)))
				createdID = u.ID
				return nil
			})
		deps.repo.EXPECT().
			AssignRole(ctx, gomock.Any(), "Employee").
			DoAndReturn(func(ctx context.Context, id uuid.UUID, role string) error {
				assert.Equal(t, createdID, id)
				return nil
			})
		deps.employees.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, er employee.CreateEmployeeRequest) result.Result[employee.EmployeeResponse] {
				assert.Equal(t, req.Email, er.Email)
				assert.Equal(t, req.DepartmentID, er.DepartmentID)
				return result.Success(employee.EmployeeResponse{ID: 1, Email: er.Email})
			})

		res := deps.service.RegisterEmployee(ctx, req)

		assert.True(t, res.IsSuccess())
		assert.Equal(t, "Employee registered successfully.", res.Value())
	})

	t.Run("weak password is rejected before any write", func(t *testing.T) {
		deps := setupAccountServiceTest(t)
		req := validRegisterRequest()
		req.Password = "short"

		res := deps.service.RegisterEmployee(ctx, req)

		assert.False(t, res.IsSuccess())
		assert.Equal(t, "Account.RegistrationFailed", res.Errors()[0].Code)
	})

	t.Run("duplicate email maps to RegistrationFailed", func(t *testing.T) {
		deps := setupAccountServiceTest(t)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505"})

		res := deps.service.RegisterEmployee(ctx, validRegisterRequest())

		assert.False(t, res.IsSuccess())
		assert.Equal(t, "Account.RegistrationFailed", res.Errors()[0].Code)
		assert.Contains(t, res.Errors()[0].Description, "already registered")
	})

	t.Run("employee creation failure deletes the principal again", func(t *testing.T) {
		deps := setupAccountServiceTest(t)

		var createdID uuid.UUID
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, u *account.User) error {
				createdID = u.ID
				return nil
			})
		deps.repo.EXPECT().
			AssignRole(ctx, gomock.Any(), "Employee").
			Return(nil)
		deps.employees.EXPECT().
			Create(ctx, gomock.Any()).
			Return(result.Failure[employee.EmployeeResponse](result.NewError("Employee.CreationFailed", "dup")))
		deps.repo.EXPECT().
			Delete(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, id uuid.UUID) error {
				assert.Equal(t, createdID, id)
				return nil
			})

		res := deps.service.RegisterEmployee(ctx, validRegisterRequest())

		assert.False(t, res.IsSuccess())
		assert.Equal(t, "Account.EmployeeCreationFailed", res.Errors()[0].Code)
	})

	t.Run("role assignment failure deletes the principal again", func(t *testing.T) {
		deps := setupAccountServiceTest(t)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(nil)
		deps.repo.EXPECT().
			AssignRole(ctx, gomock.Any(), "Employee").
			Return(errors.New("db error"))
		deps.repo.EXPECT().
			Delete(ctx, gomock.Any()).
			Return(nil)

		res := deps.service.RegisterEmployee(ctx, validRegisterRequest())

		assert.False(t, res.IsSuccess())
		assert.Equal(t, "Account.RegistrationUnexpectedError", res.Errors()[0].Code)
	})
}

func TestAccountService_Login(t *testing.T) {
	ctx := context.Background()

	hash := func(t *testing.T, password string) string {
		t.Helper()
		h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		assert.NoError(t, err)
		return string(h)
	}

	t.Run("unknown email and wrong password fail identically", func(t *testing.T) {
		deps := setupAccountServiceTest(t)

		deps.repo.EXPECT().
			GetByEmail(ctx, "missing@company.com").
			Return(nil, gorm.ErrRecordNotFound)

		unknown := deps.service.Login(ctx, account.LoginRequest{Email: "missing@company.com", Password: "Whatever1!"})

		deps.repo.EXPECT().
			GetByEmail(ctx, "arta@company.com").
			Return(&account.User{
				ID:           uuid.New(),
				Email:        "arta@company.com",
				PasswordHash: hash(t, "Correct1!"),
			}, nil)

		wrongPassword := deps.service.Login(ctx, account.LoginRequest{Email: "arta@company.com", Password: "Wrong1!"})

		assert.False(t, unknown.IsSuccess())
		assert.False(t, wrongPassword.IsSuccess())
		assert.Equal(t, unknown.Errors(), wrongPassword.Errors())
		assert.Equal(t, "Account.InvalidCredentials", unknown.Errors()[0].Code)
	})

	t.Run("employee login carries the department id", func(t *testing.T) {
		deps := setupAccountServiceTest(t)
		userID := uuid.New()

		deps.repo.EXPECT().
			GetByEmail(ctx, "arta@company.com").
			Return(&account.User{
				ID:           userID,
				Email:        "arta@company.com",
				PasswordHash: hash(t, "Correct1!"),
				Roles:        []account.Role{{ID: 2, Name: "Employee"}},
			}, nil)
		deps.employees.EXPECT().
			GetAll(ctx).
			Return(result.Success([]employee.EmployeeResponse{
				{ID: 1, Email: "other@company.com", DepartmentID: 9},
				{ID: 2, Email: "arta@company.com", DepartmentID: 4},
			}))

		res := deps.service.Login(ctx, account.LoginRequest{Email: "arta@company.com", Password: "Correct1!"})

		assert.True(t, res.IsSuccess())
		assert.Equal(t, userID.String(), res.Value().UserID)
		assert.Equal(t, "Employee", res.Value().Role)
		assert.NotEmpty(t, res.Value().Token)
		if assert.NotNil(t, res.Value().DepartmentID) {
			assert.Equal(t, uint(4), *res.Value().DepartmentID)
		}
	})

	t.Run("admin login has no department lookup", func(t *testing.T) {
		deps := setupAccountServiceTest(t)

		deps.repo.EXPECT().
			GetByEmail(ctx, "admin@company.com").
			Return(&account.User{
				ID:           uuid.New(),
				Email:        "admin@company.com",
				PasswordHash: hash(t, "Admin123!"),
				Roles:        []account.Role{{ID: 1, Name: "Admin"}},
			}, nil)

		res := deps.service.Login(ctx, account.LoginRequest{Email: "admin@company.com", Password: "Admin123!"})

		assert.True(t, res.IsSuccess())
		assert.Equal(t, "Admin", res.Value().Role)
		assert.Nil(t, res.Value().DepartmentID)
	})

	t.Run("principal without roles defaults to Employee", func(t *testing.T) {
		deps := setupAccountServiceTest(t)

		deps.repo.EXPECT().
			GetByEmail(ctx, "arta@company.com").
			Return(&account.User{
				ID:           uuid.New(),
				Email:        "arta@company.com",
				PasswordHash: hash(t, "Correct1!"),
			}, nil)
		deps.employees.EXPECT().
			GetAll(ctx).
			Return(result.Success([]employee.EmployeeResponse{}))

		res := deps.service.Login(ctx, account.LoginRequest{Email: "arta@company.com", Password: "Correct1!"})

		assert.True(t, res.IsSuccess())
		assert.Equal(t, "Employee", res.Value().Role)
		assert.Nil(t, res.Value().DepartmentID)
	})
}
