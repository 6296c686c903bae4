package employee_test

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/MRigonM/EmployeeManagement/internal/employee"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupEmployeeRepoTest(t *testing.T) (employee.Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return employee.NewRepository(gdb), mock
}

// timeNear matches a time argument within a tolerance of the expected
// instant.
type timeNear struct {
	expected time.Time
}

func (m timeNear) Match(v driver.Value) bool {
	actual, ok := v.(time.Time)
	if !ok {
		return false
	}
	diff := actual.Sub(m.expected)
	if diff < 0 {
		diff = -diff
	}
	return diff < time.Minute
}

func TestEmployeeRepository_CountJoinedInLastDays(t *testing.T) {
	ctx := context.Background()

	t.Run("queries an inclusive lower bound n days back", func(t *testing.T) {
		repo, mock := setupEmployeeRepoTest(t)

		cutoff := time.Now().UTC().AddDate(0, 0, -5)
		mock.ExpectQuery(`SELECT count\(\*\) FROM "employees" WHERE date_of_joining >= \$1 AND "employees"\."deleted_at" IS NULL`).
			WithArgs(timeNear{expected: cutoff}).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		count, err := repo.CountJoinedInLastDays(ctx, 5)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero days bounds the window at now", func(t *testing.T) {
		repo, mock := setupEmployeeRepoTest(t)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "employees" WHERE date_of_joining >= \$1 AND "employees"\."deleted_at" IS NULL`).
			WithArgs(timeNear{expected: time.Now().UTC()}).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		count, err := repo.CountJoinedInLastDays(ctx, 0)

		assert.NoError(t, err)
		assert.Equal(t, int64(0), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEmployeeRepository_Count(t *testing.T) {
	repo, mock := setupEmployeeRepoTest(t)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "employees" WHERE "employees"\."deleted_at" IS NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	count, err := repo.Count(ctx)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_CountByDepartment(t *testing.T) {
	repo, mock := setupEmployeeRepoTest(t)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "employees" WHERE department_id = \$1 AND "employees"\."deleted_at" IS NULL`).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountByDepartment(ctx, 2)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_GetByDepartment(t *testing.T) {
	repo, mock := setupEmployeeRepoTest(t)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT \* FROM "employees" WHERE department_id = \$1 AND "employees"\."deleted_at" IS NULL ORDER BY id`).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "surname", "email", "department_id"}).
			AddRow(1, "Arta", "Krasniqi", "arta@company.com", 2))
	mock.ExpectQuery(`SELECT \* FROM "departments" WHERE "departments"\."id" = \$1`).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(2, "IT"))

	empls, err := repo.GetByDepartment(ctx, 2)

	assert.NoError(t, err)
	require.Len(t, empls, 1)
	assert.Equal(t, "Arta", empls[0].Name)
	if assert.NotNil(t, empls[0].Department) {
		assert.Equal(t, "IT", empls[0].Department.Name)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
