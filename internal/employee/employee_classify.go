package employee

import (
	"errors"

	employeeerrors "github.com/MRigonM/EmployeeManagement/internal/employee/errors"
	"github.com/MRigonM/EmployeeManagement/internal/shared/result"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// classify is the single error-mapping boundary for this entity. A missing
// record becomes NotFound, anything else the operation's fallback code.
func classify(err error, id uint, fallback result.Error) result.Error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.NotFound(id)
	}
	return fallback
}

// isUniqueViolation reports whether err is a unique-constraint failure.
// A concurrent create racing on the same email must observe it as a normal
// domain failure, not a crash.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
