package department

import (
	"errors"

	departmenterrors "github.com/MRigonM/EmployeeManagement/internal/department/errors"
	"github.com/MRigonM/EmployeeManagement/internal/shared/result"

	"gorm.io/gorm"
)

// classify is the single error-mapping boundary for this entity. Every
// operation funnels infrastructure errors through it: a missing record
// becomes NotFound, anything else becomes the operation's fallback code.
// Nothing below the service layer leaks an unstructured error to callers.
func classify(err error, id uint, fallback result.Error) result.Error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return departmenterrors.NotFound(id)
	}
	return fallback
}
