package employeeerrors

import (
	"fmt"

	"github.com/MRigonM/EmployeeManagement/internal/shared/result"
)

func NotFound(id uint) result.Error {
	return result.NewError("Employee.NotFound", fmt.Sprintf("Employee with ID %d was not found.", id))
}

func NoChangesDetected() result.Error {
	return result.NewError("Employee.NoChanges", "No changes were detected during the operation.")
}

func CreationFailed() result.Error {
	return result.NewError("Employee.CreationFailed", "Employee creation failed. No changes were made to the database.")
}

func CreationUnexpectedError() result.Error {
	return result.NewError("Employee.CreationUnexpectedError", "An unexpected error occurred during employee creation.")
}

func RetrievalError() result.Error {
	return result.NewError("Employee.RetrievalError", "An error occurred while retrieving the list of employees.")
}

func UpdateUnexpectedError() result.Error {
	return result.NewError("Employee.UpdateUnexpectedError", "An unexpected error occurred during the update operation.")
}

func DeletionUnexpectedError() result.Error {
	return result.NewError("Employee.DeletionUnexpectedError", "An unexpected error occurred during the deletion operation.")
}
