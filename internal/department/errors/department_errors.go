package departmenterrors

import (
	"fmt"

	"github.com/MRigonM/EmployeeManagement/internal/shared/result"
)

func NotFound(id uint) result.Error {
	return result.NewError("Department.NotFound", fmt.Sprintf("Department with ID %d was not found.", id))
}

func NoChangesDetected() result.Error {
	return result.NewError("Department.NoChanges", "No changes were detected during the operation.")
}

func CreationFailed() result.Error {
	return result.NewError("Department.CreationFailed", "Department creation failed. No changes were made to the database.")
}

func CreationUnexpectedError() result.Error {
	return result.NewError("Department.CreationUnexpectedError", "An unexpected error occurred during department creation.")
}

func RetrievalError() result.Error {
	return result.NewError("Department.RetrievalError", "An error occurred while retrieving the list of departments.")
}

func UpdateUnexpectedError() result.Error {
	return result.NewError("Department.UpdateUnexpectedError", "An unexpected error occurred during the update operation.")
}

func DeletionUnexpectedError() result.Error {
	return result.NewError("Department.DeletionUnexpectedError", "An unexpected error occurred during the deletion operation.")
}

func HasEmployees(id uint) result.Error {
	return result.NewError("Department.HasEmployees", fmt.Sprintf("Department with ID %d cannot be deleted because employees are assigned to it.", id))
}
