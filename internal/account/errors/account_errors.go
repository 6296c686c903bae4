package accounterrors

import "github.com/MRigonM/EmployeeManagement/internal/shared/result"

// InvalidCredentials deliberately covers both an unknown email and a wrong
// password; the two cases must be indistinguishable to the caller.
func InvalidCredentials() result.Error {
	return result.NewError("Account.InvalidCredentials", "Invalid email or password.")
}

func RegistrationFailed(reason string) result.Error {
	return result.NewError("Account.RegistrationFailed", "Employee registration failed: "+reason)
}

func EmployeeCreationFailed() result.Error {
	return result.NewError("Account.EmployeeCreationFailed", "Employee entity creation failed.")
}

func RegistrationUnexpectedError() result.Error {
	return result.NewError("Account.RegistrationUnexpectedError", "Unexpected error during employee registration.")
}

func LoginUnexpectedError() result.Error {
	return result.NewError("Account.LoginUnexpectedError", "Unexpected error during login.")
}
