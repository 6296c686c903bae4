package account

type RegisterEmployeeRequest struct {
	FirstName    string `json:"first_name" binding:"required,max=50"`
	LastName     string `json:"last_name" binding:"required,max=50"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required"`
	PhoneNumber  string `json:"phone_number" binding:"required,numeric,min=8,max=15"`
	DepartmentID uint   `json:"department_id" binding:"required,gt=0"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	// DepartmentID is resolved for Employee principals and null otherwise.
	DepartmentID *uint `json:"department_id"`
}
