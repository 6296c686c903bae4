package employee

import (
	"strings"
	"time"
)

type CreateEmployeeRequest struct {
	Name         string `json:"name" binding:"required,max=50"`
	Surname      string `json:"surname" binding:"required,max=50"`
	Email        string `json:"email" binding:"required,email"`
	PhoneNumber  string `json:"phone_number" binding:"omitempty,numeric,min=8,max=15"`
	DepartmentID uint   `json:"department_id" binding:"required,gt=0"`
}

type UpdateEmployeeRequest struct {
	Name        string `json:"name" binding:"omitempty,max=50"`
	Surname     string `json:"surname" binding:"omitempty,max=50"`
	Email       string `json:"email" binding:"omitempty,email"`
	PhoneNumber string `json:"phone_number" binding:"omitempty,numeric,min=8,max=15"`
	// Zero means "keep the current department".
	DepartmentID uint `json:"department_id" binding:"omitempty"`
}

type EmployeeResponse struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Surname        string    `json:"surname"`
	Email          string    `json:"email"`
	PhoneNumber    string    `json:"phone_number,omitempty"`
	DateOfJoining  time.Time `json:"date_of_joining"`
	DepartmentID   uint      `json:"department_id"`
	DepartmentName string    `json:"department_name,omitempty"`
}

// applyUpdate is the partial-update merge policy: only non-blank fields
// overwrite the loaded record, and the department reference is replaced
// only by a non-zero id. DateOfJoining is never touched.
func applyUpdate(empl *Employee, req UpdateEmployeeRequest) {
	if strings.TrimSpace(req.Name) != "" {
		empl.Name = req.Name
	}
	if strings.TrimSpace(req.Surname) != "" {
		empl.Surname = req.Surname
	}
	if strings.TrimSpace(req.Email) != "" {
		empl.Email = req.Email
	}
	if strings.TrimSpace(req.PhoneNumber) != "" {
		empl.PhoneNumber = req.PhoneNumber
	}
	if req.DepartmentID != 0 {
		empl.DepartmentID = req.DepartmentID
		empl.Department = nil
	}
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:            empl.ID,
		Name:          empl.Name,
		Surname:       empl.Surname,
		Email:         empl.Email,
		PhoneNumber:   empl.PhoneNumber,
		DateOfJoining: empl.DateOfJoining,
		DepartmentID:  empl.DepartmentID,
	}
	if empl.Department != nil {
		resp.DepartmentName = empl.Department.Name
	}
	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
