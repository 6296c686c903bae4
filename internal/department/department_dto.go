package department

import "strings"

type CreateDepartmentRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"required,max=250"`
}

type UpdateDepartmentRequest struct {
	Name        string `json:"name" binding:"omitempty,max=100"`
	Description string `json:"description" binding:"omitempty,max=250"`
}

type DepartmentResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// applyUpdate is the partial-update merge policy: only fields that arrive
// non-blank overwrite the loaded record, everything else is left untouched.
func applyUpdate(dept *Department, req UpdateDepartmentRequest) {
	if strings.TrimSpace(req.Name) != "" {
		dept.Name = req.Name
	}
	if strings.TrimSpace(req.Description) != "" {
		dept.Description = req.Description
	}
}

func mapToResponse(dept Department) DepartmentResponse {
	return DepartmentResponse{
		ID:          dept.ID,
		Name:        dept.Name,
		Description: dept.Description,
	}
}

func mapToListResponse(depts []Department) []DepartmentResponse {
	res := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		res[i] = mapToResponse(d)
	}
	return res
}
