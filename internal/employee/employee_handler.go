package employee

import (
	"net/http"
	"strconv"

	"github.com/MRigonM/EmployeeManagement/internal/shared/response"
	"github.com/MRigonM/EmployeeManagement/internal/shared/result"
	"github.com/MRigonM/EmployeeManagement/internal/shared/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		response.Fail(c, http.StatusBadRequest,
			result.NewError(validation.CodeValidationFailed, name+" must be a non-negative integer."))
		return 0, false
	}
	return uint(v), true
}

func (h *Handler) GetAll(c *gin.Context) {
	response.FromResult(c, h.service.GetAll(c.Request.Context()))
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	response.FromResult(c, h.service.GetByID(c.Request.Context(), id))
}

func (h *Handler) GetByDepartment(c *gin.Context) {
	departmentID, ok := parseUintParam(c, "departmentId")
	if !ok {
		return
	}
	response.FromResult(c, h.service.GetByDepartment(c.Request.Context(), departmentID))
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("create employee validation failed", zap.Error(err))
		response.Fail(c, http.StatusBadRequest, validation.MapBindingError(err)...)
		return
	}
	response.FromResult(c, h.service.Create(c.Request.Context(), req))
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("update employee validation failed", zap.Error(err))
		response.Fail(c, http.StatusBadRequest, validation.MapBindingError(err)...)
		return
	}
	response.FromResult(c, h.service.Update(c.Request.Context(), id, req))
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	response.FromResult(c, h.service.Delete(c.Request.Context(), id))
}

func (h *Handler) Count(c *gin.Context) {
	response.FromResult(c, h.service.Count(c.Request.Context()))
}

func (h *Handler) CountByDepartment(c *gin.Context) {
	departmentID, ok := parseUintParam(c, "departmentId")
	if !ok {
		return
	}
	response.FromResult(c, h.service.CountByDepartment(c.Request.Context(), departmentID))
}

func (h *Handler) CountJoinedInLastDays(c *gin.Context) {
	days, ok := parseUintParam(c, "days")
	if !ok {
		return
	}
	response.FromResult(c, h.service.CountJoinedInLastDays(c.Request.Context(), int(days)))
}
