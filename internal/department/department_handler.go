package department

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
	l := zap.L().Named("department.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.handler")
	}
	return &Handler{service: service, logger: l}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Fail(c, http.StatusBadRequest,
			result.NewError(validation.CodeValidationFailed, "Id must be a positive integer."))
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) GetAll(c *gin.Context) {
	response.FromResult(c, h.service.GetAll(c.Request.Context()))
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	response.FromResult(c, h.service.GetByID(c.Request.Context(), id))
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("create department validation failed", zap.Error(err))
		response.Fail(c, http.StatusBadRequest, validation.MapBindingError(err)...)
		return
	}
	response.FromResult(c, h.service.Create(c.Request.Context(), req))
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("update department validation failed", zap.Error(err))
		response.Fail(c, http.StatusBadRequest, validation.MapBindingError(err)...)
		return
	}
	response.FromResult(c, h.service.Update(c.Request.Context(), id, req))
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	response.FromResult(c, h.service.Delete(c.Request.Context(), id))
}

func (h *Handler) Count(c *gin.Context) {
	response.FromResult(c, h.service.Count(c.Request.Context()))
}
