package account

import (
	"net/http"

	"github.com/MRigonM/EmployeeManagement/internal/shared/response"
	"github.com/MRigonM/EmployeeManagement/internal/shared/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("account.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("account.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("register validation failed", zap.Error(err))
		response.Fail(c, http.StatusBadRequest, validation.MapBindingError(err)...)
		return
	}
	response.FromResult(c, h.service.RegisterEmployee(c.Request.Context(), req))
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("login validation failed", zap.Error(err))
		response.Fail(c, http.StatusBadRequest, validation.MapBindingError(err)...)
		return
	}
	response.FromResult(c, h.service.Login(c.Request.Context(), req))
}
