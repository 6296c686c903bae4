package department

import (
	"github.com/MRigonM/EmployeeManagement/internal/middleware"
	"github.com/MRigonM/EmployeeManagement/internal/rbac"
	"github.com/MRigonM/EmployeeManagement/internal/shared/config"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	enforcer *casbin.Enforcer,
	jwtCfg config.JWT,
) {
	departments := r.Group("/departments")

	departments.Use(middleware.Auth(jwtCfg))

	{
		departments.GET("", rbac.Authorize(enforcer, "departments", rbac.ActionList), h.GetAll)
		departments.GET("/count", rbac.Authorize(enforcer, "departments", rbac.ActionCount), h.Count)
		departments.GET("/:id", rbac.Authorize(enforcer, "departments", rbac.ActionRead), h.GetByID)
		departments.POST("", rbac.Authorize(enforcer, "departments", rbac.ActionCreate), h.Create)
		departments.PUT("/:id", rbac.Authorize(enforcer, "departments", rbac.ActionUpdate), h.Update)
		departments.DELETE("/:id", rbac.Authorize(enforcer, "departments", rbac.ActionDelete), h.Delete)
	}
}
