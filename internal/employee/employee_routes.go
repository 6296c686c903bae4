package employee

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
	employees := r.Group("/employees")

	employees.Use(middleware.Auth(jwtCfg))

	{
		employees.GET("", rbac.Authorize(enforcer, "employees", rbac.ActionList), h.GetAll)
		employees.GET("/count", rbac.Authorize(enforcer, "employees", rbac.ActionCount), h.Count)
		employees.GET("/count/department/:departmentId", rbac.Authorize(enforcer, "employees", rbac.ActionCount), h.CountByDepartment)
		employees.GET("/count/joined-last-days/:days", rbac.Authorize(enforcer, "employees", rbac.ActionCount), h.CountJoinedInLastDays)
		employees.GET("/by-department/:departmentId", rbac.Authorize(enforcer, "employees", rbac.ActionRead), h.GetByDepartment)
		employees.GET("/:id", rbac.Authorize(enforcer, "employees", rbac.ActionRead), h.GetByID)
		employees.POST("", rbac.Authorize(enforcer, "employees", rbac.ActionCreate), h.Create)
		employees.PUT("/:id", rbac.Authorize(enforcer, "employees", rbac.ActionUpdate), h.Update)
		employees.DELETE("/:id", rbac.Authorize(enforcer, "employees", rbac.ActionDelete), h.Delete)
	}
}
