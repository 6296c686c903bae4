package account

import (
	"github.com/MRigonM/EmployeeManagement/internal/middleware"
	"github.com/MRigonM/EmployeeManagement/internal/rbac"
	"github.com/MRigonM/EmployeeManagement/internal/shared/config"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	enforcer *casbin.Enforcer,
	jwtCfg config.JWT,
) {
	account := r.Group("/account")

	{
		account.POST("/login", middleware.RateLimitByIP(rate.Limit(5), 10), h.Login)
		account.POST("/register",
			middleware.Auth(jwtCfg),
			rbac.Authorize(enforcer, "accounts", rbac.ActionCreate),
			h.Register,
		)
	}
}
