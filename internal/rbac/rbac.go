package rbac

import (
	"github.com/MRigonM/EmployeeManagement/internal/shared/response"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/gin-gonic/gin"
)

const (
	RoleAdmin    = "Admin"
	RoleEmployee = "Employee"
)

// Actions used in the policy. "read" is a single record, "list" a
// collection, "count" a reporting query.
const (
	ActionRead   = "read"
	ActionList   = "list"
	ActionCount  = "count"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && (p.obj == "*" || r.obj == p.obj) && (p.act == "*" || r.act == p.act)
`

// NewEnforcer builds the in-memory enforcer for the two global roles.
// Admin is unrestricted; Employee may only read individual employee and
// department records.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	policies := [][]string{
		{RoleAdmin, "*", "*"},
		{RoleEmployee, "employees", ActionRead},
		{RoleEmployee, "departments", ActionRead},
	}
	if _, err := e.AddPolicies(policies); err != nil {
		return nil, err
	}

	return e, nil
}

// Authorize checks the authenticated role (set by the auth middleware)
// against the policy for the given resource and action.
func Authorize(e *casbin.Enforcer, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		allowed, err := e.Enforce(role, resource, action)
		if err != nil || !allowed {
			response.Forbidden(c, "Account.Forbidden", "You do not have permission to perform this action.")
			return
		}
		c.Next()
	}
}
