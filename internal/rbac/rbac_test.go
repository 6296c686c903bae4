package rbac_test

import (
	"testing"

	"github.com/MRigonM/EmployeeManagement/internal/rbac"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnforcerPolicyMatrix(t *testing.T) {
	e, err := rbac.NewEnforcer()
	require.NoError(t, err)

	cases := []struct {
		role     string
		resource string
		action   string
		allowed  bool
	}{
		{rbac.RoleAdmin, "departments", rbac.ActionList, true},
		{rbac.RoleAdmin, "departments", rbac.ActionDelete, true},
		{rbac.RoleAdmin, "employees", rbac.ActionCreate, true},
		{rbac.RoleAdmin, "accounts", rbac.ActionCreate, true},

		{rbac.RoleEmployee, "employees", rbac.ActionRead, true},
		{rbac.RoleEmployee, "departments", rbac.ActionRead, true},
		{rbac.RoleEmployee, "employees", rbac.ActionList, false},
		{rbac.RoleEmployee, "employees", rbac.ActionCount, false},
		{rbac.RoleEmployee, "departments", rbac.ActionCreate, false},
		{rbac.RoleEmployee, "departments", rbac.ActionDelete, false},
		{rbac.RoleEmployee, "accounts", rbac.ActionCreate, false},

		{"", "departments", rbac.ActionRead, false},
		{"Manager", "departments", rbac.ActionRead, false},
	}

	for _, tc := range cases {
		allowed, err := e.Enforce(tc.role, tc.resource, tc.action)
		require.NoError(t, err)
		assert.Equal(t, tc.allowed, allowed,
			"role=%q resource=%q action=%q", tc.role, tc.resource, tc.action)
	}
}
