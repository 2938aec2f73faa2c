package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCan(t *testing.T) {
	// Finance runs payroll, admin does not
	assert.True(t, Can(RoleFinance, ActionPayrollIssue))
	assert.False(t, Can(RoleAdmin, ActionPayrollIssue))

	// Only admin-level roles manage units and users
	assert.True(t, Can(RoleAdmin, ActionUnitManage))
	assert.False(t, Can(RoleEmployee, ActionUnitManage))
	assert.False(t, Can(RoleFinance, ActionUserManage))

	// Everyone clocks attendance
	for _, role := range []Role{RoleOwner, RoleAdmin, RoleFinance, RoleEmployee} {
		assert.True(t, Can(role, ActionAttendanceClock), "role %s", role)
	}

	// Employees only see their own attendance
	assert.False(t, Can(RoleEmployee, ActionAttendanceViewAll))
}

func TestCanOwnerHasEverything(t *testing.T) {
	for _, actions := range RoleActions {
		for _, action := range actions {
			assert.True(t, Can(RoleOwner, action), "owner missing %s", action)
		}
	}
}

func TestCanUnknownRole(t *testing.T) {
	assert.False(t, Can(Role("intern"), ActionViewOwnProfile))
}
