package user

// Action is a capability checked through Can. All role-based branching in
// handlers and services goes through this single policy instead of inline
// role comparisons.
type Action string

const (
	// Self Management
	ActionViewOwnProfile Action = "profile.view_own"
	ActionEditOwnProfile Action = "profile.edit_own"

	// Attendance
	ActionAttendanceClock   Action = "attendance.clock"
	ActionAttendanceViewOwn Action = "attendance.view_own"
	ActionAttendanceViewAll Action = "attendance.view_all"

	// Payroll
	ActionSalaryConfigManage Action = "salary_config.manage"
	ActionPayrollIssue       Action = "payroll.issue"
	ActionPayrollViewAll     Action = "payroll.view_all"

	// Finance
	ActionFinanceView   Action = "finance.view"
	ActionFinanceManage Action = "finance.manage"

	// Projects
	ActionProjectView   Action = "project.view"
	ActionProjectManage Action = "project.manage"

	// Administration
	ActionUnitManage Action = "unit.manage"
	ActionUserManage Action = "user.manage"
)

// RoleActions maps roles to the actions they may perform
var RoleActions = map[Role][]Action{
	RoleOwner: {
		ActionViewOwnProfile,
		ActionEditOwnProfile,
		ActionAttendanceClock,
		ActionAttendanceViewOwn,
		ActionAttendanceViewAll,
		ActionSalaryConfigManage,
		ActionPayrollIssue,
		ActionPayrollViewAll,
		ActionFinanceView,
		ActionFinanceManage,
		ActionProjectView,
		ActionProjectManage,
		ActionUnitManage,
		ActionUserManage,
	},
	RoleAdmin: {
		ActionViewOwnProfile,
		ActionEditOwnProfile,
		ActionAttendanceClock,
		ActionAttendanceViewOwn,
		ActionAttendanceViewAll,
		ActionPayrollViewAll,
		ActionProjectView,
		ActionProjectManage,
		ActionUnitManage,
		ActionUserManage,
	},
	RoleFinance: {
		ActionViewOwnProfile,
		ActionEditOwnProfile,
		ActionAttendanceClock,
		ActionAttendanceViewOwn,
		ActionAttendanceViewAll,
		ActionSalaryConfigManage,
		ActionPayrollIssue,
		ActionPayrollViewAll,
		ActionFinanceView,
		ActionFinanceManage,
		ActionProjectView,
	},
	RoleEmployee: {
		ActionViewOwnProfile,
		ActionEditOwnProfile,
		ActionAttendanceClock,
		ActionAttendanceViewOwn,
		ActionProjectView,
	},
}

// Can reports whether a role may perform an action
func Can(role Role, action Action) bool {
	actions, exists := RoleActions[role]
	if !exists {
		return false
	}

	for _, a := range actions {
		if a == action {
			return true
		}
	}

	return false
}
