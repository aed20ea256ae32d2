package usecase

import (
	"smartlearn-backend/internal/domain"
)

// Authorization predicates shared by every usecase. All entry points go
// through these instead of re-checking roles inline, so the rules can
// only drift in one place.

func requireRole(user *domain.User, role domain.Role) error {
	if user == nil || user.Role != role {
		return domain.ErrRoleNotAllowed
	}
	return nil
}

func requireStudent(user *domain.User) error {
	return requireRole(user, domain.RoleStudent)
}

func requireAdmin(user *domain.User) error {
	return requireRole(user, domain.RoleAdmin)
}

// requireApprovedInstructor gates every instructor mutation: the role
// alone is not enough until an admin has approved the account.
func requireApprovedInstructor(user *domain.User) error {
	if err := requireRole(user, domain.RoleInstructor); err != nil {
		return err
	}
	if !user.IsApproved {
		return domain.ErrNotApproved
	}
	return nil
}

// requireCourseOwner allows the course's approved instructor, or an
// admin acting on any course.
func requireCourseOwner(user *domain.User, course *domain.Course) error {
	if user != nil && user.Role == domain.RoleAdmin {
		return nil
	}
	if err := requireApprovedInstructor(user); err != nil {
		return err
	}
	if course.InstructorID != user.ID {
		return domain.ErrRoleNotAllowed
	}
	return nil
}
