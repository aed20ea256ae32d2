package domain

import "errors"

// Sentinel errors shared across usecases. Handlers map these onto HTTP
// status codes; everything else is treated as an internal error.
var (
	// ErrRoleNotAllowed - acting user has the wrong role for the action.
	ErrRoleNotAllowed = errors.New("role not allowed for this action")

	// ErrNotApproved - instructor or course is awaiting admin approval.
	ErrNotApproved = errors.New("not approved yet")

	// ErrNotEnrolled - student has no enrollment for the course.
	ErrNotEnrolled = errors.New("not enrolled in this course")

	// ErrNotEligible - quiz attempted before completing all lessons.
	ErrNotEligible = errors.New("complete all lessons before attempting the quiz")

	// ErrNotFound - referenced entity absent.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate - uniqueness invariant violated. Enroll, quiz result
	// and certificate paths absorb this via get-or-create; it surfaces
	// only where a duplicate is a real client error (second quiz per
	// course, reused lesson order, taken email).
	ErrDuplicate = errors.New("already exists")

	// ErrRenderFailed - certificate render collaborator failed. Never
	// rolls back the state change that triggered it.
	ErrRenderFailed = errors.New("certificate rendering failed")

	// ErrInvalidInput - request payload failed a domain-level check that
	// binding validation cannot express (e.g. correct option out of 1..4).
	ErrInvalidInput = errors.New("invalid input")
)
