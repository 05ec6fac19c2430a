package errorvalues

import "errors"

var (
	ErrUserExists          = errors.New("such user already exists")
	ErrUserNotFound        = errors.New("user doesn't exists")
	ErrWrongCredentials    = errors.New("wrong email or password")
	ErrUserNotVerified     = errors.New("user is not verified")
	ErrInvalidVerification = errors.New("verification code or token doesn't match")
	ErrVerificationExpired = errors.New("verification code expired, account removed")
	ErrInvalidToken        = errors.New("invalid token")
	ErrValidation          = errors.New("validation error")

	ErrSessionNotFound = errors.New("workout session doesn't exist")
	ErrSessionExists   = errors.New("session already exists for that date")
	ErrDetailExists    = errors.New("exercise already present in session")
	ErrDetailNotFound  = errors.New("session detail doesn't exist")
	ErrSetNotFound     = errors.New("exercise set doesn't exist")
	ErrExerciseNotFound = errors.New("exercise doesn't exist")

	ErrMealNotFound       = errors.New("meal doesn't exist")
	ErrMealDetailNotFound = errors.New("meal food doesn't exist")
	ErrFoodNotFound       = errors.New("food doesn't exist")
	ErrGoalExists         = errors.New("nutrition goal already exists for that start date")
	ErrGoalNotFound       = errors.New("nutrition goal doesn't exist")

	// Owner mismatch on an existing resource. Distinct from the not-found
	// sentinels above: handlers map this to 403 on the AI surface and fold
	// it into 404 on the legacy CRUD surface.
	ErrWrongOwner = errors.New("resource has different owner")

	ErrOwnerNotFound = errors.New("owner doesn't exist")
)
