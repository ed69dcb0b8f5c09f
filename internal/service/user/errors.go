package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidPhone       = errors.New("invalid phone number for the specified region")
	ErrPhoneAlreadyExists = errors.New("phone number is already in use")
	ErrEmailAlreadyExists = errors.New("email address is already in use")
	ErrInvalidRole        = errors.New("invalid staff role")
	ErrLastAdmin          = errors.New("cannot remove the last admin of a branch")
)
