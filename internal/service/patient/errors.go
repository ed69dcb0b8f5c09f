package patient

import "errors"

var (
	ErrPatientNotFound      = errors.New("patient not found")
	ErrPatientAlreadyExists = errors.New("a patient with this phone already exists in the branch")
	ErrNoteNotFound         = errors.New("patient note not found")
	ErrInvalidPhone         = errors.New("invalid phone number")
)
