package appointment

import "errors"

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrPastSchedule        = errors.New("appointment time is in the past")
	ErrOverlap             = errors.New("overlapping appointment exists for the staff member")
	ErrNotScheduled        = errors.New("appointment is not in scheduled state")
	ErrInvalidKind         = errors.New("invalid appointment kind")
)
