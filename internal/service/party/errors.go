package party

import "errors"

var (
	ErrImportNotFound  = errors.New("import session not found")
	ErrUnsupportedFile = errors.New("unsupported file type, expected .csv or .xlsx")
	ErrNothingToSend   = errors.New("no recipients matched")
	ErrEmptyMessage    = errors.New("message body is empty")
)
