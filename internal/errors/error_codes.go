package errors

type ErrorCode string

const (
	ErrNotFound     ErrorCode = "NotFound"
	ErrInternal     ErrorCode = "Internal"
	ErrInvalidGraph ErrorCode = "InvalidGraph"
	ErrUnavailable  ErrorCode = "Unavailable"
)
