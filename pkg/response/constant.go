package response

import "time"

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500

	TimestampFormat = time.RFC3339
)
