package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	ErrorCodeBadRequest     = 1
	ErrorCodeRateLimited    = 429
	ErrorCodeUnavailable    = 503
	InternalServerErrorCode = 500
)
