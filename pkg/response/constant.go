package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	BadRequestErrorCode     = 1
	InternalServerErrorCode = 500
)
