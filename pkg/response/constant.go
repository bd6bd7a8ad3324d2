package response

const (
	MessageSuccess = "Success"

	// Error codes carried in Resp.ErrorCode
	BadRequestErrorCode     = 1
	InternalServerErrorCode = 500

	DefaultErrorMessage = "Something went wrong, please try again later"
)
