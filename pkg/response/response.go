package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends 400 with the error message and optional field data.
func Error(c *gin.Context, err error, data map[string]interface{}) {
	if data == nil {
		data = make(map[string]interface{})
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: BadRequestErrorCode,
		Message:   err.Error(),
		Data:      data,
	})
}

// InternalError sends 500 internal server error. The cause is not exposed.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// Message sends a bare {"message": ...} body with status.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, MessageResp{Message: message})
}

// Success sends {"success": true}.
func Success(c *gin.Context) {
	c.JSON(http.StatusOK, SuccessResp{Success: true})
}

// Fail sends a bare {"error": ...} body with status.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResp{Error: message})
}
