package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON body of every failed request. Upstream error text is
// never placed here; it goes to the process log only.
type ErrorBody struct {
	Error     string            `json:"error"`
	Code      ErrCode           `json:"code"`
	Details   string            `json:"details,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// Created is the body of a successful submission.
type Created struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// ────────────────────────────────────────────────────────────────────────────
// Helper builders
// ────────────────────────────────────────────────────────────────────────────

// Success sends data as-is. Listing endpoints rely on this to return bare arrays.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// SuccessCreated sends {"success": true, "data": data}.
func SuccessCreated(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Created{Success: true, Data: data})
}

// FailWithMessage sends an error response with a caller-chosen message.
func FailWithMessage(c *gin.Context, statusCode int, code ErrCode, message string) {
	c.JSON(statusCode, ErrorBody{
		Error:     message,
		Code:      code,
		RequestID: requestID(c),
	})
}

// FailUpstream reports a store failure on a listing endpoint. Details carries
// the error code rather than the upstream message.
func FailUpstream(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{
		Error:     message,
		Code:      ErrUpstream,
		Details:   string(ErrUpstream),
		RequestID: requestID(c),
	})
}

// FailWithFields sends an error response with field-level validation details.
func FailWithFields(c *gin.Context, statusCode int, code ErrCode, fields map[string]string) {
	c.JSON(statusCode, ErrorBody{
		Error:     GetMessage(code),
		Code:      code,
		Fields:    fields,
		RequestID: requestID(c),
	})
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, code ErrCode) {
	c.AbortWithStatusJSON(statusCode, ErrorBody{
		Error:     GetMessage(code),
		Code:      code,
		RequestID: requestID(c),
	})
}

// ────────────────────────────────────────────────────────────────────────────
// Internal helpers
// ────────────────────────────────────────────────────────────────────────────

func requestID(c *gin.Context) string {
	return c.GetString(ContextKeyRequestID)
}
