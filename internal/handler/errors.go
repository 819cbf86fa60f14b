package handler

// Request decoding and parameter error messages
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	ErrMsgInvalidPathParam = "Invalid %s path parameter"
)
