package errors

// Every JSON body the API writes is one of the two envelopes below, always
// carrying meta.request_id so a voter-facing failure can be traced in the logs.

// ErrorInfo is the error half of the envelope.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Details is omitted for server errors and authentication failures.
	Details any `json:"details,omitempty"`
}

type MetaInfo struct {
	RequestID string `json:"request_id"`
}

type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

