package domain

// Keys stored on the gin context by middleware
const (
	KeyRequestID = "RequestID"
)
