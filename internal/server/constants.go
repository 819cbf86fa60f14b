package server

import "time"

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
)

// Security alert log messages
const (
	SecurityAlertFailedLogins = "SECURITY ALERT: Repeated failed login attempts"
	SecurityAlertHighRate     = "SECURITY ALERT: Blocking high request rate"
)

// ErrMsgTooManyRequests is the plain-text body for throttled requests
const ErrMsgTooManyRequests = "Too Many Requests"

// Abuse detection budgets, counted per IP per window
const (
	SecurityWindow           = 5 * time.Minute
	MaxFailedLoginsPerWindow = 10
	MaxRequestsPerWindow     = 1000
)

// HTTP header names
const (
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// MaxRequestBodyBytes limits how large a request body may be
const MaxRequestBodyBytes = 1 << 20
