package constant

const (
	ContextKeyRequestID = "requestid"

	RequestIDHeader = "X-Curve-Request-ID"

	// AdminAuthorizationRealm is the prefix of the `Authorization` header value on admin requests.
	AdminAuthorizationRealm = "Bearer"
)
