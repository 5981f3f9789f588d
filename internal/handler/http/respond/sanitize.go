package respond

import "regexp"

var (
	// user:password@ in URLs
	urlCredentialPattern = regexp.MustCompile(`://([^:/@\s]+):([^@\s]+)@`)
	// token-like query parameters
	secretParamPattern = regexp.MustCompile(`(?i)\b(token|api_key|apikey|key|secret|password)=([^&\s"]+)`)
	// Authorization header values
	bearerPattern = regexp.MustCompile(`(?i)\bbearer\s+[a-z0-9._~+/=-]+`)
)

// SanitizeError returns err's message with credentials masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = urlCredentialPattern.ReplaceAllString(msg, "://$1:****@")
	msg = secretParamPattern.ReplaceAllString(msg, "$1=****")
	msg = bearerPattern.ReplaceAllString(msg, "Bearer ****")
	return msg
}
