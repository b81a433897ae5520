package middleware

import (
	"bytes"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"esg-maturity-backend/utilities"
)

// maxDumpBody caps how much of a request body is logged.
const maxDumpBody = 4 << 10

var secretField = regexp.MustCompile(`("(?:password|refresh_token)"\s*:\s*)"[^"]*"`)

// RequestDumpMiddleware logs each request and its outcome at debug level.
// Credentials in the Authorization header and in JSON bodies are redacted.
func RequestDumpMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		body := captureBody(c)

		headers := c.Request.Header.Clone()
		if headers.Get("Authorization") != "" {
			headers.Set("Authorization", "[redacted]")
		}

		utilities.Debug(
			"[Request]\n"+
				"\tMethod: %s\n"+
				"\tURL: %s\n"+
				"\tHeaders: %v\n"+
				"\tBody: %s",
			c.Request.Method,
			c.Request.URL.String(),
			headers,
			body,
		)

		c.Next()

		utilities.Debug("[Response] %s %s -> %d in %s",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// captureBody reads the body for logging and puts it back for the handler.
// Only JSON bodies are shown.
func captureBody(c *gin.Context) string {
	if c.Request.Body == nil {
		return ""
	}
	raw, err := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(bytes.NewReader(raw))
	if err != nil || len(raw) == 0 {
		return ""
	}
	if !strings.HasPrefix(c.ContentType(), "application/json") {
		return "[" + c.ContentType() + ", " + strconv.Itoa(len(raw)) + " bytes]"
	}
	if len(raw) > maxDumpBody {
		raw = append(raw[:maxDumpBody:maxDumpBody], "..."...)
	}
	return RedactSecrets(string(raw))
}

// RedactSecrets blanks password and refresh token values in a JSON text.
func RedactSecrets(body string) string {
	return secretField.ReplaceAllString(body, `$1"[redacted]"`)
}
