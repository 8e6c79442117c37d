package logger

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// LogHTTPError logs an HTTP request error with context from a gin.Context.
func LogHTTPError(c *gin.Context, err error, statusCode int, message string) {
	log := GetLogger()

	fields := []interface{}{
		"error", err,
		"status_code", statusCode,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"client_ip", c.ClientIP(),
	}

	if requestID, ok := c.Get("request_id"); ok {
		fields = append(fields, "request_id", requestID)
	}

	if statusCode >= http.StatusInternalServerError {
		fields = append(fields, "headers", FilterSensitiveHeaders(c.Request.Header))
		log.Errorw(message, fields...)
	} else {
		log.Warnw(message, fields...)
	}
}

// FilterSensitiveHeaders removes credential material from headers before
// they are attached to log output.
func FilterSensitiveHeaders(headers http.Header) map[string]string {
	filtered := make(map[string]string)

	for name, values := range headers {
		if strings.EqualFold(name, "Authorization") ||
			strings.EqualFold(name, "Cookie") ||
			strings.Contains(strings.ToLower(name), "token") ||
			strings.Contains(strings.ToLower(name), "key") ||
			strings.Contains(strings.ToLower(name), "secret") {
			filtered[name] = "[REDACTED]"
			continue
		}
		if len(values) > 0 {
			filtered[name] = values[0]
		}
	}

	return filtered
}
