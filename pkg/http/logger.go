package http

import (
	"go-weather/pkg/log"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string, body string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called immediately after receiving an error response (error HTTP status) or a transport failure
	LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error)
}

// zapHTTPLogger is the default HTTPLogger backed by the application logger.
type zapHTTPLogger struct{}

// NewZapHTTPLogger returns an HTTPLogger that writes structured entries through pkg/log.
func NewZapHTTPLogger() HTTPLogger {
	return &zapHTTPLogger{}
}

func (l *zapHTTPLogger) LogRequest(method, url string, headers map[string]string, body string) {
	log.Debugw("http request",
		"method", method,
		"url", url,
	)
}

func (l *zapHTTPLogger) LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64) {
	log.Infow("http response",
		"method", method,
		"url", url,
		"status", httpStatus,
		"latency_ms", latency,
	)
}

func (l *zapHTTPLogger) LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warnw("http response error",
		"method", method,
		"url", url,
		"status", httpStatus,
		"latency_ms", latency,
		"error", err,
	)
}
