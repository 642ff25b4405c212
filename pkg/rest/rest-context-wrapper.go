package rest

import (
	"context"
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/gofrs/uuid"
	JSON "github.com/silktrader/statuary/pkg/json-utilities"
	"github.com/sirupsen/logrus"
)

type contextKey struct{}

// RequestContext is the context of the request, for request-dependent parameters
type RequestContext struct {
	// ReqUUID is the request unique ID
	ReqUUID uuid.UUID

	// Logger is a custom field logger for the request
	Logger logrus.FieldLogger
}

// requestContext stamps the request with a RequestContext, then logs the outcome once the handler returns.
func (e *Engine) requestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		reqUUID, err := uuid.NewV4()
		if err != nil {
			e.baseLogger.WithError(err).Error("can't generate a request UUID")
			JSON.InternalServerError(writer, err)
			return
		}
		var rc = RequestContext{
			ReqUUID: reqUUID,
			Logger: e.baseLogger.WithFields(logrus.Fields{
				"reqid":     reqUUID.String(),
				"remote-ip": request.RemoteAddr,
			}),
		}

		writer.Header().Set("X-Request-Id", reqUUID.String())
		var metrics = httpsnoop.CaptureMetrics(next, writer,
			request.WithContext(context.WithValue(request.Context(), contextKey{}, rc)))

		rc.Logger.WithFields(logrus.Fields{
			"method":   request.Method,
			"path":     request.URL.Path,
			"status":   metrics.Code,
			"duration": metrics.Duration,
		}).Debug("request served")
	})
}

// GetRequestContext returns the request's context, and false when the request didn't go through an Engine.
func GetRequestContext(request *http.Request) (RequestContext, bool) {
	rc, ok := request.Context().Value(contextKey{}).(RequestContext)
	return rc, ok
}

// Logger returns the request-scoped logger, falling back to the standard logrus logger.
func Logger(request *http.Request) logrus.FieldLogger {
	if rc, ok := GetRequestContext(request); ok {
		return rc.Logger
	}
	return logrus.StandardLogger()
}
