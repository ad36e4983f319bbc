package logging

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

// HumaMiddleware creates a per-request LogData for huma-registered routes and
// emits a summary line once the operation completes. Handlers reach the
// LogData through GetLogData on the request context.
func HumaMiddleware(log *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		logData := NewLogData(log)

		endTimer := logData.AddTiming("duration")
		next(huma.WithValue(ctx, contextKey{}, logData))
		endTimer()

		logData.Log().WithFields(logrus.Fields{
			"method": ctx.Method(),
			"path":   ctx.URL().Path,
			"status": ctx.Status(),
		}).Info("Handler.Complete")
	}
}
