package logger

import (
	"fmt"
	"io"
	"time"

	"github.com/gin-gonic/gin"
)

// SetupGin 访问日志按 JSON 行写入, 与 slog 输出同一目的地
func SetupGin(r *gin.Engine, out io.Writer, logToken, index string) {
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Output:    out,
		Formatter: AccessLogFormatter(logToken, index),
		SkipPaths: []string{"/api/ping"},
	}))

	r.Use(gin.Recovery())
}

func AccessLogFormatter(logToken, index string) gin.LogFormatter {
	return func(p gin.LogFormatterParams) string {
		var traceID string
		if p.Keys != nil {
			if id, ok := p.Keys[TraceIDKey].(string); ok {
				traceID = id
			}
		}

		if traceID == "" && p.Request != nil {
			if id, ok := p.Request.Context().Value(TraceIDKey).(string); ok {
				traceID = id
			}
		}

		return fmt.Sprintf(
			`{"time":"%s","level":"INFO","msg":"GIN_ACCESS","trace_id":"%s","log_token":"%s","target_index":"%s","method":"%s","path":"%s","status":%d,"latency":"%v"}`+"\n",
			p.TimeStamp.Format(time.RFC3339),
			traceID,
			logToken,
			index,
			p.Method,
			p.Path,
			p.StatusCode,
			p.Latency,
		)
	}
}
