package logger

import (
	"SocialMapp/internal/api/config"
	"io"
	log "log/slog"
	"net"
	"os"
	"time"
)

// InitLogger 标准输出 + Logstash 双写, Logstash 不可达时只写标准输出
// 返回的 Writer 供 gin 访问日志使用
func InitLogger(cfg config.LogstashConfig) io.Writer {
	hStdout := log.NewJSONHandler(os.Stdout, &log.HandlerOptions{Level: log.LevelInfo})

	var finalHandler log.Handler = hStdout
	var writer io.Writer = os.Stdout

	if cfg.Address != "" {
		conn, err := net.DialTimeout("tcp", cfg.Address, 3*time.Second)
		if err == nil {
			hRemote := log.NewJSONHandler(conn, &log.HandlerOptions{Level: log.LevelInfo}).
				WithAttrs([]log.Attr{
					log.String("target_index", cfg.Index),
					log.String("log_token", cfg.Token),
				})
			finalHandler = NewTeeHandler(hStdout, &RemoteFilterHandler{next: hRemote})
			writer = conn
		} else {
			log.Warn("Failed to connect to Logstash, logging to stdout only", "err", err)
		}
	}

	log.SetDefault(log.New(&ContextHandler{finalHandler}))
	return writer
}
