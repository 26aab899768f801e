package consts

// gin 上下文中的键
const (
	AccountIDKey    = "account_id"
	AccountEmailKey = "account_email"
	TraceIDKey      = "trace_id"
)

const (
	ProviderMinIO = "minio"
	ProviderGCS   = "gcs"
)
