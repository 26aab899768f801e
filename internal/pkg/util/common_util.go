package util

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// SanitizeHandle 将邮箱等账号标识转换为可用于对象名的片段
func SanitizeHandle(handle string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(handle) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
		case r == '-' || r == '_' || r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := strings.Trim(b.String(), "._-")
	if out == "" {
		return "anonymous"
	}
	if len(out) > 64 {
		out = out[:64]
	}
	return out
}

// ImageObjectName 生成图片对象名: <handle>-<毫秒时间戳>-<短随机串>.png
// 同一账号同一毫秒内多次上传也不会覆盖
func ImageObjectName(handle string, now time.Time) string {
	short := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return SanitizeHandle(handle) + "-" + strconv.FormatInt(now.UnixMilli(), 10) + "-" + short + ".png"
}
