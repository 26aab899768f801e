package consts

const (
	PostLockKey     = "lock:post:"
	RevokedTokenKey = "auth:revoked:"
	OrphanSweepLock = "lock:job:orphan_sweep"
)
