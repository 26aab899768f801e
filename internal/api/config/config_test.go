package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "minio", cfg.Blob.Provider)
	assert.Equal(t, "socialmapp", cfg.Mongo.Database)
	assert.False(t, cfg.Jobs.OrphanSweep.Enable)
	assert.Equal(t, 60, cfg.Jobs.OrphanSweep.GraceMinute)
	assert.Same(t, cfg, Cfg)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
server:
  port: 9090
blob:
  provider: gcs
gcs:
  bucket: socialmapp-images-firebase
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o644))
	t.Setenv("SOCIALMAPP_MONGO_DATABASE", "feed_test")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "gcs", cfg.Blob.Provider)
	assert.Equal(t, "socialmapp-images-firebase", cfg.GCS.Bucket)
	assert.Equal(t, "feed_test", cfg.Mongo.Database)
}
