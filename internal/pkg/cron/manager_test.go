package cron

import (
	"SocialMapp/internal/api/config"
	"testing"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterJobs(t *testing.T) {
	noop := cron.FuncJob(func() {})

	disabled := NewCronManager(config.JobsConfig{}, noop)
	require.NoError(t, disabled.RegisterJobs())
	assert.Zero(t, disabled.Entries())

	enabled := NewCronManager(config.JobsConfig{OrphanSweep: config.OrphanSweepConfig{Enable: true, Spec: "0 30 3 * * *"}}, noop)
	require.NoError(t, enabled.RegisterJobs())
	assert.Equal(t, 1, enabled.Entries())

	broken := NewCronManager(config.JobsConfig{OrphanSweep: config.OrphanSweepConfig{Enable: true, Spec: "not a spec"}}, noop)
	assert.Error(t, broken.RegisterJobs())
}
