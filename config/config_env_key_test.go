package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"scheduler": map[string]any{
			"lockTTL":             "5m",
			"timezoneConcurrency": 4,
		},
		"dynamo": map[string]any{
			"endpointUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "SCHEDULER_LOCKTTL", want: "scheduler.lockTTL"},
		{envKey: "SCHEDULER_TIMEZONECONCURRENCY", want: "scheduler.timezoneConcurrency"},
		{envKey: "DYNAMO_ENDPOINTURL", want: "dynamo.endpointUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "*/5 * * * *", cfg.Scheduler.CronSpec)
	assert.Equal(t, 5*time.Minute, cfg.Scheduler.Tolerance)
	assert.Equal(t, 5*time.Minute, cfg.Scheduler.LockTTL)
	assert.Equal(t, "UTC", cfg.Scheduler.DefaultTimezone)
	assert.Equal(t, 30*time.Second, cfg.Scheduler.VerseMaxPushDelay)
	assert.Equal(t, 10*time.Second, cfg.Scheduler.ReminderMaxPushDelay)
	assert.Equal(t, 60*time.Second, cfg.Push.MaxDeliveryWait)
	assert.Equal(t, 8081, cfg.Push.WorkerPort)
	assert.NotNil(t, cfg.PubSub)

	cfg.Scheduler.UserConcurrency = 2
	applyDefaults(cfg)
	assert.Equal(t, 2, cfg.Scheduler.UserConcurrency)
}
