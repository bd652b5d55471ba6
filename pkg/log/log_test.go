package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name          string
		env           string
		level         string
		expectedLevel logrus.Level
		development   bool
	}{
		{name: "produção com nível debug", env: "production", level: "debug", expectedLevel: logrus.DebugLevel},
		{name: "desenvolvimento", env: "development", level: "warn", expectedLevel: logrus.WarnLevel, development: true},
		{name: "apelido dev", env: " DEV ", level: "info", expectedLevel: logrus.InfoLevel, development: true},
		{name: "nível inválido cai para info", env: "", level: "verboso", expectedLevel: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Setup(tt.env, tt.level, &bytes.Buffer{})

			assert.Equal(t, tt.expectedLevel, logrus.GetLevel())
			assert.Equal(t, tt.development, IsDevelopment())
		})
	}
}

func TestLogger_ProductionKeepsAllFields(t *testing.T) {
	var buf bytes.Buffer
	Setup("production", "info", &buf)

	L.WithFields(Fields{"table": "delivery", "remote_addr": "10.0.0.1"}).Info("registro")

	assert.Contains(t, buf.String(), `"table":"delivery"`)
	assert.Contains(t, buf.String(), `"remote_addr":"10.0.0.1"`)
}

func TestLogger_DevelopmentFiltersFields(t *testing.T) {
	var buf bytes.Buffer
	Setup("development", "info", &buf)
	t.Cleanup(func() { Setup("production", "info", nil) })

	L.WithFields(Fields{"path": "/api/quality", "user_agent": "curl"}).
		WithField("referer", "x").
		Info("registro")

	assert.Contains(t, buf.String(), "path=/api/quality")
	assert.NotContains(t, buf.String(), "user_agent")
	assert.NotContains(t, buf.String(), "referer")
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	require.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))

	var buf bytes.Buffer
	Setup("production", "info", &buf)

	ForContext(ctx).Info("com correlação")
	assert.Contains(t, buf.String(), id)
}
