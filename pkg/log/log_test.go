package log

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()

	SetupTestLogger()

	buf := &bytes.Buffer{}
	SetOutput(buf)
	t.Cleanup(func() { SetOutput(os.Stderr) })

	return buf
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background(), "")
	assert.Len(t, id, 36)
	assert.Equal(t, id, GetCorrelationID(ctx))

	ctx, id = WithCorrelationID(context.Background(), "req-1")
	assert.Equal(t, "req-1", id)
	assert.Equal(t, "req-1", GetCorrelationID(ctx))

	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestForContext(t *testing.T) {
	buf := capture(t)

	ctx, _ := WithCorrelationID(context.Background(), "req-42")
	ForContext(ctx).Info("hello")

	assert.Contains(t, buf.String(), "correlation_id=req-42")
	assert.Contains(t, buf.String(), "hello")
}

func TestFieldFiltering(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		validate func(t *testing.T, out string)
	}{
		{
			name: "development keeps known fields only",
			env:  "development",
			validate: func(t *testing.T, out string) {
				assert.Contains(t, out, "ads_customer_id=123")
				assert.Contains(t, out, "mode=quick")
				assert.NotContains(t, out, "user_agent")
				assert.NotContains(t, out, "remote_addr")
			},
		},
		{
			name: "production keeps everything",
			env:  "production",
			validate: func(t *testing.T, out string) {
				assert.Contains(t, out, "ads_customer_id=123")
				assert.Contains(t, out, "user_agent=curl")
				assert.Contains(t, out, "remote_addr=127.0.0.1")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", tt.env)
			buf := capture(t)

			L.WithField("ads_customer_id", "123").
				WithField("user_agent", "curl").
				WithFields(Fields{"mode": "quick", "remote_addr": "127.0.0.1"}).
				Info("request")

			tt.validate(t, buf.String())
		})
	}
}

func TestIsDevelopment(t *testing.T) {
	for env, want := range map[string]bool{"": true, "dev": true, "development": true, "production": false} {
		t.Setenv("APP_ENV", env)
		assert.Equal(t, want, IsDevelopment(), env)
	}
}
