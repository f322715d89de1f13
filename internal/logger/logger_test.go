package logger

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type ctxKey string

func TestWithContext(t *testing.T) {
	t.Run("string keys are picked up", func(t *testing.T) {
		// gin stores values under plain string keys
		ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")
		ctx = context.WithValue(ctx, TenantIDKey, "tenant-abc")
		ctx = context.WithValue(ctx, EmailKey, "adm@example.com")

		l := WithContext(ctx)

		assert.Equal(t, "req-1", l.Data["request_id"])
		assert.Equal(t, "tenant-abc", l.Data["tenant_id"])
		assert.Equal(t, "adm@example.com", l.Data["user"])
	})

	t.Run("missing values", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), ctxKey("other"), "x")

		l := WithContext(ctx)

		assert.NotContains(t, l.Data, "request_id")
		assert.NotContains(t, l.Data, "tenant_id")
		assert.Equal(t, "unknown", l.Data["user"])
	})
}

func TestWithFieldKeepsParent(t *testing.T) {
	base := New().WithField("a", 1)
	child := base.WithFields(map[string]interface{}{"b": 2})

	assert.Equal(t, 1, child.Data["a"])
	assert.Equal(t, 2, child.Data["b"])
	assert.NotContains(t, base.Data, "b")
}

func TestSetup(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	Setup("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	Setup("bogus")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
