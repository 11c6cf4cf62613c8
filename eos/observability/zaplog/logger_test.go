package zaplog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/krew-solutions/eos-go/eos/registry"
)

func TestNew_ParsesLevel(t *testing.T) {
	l, err := New("warn", zap.String("service", "eos"))
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, err := New("loud")
	assert.Error(t, err)
}

func TestNew_CreatesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "eos.log")
	t.Setenv("LOG_FILE", path)
	l, err := New("info")
	require.NoError(t, err)
	l.Info("hello")
	_ = l.Sync()
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestInterceptor_LogsInvocations(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core).With(Component)
	r := registry.NewRegistry(registry.WithInterceptors(Interceptor(logger)))
	boom := errors.New("boom")
	r.Register("someEvent", registry.NewHandle("ok", func(ctx context.Context, args any) error { return nil }))
	r.Register("someEvent", registry.NewHandle("bad", func(ctx context.Context, args any) error { return boom }))

	err := r.Dispatch(context.Background(), "someEvent", nil)
	assert.ErrorIs(t, err, boom)

	invoked := logs.FilterMessage("observer_invoked").All()
	require.Len(t, invoked, 1)
	assert.Equal(t, "ok", invoked[0].ContextMap()["kind"])
	assert.Equal(t, "eos", invoked[0].ContextMap()["component"])
	componentFields := 0
	for _, f := range invoked[0].Context {
		if f.Key == "component" {
			componentFields++
		}
	}
	assert.Equal(t, 1, componentFields)

	failed := logs.FilterMessage("observer_failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, zapcore.ErrorLevel, failed[0].Level)
	assert.Equal(t, "someEvent", failed[0].ContextMap()["event"])
}
