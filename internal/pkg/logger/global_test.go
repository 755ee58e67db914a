package logger

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func resetGlobalLogger() {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = nil
}

func TestGetGlobalLogger_ConcurrentFallbackInstall(t *testing.T) {
	resetGlobalLogger()
	defer resetGlobalLogger()

	const goroutines = 16
	loggers := make([]*ZapLogger, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			loggers[i] = GetGlobalLogger()
		}(i)
	}
	wg.Wait()

	require.NotNil(t, loggers[0])
	for _, logger := range loggers[1:] {
		assert.Same(t, loggers[0], logger, "every caller must see the same fallback instance")
	}
}

func TestSetGlobalLogger_ReplacesFallback(t *testing.T) {
	resetGlobalLogger()
	defer resetGlobalLogger()

	fallback := GetGlobalLogger()
	require.NotNil(t, fallback)

	nop := zap.NewNop()
	installed := &ZapLogger{Logger: nop, sugar: nop.Sugar()}
	SetGlobalLogger(installed)

	assert.Same(t, installed, GetGlobalLogger())
	assert.NotSame(t, fallback, installed)
}
