package logging_test

import (
	"testing"

	"github.com/KaramelBytes/sampledeck/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	l, err := logging.New(true)
	require.NoError(t, err)
	assert.True(t, l.Desugar().Core().Enabled(zapcore.DebugLevel))

	l, err = logging.New(false)
	require.NoError(t, err)
	assert.False(t, l.Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Desugar().Core().Enabled(zapcore.WarnLevel))
}

func TestOrNop(t *testing.T) {
	l := logging.OrNop(nil)
	require.NotNil(t, l)
	l.Infow("discarded", "k", "v")
}
