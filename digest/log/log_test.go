package log

import (
	"context"
	golog "log"
	"os"
	"path/filepath"
	"testing"

	"github.com/digestbridge/digestbridge/digest"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggingToFile(t *testing.T) {
	ci := digest.GetConfig(context.Background())
	old := *ci
	defer func() {
		*ci = old
		logrus.SetOutput(os.Stderr)
		golog.SetOutput(os.Stderr)
		logrus.SetFormatter(&logrus.TextFormatter{})
	}()

	name := filepath.Join(t.TempDir(), "digestbridge.log")
	ci.LogFile = name
	ci.UseJSONLog = true
	ci.LogLevel = digest.LogLevelDebug
	InitLogging()
	digest.Logf("test", "hello %s", "world")
	require.NoError(t, Close())
	assert.NoError(t, Close())

	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello world"`)
	assert.Contains(t, string(data), `"object":"test"`)
}
