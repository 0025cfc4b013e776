package version

import (
	"os"
	"testing"

	"github.com/digestbridge/digestbridge/cmd"
	"github.com/stretchr/testify/assert"
)

func TestVersionRuns(t *testing.T) {
	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	assert.NoError(t, err)
	oldOsStdout := os.Stdout
	os.Stdout = devNull
	defer func() {
		os.Stdout = oldOsStdout
		assert.NoError(t, devNull.Close())
	}()

	cmd.Root.SetArgs([]string{"version"})
	assert.NotPanics(t, func() {
		assert.NoError(t, cmd.Root.Execute())
	})
}
