package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_PrintsBuildMetadata(t *testing.T) {
	originalVersion, originalCommit, originalDate := version, commit, date
	version, commit, date = "test-version-1.0.0", "abc1234", "2026-01-02"
	defer func() {
		version, commit, date = originalVersion, originalCommit, originalDate
		rootCmd.SetArgs(nil)
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"version"})

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "dossier version test-version-1.0.0 (commit abc1234, built 2026-01-02)")
}

func TestSetVersion(t *testing.T) {
	originalVersion, originalCommit, originalDate := version, commit, date
	defer func() { version, commit, date = originalVersion, originalCommit, originalDate }()

	SetVersion("2.0.0", "deadbee", "2026-02-03")
	assert.Equal(t, "2.0.0", version)
	assert.Equal(t, "deadbee", commit)
	assert.Equal(t, "2026-02-03", date)

	// Empty values keep the current ones
	SetVersion("", "", "")
	assert.Equal(t, "2.0.0", version)
	assert.Equal(t, "deadbee", commit)
}
