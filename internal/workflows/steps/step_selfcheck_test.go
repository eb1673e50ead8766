// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"
	"testing"

	"github.com/automa-saga/automa"
	"github.com/joomcode/errorx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelfCheckStep(t *testing.T) {
	m := testManifest(t)

	t.Run("should record the reported version", func(t *testing.T) {
		orig := RunCmdOutput
		RunCmdOutput = func(name string, args ...string) (string, error) {
			assert.Equal(t, m.CLIPath(), name)
			assert.Equal(t, []string{"version"}, args)
			return "0.2.1", nil
		}
		t.Cleanup(func() { RunCmdOutput = orig })

		step, err := SelfCheckStep(m).Build()
		require.NoError(t, err)

		report := step.Execute(context.Background())
		require.Equal(t, automa.StatusSuccess, report.Status)
		assert.Equal(t, "0.2.1", report.Metadata["version"])
	})

	t.Run("should warn but succeed when the command fails", func(t *testing.T) {
		orig := RunCmdOutput
		RunCmdOutput = func(name string, args ...string) (string, error) {
			return "", errorx.IllegalState.New("exit status 1")
		}
		t.Cleanup(func() { RunCmdOutput = orig })

		step, err := SelfCheckStep(m).Build()
		require.NoError(t, err)

		report := step.Execute(context.Background())
		require.Equal(t, automa.StatusSuccess, report.Status)
		assert.Contains(t, report.Metadata["warning"], "self check failed")
	})
}
