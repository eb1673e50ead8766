// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/automa-saga/automa"
	"github.com/nawocci/omen-fan/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubExecutableDir(t *testing.T, dir string) {
	t.Helper()
	orig := executableDir
	executableDir = func() (string, error) { return dir, nil }
	t.Cleanup(func() { executableDir = orig })
}

func TestInstallExecutablesStep(t *testing.T) {
	m := testManifest(t)
	require.NoError(t, os.MkdirAll(m.BinDir, 0o755))

	srcDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, m.CLIName), []byte("#!/usr/bin/env python3\n# cli"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, m.DaemonName), []byte("#!/usr/bin/env python3\n# daemon"), 0o644))
	stubExecutableDir(t, srcDir)

	step, err := InstallExecutablesStep(m).Build()
	require.NoError(t, err)

	report := step.Execute(context.Background())
	require.Equal(t, automa.StatusSuccess, report.Status)
	require.NoError(t, report.Error)

	for _, p := range []string{m.CLIPath(), m.DaemonPath()} {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Equal(t, core.ExecutablePermission, info.Mode().Perm())
	}

	// overwriting an existing installation must succeed
	report = step.Execute(context.Background())
	require.Equal(t, automa.StatusSuccess, report.Status)
}

func TestInstallExecutablesStep_MissingSource(t *testing.T) {
	m := testManifest(t)
	stubExecutableDir(t, t.TempDir())

	step, err := InstallExecutablesStep(m).Build()
	require.NoError(t, err)

	report := step.Execute(context.Background())
	require.Equal(t, automa.StatusFailed, report.Status)
	require.Error(t, report.Error)
}

func TestRemoveExecutablesStep(t *testing.T) {
	m := testManifest(t)
	require.NoError(t, os.MkdirAll(m.BinDir, 0o755))
	require.NoError(t, os.MkdirAll(filepath.Dir(m.PidFile), 0o755))
	require.NoError(t, os.WriteFile(m.CLIPath(), []byte("cli"), 0o755))
	require.NoError(t, os.WriteFile(m.PidFile, []byte("1234"), 0o644))

	step, err := RemoveExecutablesStep(m).Build()
	require.NoError(t, err)

	report := step.Execute(context.Background())
	require.Equal(t, automa.StatusSuccess, report.Status)

	for _, p := range []string{m.CLIPath(), m.DaemonPath(), m.PidFile} {
		_, err := os.Stat(p)
		assert.True(t, os.IsNotExist(err), "%s should be gone", p)
	}

	// absent files are not an error
	report = step.Execute(context.Background())
	require.Equal(t, automa.StatusSuccess, report.Status)
}
