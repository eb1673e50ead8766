// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"path/filepath"
	"testing"

	"github.com/nawocci/omen-fan/internal/core"
)

// testManifest returns a manifest rooted inside a scratch directory so the
// steps can run against a real filesystem without touching the host.
func testManifest(t *testing.T) core.Manifest {
	t.Helper()

	root := t.TempDir()
	return core.Manifest{
		BinDir:          filepath.Join(root, "usr/local/bin"),
		ConfigDir:       filepath.Join(root, "etc/omen-fan"),
		LogDir:          filepath.Join(root, "var/log/omen-fan"),
		PidFile:         filepath.Join(root, "tmp/omen-fand.PID"),
		UnitFilePath:    filepath.Join(root, "etc/systemd/system/omen-fand.service"),
		LogrotateDropIn: filepath.Join(root, "etc/logrotate.d/omen-fan"),
		LogrotateDir:    filepath.Join(root, "etc/logrotate.d"),

		CLIName:     core.CLIName,
		DaemonName:  core.DaemonName,
		ServiceName: core.ServiceName,

		ModuleName:   core.ModuleName,
		ModuleParams: core.ModuleParams,
	}
}

// fakeModule implements kernel.Module for step tests.
type fakeModule struct {
	name         string
	loadErr      error
	unpersistErr error

	loadedPersist   []bool
	unpersistCalled int
}

func (f *fakeModule) Load(persist bool) error {
	f.loadedPersist = append(f.loadedPersist, persist)
	return f.loadErr
}

func (f *fakeModule) Unload(unpersist bool) error {
	return nil
}

func (f *fakeModule) Unpersist() error {
	f.unpersistCalled++
	return f.unpersistErr
}

func (f *fakeModule) IsLoaded() (bool, bool, error) {
	return false, false, nil
}

func (f *fakeModule) Name() string {
	return f.name
}
