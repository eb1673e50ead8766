// SPDX-License-Identifier: Apache-2.0

package core

import "path/filepath"

// Manifest describes every path the setup tool owns on the host. Workflows
// and their tests operate on a Manifest instead of hard-coded paths, so the
// whole pipeline can be pointed at a scratch root.
type Manifest struct {
	BinDir          string
	ConfigDir       string
	LogDir          string
	PidFile         string
	UnitFilePath    string
	LogrotateDropIn string
	LogrotateDir    string

	CLIName     string
	DaemonName  string
	ServiceName string

	ModuleName   string
	ModuleParams string
}

// DefaultManifest returns the live-system layout.
func DefaultManifest() Manifest {
	return Manifest{
		BinDir:          BinDir,
		ConfigDir:       ConfigDir,
		LogDir:          LogDir,
		PidFile:         PidFile,
		UnitFilePath:    UnitFilePath,
		LogrotateDropIn: LogrotateDropIn,
		LogrotateDir:    LogrotateConfDir,

		CLIName:     CLIName,
		DaemonName:  DaemonName,
		ServiceName: ServiceName,

		ModuleName:   ModuleName,
		ModuleParams: ModuleParams,
	}
}

// CLIPath is the installed location of the fan control command.
func (m Manifest) CLIPath() string {
	return filepath.Join(m.BinDir, m.CLIName)
}

// DaemonPath is the installed location of the fan control daemon.
func (m Manifest) DaemonPath() string {
	return filepath.Join(m.BinDir, m.DaemonName)
}

// LogFile is the daemon log targeted by the logrotate drop-in.
func (m Manifest) LogFile() string {
	return filepath.Join(m.LogDir, m.DaemonName+".log")
}
