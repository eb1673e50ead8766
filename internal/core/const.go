// SPDX-License-Identifier: Apache-2.0

// Package core holds the filesystem layout and identity constants shared by
// the omen-fan setup workflows.
package core

import "os"

const (
	// DirectoryPermission is the permission for directories created by setup.
	DirectoryPermission os.FileMode = 0o755

	// ExecutablePermission is the permission for installed executables.
	ExecutablePermission os.FileMode = 0o755

	// FilePermission is the permission for configuration files written by setup.
	FilePermission os.FileMode = 0o644
)

const (
	// CLIName is the operator-facing fan control command.
	CLIName = "omen-fan"

	// DaemonName is the background fan control service executable.
	DaemonName = "omen-fand"

	// ServiceName is the systemd unit name, without the .service suffix.
	ServiceName = "omen-fand"
)

const (
	// BinDir is where the executables are installed.
	BinDir = "/usr/local/bin"

	// ConfigDir holds the fan controller's persistent configuration.
	ConfigDir = "/etc/omen-fan"

	// LogDir holds the daemon's log files.
	LogDir = "/var/log/omen-fan"

	// PidFile is the daemon's runtime PID file. It lives on tmpfs, so it
	// never survives a reboot, but uninstall removes it for a running system.
	PidFile = "/tmp/omen-fand.PID"

	// UnitFilePath is where the systemd unit is written.
	UnitFilePath = "/etc/systemd/system/omen-fand.service"

	// LogrotateDropIn is the logrotate configuration for the daemon log.
	LogrotateDropIn = "/etc/logrotate.d/omen-fan"

	// LogrotateConfDir must exist for log rotation to be configurable at all.
	LogrotateConfDir = "/etc/logrotate.d"
)

const (
	// ModuleName is the kernel module that exposes the embedded controller.
	ModuleName = "ec_sys"

	// ModuleParams enables EC register writes, required for fan control.
	ModuleParams = "write_support=1"
)

// SupportedProducts lists DMI product names the fan controller is known to
// work on. Matching is by prefix since HP appends the model suffix.
var SupportedProducts = []string{
	"OMEN by HP Laptop 16",
}
