// SPDX-License-Identifier: Apache-2.0

package core

import "fmt"

// UnitFileContent renders the systemd unit for the fan control daemon.
// The daemon logs to the journal; file logging is handled by the daemon
// itself under LogDir.
func UnitFileContent(m Manifest) string {
	return fmt.Sprintf(`[Unit]
Description=OMEN fan control daemon
After=multi-user.target

[Service]
Type=simple
User=root
ExecStart=%s
Restart=always
RestartSec=5
StandardOutput=journal
StandardError=journal

[Install]
WantedBy=multi-user.target
`, m.DaemonPath())
}

// LogrotateContent renders the logrotate drop-in for the daemon log.
// copytruncate keeps the daemon's open file handle valid across rotation.
func LogrotateContent(m Manifest) string {
	return fmt.Sprintf(`%s {
    daily
    rotate 7
    compress
    delaycompress
    missingok
    notifempty
    copytruncate
}
`, m.LogFile())
}
