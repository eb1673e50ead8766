// SPDX-License-Identifier: Apache-2.0

package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitFileContent(t *testing.T) {
	content := UnitFileContent(DefaultManifest())

	assert.Contains(t, content, "ExecStart=/usr/local/bin/omen-fand\n")
	assert.Contains(t, content, "Restart=always\n")
	assert.Contains(t, content, "RestartSec=5\n")
	assert.Contains(t, content, "User=root\n")
	assert.Contains(t, content, "WantedBy=multi-user.target\n")
	assert.True(t, strings.HasSuffix(content, "\n"))
}

func TestLogrotateContent(t *testing.T) {
	content := LogrotateContent(DefaultManifest())

	assert.True(t, strings.HasPrefix(content, "/var/log/omen-fan/omen-fand.log {\n"))
	for _, directive := range []string{"daily", "rotate 7", "compress", "delaycompress", "missingok", "notifempty", "copytruncate"} {
		assert.Contains(t, content, directive)
	}
}

func TestManifestPaths(t *testing.T) {
	m := DefaultManifest()
	require.Equal(t, "/usr/local/bin/omen-fan", m.CLIPath())
	require.Equal(t, "/usr/local/bin/omen-fand", m.DaemonPath())
	require.Equal(t, "/var/log/omen-fan/omen-fand.log", m.LogFile())
}
