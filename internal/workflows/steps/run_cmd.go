// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"os/exec"
	"strings"

	"github.com/joomcode/errorx"
)

// RunCmdOutput runs a command and returns its trimmed output or an error
var RunCmdOutput = func(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		return "", errorx.IllegalState.Wrap(err, "failed to execute command: %s", name)
	}
	return strings.TrimSpace(string(out)), nil
}
