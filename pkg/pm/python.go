// SPDX-License-Identifier: Apache-2.0

package pm

import (
	"context"

	"github.com/automa-saga/logx"
)

const (
	aliasesLibrary       = "click-aliases"
	pacmanAliasesPackage = "python-click-aliases"
)

// InstallAliasesLibrary installs the click-aliases python library used by the
// fan controller CLI for short command aliases. The library is optional, so
// every rung of the fallback chain degrades to the next one and the final
// failure is reported as a warning rather than an error:
//
//	pacman hosts: native python-click-aliases package, then pip
//	all hosts:    pip install, then pip install --break-system-packages
func InstallAliasesLibrary(ctx context.Context, m Manager) {
	if m.Kind() == KindPacman {
		if err := runCmd(ctx, "pacman", "-S", "--noconfirm", "--needed", pacmanAliasesPackage); err == nil {
			return
		}
		logx.As().Warn().Msgf("Package %s is not installable via pacman, falling back to pip", pacmanAliasesPackage)
	}

	pip := pipExecutable(m)
	if err := runCmd(ctx, pip, "install", aliasesLibrary); err == nil {
		return
	}
	logx.As().Warn().Msgf("%s install failed, retrying with --break-system-packages", pip)

	if err := runCmd(ctx, pip, "install", "--break-system-packages", aliasesLibrary); err == nil {
		return
	}
	logx.As().Warn().Msgf("Could not install %s; command aliases will be unavailable until it is installed manually", aliasesLibrary)
}

func pipExecutable(m Manager) string {
	if m.Kind() == KindPacman {
		return "pip"
	}
	return "pip3"
}
