// SPDX-License-Identifier: Apache-2.0

package pm

import "context"

type pacmanManager struct{}

func (m *pacmanManager) Kind() Kind {
	return KindPacman
}

func (m *pacmanManager) Detect() bool {
	_, err := lookPath("pacman")
	return err == nil
}

func (m *pacmanManager) RuntimePackages() []string {
	// Arch names its python packages without the version prefix
	return []string{"python", "python-pip", "python-click", "logrotate"}
}

func (m *pacmanManager) Install(ctx context.Context, packages []string) error {
	args := append([]string{"-S", "--noconfirm", "--needed"}, packages...)
	return runCmd(ctx, "pacman", args...)
}
