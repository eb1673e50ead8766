// SPDX-License-Identifier: Apache-2.0

package pm

import "context"

type dnfManager struct{}

func (m *dnfManager) Kind() Kind {
	return KindDnf
}

func (m *dnfManager) Detect() bool {
	_, err := lookPath("dnf")
	return err == nil
}

func (m *dnfManager) RuntimePackages() []string {
	return []string{"python3", "python3-pip", "python3-click", "logrotate"}
}

func (m *dnfManager) Install(ctx context.Context, packages []string) error {
	args := append([]string{"install", "-y"}, packages...)
	return runCmd(ctx, "dnf", args...)
}
