// SPDX-License-Identifier: Apache-2.0

// Package pm selects a system package manager from a fixed, closed set of
// variants and installs the daemon's runtime dependencies through it.
// Probing follows a fixed priority order and the first variant whose
// executable is present wins; no second manager is ever attempted.
package pm

import (
	"context"
	"os"
	"os/exec"

	"github.com/joomcode/errorx"
)

type Kind string

const (
	KindApt         Kind = "apt"
	KindDnf         Kind = "dnf"
	KindPacman      Kind = "pacman"
	KindUnsupported Kind = "unsupported"
)

var (
	ErrNamespace = errorx.NewNamespace("pm")

	ErrUnsupportedEnvironment = ErrNamespace.NewType("unsupported_environment")
	ErrInstallFailed          = ErrNamespace.NewType("install_failed")

	ManagerProperty = errorx.RegisterProperty("package_manager")
)

// Manager is one package-manager variant of the closed set.
type Manager interface {
	Kind() Kind
	Detect() bool
	RuntimePackages() []string
	Install(ctx context.Context, packages []string) error
}

// lookPath and runCmd are indirected for tests.
var lookPath = exec.LookPath

var runCmd = func(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return ErrInstallFailed.Wrap(err, "command %s failed", name)
	}
	return nil
}

// Managers returns the variants in probe priority order.
func Managers() []Manager {
	return []Manager{&aptManager{}, &dnfManager{}, &pacmanManager{}}
}

// Detect probes the variants in priority order and returns the first one
// whose executable is present on PATH.
func Detect() (Manager, error) {
	for _, m := range Managers() {
		if m.Detect() {
			return m, nil
		}
	}
	return nil, ErrUnsupportedEnvironment.New(
		"no supported package manager found (looked for apt-get, dnf and pacman)")
}

// Get returns the variant for a previously detected kind.
func Get(kind Kind) (Manager, error) {
	for _, m := range Managers() {
		if m.Kind() == kind {
			return m, nil
		}
	}
	return nil, ErrUnsupportedEnvironment.New("unknown package manager %q", kind).
		WithProperty(ManagerProperty, string(kind))
}
