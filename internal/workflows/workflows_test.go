// SPDX-License-Identifier: Apache-2.0

package workflows

import (
	"testing"

	"github.com/nawocci/omen-fan/internal/core"
	"github.com/nawocci/omen-fan/internal/host"
	"github.com/nawocci/omen-fan/pkg/pm"
	"github.com/nawocci/omen-fan/pkg/prompt"
	"github.com/stretchr/testify/require"
)

func TestNewInstallWorkflow(t *testing.T) {
	env := host.Environment{PackageManager: pm.KindApt, Product: "OMEN by HP Laptop 16"}

	wb, err := NewInstallWorkflow(env, core.DefaultManifest()).Build()
	require.NoError(t, err)
	require.NotNil(t, wb)
}

func TestNewUninstallWorkflow(t *testing.T) {
	wb, err := NewUninstallWorkflow(core.DefaultManifest(), prompt.AssumeYes()).Build()
	require.NoError(t, err)
	require.NotNil(t, wb)
}
