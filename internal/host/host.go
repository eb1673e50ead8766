// SPDX-License-Identifier: Apache-2.0

// Package host probes the machine the setup tool is running on.
package host

import (
	"strings"

	"github.com/nawocci/omen-fan/internal/core"
	"github.com/nawocci/omen-fan/pkg/pm"
	"github.com/zcalusic/sysinfo"
)

// Environment is a snapshot of the host facts the workflows branch on.
type Environment struct {
	PackageManager pm.Kind
	Product        string
}

// productName is indirected for tests; reading DMI requires a real machine.
var productName = func() string {
	var si sysinfo.SysInfo
	si.GetSysInfo()
	return si.Product.Name
}

// ProductName returns the DMI product name of this machine.
func ProductName() string {
	return productName()
}

// IsSupportedProduct reports whether the product is a known working model.
// Matching is by prefix since HP appends the exact model suffix to the name.
func IsSupportedProduct(product string) bool {
	for _, supported := range core.SupportedProducts {
		if strings.HasPrefix(product, supported) {
			return true
		}
	}
	return false
}

// Probe detects the package manager and product name of the host. A missing
// package manager is not an error here; the workflows decide whether that is
// fatal for the operation at hand.
func Probe() Environment {
	env := Environment{
		PackageManager: pm.KindUnsupported,
		Product:        ProductName(),
	}

	if m, err := pm.Detect(); err == nil {
		env.PackageManager = m.Kind()
	}

	return env
}
