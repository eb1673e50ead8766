// SPDX-License-Identifier: Apache-2.0

package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSupportedProduct(t *testing.T) {
	assert.True(t, IsSupportedProduct("OMEN by HP Laptop 16-b1xxx"))
	assert.True(t, IsSupportedProduct("OMEN by HP Laptop 16"))
	assert.False(t, IsSupportedProduct("Victus by HP Laptop 16"))
	assert.False(t, IsSupportedProduct(""))
}

func TestProductName(t *testing.T) {
	origProductName := productName
	productName = func() string { return "OMEN by HP Laptop 16-b0xxx" }
	t.Cleanup(func() { productName = origProductName })

	assert.Equal(t, "OMEN by HP Laptop 16-b0xxx", ProductName())
}
