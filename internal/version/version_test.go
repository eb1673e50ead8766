// SPDX-License-Identifier: Apache-2.0

package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber(t *testing.T) {
	assert.Equal(t, "0.2.1", Number())
}

func TestInfoFormat(t *testing.T) {
	info := Get()
	assert.Equal(t, Number(), info.Number)

	out, err := info.Format(FormatJSON)
	require.NoError(t, err)
	assert.Contains(t, out, `"version":"0.2.1"`)

	out, err = info.Format(FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, out, "version: 0.2.1")

	_, err = info.Format("xml")
	assert.Error(t, err)
}

func TestBuildMode(t *testing.T) {
	assert.Equal(t, "dev", BuildMode())
	assert.False(t, IsReleaseBuild())
}
