// SPDX-License-Identifier: Apache-2.0

package doctor

import (
	"context"
	"errors"
	"testing"

	"github.com/automa-saga/automa"
	"github.com/joomcode/errorx"
	"github.com/nawocci/omen-fan/pkg/pm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnose(t *testing.T) {
	ctx := context.WithValue(context.Background(), "traceId", "abc-123")

	t.Run("should diagnose a plain error", func(t *testing.T) {
		d := Diagnose(ctx, errors.New("boom"))
		assert.Equal(t, "boom", d.Message)
		assert.Equal(t, "abc-123", d.TraceId)
		assert.Equal(t, 10500, d.Code)
		assert.NotEmpty(t, d.Resolution)
	})

	t.Run("should map illegal arguments to a 400-class code", func(t *testing.T) {
		d := Diagnose(ctx, errorx.IllegalArgument.New("missing argument"))
		assert.Equal(t, 10400, d.Code)
	})

	t.Run("should prefer an attached resolution hint", func(t *testing.T) {
		err := errorx.InternalError.New("ec write failed").
			WithProperty(ErrPropertyResolution, "Reload the ec_sys module.\nThen retry.")
		d := Diagnose(ctx, err)
		require.Equal(t, []string{"Reload the ec_sys module.", "Then retry."}, d.Resolution)
	})

	t.Run("should suggest manual installs for unsupported hosts", func(t *testing.T) {
		d := Diagnose(ctx, pm.ErrUnsupportedEnvironment.New("no supported package manager found"))
		require.NotEmpty(t, d.Resolution)
		assert.Contains(t, d.Resolution[0], "manually")
	})
}

func TestGetInstructionsFromReport(t *testing.T) {
	assert.Equal(t, "", GetInstructionsFromReport(nil))

	report := &automa.Report{
		Metadata: map[string]string{},
		StepReports: []*automa.Report{
			{Metadata: map[string]string{}},
			{Metadata: map[string]string{"instructions": "run as root"}},
		},
	}
	assert.Equal(t, "run as root", GetInstructionsFromReport(report))
}
