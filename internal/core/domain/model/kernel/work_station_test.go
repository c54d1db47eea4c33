package kernel_test

import (
	"testing"

	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorkStationID(t *testing.T) {
	body, err := kernel.NewWorkStationID("WS-BODY", 1)
	require.NoError(t, err)
	require.NoError(t, body.Validate())
	assert.Equal(t, "WS-BODY", body.Code())
	assert.Equal(t, 1, body.Sequence())
	assert.Equal(t, "WS-BODY#1", body.String())

	paint, err := kernel.NewWorkStationID(" WS-PAINT ", 2)
	require.NoError(t, err)
	assert.Equal(t, "WS-PAINT", paint.Code())
	assert.False(t, paint.IsEqual(body))

	_, err = kernel.NewWorkStationID("  ", 1)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = kernel.NewWorkStationID("WS-BODY", 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	again, _ := kernel.NewWorkStationID("WS-BODY", 1)
	assert.True(t, body.IsEqual(again))

	var zero kernel.WorkStationID
	require.ErrorIs(t, zero.Validate(), kernel.ErrWorkStationIDIsNotConstructed)
}

func TestNewMaterialBatchID(t *testing.T) {
	b, err := kernel.NewMaterialBatchID(" LOT-2024-0042 ")
	require.NoError(t, err)
	require.NoError(t, b.Validate())
	assert.Equal(t, "LOT-2024-0042", b.String())

	_, err = kernel.NewMaterialBatchID("\t")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	var zero kernel.MaterialBatchID
	require.ErrorIs(t, zero.Validate(), kernel.ErrMaterialBatchIDIsNotConstructed)
}
