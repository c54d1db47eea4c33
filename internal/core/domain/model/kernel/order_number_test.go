package kernel_test

import (
	"testing"
	"time"

	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderNumber(t *testing.T) {
	n, err := kernel.NewOrderNumber("ORD-202403-00042")
	require.NoError(t, err)
	require.NoError(t, n.Validate())
	assert.Equal(t, "ORD-202403-00042", n.String())

	for _, in := range []string{"ORD-2024-00042", "ord-202403-00042", "PO-SH-202403-00042", "ORD-202403-42"} {
		_, err = kernel.NewOrderNumber(in)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid, in)
	}

	_, err = kernel.NewOrderNumber("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	var zero kernel.OrderNumber
	require.ErrorIs(t, zero.Validate(), kernel.ErrOrderNumberIsNotConstructed)
}

func TestOrderNumberFor(t *testing.T) {
	period := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	n, err := kernel.OrderNumberFor(period, 7)
	require.NoError(t, err)
	assert.Equal(t, "ORD-202403-00007", n.String())

	n, err = kernel.OrderNumberFor(period, kernel.MaxMonthlySequence)
	require.NoError(t, err)
	assert.Equal(t, "ORD-202403-99999", n.String())

	_, err = kernel.OrderNumberFor(period, 0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = kernel.OrderNumberFor(period, kernel.MaxMonthlySequence+1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
