package order_test

import (
	"testing"

	"automfg/internal/core/domain/model/order"
	"automfg/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	cases := map[order.Status]string{
		order.Unknown:      "UNKNOWN",
		order.Placed:       "PLACED",
		order.Scheduled:    "SCHEDULED",
		order.InProduction: "IN_PRODUCTION",
		order.Completed:    "COMPLETED",
		order.Cancelled:    "CANCELLED",
		order.Status(42):   "UNKNOWN",
	}
	for status, want := range cases {
		assert.Equal(t, want, status.String())
	}
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range []order.Status{order.Placed, order.Scheduled, order.InProduction, order.Completed, order.Cancelled} {
		require.NoError(t, s.Validate(), s.String())
	}

	require.ErrorIs(t, order.Unknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, order.Status(99).Validate(), errs.ErrValueIsInvalid)
}

func TestStatus_Transitions(t *testing.T) {
	tests := []struct {
		name       string
		from       order.Status
		transition func(order.Status) (order.Status, error)
		want       order.Status
		wantErr    bool
	}{
		{"schedule placed", order.Placed, order.Status.Schedule, order.Scheduled, false},
		{"schedule scheduled", order.Scheduled, order.Status.Schedule, 0, true},
		{"start scheduled", order.Scheduled, order.Status.StartProduction, order.InProduction, false},
		{"start placed", order.Placed, order.Status.StartProduction, 0, true},
		{"complete in production", order.InProduction, order.Status.Complete, order.Completed, false},
		{"complete scheduled", order.Scheduled, order.Status.Complete, 0, true},
		{"cancel placed", order.Placed, order.Status.Cancel, order.Cancelled, false},
		{"cancel scheduled", order.Scheduled, order.Status.Cancel, order.Cancelled, false},
		{"cancel in production", order.InProduction, order.Status.Cancel, 0, true},
		{"cancel completed", order.Completed, order.Status.Cancel, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.transition(tt.from)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrStateConflict)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestActiveStatuses(t *testing.T) {
	assert.ElementsMatch(t,
		[]order.Status{order.Placed, order.Scheduled, order.InProduction},
		order.ActiveStatuses(),
	)
	assert.True(t, order.Placed.IsModifiable())
	assert.True(t, order.Scheduled.IsModifiable())
	assert.False(t, order.InProduction.IsModifiable())
}

func TestParseStatus(t *testing.T) {
	for _, s := range []order.Status{order.Placed, order.Scheduled, order.InProduction, order.Completed, order.Cancelled} {
		parsed, err := order.ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	for _, raw := range []string{"", "UNKNOWN", "placed", "SHIPPED"} {
		_, err := order.ParseStatus(raw)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid, raw)
	}
}

func TestStatus_HasReached(t *testing.T) {
	tests := []struct {
		status order.Status
		target order.Status
		want   bool
	}{
		{order.Placed, order.Scheduled, false},
		{order.Scheduled, order.Scheduled, true},
		{order.InProduction, order.Scheduled, true},
		{order.Completed, order.InProduction, true},
		{order.InProduction, order.Completed, false},
		{order.Cancelled, order.Scheduled, false},
		{order.Cancelled, order.Cancelled, true},
		{order.Completed, order.Cancelled, false},
		{order.Unknown, order.Unknown, false},
	}
	for _, tt := range tests {
		t.Run(tt.status.String()+"_"+tt.target.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.HasReached(tt.target))
		})
	}
}
