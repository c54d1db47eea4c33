package event_test

import (
	"encoding/json"
	"testing"

	"automfg/internal/core/domain/model/event"
	"automfg/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer(t *testing.T) {
	var buf event.Buffer
	assert.Empty(t, buf.Events())

	orderID := kernel.NewUUID()
	buf.Record(event.NewOrderPlaced(orderID, "ORD-202401-00001", "D-1", "MODEL-S", "RED", nil))
	buf.Record(event.NewOrderCancelled(orderID, "ORD-202401-00001"))

	events := buf.Events()
	require.Len(t, events, 2)
	assert.Equal(t, event.OrderPlacedName, events[0].Name())
	assert.Equal(t, event.OrderCancelledName, events[1].Name())

	events[0] = nil
	assert.NotNil(t, buf.Events()[0], "Events must return a copy")

	buf.Clear()
	assert.Empty(t, buf.Events())
}

func TestDomainEvent_Metadata(t *testing.T) {
	poID := kernel.NewUUID()
	a := event.NewAssemblyCompleted(poID, "1HGBH41JXMN109186")
	b := event.NewAssemblyCompleted(poID, "1HGBH41JXMN109186")

	require.NoError(t, a.ID().Validate())
	assert.False(t, a.ID().IsEqual(b.ID()))
	assert.False(t, a.OccurredAt().IsZero())
	assert.True(t, a.AggregateID().IsEqual(poID))
	assert.Equal(t, event.ProductionOrderAggregate, a.AggregateType())
}

func TestDomainEvent_AggregateRouting(t *testing.T) {
	inspectionID := kernel.NewUUID()
	poID := kernel.NewUUID()
	reworkID := kernel.NewUUID()

	cases := []struct {
		event         event.DomainEvent
		name          event.Name
		aggregateType string
		aggregateID   kernel.UUID
	}{
		{event.NewInspectionCreated(inspectionID, poID, "V", "QC-1"), event.InspectionCreatedName, event.QualityInspectionAggregate, inspectionID},
		{event.NewVehicleCompleted(inspectionID, poID, "V"), event.VehicleCompletedName, event.QualityInspectionAggregate, inspectionID},
		{event.NewMaterialShortage(poID, kernel.NewUUID(), []string{"BAT-001"}), event.MaterialShortageName, event.ProductionOrderAggregate, poID},
		{event.NewReworkOrderCreated(reworkID, poID, inspectionID), event.ReworkOrderCreatedName, event.ReworkOrderAggregate, reworkID},
		{event.NewReworkCompleted(reworkID, poID), event.ReworkCompletedName, event.ReworkOrderAggregate, reworkID},
	}

	for _, tc := range cases {
		t.Run(tc.name.String(), func(t *testing.T) {
			assert.Equal(t, tc.name, tc.event.Name())
			assert.Equal(t, tc.aggregateType, tc.event.AggregateType())
			assert.True(t, tc.event.AggregateID().IsEqual(tc.aggregateID))
		})
	}
}

func TestDomainEvent_PayloadJSON(t *testing.T) {
	inspectionID := kernel.MustUUIDFromString("11111111-1111-4111-8111-111111111111")
	poID := kernel.MustUUIDFromString("22222222-2222-4222-8222-222222222222")

	failed := event.NewInspectionFailed(inspectionID, poID, "1HGBH41JXMN109186", []string{"Brake test"})

	data, err := json.Marshal(failed)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"inspectionId": "11111111-1111-4111-8111-111111111111",
		"productionOrderId": "22222222-2222-4222-8222-222222222222",
		"vin": "1HGBH41JXMN109186",
		"failedItemDescriptions": ["Brake test"]
	}`, string(data))
}

func TestNewOrderPlaced_CopiesOptionCodes(t *testing.T) {
	options := []string{"AUTOPILOT"}
	e := event.NewOrderPlaced(kernel.NewUUID(), "ORD-202401-00001", "D-1", "MODEL-S", "RED", options)

	options[0] = "TOW-PACKAGE"
	assert.Equal(t, []string{"AUTOPILOT"}, e.OptionCodes)
}
