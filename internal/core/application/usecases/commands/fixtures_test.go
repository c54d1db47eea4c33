package commands_test

import (
	"testing"
	"time"

	"automfg/internal/core/domain/model/inspection"
	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/core/domain/model/order"
	"automfg/internal/core/domain/model/production"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const (
	dealerID  = "DEALER-7"
	modelS    = "MODEL-S"
	testVIN   = "1HGBH41JXMN109186"
	inspector = "QC-ANNA"
	reviewer  = "QC-BORIS"
)

func restoreOrder(t *testing.T, status order.Status, changeCount int) *order.Order {
	t.Helper()
	number, err := kernel.NewOrderNumber("ORD-202401-00007")
	require.NoError(t, err)
	now := time.Now().UTC()

	o, err := order.RestoreOrder(
		kernel.NewUUID(), number, dealerID, modelS, "PEARL-WHITE", []string{"AUTOPILOT"},
		status, now.AddDate(0, 2, 0), decimal.RequireFromString("52000"), changeCount,
		now, now, now, 1,
	)
	require.NoError(t, err)
	return o
}

func routing(t *testing.T) []production.AssemblyStepTemplate {
	t.Helper()
	var templates []production.AssemblyStepTemplate
	for i, code := range []string{"WS-BODY", "WS-FINAL"} {
		station, err := kernel.NewWorkStationID(code, i+1)
		require.NoError(t, err)
		template, err := production.NewAssemblyStepTemplate(station, "Work at "+code, 30)
		require.NoError(t, err)
		templates = append(templates, template)
	}
	return templates
}

func scheduledProductionOrder(t *testing.T, sourceOrderID kernel.UUID) *production.ProductionOrder {
	t.Helper()
	number, err := kernel.NewProductionOrderNumber("PO-SH-202401-00003")
	require.NoError(t, err)
	vin, err := kernel.NewVIN(testVIN)
	require.NoError(t, err)
	item, err := production.NewBomLineItem("CHS-001", "Chassis", 1, "EA", true)
	require.NoError(t, err)
	bom, err := production.NewBomSnapshot([]production.BomLineItem{item}, time.Now())
	require.NoError(t, err)

	po, err := production.NewProductionOrder(kernel.NewUUID(), number, sourceOrderID, vin, bom, routing(t))
	require.NoError(t, err)
	po.ClearDomainEvents()
	return po
}

func startedProductionOrder(t *testing.T) *production.ProductionOrder {
	t.Helper()
	po := scheduledProductionOrder(t, kernel.NewUUID())
	require.NoError(t, po.StartProduction("OP-1", "WS-BODY"))
	po.ClearDomainEvents()
	return po
}

func assembledProductionOrder(t *testing.T, sourceOrderID kernel.UUID) *production.ProductionOrder {
	t.Helper()
	po := scheduledProductionOrder(t, sourceOrderID)
	require.NoError(t, po.StartProduction("OP-1", "WS-BODY"))
	for _, step := range po.Process().Steps() {
		_, err := po.CompleteAssemblyStep(step.ID(), "OP-1", "BATCH-1", 30)
		require.NoError(t, err)
	}
	require.Equal(t, production.AssemblyCompleted, po.Status())
	po.ClearDomainEvents()
	return po
}

func checklist() []inspection.ChecklistItemTemplate {
	return []inspection.ChecklistItemTemplate{
		{Description: "Brake function", SafetyRelated: true},
		{Description: "Paint finish"},
	}
}

// completedInspection evaluates an inspection of po; brakes is the status of
// the safety item, the paint item always passes.
func completedInspection(t *testing.T, po *production.ProductionOrder, brakes inspection.ItemStatus) *inspection.QualityInspection {
	t.Helper()
	qi, err := inspection.NewQualityInspection(kernel.NewUUID(), po.ID(), po.VIN(), inspector, checklist())
	require.NoError(t, err)
	items := qi.Items()
	require.NoError(t, qi.RecordItemResult(items[0].ID(), brakes, ""))
	require.NoError(t, qi.RecordItemResult(items[1].ID(), inspection.ItemPassed, ""))
	require.NoError(t, qi.Complete(inspector))
	qi.ClearDomainEvents()
	return qi
}
