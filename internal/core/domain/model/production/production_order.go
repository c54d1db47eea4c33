package production

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"automfg/internal/core/domain/model/event"
	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/pkg/errs"
	"automfg/internal/pkg/guard"
)

var ErrProductionOrderIsNotConstructed = errors.New("ProductionOrder must be created via NewProductionOrder constructor")

// ProductionOrder is the aggregate root of the manufacturing context. It
// owns the frozen bill of materials and the assembly process of one vehicle
// and tracks the vehicle from scheduling to inspection and rework.
//
// Invariants:
//   - exactly one production order exists per source order
//   - the bill of materials never changes after creation
//   - the current station sequence is absent until production starts
//   - status only changes through the transition methods below
type ProductionOrder struct {
	id                     kernel.UUID
	number                 kernel.ProductionOrderNumber
	sourceOrderID          kernel.UUID
	vin                    kernel.VIN
	status                 Status
	bom                    BomSnapshot
	process                *AssemblyProcess
	currentStationSequence int
	createdAt              time.Time
	version                int

	events event.Buffer
	guard  guard.ConstructorGuard
}

// NewProductionOrder creates a production order for a commercial order. A
// fully available bill of materials schedules it right away and records
// ProductionOrderScheduled; otherwise it waits in MaterialPending and
// MaterialShortage lists the missing parts.
func NewProductionOrder(
	id kernel.UUID,
	number kernel.ProductionOrderNumber,
	sourceOrderID kernel.UUID,
	vin kernel.VIN,
	bom BomSnapshot,
	templates []AssemblyStepTemplate,
) (*ProductionOrder, error) {
	po := &ProductionOrder{
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	process, processErr := NewAssemblyProcess(templates)
	if err := errors.Join(
		po.setIdentity(id, number, sourceOrderID, vin),
		po.setBom(bom),
		processErr,
	); err != nil {
		return nil, err
	}
	po.process = process

	if bom.IsFullyAvailable() {
		po.status = Scheduled
		po.events.Record(event.NewProductionOrderScheduled(
			po.id, po.number.String(), po.sourceOrderID, po.vin.String(),
		))
	} else {
		po.status = MaterialPending
		po.events.Record(event.NewMaterialShortage(po.id, po.sourceOrderID, bom.MissingParts()))
	}

	return po, nil
}

// RestoreProductionOrder reconstructs a production order from persistent
// storage. currentStationSequence 0 means production has not started.
func RestoreProductionOrder(
	id kernel.UUID,
	number kernel.ProductionOrderNumber,
	sourceOrderID kernel.UUID,
	vin kernel.VIN,
	status Status,
	bom BomSnapshot,
	process *AssemblyProcess,
	currentStationSequence int,
	createdAt time.Time,
	version int,
) (*ProductionOrder, error) {
	po := &ProductionOrder{
		createdAt: createdAt,
		version:   version,
		guard:     guard.NewConstructorGuard(),
	}

	var processErr error
	if process == nil {
		processErr = errs.NewValueIsRequiredError("assembly process")
	}
	var sequenceErr error
	if currentStationSequence < 0 {
		sequenceErr = errs.NewValueIsInvalidErrorWithCause(
			"current station sequence", fmt.Errorf("%d is negative", currentStationSequence),
		)
	}

	if err := errors.Join(
		po.setIdentity(id, number, sourceOrderID, vin),
		po.setBom(bom),
		status.Validate(),
		processErr,
		sequenceErr,
	); err != nil {
		return nil, err
	}
	po.status = status
	po.process = process
	po.currentStationSequence = currentStationSequence

	return po, nil
}

func (p *ProductionOrder) Validate() error {
	if p == nil {
		return ErrProductionOrderIsNotConstructed
	}
	return p.guard.Validate(ErrProductionOrderIsNotConstructed)
}

func (p *ProductionOrder) IsEqual(other *ProductionOrder) bool {
	return other != nil && p.id.IsEqual(other.id)
}

func (p *ProductionOrder) ID() kernel.UUID { return p.id }
func (p *ProductionOrder) Number() kernel.ProductionOrderNumber { return p.number }
func (p *ProductionOrder) SourceOrderID() kernel.UUID { return p.sourceOrderID }
func (p *ProductionOrder) VIN() kernel.VIN { return p.vin }
func (p *ProductionOrder) Status() Status { return p.status }
func (p *ProductionOrder) Bom() BomSnapshot { return p.bom }
func (p *ProductionOrder) Process() *AssemblyProcess { return p.process }
func (p *ProductionOrder) CreatedAt() time.Time { return p.createdAt }
func (p *ProductionOrder) Version() int { return p.version }
func (p *ProductionOrder) DomainEvents() []event.DomainEvent { return p.events.Events() }
func (p *ProductionOrder) ClearDomainEvents() { p.events.Clear() }
func (p *ProductionOrder) IncrementVersion() { p.version++ }

// CurrentStationSequence returns the station the vehicle is at; ok is false
// before production starts.
func (p *ProductionOrder) CurrentStationSequence() (int, bool) {
	return p.currentStationSequence, p.currentStationSequence > 0
}

// IsModifiable reports whether the commercial order may still change.
func (p *ProductionOrder) IsModifiable() bool {
	return p.status == MaterialPending || p.status == Scheduled
}

// StartProduction moves a scheduled order onto the line at station 1.
func (p *ProductionOrder) StartProduction(operatorID, workstationCode string) error {
	if err := p.status.expect("start production", Scheduled); err != nil {
		return err
	}
	operatorID = strings.TrimSpace(operatorID)
	workstationCode = strings.TrimSpace(workstationCode)
	if err := errors.Join(required("operator id", operatorID), required("workstation code", workstationCode)); err != nil {
		return err
	}
	if err := p.process.Start(); err != nil {
		return err
	}

	p.status = InProduction
	p.currentStationSequence = 1
	p.events.Record(event.NewProductionStarted(p.id, p.vin.String(), operatorID))
	return nil
}

// CompleteAssemblyStep completes a step of the assembly process. An overtime
// step records AssemblyOvertimeAlert; finishing a station advances the
// current station; finishing the last step moves the order to
// AssemblyCompleted and records AssemblyCompleted.
func (p *ProductionOrder) CompleteAssemblyStep(
	stepID kernel.UUID,
	operatorID string,
	materialBatchID string,
	actualMinutes int,
) (StepCompletion, error) {
	if err := p.status.expect("complete assembly step", InProduction); err != nil {
		return StepCompletion{}, err
	}

	completion, err := p.process.CompleteStep(stepID, operatorID, materialBatchID, actualMinutes)
	if err != nil {
		return StepCompletion{}, err
	}

	if completion.Overtime {
		step, _ := p.process.Step(stepID)
		p.events.Record(event.NewAssemblyOvertimeAlert(
			p.id, step.TaskDescription(), step.StandardMinutes(), actualMinutes,
		))
	}
	if completion.StationCompleted && !completion.AssemblyCompleted {
		p.currentStationSequence++
	}
	if completion.AssemblyCompleted {
		p.status = AssemblyCompleted
		p.events.Record(event.NewAssemblyCompleted(p.id, p.vin.String()))
	}

	return completion, nil
}

func (p *ProductionOrder) MarkInspectionPassed() error {
	if err := p.status.expect("mark inspection passed", AssemblyCompleted); err != nil {
		return err
	}
	p.status = InspectionPassed
	return nil
}

func (p *ProductionOrder) MarkInspectionFailed() error {
	if err := p.status.expect("mark inspection failed", AssemblyCompleted); err != nil {
		return err
	}
	p.status = InspectionFailed
	return nil
}

func (p *ProductionOrder) StartRework() error {
	if err := p.status.expect("start rework", InspectionFailed); err != nil {
		return err
	}
	p.status = ReworkInProgress
	return nil
}

// CompleteRework returns the vehicle to AssemblyCompleted so it can be
// inspected again.
func (p *ProductionOrder) CompleteRework() error {
	if err := p.status.expect("complete rework", ReworkInProgress); err != nil {
		return err
	}
	p.status = AssemblyCompleted
	return nil
}

func (p *ProductionOrder) setIdentity(
	id kernel.UUID,
	number kernel.ProductionOrderNumber,
	sourceOrderID kernel.UUID,
	vin kernel.VIN,
) error {
	if err := errors.Join(id.Validate(), number.Validate(), sourceOrderID.Validate(), vin.Validate()); err != nil {
		return err
	}
	p.id = id
	p.number = number
	p.sourceOrderID = sourceOrderID
	p.vin = vin
	return nil
}

func (p *ProductionOrder) setBom(bom BomSnapshot) error {
	if err := bom.Validate(); err != nil {
		return err
	}
	p.bom = bom
	return nil
}

func required(param, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}
