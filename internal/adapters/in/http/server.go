package http

import (
	"context"
	"net/http"
	"time"

	"automfg/internal/core/application/usecases/commands"
	"automfg/internal/core/application/usecases/queries"
	"automfg/internal/core/domain/model/inspection"
	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/core/domain/model/production"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type (
	PlaceOrderHandler interface {
		Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (commands.OrderRef, error)
	}
	ChangeOrderHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderCommand) (commands.OrderRef, error)
	}
	CancelOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) error
	}
	StartProductionHandler interface {
		Handle(ctx context.Context, cmd commands.StartProductionCommand) error
	}
	CompleteAssemblyStepHandler interface {
		Handle(ctx context.Context, cmd commands.CompleteAssemblyStepCommand) (production.StepCompletion, error)
	}
	CreateInspectionHandler interface {
		Handle(ctx context.Context, cmd commands.CreateInspectionCommand) error
	}
	RecordInspectionItemResultHandler interface {
		Handle(ctx context.Context, cmd commands.RecordInspectionItemResultCommand) error
	}
	CompleteInspectionHandler interface {
		Handle(ctx context.Context, cmd commands.CompleteInspectionCommand) (inspection.Result, error)
	}
	ReviewInspectionHandler interface {
		Handle(ctx context.Context, cmd commands.ReviewInspectionCommand) (commands.ReviewResult, error)
	}
	CompleteReworkHandler interface {
		Handle(ctx context.Context, cmd commands.CompleteReworkCommand) error
	}

	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
	}
	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderSummary, error)
	}
	ListProductionOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListProductionOrdersQuery) ([]queries.ProductionOrderSummary, error)
	}
	GetProductionOrderHandler interface {
		Handle(ctx context.Context, query queries.GetProductionOrderQuery) (queries.GetProductionOrderQueryResponse, error)
	}
	GetInspectionHandler interface {
		Handle(ctx context.Context, query queries.GetInspectionQuery) (queries.GetInspectionQueryResponse, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	PlaceOrder                 PlaceOrderHandler
	ChangeOrder                ChangeOrderHandler
	CancelOrder                CancelOrderHandler
	StartProduction            StartProductionHandler
	CompleteAssemblyStep       CompleteAssemblyStepHandler
	CreateInspection           CreateInspectionHandler
	RecordInspectionItemResult RecordInspectionItemResultHandler
	CompleteInspection         CompleteInspectionHandler
	ReviewInspection           ReviewInspectionHandler
	CompleteRework             CompleteReworkHandler

	GetOrder             GetOrderHandler
	ListOrders           ListOrdersHandler
	GetProductionOrder   GetProductionOrderHandler
	ListProductionOrders ListProductionOrdersHandler
	GetInspection        GetInspectionHandler
}

// Server implements ServerInterface on top of the command and query
// handlers.
type Server struct {
	h     Handlers
	newID func() kernel.UUID
}

var _ ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers) *Server {
	return &Server{h: handlers, newID: kernel.NewUUID}
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var requested time.Time
	if body.RequestedDelivery != nil {
		requested = body.RequestedDelivery.Time
	}

	cmd, err := commands.NewPlaceOrderCommand(s.newID(), body.DealerID, body.ModelCode, body.ColorCode, body.OptionCodes, requested)
	if err != nil {
		return writeError(ctx, err)
	}

	ref, err := s.h.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, OrderRef{ID: ref.ID.Bytes(), Number: ref.Number.String()})
}

// ListOrders handles GET /api/v1/orders?dealerId=&status=.
func (s *Server) ListOrders(ctx echo.Context, params ListOrdersParams) error {
	query, err := queries.NewListOrdersQuery(deref(params.DealerID), deref(params.Status))
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	resp := make([]OrderSummary, len(orders))
	for i, o := range orders {
		resp[i] = OrderSummary{
			ID:                o.ID.Bytes(),
			Number:            o.Number,
			DealerID:          o.DealerID,
			ModelCode:         o.ModelCode,
			Status:            o.Status.String(),
			EstimatedDelivery: openapi_types.Date{Time: o.EstimatedDelivery},
			PriceQuote:        o.PriceQuote.StringFixed(2),
		}
	}
	return ctx.JSON(http.StatusOK, resp)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return writeError(ctx, err)
	}
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	o, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Order{
		ID:                o.ID.Bytes(),
		Number:            o.Number,
		DealerID:          o.DealerID,
		ModelCode:         o.ModelCode,
		ColorCode:         o.ColorCode,
		OptionCodes:       o.OptionCodes,
		Status:            o.Status.String(),
		EstimatedDelivery: openapi_types.Date{Time: o.EstimatedDelivery},
		PriceQuote:        o.PriceQuote.StringFixed(2),
		ChangeCount:       o.ChangeCount,
		OrderDate:         openapi_types.Date{Time: o.OrderDate},
		Version:           o.Version,
	})
}

// ChangeOrder handles PUT /api/v1/orders/{orderId}/configuration.
func (s *Server) ChangeOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	var body Configuration
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return writeError(ctx, err)
	}
	cmd, err := commands.NewChangeOrderCommand(id, body.ModelCode, body.ColorCode, body.OptionCodes)
	if err != nil {
		return writeError(ctx, err)
	}

	ref, err := s.h.ChangeOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, OrderRef{ID: ref.ID.Bytes(), Number: ref.Number.String()})
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return writeError(ctx, err)
	}
	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.h.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ListProductionOrders handles GET /api/v1/production-orders?status=.
func (s *Server) ListProductionOrders(ctx echo.Context, params ListProductionOrdersParams) error {
	query, err := queries.NewListProductionOrdersQuery(deref(params.Status))
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.h.ListProductionOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	resp := make([]ProductionOrderSummary, len(orders))
	for i, po := range orders {
		resp[i] = ProductionOrderSummary{
			ID:                     po.ID.Bytes(),
			Number:                 po.Number,
			VIN:                    po.VIN,
			Status:                 po.Status.String(),
			CurrentStationSequence: po.CurrentStationSequence,
			CreatedAt:              po.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	return ctx.JSON(http.StatusOK, resp)
}

// GetProductionOrder handles GET /api/v1/production-orders/{productionOrderId}.
func (s *Server) GetProductionOrder(ctx echo.Context, productionOrderID openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(productionOrderID[:])
	if err != nil {
		return writeError(ctx, err)
	}
	query, err := queries.NewGetProductionOrderQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	po, err := s.h.GetProductionOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	steps := make([]AssemblyStep, len(po.Steps))
	for i, step := range po.Steps {
		steps[i] = AssemblyStep{
			ID:              step.ID.Bytes(),
			StationCode:     step.StationCode,
			StationSequence: step.StationSequence,
			TaskDescription: step.TaskDescription,
			StandardMinutes: step.StandardMinutes,
			Status:          step.Status.String(),
			OperatorID:      step.OperatorID,
			MaterialBatchID: step.MaterialBatchID,
			ActualMinutes:   step.ActualMinutes,
			CompletedAt:     timestamp(step.CompletedAt),
		}
	}

	return ctx.JSON(http.StatusOK, ProductionOrder{
		ID:                     po.ID.Bytes(),
		Number:                 po.Number,
		SourceOrderID:          po.SourceOrderID.Bytes(),
		VIN:                    po.VIN,
		Status:                 po.Status.String(),
		CurrentStationSequence: po.CurrentStationSequence,
		MissingParts:           po.MissingParts,
		Steps:                  steps,
		Version:                po.Version,
	})
}

// StartProduction handles POST /api/v1/production-orders/{productionOrderId}/start.
func (s *Server) StartProduction(ctx echo.Context, productionOrderID openapi_types.UUID) error {
	var body StartProduction
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(productionOrderID[:])
	if err != nil {
		return writeError(ctx, err)
	}
	cmd, err := commands.NewStartProductionCommand(id, body.OperatorID, body.WorkstationCode)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.h.StartProduction.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CompleteAssemblyStep handles
// POST /api/v1/production-orders/{productionOrderId}/steps/{stepId}/complete.
func (s *Server) CompleteAssemblyStep(ctx echo.Context, productionOrderID, stepID openapi_types.UUID) error {
	var body CompleteStep
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	poID, err := kernel.UUIDFromBytes(productionOrderID[:])
	if err != nil {
		return writeError(ctx, err)
	}
	sID, err := kernel.UUIDFromBytes(stepID[:])
	if err != nil {
		return writeError(ctx, err)
	}
	cmd, err := commands.NewCompleteAssemblyStepCommand(poID, sID, body.OperatorID, body.MaterialBatchID, body.ActualMinutes)
	if err != nil {
		return writeError(ctx, err)
	}

	completion, err := s.h.CompleteAssemblyStep.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, StepCompletion{
		Overtime:          completion.Overtime,
		StationCompleted:  completion.StationCompleted,
		AssemblyCompleted: completion.AssemblyCompleted,
	})
}

// CreateInspection handles POST /api/v1/inspections.
func (s *Server) CreateInspection(ctx echo.Context) error {
	var body NewInspection
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	poID, err := kernel.UUIDFromBytes(body.ProductionOrderID[:])
	if err != nil {
		return writeError(ctx, err)
	}
	inspectionID := s.newID()
	cmd, err := commands.NewCreateInspectionCommand(inspectionID, poID, body.InspectorID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.h.CreateInspection.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, InspectionRef{ID: inspectionID.Bytes()})
}

// GetInspection handles GET /api/v1/inspections/{inspectionId}.
func (s *Server) GetInspection(ctx echo.Context, inspectionID openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(inspectionID[:])
	if err != nil {
		return writeError(ctx, err)
	}
	query, err := queries.NewGetInspectionQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	qi, err := s.h.GetInspection.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	items := make([]InspectionItem, len(qi.Items))
	for i, item := range qi.Items {
		items[i] = InspectionItem{
			ID:            item.ID.Bytes(),
			Description:   item.Description,
			SafetyRelated: item.SafetyRelated,
			Status:        item.Status.String(),
			Notes:         item.Notes,
		}
	}

	resp := Inspection{
		ID:                qi.ID.Bytes(),
		ProductionOrderID: qi.ProductionOrderID.Bytes(),
		VIN:               qi.VIN,
		InspectorID:       qi.InspectorID,
		ReviewerID:        qi.ReviewerID,
		InspectedAt:       timestamp(qi.InspectedAt),
		ReviewedAt:        timestamp(qi.ReviewedAt),
		Items:             items,
		Version:           qi.Version,
	}
	if qi.Result.Validate() == nil {
		resp.Result = qi.Result.String()
	}
	return ctx.JSON(http.StatusOK, resp)
}

// RecordInspectionItemResult handles
// PUT /api/v1/inspections/{inspectionId}/items/{itemId}.
func (s *Server) RecordInspectionItemResult(ctx echo.Context, inspectionID, itemID openapi_types.UUID) error {
	var body ItemResult
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	qiID, err := kernel.UUIDFromBytes(inspectionID[:])
	if err != nil {
		return writeError(ctx, err)
	}
	iID, err := kernel.UUIDFromBytes(itemID[:])
	if err != nil {
		return writeError(ctx, err)
	}
	cmd, err := commands.NewRecordInspectionItemResultCommand(qiID, iID, body.Status, body.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.h.RecordInspectionItemResult.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CompleteInspection handles POST /api/v1/inspections/{inspectionId}/complete.
func (s *Server) CompleteInspection(ctx echo.Context, inspectionID openapi_types.UUID) error {
	var body CompleteInspection
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(inspectionID[:])
	if err != nil {
		return writeError(ctx, err)
	}
	cmd, err := commands.NewCompleteInspectionCommand(id, body.InspectorID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.h.CompleteInspection.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, InspectionResult{Result: result.String()})
}

// ReviewInspection handles POST /api/v1/inspections/{inspectionId}/review.
func (s *Server) ReviewInspection(ctx echo.Context, inspectionID openapi_types.UUID) error {
	var body ReviewInspection
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(inspectionID[:])
	if err != nil {
		return writeError(ctx, err)
	}
	cmd, err := commands.NewReviewInspectionCommand(id, body.ReviewerID)
	if err != nil {
		return writeError(ctx, err)
	}

	review, err := s.h.ReviewInspection.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	resp := ReviewResult{Result: review.Result.String(), ReworkCreated: review.ReworkCreated}
	if review.ReworkCreated {
		reworkID := review.ReworkOrderID.Bytes()
		resp.ReworkOrderID = &reworkID
	}
	return ctx.JSON(http.StatusOK, resp)
}

// CompleteRework handles POST /api/v1/rework-orders/{reworkOrderId}/complete.
func (s *Server) CompleteRework(ctx echo.Context, reworkOrderID openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(reworkOrderID[:])
	if err != nil {
		return writeError(ctx, err)
	}
	cmd, err := commands.NewCompleteReworkCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.h.CompleteRework.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func timestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
