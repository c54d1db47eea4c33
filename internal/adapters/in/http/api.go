package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error is the body of every error response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Configuration struct {
	ModelCode   string   `json:"modelCode"`
	ColorCode   string   `json:"colorCode"`
	OptionCodes []string `json:"optionCodes,omitempty"`
}

type NewOrder struct {
	DealerID          string              `json:"dealerId"`
	ModelCode         string              `json:"modelCode"`
	ColorCode         string              `json:"colorCode"`
	OptionCodes       []string            `json:"optionCodes,omitempty"`
	RequestedDelivery *openapi_types.Date `json:"requestedDelivery,omitempty"`
}

type OrderRef struct {
	ID     openapi_types.UUID `json:"id"`
	Number string             `json:"number"`
}

type Order struct {
	ID                openapi_types.UUID `json:"id"`
	Number            string             `json:"number"`
	DealerID          string             `json:"dealerId"`
	ModelCode         string             `json:"modelCode"`
	ColorCode         string             `json:"colorCode"`
	OptionCodes       []string           `json:"optionCodes"`
	Status            string             `json:"status"`
	EstimatedDelivery openapi_types.Date `json:"estimatedDelivery"`
	PriceQuote        string             `json:"priceQuote"`
	ChangeCount       int                `json:"changeCount"`
	OrderDate         openapi_types.Date `json:"orderDate"`
	Version           int                `json:"version"`
}

type OrderSummary struct {
	ID                openapi_types.UUID `json:"id"`
	Number            string             `json:"number"`
	DealerID          string             `json:"dealerId"`
	ModelCode         string             `json:"modelCode"`
	Status            string             `json:"status"`
	EstimatedDelivery openapi_types.Date `json:"estimatedDelivery"`
	PriceQuote        string             `json:"priceQuote"`
}

// ListOrdersParams defines the query parameters of ListOrders.
type ListOrdersParams struct {
	DealerID *string `form:"dealerId,omitempty" json:"dealerId,omitempty"`
	Status   *string `form:"status,omitempty" json:"status,omitempty"`
}

type ProductionOrderSummary struct {
	ID                     openapi_types.UUID `json:"id"`
	Number                 string             `json:"number"`
	VIN                    string             `json:"vin"`
	Status                 string             `json:"status"`
	CurrentStationSequence *int               `json:"currentStationSequence,omitempty"`
	CreatedAt              string             `json:"createdAt"`
}

// ListProductionOrdersParams defines the query parameters of
// ListProductionOrders.
type ListProductionOrdersParams struct {
	Status *string `form:"status,omitempty" json:"status,omitempty"`
}

type ProductionOrder struct {
	ID                     openapi_types.UUID `json:"id"`
	Number                 string             `json:"number"`
	SourceOrderID          openapi_types.UUID `json:"sourceOrderId"`
	VIN                    string             `json:"vin"`
	Status                 string             `json:"status"`
	CurrentStationSequence *int               `json:"currentStationSequence,omitempty"`
	MissingParts           []string           `json:"missingParts"`
	Steps                  []AssemblyStep     `json:"steps"`
	Version                int                `json:"version"`
}

type AssemblyStep struct {
	ID              openapi_types.UUID `json:"id"`
	StationCode     string             `json:"stationCode"`
	StationSequence int                `json:"stationSequence"`
	TaskDescription string             `json:"taskDescription"`
	StandardMinutes int                `json:"standardMinutes"`
	Status          string             `json:"status"`
	OperatorID      string             `json:"operatorId,omitempty"`
	MaterialBatchID string             `json:"materialBatchId,omitempty"`
	ActualMinutes   int                `json:"actualMinutes,omitempty"`
	CompletedAt     *string            `json:"completedAt,omitempty"`
}

type StartProduction struct {
	OperatorID      string `json:"operatorId"`
	WorkstationCode string `json:"workstationCode"`
}

type CompleteStep struct {
	OperatorID      string `json:"operatorId"`
	MaterialBatchID string `json:"materialBatchId"`
	ActualMinutes   int    `json:"actualMinutes"`
}

type StepCompletion struct {
	Overtime          bool `json:"overtime"`
	StationCompleted  bool `json:"stationCompleted"`
	AssemblyCompleted bool `json:"assemblyCompleted"`
}

type NewInspection struct {
	ProductionOrderID openapi_types.UUID `json:"productionOrderId"`
	InspectorID       string             `json:"inspectorId"`
}

type InspectionRef struct {
	ID openapi_types.UUID `json:"id"`
}

type Inspection struct {
	ID                openapi_types.UUID `json:"id"`
	ProductionOrderID openapi_types.UUID `json:"productionOrderId"`
	VIN               string             `json:"vin"`
	InspectorID       string             `json:"inspectorId"`
	ReviewerID        string             `json:"reviewerId,omitempty"`
	Result            string             `json:"result,omitempty"`
	InspectedAt       *string            `json:"inspectedAt,omitempty"`
	ReviewedAt        *string            `json:"reviewedAt,omitempty"`
	Items             []InspectionItem   `json:"items"`
	Version           int                `json:"version"`
}

type InspectionItem struct {
	ID            openapi_types.UUID `json:"id"`
	Description   string             `json:"description"`
	SafetyRelated bool               `json:"safetyRelated"`
	Status        string             `json:"status"`
	Notes         string             `json:"notes,omitempty"`
}

type ItemResult struct {
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

type CompleteInspection struct {
	InspectorID string `json:"inspectorId"`
}

type InspectionResult struct {
	Result string `json:"result"`
}

type ReviewInspection struct {
	ReviewerID string `json:"reviewerId"`
}

type ReviewResult struct {
	Result        string              `json:"result"`
	ReworkCreated bool                `json:"reworkCreated"`
	ReworkOrderID *openapi_types.UUID `json:"reworkOrderId,omitempty"`
}

// ServerInterface lists the operations of openapi.yaml.
type ServerInterface interface {
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	PlaceOrder(ctx echo.Context) error
	GetOrder(ctx echo.Context, orderID openapi_types.UUID) error
	ChangeOrder(ctx echo.Context, orderID openapi_types.UUID) error
	CancelOrder(ctx echo.Context, orderID openapi_types.UUID) error
	ListProductionOrders(ctx echo.Context, params ListProductionOrdersParams) error
	GetProductionOrder(ctx echo.Context, productionOrderID openapi_types.UUID) error
	StartProduction(ctx echo.Context, productionOrderID openapi_types.UUID) error
	CompleteAssemblyStep(ctx echo.Context, productionOrderID, stepID openapi_types.UUID) error
	CreateInspection(ctx echo.Context) error
	GetInspection(ctx echo.Context, inspectionID openapi_types.UUID) error
	RecordInspectionItemResult(ctx echo.Context, inspectionID, itemID openapi_types.UUID) error
	CompleteInspection(ctx echo.Context, inspectionID openapi_types.UUID) error
	ReviewInspection(ctx echo.Context, inspectionID openapi_types.UUID) error
	CompleteRework(ctx echo.Context, reworkOrderID openapi_types.UUID) error
}

// ServerInterfaceWrapper binds path parameters and calls the handler.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams
	if err := bindQueryString(ctx, "dealerId", &params.DealerID); err != nil {
		return err
	}
	if err := bindQueryString(ctx, "status", &params.Status); err != nil {
		return err
	}
	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) PlaceOrder(ctx echo.Context) error {
	return w.Handler.PlaceOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderID, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) ChangeOrder(ctx echo.Context) error {
	orderID, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.ChangeOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	orderID, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.CancelOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) ListProductionOrders(ctx echo.Context) error {
	var params ListProductionOrdersParams
	if err := bindQueryString(ctx, "status", &params.Status); err != nil {
		return err
	}
	return w.Handler.ListProductionOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) GetProductionOrder(ctx echo.Context) error {
	productionOrderID, err := bindPathUUID(ctx, "productionOrderId")
	if err != nil {
		return err
	}
	return w.Handler.GetProductionOrder(ctx, productionOrderID)
}

func (w *ServerInterfaceWrapper) StartProduction(ctx echo.Context) error {
	productionOrderID, err := bindPathUUID(ctx, "productionOrderId")
	if err != nil {
		return err
	}
	return w.Handler.StartProduction(ctx, productionOrderID)
}

func (w *ServerInterfaceWrapper) CompleteAssemblyStep(ctx echo.Context) error {
	productionOrderID, err := bindPathUUID(ctx, "productionOrderId")
	if err != nil {
		return err
	}
	stepID, err := bindPathUUID(ctx, "stepId")
	if err != nil {
		return err
	}
	return w.Handler.CompleteAssemblyStep(ctx, productionOrderID, stepID)
}

func (w *ServerInterfaceWrapper) CreateInspection(ctx echo.Context) error {
	return w.Handler.CreateInspection(ctx)
}

func (w *ServerInterfaceWrapper) GetInspection(ctx echo.Context) error {
	inspectionID, err := bindPathUUID(ctx, "inspectionId")
	if err != nil {
		return err
	}
	return w.Handler.GetInspection(ctx, inspectionID)
}

func (w *ServerInterfaceWrapper) RecordInspectionItemResult(ctx echo.Context) error {
	inspectionID, err := bindPathUUID(ctx, "inspectionId")
	if err != nil {
		return err
	}
	itemID, err := bindPathUUID(ctx, "itemId")
	if err != nil {
		return err
	}
	return w.Handler.RecordInspectionItemResult(ctx, inspectionID, itemID)
}

func (w *ServerInterfaceWrapper) CompleteInspection(ctx echo.Context) error {
	inspectionID, err := bindPathUUID(ctx, "inspectionId")
	if err != nil {
		return err
	}
	return w.Handler.CompleteInspection(ctx, inspectionID)
}

func (w *ServerInterfaceWrapper) ReviewInspection(ctx echo.Context) error {
	inspectionID, err := bindPathUUID(ctx, "inspectionId")
	if err != nil {
		return err
	}
	return w.Handler.ReviewInspection(ctx, inspectionID)
}

func (w *ServerInterfaceWrapper) CompleteRework(ctx echo.Context) error {
	reworkOrderID, err := bindPathUUID(ctx, "reworkOrderId")
	if err != nil {
		return err
	}
	return w.Handler.CompleteRework(ctx, reworkOrderID)
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds every operation to the router under baseURL.
func RegisterHandlers(router EchoRouter, si ServerInterface, baseURL string) {
	w := &ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/api/v1/orders", w.ListOrders)
	router.POST(baseURL+"/api/v1/orders", w.PlaceOrder)
	router.GET(baseURL+"/api/v1/orders/:orderId", w.GetOrder)
	router.PUT(baseURL+"/api/v1/orders/:orderId/configuration", w.ChangeOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/cancel", w.CancelOrder)
	router.GET(baseURL+"/api/v1/production-orders", w.ListProductionOrders)
	router.GET(baseURL+"/api/v1/production-orders/:productionOrderId", w.GetProductionOrder)
	router.POST(baseURL+"/api/v1/production-orders/:productionOrderId/start", w.StartProduction)
	router.POST(baseURL+"/api/v1/production-orders/:productionOrderId/steps/:stepId/complete", w.CompleteAssemblyStep)
	router.POST(baseURL+"/api/v1/inspections", w.CreateInspection)
	router.GET(baseURL+"/api/v1/inspections/:inspectionId", w.GetInspection)
	router.PUT(baseURL+"/api/v1/inspections/:inspectionId/items/:itemId", w.RecordInspectionItemResult)
	router.POST(baseURL+"/api/v1/inspections/:inspectionId/complete", w.CompleteInspection)
	router.POST(baseURL+"/api/v1/inspections/:inspectionId/review", w.ReviewInspection)
	router.POST(baseURL+"/api/v1/rework-orders/:reworkOrderId/complete", w.CompleteRework)
}

func bindPathUUID(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}

func bindQueryString(ctx echo.Context, name string, dest **string) error {
	err := runtime.BindQueryParameter("form", true, false, name, ctx.QueryParams(), dest)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return nil
}
