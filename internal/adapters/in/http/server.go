package http

import (
	"net/http"
	"strconv"
	"time"

	"distribution/internal/core/application/usecases/commands"
	"distribution/internal/core/application/usecases/queries"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
	"distribution/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server exposes the application's commands and queries over JSON HTTP.
// It only translates between the wire and the use cases; all rules live
// behind the handlers it holds.
type Server struct {
	// Command handlers
	createOrderHandler           commands.CreateOrderCommandHandler
	transitionOrderHandler       commands.TransitionOrderCommandHandler
	createInventoryRecordHandler commands.CreateInventoryRecordCommandHandler
	setStockBucketsHandler       commands.SetStockBucketsCommandHandler
	setRackLocationHandler       commands.SetRackLocationCommandHandler
	recordSaleHandler            commands.RecordSaleCommandHandler
	recordPurchaseHandler        commands.RecordPurchaseCommandHandler

	// Query handlers
	listOrdersHandler          queries.ListOrdersQueryHandler
	getOrderDetailHandler      queries.GetOrderDetailQueryHandler
	getStatusHistoryHandler    queries.GetStatusHistoryQueryHandler
	getStatusStatisticsHandler queries.GetStatusStatisticsQueryHandler
	getInventoryHandler        queries.GetInventoryQueryHandler
	getLowStockHandler         queries.GetLowStockQueryHandler
}

// NewServer creates an HTTP server over the given command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	createInventoryRecordHandler commands.CreateInventoryRecordCommandHandler,
	setStockBucketsHandler commands.SetStockBucketsCommandHandler,
	setRackLocationHandler commands.SetRackLocationCommandHandler,
	recordSaleHandler commands.RecordSaleCommandHandler,
	recordPurchaseHandler commands.RecordPurchaseCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderDetailHandler queries.GetOrderDetailQueryHandler,
	getStatusHistoryHandler queries.GetStatusHistoryQueryHandler,
	getStatusStatisticsHandler queries.GetStatusStatisticsQueryHandler,
	getInventoryHandler queries.GetInventoryQueryHandler,
	getLowStockHandler queries.GetLowStockQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:           createOrderHandler,
		transitionOrderHandler:       transitionOrderHandler,
		createInventoryRecordHandler: createInventoryRecordHandler,
		setStockBucketsHandler:       setStockBucketsHandler,
		setRackLocationHandler:       setRackLocationHandler,
		recordSaleHandler:            recordSaleHandler,
		recordPurchaseHandler:        recordPurchaseHandler,
		listOrdersHandler:            listOrdersHandler,
		getOrderDetailHandler:        getOrderDetailHandler,
		getStatusHistoryHandler:      getStatusHistoryHandler,
		getStatusStatisticsHandler:   getStatusStatisticsHandler,
		getInventoryHandler:          getInventoryHandler,
		getLowStockHandler:           getLowStockHandler,
	}
}

// RegisterRoutes binds every route onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/statistics/status", s.GetStatusStatistics)
	api.GET("/orders/:orderID", s.GetOrderDetail)
	api.POST("/orders/:orderID/status", s.TransitionOrder)
	api.GET("/orders/:orderID/history", s.GetStatusHistory)

	api.POST("/inventory", s.CreateInventoryRecord)
	api.GET("/inventory/alerts/low-stock", s.GetLowStockAlerts)
	api.GET("/inventory/:branchCode", s.GetInventory)
	api.PUT("/inventory/:branchCode/:partID/buckets", s.SetStockBuckets)
	api.PUT("/inventory/:branchCode/:partID/rack", s.SetRackLocation)
	api.POST("/inventory/:branchCode/:partID/sales", s.RecordSale)
	api.POST("/inventory/:branchCode/:partID/purchases", s.RecordPurchase)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request CreateOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	retailerID, err := parseUUIDField(request.RetailerID, "retailer id")
	if err != nil {
		return respondError(ctx, err)
	}

	items, err := toItemInputs(request.Items)
	if err != nil {
		return respondError(ctx, err)
	}

	var geo *order.Geo
	if request.Geo != nil {
		geo = &order.Geo{Latitude: request.Geo.Latitude, Longitude: request.Geo.Longitude}
	}

	cmd, err := commands.NewCreateOrderCommand(
		actor, retailerID, request.BranchCode, request.Urgent,
		request.PONumber, request.PODate, request.Remark, geo,
		items, ctx.RealIP())
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toCreateOrderResponse(result))
}

// TransitionOrder handles POST /api/v1/orders/:orderID/status.
//
// An expected_version of 0 means unpinned: the handler still guards against
// writers racing after its own load, but the client accepts whatever version
// it finds.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := parseUUIDField(ctx.Param("orderID"), "order id")
	if err != nil {
		return respondError(ctx, err)
	}

	var request TransitionOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	target, err := order.StatusFromString(request.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewTransitionOrderCommand(
		orderID, target, actor, request.Note, ctx.RealIP(), request.ExpectedVersion)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	scope, err := scopeFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	filter, err := filterFromParams(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewListOrdersQuery(scope, filter)
	if err != nil {
		return respondError(ctx, err)
	}

	summaries, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderSummaryPayloads(summaries))
}

// GetOrderDetail handles GET /api/v1/orders/:orderID.
func (s *Server) GetOrderDetail(ctx echo.Context) error {
	scope, err := scopeFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := parseUUIDField(ctx.Param("orderID"), "order id")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderDetailQuery(scope, orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	detail, err := s.getOrderDetailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderDetailPayload(detail))
}

// GetStatusHistory handles GET /api/v1/orders/:orderID/history.
func (s *Server) GetStatusHistory(ctx echo.Context) error {
	scope, err := scopeFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := parseUUIDField(ctx.Param("orderID"), "order id")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetStatusHistoryQuery(scope, orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	entries, err := s.getStatusHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toHistoryPayloads(entries))
}

// GetStatusStatistics handles GET /api/v1/orders/statistics/status.
func (s *Server) GetStatusStatistics(ctx echo.Context) error {
	scope, err := scopeFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	from, err := parseTimeParam(ctx, "from")
	if err != nil {
		return respondError(ctx, err)
	}
	to, err := parseTimeParam(ctx, "to")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetStatusStatisticsQuery(scope, from, to)
	if err != nil {
		return respondError(ctx, err)
	}

	stats, err := s.getStatusStatisticsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	payloads := make([]StatusStatisticPayload, len(stats))
	for i, stat := range stats {
		payloads[i] = StatusStatisticPayload{Status: stat.Status, Count: stat.Count}
	}

	return ctx.JSON(http.StatusOK, payloads)
}

// CreateInventoryRecord handles POST /api/v1/inventory.
func (s *Server) CreateInventoryRecord(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request CreateInventoryRecordRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	partID, err := parseUUIDField(request.PartID, "part id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateInventoryRecordCommand(
		actor, request.BranchCode, partID,
		request.BucketA, request.BucketB, request.BucketC,
		request.MaxQuantity, request.RackLocation)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createInventoryRecordHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetInventory handles GET /api/v1/inventory/:branchCode.
func (s *Server) GetInventory(ctx echo.Context) error {
	scope, err := scopeFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var partID *kernel.UUID
	if raw := ctx.QueryParam("part_id"); raw != "" {
		id, parseErr := parseUUIDField(raw, "part id")
		if parseErr != nil {
			return respondError(ctx, parseErr)
		}
		partID = &id
	}

	query, err := queries.NewGetInventoryQuery(
		scope, ctx.Param("branchCode"), partID, ctx.QueryParam("rack"))
	if err != nil {
		return respondError(ctx, err)
	}

	views, err := s.getInventoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toInventoryViewPayloads(views))
}

// GetLowStockAlerts handles GET /api/v1/inventory/alerts/low-stock.
func (s *Server) GetLowStockAlerts(ctx echo.Context) error {
	scope, err := scopeFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	alerts, err := s.getLowStockHandler.Handle(
		ctx.Request().Context(), queries.NewGetLowStockQuery(scope))
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toLowStockPayloads(alerts))
}

// SetStockBuckets handles PUT /api/v1/inventory/:branchCode/:partID/buckets.
func (s *Server) SetStockBuckets(ctx echo.Context) error {
	actor, partID, err := inventoryRouteIdentity(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request SetStockBucketsRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSetStockBucketsCommand(
		actor, ctx.Param("branchCode"), partID,
		request.BucketA, request.BucketB, request.BucketC, request.Note)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.setStockBucketsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetRackLocation handles PUT /api/v1/inventory/:branchCode/:partID/rack.
func (s *Server) SetRackLocation(ctx echo.Context) error {
	actor, partID, err := inventoryRouteIdentity(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request SetRackLocationRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSetRackLocationCommand(
		actor, ctx.Param("branchCode"), partID, request.RackLocation)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.setRackLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordSale handles POST /api/v1/inventory/:branchCode/:partID/sales.
func (s *Server) RecordSale(ctx echo.Context) error {
	actor, partID, err := inventoryRouteIdentity(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request StockMovementRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRecordSaleCommand(actor, ctx.Param("branchCode"), partID, request.Note)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.recordSaleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordPurchase handles POST /api/v1/inventory/:branchCode/:partID/purchases.
func (s *Server) RecordPurchase(ctx echo.Context) error {
	actor, partID, err := inventoryRouteIdentity(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request StockMovementRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRecordPurchaseCommand(actor, ctx.Param("branchCode"), partID, request.Note)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.recordPurchaseHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// inventoryRouteIdentity resolves the actor and the part id shared by the
// per-record inventory routes.
func inventoryRouteIdentity(ctx echo.Context) (kernel.Actor, kernel.UUID, error) {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return kernel.Actor{}, kernel.UUID{}, err
	}

	partID, err := parseUUIDField(ctx.Param("partID"), "part id")
	if err != nil {
		return kernel.Actor{}, kernel.UUID{}, err
	}

	return actor, partID, nil
}

func parseUUIDField(raw, name string) (kernel.UUID, error) {
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(name)
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

func parseTimeParam(ctx echo.Context, name string) (*time.Time, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name+" parameter", err)
	}
	return &parsed, nil
}

// filterFromParams builds the typed listing filter from query parameters.
// Absent parameters leave the filter open; values are validated by the
// filter itself when the query is constructed.
func filterFromParams(ctx echo.Context) (queries.OrderFilter, error) {
	filter := queries.NewOrderFilter()

	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return queries.OrderFilter{}, err
		}
		filter = filter.WithStatus(status)
	}
	if raw := ctx.QueryParam("retailer_id"); raw != "" {
		retailerID, err := parseUUIDField(raw, "retailer id")
		if err != nil {
			return queries.OrderFilter{}, err
		}
		filter = filter.WithRetailer(retailerID)
	}
	if branch := ctx.QueryParam("branch"); branch != "" {
		filter = filter.WithBranch(branch)
	}
	if raw := ctx.QueryParam("urgent"); raw != "" {
		urgent, err := strconv.ParseBool(raw)
		if err != nil {
			return queries.OrderFilter{}, errs.NewValueIsInvalidErrorWithCause("urgent parameter", err)
		}
		filter = filter.WithUrgent(urgent)
	}

	from, err := parseTimeParam(ctx, "placed_from")
	if err != nil {
		return queries.OrderFilter{}, err
	}
	to, err := parseTimeParam(ctx, "placed_to")
	if err != nil {
		return queries.OrderFilter{}, err
	}
	if from != nil || to != nil {
		filter = filter.WithPlacedBetween(from, to)
	}

	if code := ctx.QueryParam("code"); code != "" {
		filter = filter.WithCodeSearch(code)
	}

	return filter, nil
}
