package http

import (
	"net/http"
	"strings"
	"time"

	"parcelpilot/internal/core/application/usecases/commands"
	"parcelpilot/internal/core/application/usecases/queries"
	"parcelpilot/internal/core/domain/model/account"
	"parcelpilot/internal/core/domain/model/kernel"
	"parcelpilot/internal/core/domain/model/rider"
	"parcelpilot/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// CommandHandlers bundles the write-side handlers the server dispatches to.
type CommandHandlers struct {
	CreateParcel   commands.CreateParcelCommandHandler
	AssignRider    commands.AssignRiderCommandHandler
	StartDelivery  commands.StartDeliveryCommandHandler
	MarkDelivered  commands.MarkDeliveredCommandHandler
	ConfirmPayment commands.ConfirmPaymentCommandHandler
	Cashout        commands.CashoutCommandHandler
	AppendTracking commands.AppendTrackingCommandHandler
	DeleteParcel   commands.DeleteParcelCommandHandler
	UpsertUser     commands.UpsertUserCommandHandler
	SetUserRole    commands.SetUserRoleCommandHandler
	ApplyRider     commands.ApplyRiderCommandHandler
	ReviewRider    commands.ReviewRiderCommandHandler
}

// QueryHandlers bundles the read-side handlers the server dispatches to.
type QueryHandlers struct {
	ListParcels     queries.ListParcelsQueryHandler
	GetParcel       queries.GetParcelQueryHandler
	RiderParcels    queries.RiderParcelsQueryHandler
	TrackingHistory queries.TrackingHistoryQueryHandler
	RiderSummary    queries.RiderSummaryQueryHandler
	GetRider        queries.GetRiderQueryHandler
	ListRiders      queries.ListRidersQueryHandler
	ListUsers       queries.ListUsersQueryHandler
	GetUser         queries.GetUserQueryHandler
	ListPayments    queries.ListPaymentsQueryHandler
	GetPayment      queries.GetPaymentQueryHandler
	Overview        queries.OverviewQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	commands  CommandHandlers
	queries   QueryHandlers
	processor ports.PaymentProcessor

	jwtSecret       []byte
	defaultCurrency string
}

// NewServer creates the HTTP server with the required command and query
// handlers, the payment processor boundary and the auth secret.
func NewServer(
	commandHandlers CommandHandlers,
	queryHandlers QueryHandlers,
	processor ports.PaymentProcessor,
	jwtSecret []byte,
	defaultCurrency string,
) *Server {
	return &Server{
		commands:        commandHandlers,
		queries:         queryHandlers,
		processor:       processor,
		jwtSecret:       jwtSecret,
		defaultCurrency: defaultCurrency,
	}
}

// RegisterRoutes wires every route onto the echo instance. Public routes
// are user registration and the tracking trail; everything else requires a
// bearer token, with rider and admin groups guarded by a role lookup.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	auth := Authenticate(s.jwtSecret)
	riderOnly := RequireRole(s.queries.GetUser, account.RoleRider, account.RoleAdmin)
	adminOnly := RequireRole(s.queries.GetUser, account.RoleAdmin)

	e.POST("/users", s.CreateUser)
	e.GET("/trackings/:trackingId", s.GetTrackingHistory)

	authed := e.Group("", auth)
	authed.POST("/parcels", s.CreateParcel)
	authed.GET("/parcels", s.ListParcels)
	authed.GET("/parcels/:trackingId", s.GetParcel)
	authed.POST("/payments", s.ConfirmPayment)
	authed.POST("/payments/create-intent", s.CreatePaymentIntent)
	authed.POST("/riders", s.ApplyRider)

	riders := e.Group("", auth, riderOnly)
	riders.GET("/parcels/rider/pending", s.PendingRiderParcels)
	riders.GET("/parcels/rider/completed", s.CompletedRiderParcels)
	riders.PATCH("/parcels/:id/start-delivery", s.StartDelivery)
	riders.PATCH("/parcels/:id/mark-delivered", s.MarkDelivered)
	riders.PATCH("/riders/cashout", s.Cashout)
	riders.GET("/riders/summary", s.RiderSummary)
	riders.GET("/riders/profile", s.RiderProfile)
	riders.POST("/trackings", s.AppendTracking)

	admins := e.Group("", auth, adminOnly)
	admins.DELETE("/parcels/:id", s.DeleteParcel)
	admins.PUT("/parcels/assign/:id", s.AssignRider)
	admins.GET("/payments", s.ListPayments)
	admins.GET("/payments/:id", s.GetPayment)
	admins.GET("/users", s.ListUsers)
	admins.PUT("/users/:id/make-admin", s.MakeAdmin)
	admins.PUT("/users/:id/remove-admin", s.RemoveAdmin)
	admins.GET("/riders", s.ListRiders)
	admins.PATCH("/riders/:id/status", s.ReviewRider)
	admins.GET("/admin/overview", s.Overview)
}

// CreateUser handles POST /users. Duplicate registration is not an error:
// the existing account gets its last-login touched and the call succeeds.
func (s *Server) CreateUser(ctx echo.Context) error {
	var body struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpsertUserCommand(body.Name, body.Email)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.commands.UpsertUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return ctx.JSON(status, map[string]string{"email": body.Email})
}

// CreateParcel handles POST /parcels.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var body struct {
		SenderName       string  `json:"senderName"`
		SenderEmail      string  `json:"senderEmail"`
		SenderDistrict   string  `json:"senderDistrict"`
		ReceiverName     string  `json:"receiverName"`
		ReceiverAddress  string  `json:"receiverAddress"`
		ReceiverDistrict string  `json:"receiverDistrict"`
		Cost             float64 `json:"cost"`
	}
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	senderEmail := body.SenderEmail
	if senderEmail == "" {
		senderEmail = callerEmail(ctx)
	}

	senderDistrict, err := kernel.NewDistrict(body.SenderDistrict)
	if err != nil {
		return respondError(ctx, err)
	}
	receiverDistrict, err := kernel.NewDistrict(body.ReceiverDistrict)
	if err != nil {
		return respondError(ctx, err)
	}

	parcelID := kernel.NewUUID()
	trackingID := newTrackingID()

	cmd, err := commands.NewCreateParcelCommand(
		parcelID,
		trackingID,
		body.SenderName,
		senderEmail,
		senderDistrict,
		body.ReceiverName,
		body.ReceiverAddress,
		receiverDistrict,
		body.Cost,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.CreateParcel.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{
		"id":         parcelID.String(),
		"trackingId": trackingID,
	})
}

// ListParcels handles GET /parcels with optional email, payment_status and
// delivery_status filters.
func (s *Server) ListParcels(ctx echo.Context) error {
	query := queries.NewListParcelsQuery(
		ctx.QueryParam("email"),
		ctx.QueryParam("payment_status"),
		ctx.QueryParam("delivery_status"),
	)

	parcels, err := s.queries.ListParcels.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toParcelSummaries(parcels))
}

// GetParcel handles GET /parcels/:trackingId.
func (s *Server) GetParcel(ctx echo.Context) error {
	query, err := queries.NewGetParcelQuery(ctx.Param("trackingId"))
	if err != nil {
		return respondError(ctx, err)
	}

	detail, err := s.queries.GetParcel.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toParcelDetail(detail))
}

// DeleteParcel handles DELETE /parcels/:id.
func (s *Server) DeleteParcel(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteParcelCommand(parcelID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.DeleteParcel.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// AssignRider handles PUT /parcels/assign/:id.
func (s *Server) AssignRider(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var body struct {
		RiderID string `json:"riderId"`
	}
	if err = ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	riderID, err := kernel.UUIDFromString(body.RiderID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAssignRiderCommand(parcelID, riderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.AssignRider.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// StartDelivery handles PATCH /parcels/:id/start-delivery. The caller must
// be the assigned rider; the pickup log entry carries the rider's name.
func (s *Server) StartDelivery(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	profileQuery, err := queries.NewGetRiderQuery(callerEmail(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	profile, err := s.queries.GetRider.Handle(ctx.Request().Context(), profileQuery)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewStartDeliveryCommand(parcelID, profile.Name)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.StartDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// MarkDelivered handles PATCH /parcels/:id/mark-delivered. Completing the
// delivery accrues the payout to the caller's ledger.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkDeliveredCommand(parcelID, callerEmail(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.MarkDelivered.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// PendingRiderParcels handles GET /parcels/rider/pending.
func (s *Server) PendingRiderParcels(ctx echo.Context) error {
	return s.riderParcels(ctx, queries.PendingWorklist)
}

// CompletedRiderParcels handles GET /parcels/rider/completed.
func (s *Server) CompletedRiderParcels(ctx echo.Context) error {
	return s.riderParcels(ctx, queries.CompletedWorklist)
}

func (s *Server) riderParcels(ctx echo.Context, worklist queries.Worklist) error {
	query, err := queries.NewRiderParcelsQuery(callerEmail(ctx), worklist)
	if err != nil {
		return respondError(ctx, err)
	}

	parcels, err := s.queries.RiderParcels.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toParcelSummaries(parcels))
}

// ConfirmPayment handles POST /payments: it records the receipt and flips
// the parcel to paid in one transaction.
func (s *Server) ConfirmPayment(ctx echo.Context) error {
	var body struct {
		ParcelID      string  `json:"parcelId"`
		Amount        float64 `json:"amount"`
		Currency      string  `json:"currency"`
		TransactionID string  `json:"transactionId"`
		Method        string  `json:"method"`
	}
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	parcelID, err := kernel.UUIDFromString(body.ParcelID)
	if err != nil {
		return respondError(ctx, err)
	}

	currency := body.Currency
	if currency == "" {
		currency = s.defaultCurrency
	}

	cmd, err := commands.NewConfirmPaymentCommand(
		parcelID,
		body.Amount,
		currency,
		callerEmail(ctx),
		body.TransactionID,
		body.Method,
		time.Now().UTC(),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.ConfirmPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// CreatePaymentIntent handles POST /payments/create-intent. The call is
// forwarded synchronously to the payment provider; no retry here.
func (s *Server) CreatePaymentIntent(ctx echo.Context) error {
	var body struct {
		AmountMinorUnits int64  `json:"amountMinorUnits"`
		Currency         string `json:"currency"`
	}
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	currency := body.Currency
	if currency == "" {
		currency = s.defaultCurrency
	}

	clientSecret, err := s.processor.CreatePaymentIntent(
		ctx.Request().Context(), body.AmountMinorUnits, currency,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"clientSecret": clientSecret})
}

// ListPayments handles GET /payments with an optional payer_email filter.
func (s *Server) ListPayments(ctx echo.Context) error {
	query := queries.NewListPaymentsQuery(ctx.QueryParam("payer_email"))

	payments, err := s.queries.ListPayments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPaymentRecords(payments))
}

// GetPayment handles GET /payments/:id.
func (s *Server) GetPayment(ctx echo.Context) error {
	paymentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetPaymentQuery(paymentID)
	if err != nil {
		return respondError(ctx, err)
	}

	receipt, err := s.queries.GetPayment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPaymentRecord(receipt))
}

// AppendTracking handles POST /trackings.
func (s *Server) AppendTracking(ctx echo.Context) error {
	var body struct {
		TrackingID string `json:"trackingId"`
		Status     string `json:"status"`
		Location   string `json:"location"`
	}
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAppendTrackingCommand(
		body.TrackingID, body.Status, body.Location, callerEmail(ctx),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.AppendTracking.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetTrackingHistory handles GET /trackings/:trackingId. Public route.
func (s *Server) GetTrackingHistory(ctx echo.Context) error {
	query, err := queries.NewTrackingHistoryQuery(ctx.Param("trackingId"))
	if err != nil {
		return respondError(ctx, err)
	}

	entries, err := s.queries.TrackingHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTrackingEntries(entries))
}

// ApplyRider handles POST /riders: the caller applies to become a rider.
func (s *Server) ApplyRider(ctx echo.Context) error {
	var body struct {
		Name     string `json:"name"`
		District string `json:"district"`
	}
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	district, err := kernel.NewDistrict(body.District)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewApplyRiderCommand(
		kernel.NewUUID(), body.Name, callerEmail(ctx), district,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.ApplyRider.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ReviewRider handles PATCH /riders/:id/status: admin accepts or rejects
// an application.
func (s *Server) ReviewRider(ctx echo.Context) error {
	riderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var body struct {
		Status string `json:"status"`
	}
	if err = ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	status, err := rider.ApprovalStatusFromString(body.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewReviewRiderCommand(riderID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.ReviewRider.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ListRiders handles GET /riders with an optional status filter.
func (s *Server) ListRiders(ctx echo.Context) error {
	query := queries.NewListRidersQuery(ctx.QueryParam("status"))

	riders, err := s.queries.ListRiders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRiderProfiles(riders))
}

// RiderProfile handles GET /riders/profile for the authenticated rider.
func (s *Server) RiderProfile(ctx echo.Context) error {
	query, err := queries.NewGetRiderQuery(callerEmail(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	profile, err := s.queries.GetRider.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRiderProfile(profile))
}

// RiderSummary handles GET /riders/summary for the authenticated rider.
func (s *Server) RiderSummary(ctx echo.Context) error {
	query, err := queries.NewRiderSummaryQuery(callerEmail(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	summary, err := s.queries.RiderSummary.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRiderSummary(summary))
}

// Cashout handles PATCH /riders/cashout: the caller withdraws their full
// balance.
func (s *Server) Cashout(ctx echo.Context) error {
	cmd, err := commands.NewCashoutCommand(callerEmail(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.Cashout.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ListUsers handles GET /users with an optional role filter.
func (s *Server) ListUsers(ctx echo.Context) error {
	query := queries.NewListUsersQuery(ctx.QueryParam("role"))

	users, err := s.queries.ListUsers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toUserRecords(users))
}

// MakeAdmin handles PUT /users/:id/make-admin.
func (s *Server) MakeAdmin(ctx echo.Context) error {
	return s.setRole(ctx, account.RoleAdmin)
}

// RemoveAdmin handles PUT /users/:id/remove-admin.
func (s *Server) RemoveAdmin(ctx echo.Context) error {
	return s.setRole(ctx, account.RoleUser)
}

func (s *Server) setRole(ctx echo.Context, role account.Role) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSetUserRoleCommand(userID, role)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.SetUserRole.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// Overview handles GET /admin/overview.
func (s *Server) Overview(ctx echo.Context) error {
	overview, err := s.queries.Overview.Handle(ctx.Request().Context(), queries.NewOverviewQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, overview)
}

// newTrackingID mints a short public tracking identifier. Uniqueness is
// enforced by the store's unique index.
func newTrackingID() string {
	raw := strings.ReplaceAll(kernel.NewUUID().String(), "-", "")
	return "PP-" + strings.ToUpper(raw[:12])
}
