package cmd

import (
	"time"

	httpin "parcelpilot/internal/adapters/in/http"
	"parcelpilot/internal/adapters/out/postgres"
	"parcelpilot/internal/adapters/out/stripe"
	"parcelpilot/internal/core/application/usecases/commands"
	"parcelpilot/internal/core/application/usecases/queries"
	"parcelpilot/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const overviewCacheTTL = 30 * time.Second

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	redis      *redis.Client
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, redisClient *redis.Client) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		redis:      redisClient,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

// CreateServer assembles the HTTP server with every command and query
// handler wired to the shared database and cache connections.
func (c *CompositionRoot) CreateServer() (*httpin.Server, error) {
	processor, err := c.CreatePaymentProcessor()
	if err != nil {
		return nil, err
	}

	commandHandlers := httpin.CommandHandlers{
		CreateParcel:   c.CreateCreateParcelCommandHandler(),
		AssignRider:    c.CreateAssignRiderCommandHandler(),
		StartDelivery:  c.CreateStartDeliveryCommandHandler(),
		MarkDelivered:  c.CreateMarkDeliveredCommandHandler(),
		ConfirmPayment: c.CreateConfirmPaymentCommandHandler(),
		Cashout:        c.CreateCashoutCommandHandler(),
		AppendTracking: c.CreateAppendTrackingCommandHandler(),
		DeleteParcel:   c.CreateDeleteParcelCommandHandler(),
		UpsertUser:     c.CreateUpsertUserCommandHandler(),
		SetUserRole:    c.CreateSetUserRoleCommandHandler(),
		ApplyRider:     c.CreateApplyRiderCommandHandler(),
		ReviewRider:    c.CreateReviewRiderCommandHandler(),
	}

	queryHandlers := httpin.QueryHandlers{
		ListParcels:     queries.NewListParcelsQueryHandler(c.gormDB),
		GetParcel:       queries.NewGetParcelQueryHandler(c.gormDB),
		RiderParcels:    queries.NewRiderParcelsQueryHandler(c.gormDB),
		TrackingHistory: queries.NewTrackingHistoryQueryHandler(c.gormDB),
		RiderSummary:    queries.NewRiderSummaryQueryHandler(c.gormDB),
		GetRider:        queries.NewGetRiderQueryHandler(c.gormDB),
		ListRiders:      queries.NewListRidersQueryHandler(c.gormDB),
		ListUsers:       queries.NewListUsersQueryHandler(c.gormDB),
		GetUser:         queries.NewGetUserQueryHandler(c.gormDB),
		ListPayments:    queries.NewListPaymentsQueryHandler(c.gormDB),
		GetPayment:      queries.NewGetPaymentQueryHandler(c.gormDB),
		Overview:        c.CreateOverviewQueryHandler(),
	}

	return httpin.NewServer(
		commandHandlers,
		queryHandlers,
		processor,
		[]byte(c.config.JWTSecret),
		c.config.PaymentCurrency,
	), nil
}

func (c *CompositionRoot) CreatePaymentProcessor() (ports.PaymentProcessor, error) {
	return stripe.NewClient(c.config.StripeSecretKey)
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateStartDeliveryCommandHandler() commands.StartDeliveryCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteParcelCommandHandler() commands.DeleteParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignRiderCommandHandler() commands.AssignRiderCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignRiderCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkDeliveredCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmPaymentCommandHandler(f)
}

func (c *CompositionRoot) CreateCashoutCommandHandler() commands.CashoutCommandHandler {
	var f commands.RiderUoWFactory = FuncRiderUoWFactory(func() commands.RiderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCashoutCommandHandler(f)
}

func (c *CompositionRoot) CreateApplyRiderCommandHandler() commands.ApplyRiderCommandHandler {
	var f commands.RiderUoWFactory = FuncRiderUoWFactory(func() commands.RiderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApplyRiderCommandHandler(f)
}

func (c *CompositionRoot) CreateReviewRiderCommandHandler() commands.ReviewRiderCommandHandler {
	var f commands.RiderAccountUoWFactory = FuncRiderAccountUoWFactory(func() commands.RiderAccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReviewRiderCommandHandler(f)
}

func (c *CompositionRoot) CreateAppendTrackingCommandHandler() commands.AppendTrackingCommandHandler {
	var f commands.TrackingUoWFactory = FuncTrackingUoWFactory(func() commands.TrackingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAppendTrackingCommandHandler(f)
}

func (c *CompositionRoot) CreateUpsertUserCommandHandler() commands.UpsertUserCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpsertUserCommandHandler(f)
}

func (c *CompositionRoot) CreateSetUserRoleCommandHandler() commands.SetUserRoleCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetUserRoleCommandHandler(f)
}

func (c *CompositionRoot) CreateOverviewQueryHandler() queries.OverviewQueryHandler {
	return queries.NewOverviewQueryHandler(c.gormDB, c.redis, overviewCacheTTL)
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncRiderUoWFactory func() commands.RiderUoW

func (f FuncRiderUoWFactory) Create() commands.RiderUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncTrackingUoWFactory func() commands.TrackingUoW

func (f FuncTrackingUoWFactory) Create() commands.TrackingUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncRiderAccountUoWFactory func() commands.RiderAccountUoW

func (f FuncRiderAccountUoWFactory) Create() commands.RiderAccountUoW {
	return f()
}
