package cmd

import (
	"log/slog"
	"time"

	httpadapter "laborders/internal/adapters/in/http"
	"laborders/internal/adapters/out/auth"
	"laborders/internal/adapters/out/postgres"
	"laborders/internal/adapters/out/postgres/userrepo"
	"laborders/internal/core/application/usecases/commands"
	"laborders/internal/core/application/usecases/queries"
	"laborders/internal/core/domain/services"
	"laborders/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	hasher     auth.BcryptHasher
	tokens     auth.JWTService
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	var ttl time.Duration
	if config.JWTExpiry != "" {
		parsed, err := time.ParseDuration(config.JWTExpiry)
		if err != nil {
			return CompositionRoot{}, err
		}
		ttl = parsed
	}

	tokens, err := auth.NewJWTService(config.JWTSecret, ttl)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		hasher:     auth.NewBcryptHasher(),
		tokens:     tokens,
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderCommandHandler(f, services.NewOrderLifecycle())
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreatePurgeDeletedOrdersCommandHandler() commands.PurgeDeletedOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPurgeDeletedOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateAuthenticateUserQueryHandler() queries.AuthenticateUserQueryHandler {
	return queries.NewAuthenticateUserQueryHandler(
		userrepo.NewGormUserRepository(c.gormDB), c.hasher, c.tokens)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateAdvanceOrderCommandHandler(),
		c.CreateUpdateOrderCommandHandler(),
		c.CreateDeleteOrderCommandHandler(),
		c.CreateRegisterUserCommandHandler(),
		c.CreateListOrdersQueryHandler(),
		c.CreateAuthenticateUserQueryHandler(),
	)
}

func (c *CompositionRoot) CreateAuthMiddleware() echo.MiddlewareFunc {
	return httpadapter.NewAuthMiddleware(c.tokens, userrepo.NewGormUserRepository(c.gormDB))
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreatePurgeDeletedOrdersCommandHandler(),
		c.config.PurgeSchedule,
		logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
