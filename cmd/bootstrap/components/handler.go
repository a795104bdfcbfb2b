package components

import (
	"gear-rental/internal/handler"
	"gear-rental/internal/handler/api"
	"gear-rental/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewEquipmentHandler,
		api.NewRentalHandler,
		api.NewCustomerHandler,
		api.NewVerificationHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		middleware.NewLoginRateLimiter,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Auth         *api.AuthHandler
	Equipment    *api.EquipmentHandler
	Rental       *api.RentalHandler
	Customer     *api.CustomerHandler
	Verification *api.VerificationHandler
	Admin        *api.AdminHandler
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:         p.Auth,
		Equipment:    p.Equipment,
		Rental:       p.Rental,
		Customer:     p.Customer,
		Verification: p.Verification,
		Admin:        p.Admin,
	}
}
