// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gearshare/internal/delivery/http/middleware"
	"gearshare/internal/delivery/http/router/handler"
	"gearshare/internal/domain/entity"
	"gearshare/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProfileHandler *handler.ProfileHandler
	ItemHandler    *handler.ItemHandler
	RentalHandler  *handler.RentalHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	itemHandler    *handler.ItemHandler
	rentalHandler  *handler.RentalHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		profileHandler: params.ProfileHandler,
		itemHandler:    params.ItemHandler,
		rentalHandler:  params.RentalHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	r.registerPrincipalRoutes(api.Group("/owner"), entity.NamespaceOwner, service.ResourceOwnerProfile)
	r.registerPrincipalRoutes(api.Group("/renter"), entity.NamespaceRenter, service.ResourceRenterProfile)

	authn := r.authMiddleware.Authenticate
	allow := r.authMiddleware.Authorize

	// Public catalogue
	api.GET("/items", r.itemHandler.ListItems)
	api.GET("/items/:id", r.itemHandler.GetItem)

	// Owner listings
	api.GET("/owners/:owner_id/items", r.itemHandler.ListOwnerItems, authn, allow(service.ResourceItem, service.ActionListOwn))
	api.POST("/items/create", r.itemHandler.CreateItem, authn, allow(service.ResourceItem, service.ActionCreate))
	api.PUT("/items/update/:id", r.itemHandler.UpdateItem, authn, allow(service.ResourceItem, service.ActionUpdate))
	api.DELETE("/items/delete/:id", r.itemHandler.DeleteItem, authn, allow(service.ResourceItem, service.ActionDelete))

	// Renter bookings
	api.GET("/rented_items", r.rentalHandler.ListRentedItems, authn, allow(service.ResourceRental, service.ActionListOwn))
	api.GET("/rentals/:renter_id", r.rentalHandler.ListRenterRentals, authn, allow(service.ResourceRental, service.ActionListOwn))
	api.POST("/rentals/rent_item/:item_id", r.rentalHandler.RentItem, authn, allow(service.ResourceRental, service.ActionCreate))
	api.DELETE("/rentals/remove_item/:item_id", r.rentalHandler.RemoveItem, authn, allow(service.ResourceRental, service.ActionDelete))
}

// registerPrincipalRoutes mounts registration, login and profile routes of one namespace.
// A token from the other namespace is rejected by the profile resource policy.
func (r *router) registerPrincipalRoutes(g *echo.Group, namespace entity.Namespace, profile string) {
	g.POST("/register", r.authHandler.Register(namespace))
	g.POST("/login", r.authHandler.Login(namespace))

	authn := r.authMiddleware.Authenticate
	allow := r.authMiddleware.Authorize

	g.GET("/profile", r.profileHandler.GetProfile, authn, allow(profile, service.ActionRead))
	g.PUT("/update_profile", r.profileHandler.UpdateProfile, authn, allow(profile, service.ActionUpdate))
	g.DELETE("/delete_profile", r.profileHandler.DeleteProfile, authn, allow(profile, service.ActionDelete))
}
