package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/dkozyrev/foodway/internal/delivery/http/middleware"
	"github.com/dkozyrev/foodway/internal/domain"
	"github.com/dkozyrev/foodway/internal/pkg/config"
	"github.com/dkozyrev/foodway/internal/pkg/jwt"
	"github.com/dkozyrev/foodway/internal/pkg/logger"
)

// Router содержит все зависимости для HTTP роутера
type Router struct {
	routeHandler    *RouteHandler
	truckHandler    *TruckHandler
	addressHandler  *AddressHandler
	authHandler     *AuthHandler
	donationHandler *DonationHandler
	requestHandler  *RequestHandler
	productHandler  *ProductHandler
	uploadHandler   *UploadHandler
	tokenService    *jwt.TokenService
	config          *config.Config
	logger          logger.Logger
}

// NewRouter создает новый HTTP router
func NewRouter(
	routeHandler *RouteHandler,
	truckHandler *TruckHandler,
	addressHandler *AddressHandler,
	authHandler *AuthHandler,
	donationHandler *DonationHandler,
	requestHandler *RequestHandler,
	productHandler *ProductHandler,
	uploadHandler *UploadHandler,
	tokenService *jwt.TokenService,
	config *config.Config,
	logger logger.Logger,
) *Router {
	return &Router{
		routeHandler:    routeHandler,
		truckHandler:    truckHandler,
		addressHandler:  addressHandler,
		authHandler:     authHandler,
		donationHandler: donationHandler,
		requestHandler:  requestHandler,
		productHandler:  productHandler,
		uploadHandler:   uploadHandler,
		tokenService:    tokenService,
		config:          config,
		logger:          logger,
	}
}

// Setup настраивает все маршруты
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Глобальные middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.RecoveryMiddleware(rt.logger))
	r.Use(middleware.LoggingMiddleware(rt.logger))
	r.Use(middleware.CORSMiddleware(middleware.CORSConfig{
		AllowedOrigins: rt.config.CORS.AllowedOrigins,
		AllowedMethods: rt.config.CORS.AllowedMethods,
		AllowedHeaders: rt.config.CORS.AllowedHeaders,
	}))

	// Health check endpoint (публичный)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{
			"status": "healthy",
		})
	})

	// Public routes (без аутентификации)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", rt.authHandler.Register)
		r.Post("/login", rt.authHandler.Login)
	})

	// Публичные чтения каталога и логистики
	r.Get("/tours", rt.routeHandler.GetRoutes)
	r.Get("/tours/{id}", rt.routeHandler.GetRouteByID)
	r.Get("/tours/driver/{id}", rt.routeHandler.GetRoutesByDriver)
	r.Get("/trucks", rt.truckHandler.GetTrucks)
	r.Get("/trucks/availableToday", rt.truckHandler.GetAvailableToday)
	r.Get("/trucks/{id}", rt.truckHandler.GetTruckByID)
	r.Get("/addresses", rt.addressHandler.GetAddresses)
	r.Get("/addresses/{id}", rt.addressHandler.GetAddressByID)
	r.Get("/products", rt.productHandler.GetProducts)
	r.Get("/products/categories", rt.productHandler.GetCategories)
	r.Get("/products/{id}", rt.productHandler.GetProductByID)

	// Protected routes (требуют аутентификации)
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(rt.tokenService))

		r.Get("/auth/me", rt.authHandler.GetMe)

		// Планирование маршрутов
		r.Post("/tours", rt.routeHandler.CreateRoute)
		r.Put("/tours/{id}", rt.routeHandler.UpdateRoute)
		r.Post("/tours/{id}/destinations", rt.routeHandler.AddDestination)
		r.Post("/destinations/{id}/products", rt.routeHandler.AddProduct)

		// Автопарк и адреса
		r.Post("/trucks", rt.truckHandler.CreateTruck)
		r.Put("/trucks/{id}", rt.truckHandler.UpdateTruck)
		r.Post("/addresses", rt.addressHandler.CreateAddress)
		r.Put("/addresses/{id}", rt.addressHandler.UpdateAddress)

		// Пожертвования и заявки
		r.Route("/donations", func(r chi.Router) {
			r.Get("/", rt.donationHandler.GetDonations)
			r.Get("/me", rt.donationHandler.GetMyDonations)
			r.Get("/{id}", rt.donationHandler.GetDonationByID)
			r.Post("/", rt.donationHandler.CreateDonation)
			r.Put("/{id}", rt.donationHandler.UpdateDonation)
		})
		r.Route("/requests", func(r chi.Router) {
			r.Get("/", rt.requestHandler.GetRequests)
			r.Get("/me", rt.requestHandler.GetMyRequests)
			r.Get("/{id}", rt.requestHandler.GetRequestByID)
			r.Post("/", rt.requestHandler.CreateRequest)
			r.Put("/{id}", rt.requestHandler.UpdateRequest)
		})

		// Admin only endpoints
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(domain.RoleAdmin))

			r.Delete("/tours/{id}", rt.routeHandler.DeleteRoute)
			r.Delete("/tours/{id}/destinations/{destinationId}", rt.routeHandler.RemoveDestination)
			r.Delete("/destinations/{id}/products/{productId}", rt.routeHandler.RemoveProduct)
			r.Delete("/trucks/{id}", rt.truckHandler.DeleteTruck)
			r.Delete("/addresses/{id}", rt.addressHandler.DeleteAddress)
			r.Delete("/donations/{id}", rt.donationHandler.DeleteDonation)
			r.Delete("/requests/{id}", rt.requestHandler.DeleteRequest)
			r.Post("/products", rt.productHandler.CreateProduct)
			r.Put("/products/{id}", rt.productHandler.UpdateProduct)
			r.Delete("/products/{id}", rt.productHandler.DeleteProduct)
			r.Post("/upload/{resource}", rt.uploadHandler.Upload)
		})
	})

	return r
}
