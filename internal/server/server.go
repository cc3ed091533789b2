package server

import (
	"time"

	"storefront-checkout/internal/config"
	"storefront-checkout/internal/handler"
	appmw "storefront-checkout/internal/middleware"
	"storefront-checkout/internal/repository"
	"storefront-checkout/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo                *echo.Echo
	checkoutHandler     *handler.CheckoutHandler
	cartHandler         *handler.CartHandler
	orderHandler        *handler.OrderHandler
	notificationHandler *handler.NotificationHandler
}

type Deps struct {
	CheckoutService     service.CheckoutService
	CartService         service.CartService
	OrderService        service.OrderService
	NotificationService service.NotificationService
	UserRepo            repository.UserRepository
	Counter             appmw.CounterStore
	Config              *config.Config
}

func NewServer(deps Deps) *Server {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(appmw.RateLimit(
		deps.Counter,
		deps.Config.RateLimit.MaxRequests,
		time.Duration(deps.Config.RateLimit.WindowSeconds)*time.Second,
	))

	s := &Server{
		echo:                e,
		checkoutHandler:     handler.NewCheckoutHandler(deps.CheckoutService),
		cartHandler:         handler.NewCartHandler(deps.CartService),
		orderHandler:        handler.NewOrderHandler(deps.OrderService),
		notificationHandler: handler.NewNotificationHandler(deps.NotificationService),
	}

	s.setupRoutes(deps)
	return s
}

func (s *Server) setupRoutes(deps Deps) {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	authed := api.Group("", appmw.Auth(deps.Config.Auth.JWTSecret))

	authed.POST("/checkout", s.checkoutHandler.Checkout)

	authed.GET("/cart", s.cartHandler.GetCart)
	authed.POST("/cart", s.cartHandler.AddItem)
	authed.DELETE("/cart/:productID", s.cartHandler.RemoveItem)

	authed.GET("/orders", s.orderHandler.ListOrders)
	authed.GET("/orders/:orderID", s.orderHandler.GetOrder)

	authed.GET("/notifications", s.notificationHandler.ListNotifications)
	authed.POST("/toast", s.notificationHandler.TriggerToast)

	admin := authed.Group("/admin", appmw.RequireAdmin(deps.UserRepo))
	admin.POST("/alerts", s.notificationHandler.SendSystemAlert)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
