package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"ecokart/internal/apperr"
	"ecokart/internal/handler"
	custommw "ecokart/internal/middleware"
	"ecokart/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

type Server struct {
	echo            *echo.Echo
	auth            echo.MiddlewareFunc
	userHandler     *handler.UserHandler
	catalogHandler  *handler.CatalogHandler
	cartHandler     *handler.CartHandler
	checkoutHandler *handler.CheckoutHandler
	rewardsHandler  *handler.RewardsHandler
	sellerHandler   *handler.SellerHandler
	adminHandler    *handler.AdminHandler
	companyHandler  *handler.CompanyHandler
	statsHandler    *handler.StatsHandler
}

type Services struct {
	User     service.UserService
	Catalog  service.CatalogService
	Cart     service.CartService
	Checkout service.CheckoutService
	Order    service.OrderService
	Rewards  service.RewardsService
	Seller   service.SellerService
	Company  service.CompanyService
	Stats    service.StatsService
}

func NewServer(jwtSecret string, svc Services) *Server {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.HTTPErrorHandler = errorHandler

	s := &Server{
		echo:            e,
		auth:            custommw.AuthMiddleware(jwtSecret),
		userHandler:     handler.NewUserHandler(svc.User),
		catalogHandler:  handler.NewCatalogHandler(svc.Catalog),
		cartHandler:     handler.NewCartHandler(svc.Cart),
		checkoutHandler: handler.NewCheckoutHandler(svc.Checkout, svc.Order),
		rewardsHandler:  handler.NewRewardsHandler(svc.Rewards),
		sellerHandler:   handler.NewSellerHandler(svc.Seller),
		adminHandler:    handler.NewAdminHandler(svc.Seller),
		companyHandler:  handler.NewCompanyHandler(svc.Company),
		statsHandler:    handler.NewStatsHandler(svc.Stats),
	}

	s.setupRoutes()
	return s
}

// errorHandler is the single boundary where service errors become HTTP
// statuses; every error body is {"message": ...}.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "internal server error"

	var appErr *apperr.Error
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &appErr):
		status = appErr.Status()
		message = appErr.Message
	case errors.As(err, &httpErr):
		status = httpErr.Code
		message = fmt.Sprint(httpErr.Message)
	case errors.Is(err, gorm.ErrRecordNotFound):
		status = http.StatusNotFound
		message = "not found"
	default:
		c.Logger().Error(err)
	}

	if jsonErr := c.JSON(status, map[string]string{"message": message}); jsonErr != nil {
		c.Logger().Error(jsonErr)
	}
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- public catalog --------
	api.GET("/categories", s.catalogHandler.GetCategories)
	api.GET("/products", s.catalogHandler.GetProducts)
	api.GET("/products/:id", s.catalogHandler.GetProduct)
	api.GET("/stats/global", s.statsHandler.GetGlobalStats)

	// -------- authenticated buyer surface --------
	api.GET("/auth/user", s.userHandler.GetAuthUser, s.auth)

	cart := api.Group("/cart", s.auth)
	cart.POST("", s.cartHandler.AddItem)
	cart.GET("", s.cartHandler.GetItems)
	cart.PUT("/:productId", s.cartHandler.UpdateItem)
	cart.DELETE("/:productId", s.cartHandler.RemoveItem)

	api.POST("/checkout", s.checkoutHandler.Checkout, s.auth)
	api.GET("/orders", s.checkoutHandler.GetOrders, s.auth)
	api.PUT("/orders/:id/status", s.checkoutHandler.UpdateOrderStatus, s.auth)
	api.POST("/donate-points", s.rewardsHandler.DonatePoints, s.auth)

	api.GET("/stats/user", s.statsHandler.GetUserStats, s.auth)
	api.GET("/stats/company", s.statsHandler.GetCompanyStats, s.auth)

	// -------- sellers --------
	sellers := api.Group("/sellers", s.auth)
	sellers.POST("/register", s.sellerHandler.Register)
	sellers.GET("/profile", s.sellerHandler.GetProfile)
	sellers.POST("/products", s.sellerHandler.CreateProduct)
	sellers.GET("/products", s.sellerHandler.GetProducts)
	sellers.PUT("/products/:id", s.sellerHandler.UpdateProduct)
	sellers.DELETE("/products/:id", s.sellerHandler.DeleteProduct)
	sellers.GET("/orders", s.sellerHandler.GetOrders)

	// -------- external reviewer --------
	admin := api.Group("/admin", s.auth)
	admin.PUT("/sellers/:id/verify", s.adminHandler.VerifySeller)
	admin.PUT("/products/:id/verify", s.adminHandler.VerifyProduct)

	// -------- company dashboard --------
	company := api.Group("/company", s.auth)
	company.GET("/profile", s.companyHandler.GetProfile)
	company.GET("/employees", s.companyHandler.GetEmployees)
	company.POST("/employees", s.companyHandler.AddEmployee)
	company.GET("/stats", s.companyHandler.GetStats)
	company.GET("/points-history", s.companyHandler.GetPointsHistory)
	company.POST("/redeem-points", s.companyHandler.RedeemPoints)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
