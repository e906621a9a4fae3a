package route

import (
	"umroh-service/src/internal/delivery/http"
	"umroh-service/src/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type RouteConfig struct {
	App                    *fiber.App
	AuthController         *http.AuthController
	ReportController       *http.ReportController
	JobController          *http.JobController
	CatalogController      *http.CatalogController
	ContentController      *http.ContentController
	NotificationController *http.NotificationController
	AuthMiddleware         fiber.Handler
}

func (c *RouteConfig) Setup() {
	c.App.Use(middleware.NewLogger())
	c.App.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})
	c.SetupGuestRoute()
	c.SetupJobRoute()
	c.SetupAuthRoute()
	c.SetupAdminRoute()
}

func (c *RouteConfig) SetupGuestRoute() {
	c.App.Post("/auth/v1/login", c.AuthController.Login)

	public := c.App.Group("/public/v1")
	public.Get("/packages", c.ContentController.ListPackages)
	public.Get("/packages/:id", c.ContentController.GetPackage)
	public.Get("/testimonials", c.ContentController.ListTestimonials)
	public.Get("/faqs", c.ContentController.ListFaqs)
}

// SetupJobRoute exposes the reminder sweep to the external scheduler. The
// scheduler performs a CORS preflight, so the group answers OPTIONS with an
// empty 200 and permissive headers.
func (c *RouteConfig) SetupJobRoute() {
	jobs := c.App.Group("/jobs/v1", cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "POST,OPTIONS",
		AllowHeaders: "Authorization,Content-Type",
	}))
	jobs.Post("/reminder-sweep", c.JobController.ReminderSweep)
}

func (c *RouteConfig) SetupAuthRoute() {
	users := c.App.Group("/users/v1", c.AuthMiddleware)
	users.Get("/profile", c.AuthController.GetProfile)
	users.Get("/notifications", c.NotificationController.List)
	users.Patch("/notifications/:id/read", c.NotificationController.MarkRead)
}

func (c *RouteConfig) SetupAdminRoute() {
	admin := c.App.Group("/admin/v1", c.AuthMiddleware, middleware.RequireAdmin())
	admin.Post("/reports/commissions", c.ReportController.CommissionReport)
	admin.Get("/packages", c.CatalogController.ListPackages)
	admin.Post("/packages", c.CatalogController.CreatePackage)
	admin.Put("/packages/:id", c.CatalogController.UpdatePackage)
	admin.Get("/packages/:id/commissions", c.CatalogController.ListCommissionRates)
	admin.Post("/commissions", c.CatalogController.UpsertCommissionRate)
	admin.Get("/agents", c.CatalogController.ListAgents)
	admin.Post("/agents", c.CatalogController.CreateAgent)
	admin.Get("/bookings", c.CatalogController.ListBookings)
}
