package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-gateway/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Tickets     *handlers.TicketsHandler
	Notify      *handlers.NotificationsHandler
	Workflows   *handlers.WorkflowsHandler
	Completions *handlers.CompletionsHandler
}

// RegisterRoutes wires HTTP routes. Every endpoint is anonymous.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	api.Post("/create_ticket", cfg.Tickets.CreateTicket)
	api.Post("/get_ticket_status", cfg.Tickets.GetTicketStatus)
	api.Post("/send_notification", cfg.Notify.SendNotification)
	api.Post("/start_provisioning_workflow", cfg.Workflows.StartWorkflow)
	api.Post("/run_gpt4o_advanced", cfg.Completions.RunPrompt)
}
