package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	api.Get("/me", handler.AuthRequired, handler.Me)
	api.Post("/me/password", handler.AuthRequired, handler.ChangePassword)

	cycle := api.Group("/cycle", handler.AuthRequired)
	cycle.Get("", handler.GetCycleEstimate)
	cycle.Post("", handler.LogCycleStart)

	activity := api.Group("/activity", handler.AuthRequired)
	activity.Get("", handler.GetActivitySummary)
	activity.Get("/today", handler.GetActivityToday)
	activity.Post("/:date", handler.RecordActivity)

	bmi := api.Group("/bmi", handler.AuthRequired)
	bmi.Get("", handler.GetBMIHistory)
	bmi.Post("", handler.RecordBMI)

	blog := api.Group("/blog", handler.AuthRequired)
	blog.Get("", handler.ListBlogPosts)
	blog.Get("/:slug", handler.GetBlogPost)
}
