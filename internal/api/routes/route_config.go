package routes

import (
	"Privilege-Backend/internal/api/handlers"
	"Privilege-Backend/internal/middleware"
	"Privilege-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	PointsHandler     handlers.PointsHandler
	RewardHandler     handlers.RewardHandler
	RedemptionHandler handlers.RedemptionHandler
	MilestoneHandler  handlers.MilestoneHandler
	AdminHandler      handlers.AdminHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Points()
	c.Rewards()
	c.Redemptions()
	c.Milestones()
	c.Admin()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/google/login", c.UserHandler.GoogleLogin)
		user.Get("/google/callback", c.UserHandler.GoogleCallback)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Points() {
	points := c.App.Group("/api/v1/points", c.Middleware.AuthMiddleware(c.JWTService))

	points.Get("/transactions", c.PointsHandler.GetTransactions)
	points.Get("/total", c.PointsHandler.GetTotalPoints)
}

func (c *Config) Rewards() {
	rewards := c.App.Group("/api/v1/rewards", c.Middleware.AuthMiddleware(c.JWTService))

	rewards.Get("", c.RewardHandler.GetActiveRewards)
	rewards.Get("/:id", c.RewardHandler.GetReward)
}

func (c *Config) Redemptions() {
	redemptions := c.App.Group("/api/v1/redemptions", c.Middleware.AuthMiddleware(c.JWTService))

	redemptions.Post("", c.RedemptionHandler.CreateRedemption)
	redemptions.Get("", c.RedemptionHandler.GetUserRedemptions)
}

func (c *Config) Milestones() {
	milestones := c.App.Group("/api/v1/milestones", c.Middleware.AuthMiddleware(c.JWTService))

	milestones.Get("", c.MilestoneHandler.GetActiveMilestones)
	milestones.Get("/progress", c.MilestoneHandler.CheckUserMilestones)
}

func (c *Config) Admin() {
	admin := c.App.Group(
		"/api/v1/admin",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.AdminMiddleware(),
	)

	admin.Get("/dashboard", c.AdminHandler.GetDashboardStats)

	admin.Get("/users", c.AdminHandler.GetUsers)
	admin.Patch("/users/:id", c.AdminHandler.UpdateUser)
	admin.Delete("/users/:id", c.AdminHandler.DeleteUser)

	admin.Get("/rewards", c.AdminHandler.GetRewards)
	admin.Post("/rewards", c.AdminHandler.CreateReward)
	admin.Patch("/rewards/:id", c.AdminHandler.UpdateReward)
	admin.Delete("/rewards/:id", c.AdminHandler.DeleteReward)
	admin.Post("/rewards/:id/image", c.AdminHandler.UploadRewardImage)

	admin.Get("/milestones", c.AdminHandler.GetMilestones)
	admin.Post("/milestones", c.AdminHandler.CreateMilestone)
	admin.Patch("/milestones/:id", c.AdminHandler.UpdateMilestone)
	admin.Delete("/milestones/:id", c.AdminHandler.DeleteMilestone)

	admin.Get("/transactions", c.AdminHandler.GetAllTransactions)
	admin.Get("/redemptions", c.AdminHandler.GetAllRedemptions)
	admin.Patch("/redemptions/:id/status", c.AdminHandler.UpdateRedemptionStatus)

	admin.Post("/points", c.AdminHandler.AddPointsToUser)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
