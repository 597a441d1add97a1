package config

import (
	"Privilege-Backend/internal/api/handlers"
	"Privilege-Backend/internal/api/routes"
	"Privilege-Backend/internal/middleware"
	"Privilege-Backend/internal/utils"
	"Privilege-Backend/internal/utils/storage"
	"Privilege-Backend/pkg/admin"
	"Privilege-Backend/pkg/jwt"
	"Privilege-Backend/pkg/milestone"
	"Privilege-Backend/pkg/oauth"
	"Privilege-Backend/pkg/points"
	"Privilege-Backend/pkg/redemption"
	"Privilege-Backend/pkg/reward"
	"Privilege-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Bangkok",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	pointsRepository := points.NewPointsRepository(db)
	rewardRepository := reward.NewRewardRepository(db)
	redemptionRepository := redemption.NewRedemptionRepository(db)
	milestoneRepository := milestone.NewMilestoneRepository(db)
	adminRepository := admin.NewAdminRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	googleService := oauth.NewGoogleService()
	userService := user.NewUserService(userRepository, jwtService)
	pointsService := points.NewPointsService(pointsRepository)
	rewardService := reward.NewRewardService(rewardRepository)
	redemptionService := redemption.NewRedemptionService(
		redemptionRepository,
		rewardRepository,
		userRepository,
	)
	milestoneService := milestone.NewMilestoneService(milestoneRepository)
	adminService := admin.NewAdminService(
		adminRepository,
		pointsService,
		redemptionService,
		s3,
	)

	// Handler
	userHandler := handlers.NewUserHandler(userService, googleService, validator, jwtService)
	pointsHandler := handlers.NewPointsHandler(pointsService)
	rewardHandler := handlers.NewRewardHandler(rewardService)
	redemptionHandler := handlers.NewRedemptionHandler(redemptionService, validator)
	milestoneHandler := handlers.NewMilestoneHandler(milestoneService, userService)
	adminHandler := handlers.NewAdminHandler(adminService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		PointsHandler:     pointsHandler,
		RewardHandler:     rewardHandler,
		RedemptionHandler: redemptionHandler,
		MilestoneHandler:  milestoneHandler,
		AdminHandler:      adminHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
