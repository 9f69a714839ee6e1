package api

import (
	"errors"
	"log"

	"github.com/findhomy/backend/config"
	"github.com/findhomy/backend/infra/queue"
	"github.com/findhomy/backend/internal/api/rest/handlers"
	"github.com/findhomy/backend/internal/domain"
	"github.com/findhomy/backend/internal/helper"
	"github.com/findhomy/backend/internal/interfaces"
	"github.com/findhomy/backend/internal/repository"
	"github.com/findhomy/backend/internal/services"
	"github.com/findhomy/backend/pkg/cloudinary"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Dependencies carries everything the route layer needs. Tests build one
// with an in-memory database and fakes for the external collaborators.
type Dependencies struct {
	DB        *gorm.DB
	Auth      helper.Auth
	Uploader  interfaces.Uploader
	Producer  interfaces.ProducerHandler
	ClientURL string
}

// NewApp wires repositories, services and handlers onto a fiber app.
func NewApp(deps Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: helper.ErrorHandler,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: deps.ClientURL,
		AllowHeaders: "Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	// ---------- Repositories ----------
	userRepo := repository.NewUserRepository(deps.DB)
	adminRepo := repository.NewAdminRepository(deps.DB)
	propertyRepo := repository.NewPropertyRepository(deps.DB)
	commentRepo := repository.NewCommentRepository(deps.DB)
	meetingRepo := repository.NewMeetingRepository(deps.DB)
	reportRepo := repository.NewReportRepository(deps.DB)

	// ---------- Services ----------
	authSvc := services.NewAuthService(userRepo, adminRepo, deps.Auth)
	userSvc := services.NewUserService(userRepo, deps.Auth, deps.Uploader, deps.Producer)
	propertySvc := services.NewPropertyService(propertyRepo, deps.Uploader)
	commentSvc := services.NewCommentService(commentRepo, propertyRepo)
	meetingSvc := services.NewMeetingService(meetingRepo, propertyRepo)
	reportSvc := services.NewReportService(reportRepo, userRepo, commentRepo)
	adminSvc := services.NewAdminService(userRepo, propertyRepo, commentRepo, reportRepo)

	// ---------- Handlers ----------
	handlers.NewUserHandler(userSvc, authSvc, deps.Auth).SetupRoutes(app)
	handlers.NewPropertyHandler(propertySvc, deps.Auth).SetupRoutes(app)
	handlers.NewCommentHandler(commentSvc, deps.Auth).SetupRoutes(app)
	handlers.NewMeetingHandler(meetingSvc, deps.Auth).SetupRoutes(app)
	handlers.NewReportHandler(reportSvc, deps.Auth).SetupRoutes(app)
	handlers.NewAdminHandler(adminSvc, deps.Auth).SetupRoutes(app)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"hello": "hello"})
	})

	return app
}

func StartServer(cfg config.Config) {
	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Println("database connected")

	if err := Migrate(db); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	log.Println("migration successful")

	auth := helper.SetupAuth(cfg.JWTSecret)
	seedAdmin(db, auth, cfg.AdminEmail, cfg.AdminPassword)

	// ---------- Infra ----------
	kafkaProducer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
	)
	cld, err := cloudinary.New()
	if err != nil {
		log.Fatalf("cloudinary init error: %v", err)
	}

	app := NewApp(Dependencies{
		DB:        db,
		Auth:      auth,
		Uploader:  cloudinary.NewCloudinaryUploader(cld),
		Producer:  kafkaProducer,
		ClientURL: cfg.ClientURL,
	})

	addr := cfg.ServerPort
	log.Println("listening on", addr)
	log.Fatal(app.Listen(addr))
}

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Admin{},
		&domain.Property{},
		&domain.Comment{},
		&domain.Meeting{},
		&domain.ReportComment{},
		&domain.ReportUser{},
	)
}

func seedAdmin(db *gorm.DB, auth helper.Auth, email, password string) {
	if email == "" || password == "" {
		return
	}

	var existing domain.Admin
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("seed admin lookup error: %v", err)
		return
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		log.Printf("seed admin hash error: %v", err)
		return
	}
	if err := db.Create(&domain.Admin{Email: email, PasswordHash: hashed}).Error; err != nil {
		log.Printf("seed admin create error: %v", err)
	}
}
