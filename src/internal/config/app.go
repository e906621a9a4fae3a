package config

import (
	"umroh-service/src/internal/delivery/http"
	"umroh-service/src/internal/delivery/http/middleware"
	"umroh-service/src/internal/delivery/http/route"
	"umroh-service/src/internal/gateway/messaging"
	"umroh-service/src/internal/jobs"
	"umroh-service/src/internal/repository"
	"umroh-service/src/internal/usecase"
	"umroh-service/src/pkg/databases/mysql"
	kafkaPkgConfluent "umroh-service/src/pkg/kafka/confluent"
	"umroh-service/src/pkg/log"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
)

type BootstrapConfig struct {
	DB       mysql.DBInterface
	App      *fiber.App
	Log      log.Log
	Validate *validator.Validate
	Config   *viper.Viper
	Producer kafkaPkgConfluent.Producer
	Redis    redis.UniversalClient
	Async    *asynq.ServeMux
}

func Bootstrap(config *BootstrapConfig) {
	// setup repositories
	bookingRepository := repository.NewBookingRepository(config.DB)
	paymentRepository := repository.NewPaymentRepository(config.DB)
	pilgrimRepository := repository.NewPilgrimRepository(config.DB)
	packageRepository := repository.NewPackageRepository(config.DB)
	departureRepository := repository.NewDepartureRepository(config.DB)
	commissionRepository := repository.NewCommissionRepository(config.DB)
	agentRepository := repository.NewAgentRepository(config.DB)
	branchRepository := repository.NewBranchRepository(config.DB)
	profileRepository := repository.NewProfileRepository(config.DB)
	notificationRepository := repository.NewNotificationRepository(config.DB)
	userRepository := repository.NewUserRepository(config.DB)
	testimonialRepository := repository.NewTestimonialRepository(config.DB)
	faqRepository := repository.NewFaqRepository(config.DB)

	var notificationProducer *messaging.NotificationProducer
	if config.Producer != nil {
		notificationProducer = messaging.NewNotificationProducer(config.Producer, config.Log)
	}

	// setup use cases
	commissionUseCase := usecase.NewCommissionUseCase(
		config.Log,
		config.Validate,
		bookingRepository,
		pilgrimRepository,
		commissionRepository,
		packageRepository,
		agentRepository,
		branchRepository,
		profileRepository,
		config.Config,
		config.Redis,
	)

	reminderUseCase := usecase.NewReminderUseCase(
		config.Log,
		bookingRepository,
		paymentRepository,
		packageRepository,
		departureRepository,
		notificationRepository,
		notificationProducer,
		config.Config,
		config.Redis,
	)

	authUseCase := usecase.NewAuthUseCase(config.Log, config.Validate, userRepository, config.Config)
	catalogUseCase := usecase.NewCatalogUseCase(
		config.Log,
		config.Validate,
		packageRepository,
		commissionRepository,
		agentRepository,
		bookingRepository,
	)
	contentUseCase := usecase.NewContentUseCase(
		config.Log,
		packageRepository,
		departureRepository,
		testimonialRepository,
		faqRepository,
	)
	notificationUseCase := usecase.NewNotificationUseCase(config.Log, config.Validate, notificationRepository)

	// setup controller
	authController := http.NewAuthController(authUseCase, config.Log)
	reportController := http.NewReportController(commissionUseCase, config.Log)
	jobController := http.NewJobController(reminderUseCase, config.Log)
	catalogController := http.NewCatalogController(catalogUseCase, config.Log)
	contentController := http.NewContentController(contentUseCase, config.Log)
	notificationController := http.NewNotificationController(notificationUseCase, config.Log)

	// setup middleware
	authMiddleware := middleware.VerifyBearer(config.Config)

	reminderTask := jobs.NewReminderTask(reminderUseCase, config.Log)
	config.Async.HandleFunc(jobs.TypeReminderSweep, reminderTask.HandleSweep)

	routeConfig := route.RouteConfig{
		App:                    config.App,
		AuthController:         authController,
		ReportController:       reportController,
		JobController:          jobController,
		CatalogController:      catalogController,
		ContentController:      contentController,
		NotificationController: notificationController,
		AuthMiddleware:         authMiddleware,
	}
	routeConfig.Setup()
}
