package wire

import (
	"time"

	"Milestone/internal/api"
	"Milestone/internal/api/config"
	"Milestone/internal/api/handler"
	"Milestone/internal/job"
	"Milestone/internal/pkg/cron"
	"Milestone/internal/pkg/mailer"
	"Milestone/internal/repository"
	"Milestone/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router      *gin.Engine
	DB          *gorm.DB
	CronManager *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	metricRepo := repository.NewMetricRepository(db)
	contactRepo := repository.NewContactRepository(db)
	interactionRepo := repository.NewInteractionRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	targetRepo := repository.NewTargetRepository(db)
	emailRepo := repository.NewEmailRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	sender := mailer.New(mailer.Options{
		BaseURL:    cfg.Mail.BaseURL,
		APIKey:     cfg.Mail.APIKey,
		From:       cfg.Mail.From,
		MaxRetries: cfg.Mail.MaxRetries,
		Backoff:    time.Duration(cfg.Mail.BackoffSeconds) * time.Second,
	})

	metricService := service.NewMetricService(metricRepo, goalRepo)
	contactService := service.NewContactService(contactRepo, interactionRepo, metricRepo)
	goalService := service.NewGoalService(goalRepo, metricRepo)
	targetService := service.NewTargetService(targetRepo, goalRepo, metricRepo)
	reportService := service.NewReportService(metricRepo)
	emailService := service.NewEmailService(emailRepo, profileRepo, reportService, sender)

	handlers := &api.HandlersGroup{
		MetricHandler:  handler.NewMetricHandler(metricService),
		ContactHandler: handler.NewContactHandler(contactService),
		GoalHandler:    handler.NewGoalHandler(goalService),
		TargetHandler:  handler.NewTargetHandler(targetService),
		ReportHandler:  handler.NewReportHandler(reportService, emailService),
		EmailHandler:   handler.NewEmailHandler(emailService),
	}

	router := api.SetupRouter(handlers)

	reportEmailJob := job.NewReportEmailJob(emailService)
	cronManager := cron.NewCronManager(reportEmailJob)

	return &ApplicationContainer{
		Router:      router,
		DB:          db,
		CronManager: cronManager,
	}, nil
}
