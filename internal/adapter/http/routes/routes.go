package routes

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	_ "casamento_presentes/docs"
	"casamento_presentes/internal/adapter/http/handlers"
	"casamento_presentes/internal/adapter/persistence/repository"
	"casamento_presentes/internal/infrastructure/config"
	"casamento_presentes/internal/infrastructure/database"
	"casamento_presentes/internal/infrastructure/payments"
	"casamento_presentes/internal/usecase"
	"casamento_presentes/internal/usecase/checkout"
	"casamento_presentes/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	getRoutes(ctx, cfg)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(ctx context.Context, cfg config.Config) {
	baseURL := cfg.APIBaseURL
	probeCtx, cancelProbe := context.WithTimeout(ctx, 10*time.Second)
	if found, err := payments.ProbeBackend(probeCtx, &http.Client{Timeout: 5 * time.Second}, cfg.BackendCandidates()...); err != nil {
		log.Printf("[routes][startup] backend probe failed, keeping %s: %v", baseURL, err)
	} else {
		baseURL = found
	}
	cancelProbe()

	client := payments.NewBackendClient(baseURL, cfg.APIAuthToken, nil)
	gateways, err := payments.NewGateways(cfg, client)
	if err != nil {
		log.Fatalf("Payment gateway not configured: %v", err)
	}

	repo := newPaymentRecordRepository(ctx, cfg)

	checkoutUseCase := checkout.NewCheckoutUseCase(gateways.Payment, gateways.Tokenizer, repo, checkout.Config{
		PollInterval: cfg.PollInterval,
		PollTimeout:  cfg.PollTimeout,
		SessionTTL:   cfg.SessionTTL,
	})
	go checkoutUseCase.Run(ctx, time.Minute)

	paymentUseCase := usecase.NewPaymentUseCase(repo, gateways.Payment)
	hostedUseCase := usecase.NewHostedCheckoutUseCase(gateways.Hosted, repo)

	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	hostedHandler := handlers.NewHostedCheckoutHandler(hostedUseCase, cfg.RedirectURL)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCheckoutRoutes(v1, checkoutHandler)
	addPaymentRoutes(v1, paymentHandler, hostedHandler)
}

// newPaymentRecordRepository returns nil when no ledger is configured or the
// store cannot be opened; the use cases then run without persistence.
func newPaymentRecordRepository(ctx context.Context, cfg config.Config) interfaces.IPaymentRecordRepository {
	switch cfg.PaymentStore {
	case config.StoreDynamoDB:
		ddb, err := database.NewDynamoDBClient(ctx)
		if err != nil {
			log.Printf("[routes][startup] dynamodb unavailable, ledger disabled: %v", err)
			return nil
		}
		if os.Getenv("DYNAMODB_ENDPOINT") != "" {
			indexes := map[string]string{repository.PaymentsGiftIDIndex: "gift_id"}
			if err := database.EnsureTable(ctx, ddb, cfg.PaymentsTable, indexes); err != nil {
				log.Printf("[routes][startup] dynamodb table check failed table=%s: %v", cfg.PaymentsTable, err)
			}
		}
		log.Printf("[routes][startup] payment ledger store=dynamodb table=%s", cfg.PaymentsTable)
		return repository.NewPaymentRecordDynamoRepository(ddb, cfg.PaymentsTable)
	case config.StoreBolt:
		db, err := database.OpenBolt(cfg.BoltPath, repository.BoltPaymentsBucket, repository.BoltGiftIndex)
		if err != nil {
			log.Printf("[routes][startup] bolt unavailable, ledger disabled: %v", err)
			return nil
		}
		go func() {
			<-ctx.Done()
			_ = db.Close()
		}()
		log.Printf("[routes][startup] payment ledger store=bolt path=%s", cfg.BoltPath)
		return repository.NewPaymentRecordBoltRepository(db)
	}
	log.Printf("[routes][startup] payment ledger disabled")
	return nil
}

func setMiddlewares() {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
