package routes

import (
	"log"
	"os"
	"strconv"
	"strings"

	_ "pagamentos/docs" // This will be auto-generated
	"pagamentos/internal/adapter/http/handlers"
	repository2 "pagamentos/internal/adapter/persistence/repository"
	"pagamentos/internal/infrastructure/database"
	"pagamentos/internal/infrastructure/orchestration"
	"pagamentos/internal/infrastructure/payments"
	"pagamentos/internal/usecase"
	"pagamentos/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := defaultPort
	if v, err := strconv.Atoi(os.Getenv("PORT")); err == nil && v > 0 {
		port = v
	}

	err := router.Run(":" + strconv.Itoa(port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	db := database.ConnectPostgres()
	if err := repository2.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	paymentRepo := repository2.NewPaymentGormRepository(db)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	var engine interfaces.IWorkflowEngine
	temporalClient, err := orchestration.Dial()
	if err != nil {
		log.Printf("Temporal client not configured: %v", err)
	} else {
		engine = orchestration.NewTemporalEngine(temporalClient, orchestration.TaskQueue())
	}

	createUseCase := usecase.NewCreatePaymentUseCase(paymentRepo, engine, isSyncWaitEnabled())
	updateUseCase := usecase.NewUpdateStatusUseCase(paymentRepo, paymentGateway, engine)
	queryUseCase := usecase.NewPaymentQueryUseCase(paymentRepo)

	paymentHandler := handlers.NewPaymentHandler(createUseCase, updateUseCase, queryUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

// isSyncWaitEnabled decides whether the create route blocks until the saga
// reaches a terminal state.
func isSyncWaitEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_SYNC_WAIT")))
	switch v {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
