package main

import (
	"log"
	"os"

	"pagamentos/internal/adapter/persistence/repository"
	"pagamentos/internal/infrastructure/database"
	"pagamentos/internal/infrastructure/orchestration"
	"pagamentos/internal/infrastructure/payments"
	"pagamentos/internal/saga"

	_ "github.com/joho/godotenv/autoload"
	"go.temporal.io/sdk/worker"
)

func main() {
	db := database.ConnectPostgres()
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}
	repo := repository.NewPaymentGormRepository(db)

	gateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Fatalf("Mercado Pago gateway not configured: %v", err)
	}

	c, err := orchestration.Dial()
	if err != nil {
		log.Fatalf("Failed connecting to Temporal: %v", err)
	}
	defer c.Close()

	taskQueue := orchestration.TaskQueue()
	w := worker.New(c, taskQueue, worker.Options{})
	w.RegisterWorkflow(saga.ProcessPayment)
	w.RegisterActivity(saga.NewActivities(repo, gateway))

	log.Printf("[payment][worker] starting task_queue=%s", taskQueue)
	if err := w.Run(worker.InterruptCh()); err != nil {
		log.Fatalf("Worker stopped: %v", err)
	}
}
