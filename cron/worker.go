package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"nestcare/config"
	"nestcare/services/booking"
	"nestcare/services/tasks"
)

// InitAuditWorker runs the reconciliation-audit worker in the background.
// Every persisted booking gets replayed through the validator shortly after
// creation or requote; mismatches surface in the logs, stored values are
// never corrected.
func InitAuditWorker(svc booking.BookingService) *asynq.Client {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuditDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeReconcileAudit, handleAuditTask(svc))

	go func() {
		log.Println("[AuditWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[AuditWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[AuditWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	return asynq.NewClient(redisOpts)
}

func handleAuditTask(svc booking.BookingService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.ReconcileAuditPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[AuditHandler] invalid payload: %v", err)
			return err
		}

		res, err := svc.AuditBooking(ctx, p.BookingID)
		if err != nil {
			log.Printf("[AuditHandler] audit failed for booking %s: %v", p.BookingID, err)
			return err
		}
		if !res.Passed {
			// The engine already logged the mismatch in detail; this keeps a
			// worker-level trace for the retry history.
			log.Printf("[AuditHandler] reconciliation mismatch on booking %s: %s", p.BookingID, res.Detail)
		}
		return nil
	}
}
