package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// TypeReconcileAudit identifies the background reconciliation-audit task.
const TypeReconcileAudit = "reconcile:audit"

// ReconcileAuditPayload names the booking to audit.
type ReconcileAuditPayload struct {
	BookingID string `json:"bookingId"`
}

// NewReconcileAuditTask builds an asynq task that replays the reconciliation
// check for one booking.
func NewReconcileAuditTask(payload ReconcileAuditPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeReconcileAudit, b), nil
}
