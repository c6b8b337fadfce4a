package orderrepo

import (
	"context"
	"time"

	"ordertracker/internal/pkg/errs"

	"gorm.io/gorm/clause"
)

// ConnectivityDocumentID is the fixed key of the diagnostic row.
const ConnectivityDocumentID = "connectivity"

// DiagnosticDTO is the row layout of the diagnostics table.
type DiagnosticDTO struct {
	ID        string `gorm:"primaryKey"`
	Status    string
	CheckedAt time.Time
}

func (DiagnosticDTO) TableName() string {
	return "diagnostics"
}

// CheckConnectivity upserts diagnostics/connectivity. A successful write is
// the proof that the store accepts writes, not just connections.
func (r *GormOrderRepository) CheckConnectivity(ctx context.Context) error {
	dto := DiagnosticDTO{ID: ConnectivityDocumentID, Status: "ok", CheckedAt: time.Now().UTC()}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&dto).Error
	if err != nil {
		return errs.NewStoreFailedError("write diagnostics/connectivity", err)
	}
	return nil
}
