package postgres

import (
	"context"
	"fmt"

	"github.com/citymed/frontdesk-api/internal/model"
)

func (r *queueRepository) Create(ctx context.Context, ins *model.QueueInsert) (int64, error) {
	query := `
		INSERT INTO queue (name, contact, department, doctor_id, token)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	// A zero doctor id means the field was not submitted.
	var doctorID *int
	if ins.DoctorID != 0 {
		doctorID = &ins.DoctorID
	}

	var id int64
	err := r.db.GetContext(ctx, &id, query,
		nullIfEmpty(ins.Name),
		nullIfEmpty(ins.Contact),
		nullIfEmpty(ins.Department),
		doctorID,
		ins.Token,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create queue entry: %w", err)
	}
	return id, nil
}
