package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sajiloprint/press-api/internal/domain/entity"
	"github.com/sajiloprint/press-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implements SettingsRepository on PostgreSQL. One row per tenant.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository builds the persistence adapter for tenant settings.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get fetches the tenant's settings row; nil when none exists yet.
func (r *SettingsRepo) Get(adminID string) (*entity.Settings, error) {
	query := `
		SELECT admin_id, press_name, address, phone, pan_no, vat_rate,
			quotation_prefix, estimate_prefix, challan_prefix, job_prefix, updated_at
		FROM settings WHERE admin_id = $1`
	var s entity.Settings
	err := r.q.QueryRow(context.Background(), query, adminID).Scan(
		&s.AdminID, &s.PressName, &s.Address, &s.Phone, &s.PANNo, &s.VATRate,
		&s.QuotationPrefix, &s.EstimatePrefix, &s.ChallanPrefix, &s.JobPrefix, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

// Upsert writes the whole settings record for the tenant.
func (r *SettingsRepo) Upsert(settings *entity.Settings) error {
	query := `
		INSERT INTO settings (admin_id, press_name, address, phone, pan_no, vat_rate,
			quotation_prefix, estimate_prefix, challan_prefix, job_prefix, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (admin_id)
		DO UPDATE SET press_name = EXCLUDED.press_name, address = EXCLUDED.address,
			phone = EXCLUDED.phone, pan_no = EXCLUDED.pan_no, vat_rate = EXCLUDED.vat_rate,
			quotation_prefix = EXCLUDED.quotation_prefix, estimate_prefix = EXCLUDED.estimate_prefix,
			challan_prefix = EXCLUDED.challan_prefix, job_prefix = EXCLUDED.job_prefix,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		settings.AdminID, settings.PressName, settings.Address, settings.Phone, settings.PANNo,
		settings.VATRate, settings.QuotationPrefix, settings.EstimatePrefix, settings.ChallanPrefix,
		settings.JobPrefix, settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}
