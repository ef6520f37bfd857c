package repository

import (
	"context"
	"errors"

	"fieldops/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// ReservationDetails is a reservation row joined with its resource name,
// for the caller-facing listings.
type ReservationDetails struct {
	ID           int64  `json:"id"`
	ResourceID   int64  `json:"resource_id"`
	ResourceName string `json:"resource_name"`
	UserID       int64  `json:"user_id"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
}

// CreateSerialized performs the overlap check and the insert inside one
// transaction, holding the resource row FOR UPDATE so two concurrent calls
// for the same resource cannot both pass the check. On SQLite the lock
// clause is a no-op but the single-writer database serializes anyway.
func (r *ReservationRepository) CreateSerialized(ctx context.Context, res *domain.Reservation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var resource domain.Resource
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&resource, res.ResourceID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var cnt int64
		err = tx.Model(&domain.Reservation{}).
			Where("resource_id = ? AND date = ? AND start_time < ? AND end_time > ?",
				res.ResourceID, res.Date, res.EndTime, res.StartTime).
			Count(&cnt).Error
		if err != nil {
			return err
		}
		if cnt > 0 {
			return ErrOverlap
		}

		return tx.Create(res).Error
	})
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var res domain.Reservation
	err := r.db.WithContext(ctx).First(&res, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Reservation{}, id).Error
}

func (r *ReservationRepository) ListByResource(ctx context.Context, resourceID int64) ([]domain.Reservation, error) {
	var out []domain.Reservation
	err := r.db.WithContext(ctx).
		Where("resource_id = ?", resourceID).
		Order("date ASC, start_time ASC").
		Find(&out).Error
	return out, err
}

func (r *ReservationRepository) ListByUser(ctx context.Context, userID int64) ([]ReservationDetails, error) {
	var out []ReservationDetails
	q := `
SELECT r.id, r.resource_id, res.name AS resource_name, r.user_id, r.date, r.start_time, r.end_time
FROM reservations r
JOIN resources res ON res.id = r.resource_id
WHERE r.user_id = ?
ORDER BY r.date ASC, r.start_time ASC
`
	err := r.db.WithContext(ctx).Raw(q, userID).Scan(&out).Error
	return out, err
}
