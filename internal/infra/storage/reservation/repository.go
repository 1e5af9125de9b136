package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/ChaletBookingService/internal/domain"
	"github.com/m04kA/ChaletBookingService/pkg/dbmetrics"
	"github.com/m04kA/ChaletBookingService/pkg/psqlbuilder"
)

const table = "reservations"

var columns = []string{
	"id",
	"user_id",
	"chalet_id",
	"start_date",
	"end_date",
	"nights",
	"guest_count",
	"total_price",
	"status",
	"external_id",
	"failure_reason",
	"created_at",
	"updated_at",
}

// Repository репозиторий локальных записей checkout
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет бронирование
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"user_id",
			"chalet_id",
			"start_date",
			"end_date",
			"nights",
			"guest_count",
			"total_price",
			"status",
		).
		Values(
			res.UserID,
			res.ChaletID,
			res.StartDate,
			res.EndDate,
			res.Nights,
			res.GuestCount,
			res.TotalPrice,
			res.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// ListByChalet бронирования шале, опционально по статусу; новые первыми
func (r *Repository) ListByChalet(ctx context.Context, chaletID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"chalet_id": chaletID}).
		OrderBy("start_date DESC", "id DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByChalet - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByChalet - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// ListActiveOverlapping активные бронирования шале, пересекающие [start, end)
// День выезда не занимает шале. Внутри транзакции строки блокируются (FOR UPDATE)
func (r *Repository) ListActiveOverlapping(ctx context.Context, chaletID int64, start, end time.Time) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := overlapQuery(chaletID, start, end, dbmetrics.IsInTransaction(ctx)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// ListActiveFrom активные бронирования шале, которые заканчиваются после from
// Используется для объединения локальных броней с данными площадки
func (r *Repository) ListActiveFrom(ctx context.Context, chaletID int64, from time.Time) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"chalet_id": chaletID}).
		Where(squirrel.Eq{"status": activeStatuses()}).
		Where(squirrel.Gt{"end_date": from}).
		OrderBy("start_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveFrom - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveFrom - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// Confirm переводит pending бронирование в confirmed и сохраняет внешний id
func (r *Repository) Confirm(ctx context.Context, id int64, externalID string) error {
	return r.finalize(ctx, "Confirm", squirrel.Eq{"id": id, "status": domain.ReservationPending},
		map[string]interface{}{
			"status":      domain.ReservationConfirmed,
			"external_id": externalID,
		})
}

// Fail переводит pending бронирование в failed с причиной
func (r *Repository) Fail(ctx context.Context, id int64, reason string) error {
	return r.finalize(ctx, "Fail", squirrel.Eq{"id": id, "status": domain.ReservationPending},
		map[string]interface{}{
			"status":         domain.ReservationFailed,
			"failure_reason": reason,
		})
}

func (r *Repository) finalize(ctx context.Context, op string, where squirrel.Eq, values map[string]interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		SetMap(values).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(where).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s - reservation is missing or not pending", ErrInvalidStatus, op)
	}

	return nil
}

func overlapQuery(chaletID int64, start, end time.Time, lock bool) squirrel.SelectBuilder {
	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"chalet_id": chaletID}).
		Where(squirrel.Eq{"status": activeStatuses()}).
		Where(squirrel.Lt{"start_date": end}).
		Where(squirrel.Gt{"end_date": start}).
		OrderBy("start_date ASC")

	if lock {
		builder = builder.Suffix("FOR UPDATE")
	}
	return builder
}

func activeStatuses() []string {
	statuses := make([]string, len(domain.ActiveReservationStatuses))
	for i, s := range domain.ActiveReservationStatuses {
		statuses[i] = string(s)
	}
	return statuses
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var externalID, failureReason sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.UserID,
		&res.ChaletID,
		&res.StartDate,
		&res.EndDate,
		&res.Nights,
		&res.GuestCount,
		&res.TotalPrice,
		&res.Status,
		&externalID,
		&failureReason,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if externalID.Valid {
		res.ExternalID = &externalID.String
	}
	if failureReason.Valid {
		res.FailureReason = &failureReason.String
	}
	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

// scanReservations сканирует результаты запроса в слайс бронирований
func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
