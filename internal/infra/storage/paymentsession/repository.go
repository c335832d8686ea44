package paymentsession

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SportBookingService/internal/domain"
	"github.com/m04kA/SMC-SportBookingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SportBookingService/pkg/types"
)

var sessionColumns = []string{
	"transaction_id",
	"booking_id",
	"user_id",
	"method",
	"state",
	"amount",
	"facility_id",
	"facility_name",
	"sport_type",
	"court_id",
	"court_name",
	"booking_date",
	"time_slots",
	"pay_url",
	"failure_reason",
	"finalize_warning",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с платежными сессиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория платежных сессий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую платежную сессию
func (r *Repository) Create(ctx context.Context, session *domain.PaymentSession) (*domain.PaymentSession, error) {
	query, args, err := psqlbuilder.Insert("payment_sessions").
		Columns(
			"transaction_id",
			"booking_id",
			"user_id",
			"method",
			"state",
			"amount",
			"facility_id",
			"facility_name",
			"sport_type",
			"court_id",
			"court_name",
			"booking_date",
			"time_slots",
			"pay_url",
			"failure_reason",
			"finalize_warning",
		).
		Values(
			session.TransactionID,
			session.BookingID,
			session.UserID,
			session.Method,
			session.State,
			session.Amount,
			session.FacilityID,
			session.FacilityName,
			session.SportType,
			session.CourtID,
			session.CourtName,
			session.Date,
			session.JoinSlots(),
			session.PayURL,
			session.FailureReason,
			session.FinalizeWarning,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	session.CreatedAt = createdAt.Time
	session.UpdatedAt = updatedAt.Time

	return session, nil
}

// GetByTransactionID получает платежную сессию по идентификатору транзакции
func (r *Repository) GetByTransactionID(ctx context.Context, transactionID string) (*domain.PaymentSession, error) {
	query, args, err := psqlbuilder.Select(sessionColumns...).
		From("payment_sessions").
		Where(squirrel.Eq{"transaction_id": transactionID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByTransactionID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanSession(r.db.QueryRowContext(ctx, query, args...), "GetByTransactionID")
}

// GetLatestByBookingID получает последнюю по времени создания сессию бронирования.
// У одного бронирования может быть несколько сессий: каждая новая попытка
// оплаты после терминальной создает новую транзакцию.
func (r *Repository) GetLatestByBookingID(ctx context.Context, bookingID int64) (*domain.PaymentSession, error) {
	query, args, err := psqlbuilder.Select(sessionColumns...).
		From("payment_sessions").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetLatestByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanSession(r.db.QueryRowContext(ctx, query, args...), "GetLatestByBookingID")
}

// ListByUserID получает список платежных сессий пользователя (сначала новые)
func (r *Repository) ListByUserID(ctx context.Context, userID int64) ([]*domain.PaymentSession, error) {
	query, args, err := psqlbuilder.Select(sessionColumns...).
		From("payment_sessions").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	sessions := make([]*domain.PaymentSession, 0)
	for rows.Next() {
		session, err := r.scanSessionRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByUserID - scan row: %v", ErrScanRow, err)
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByUserID - rows error: %v", ErrScanRow, err)
	}

	return sessions, nil
}

// UpdateState обновляет состояние платежной сессии
func (r *Repository) UpdateState(ctx context.Context, transactionID string, state domain.PaymentState, failureReason *string) error {
	updateBuilder := psqlbuilder.Update("payment_sessions").
		Set("state", state).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"transaction_id": transactionID})

	if failureReason != nil {
		updateBuilder = updateBuilder.Set("failure_reason", *failureReason)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateState - build update query: %v", ErrBuildQuery, err)
	}

	return r.execOne(ctx, query, args, "UpdateState")
}

// SetMethod фиксирует выбранный способ оплаты и, для кошелька, ссылку на оплату
func (r *Repository) SetMethod(ctx context.Context, transactionID string, method domain.PaymentMethod, payURL *string) error {
	updateBuilder := psqlbuilder.Update("payment_sessions").
		Set("method", method).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"transaction_id": transactionID})

	if payURL != nil {
		updateBuilder = updateBuilder.Set("pay_url", *payURL)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetMethod - build update query: %v", ErrBuildQuery, err)
	}

	return r.execOne(ctx, query, args, "SetMethod")
}

// SetFinalizeWarning записывает предупреждение о неудачной финализации бронирования.
// Платеж при этом остается успешным.
func (r *Repository) SetFinalizeWarning(ctx context.Context, transactionID string, warning string) error {
	query, args, err := psqlbuilder.Update("payment_sessions").
		Set("finalize_warning", warning).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"transaction_id": transactionID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetFinalizeWarning - build update query: %v", ErrBuildQuery, err)
	}

	return r.execOne(ctx, query, args, "SetFinalizeWarning")
}

func (r *Repository) execOne(ctx context.Context, query string, args []interface{}, op string) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// rowScanner объединяет *sql.Row и *sql.Rows для общего кода сканирования
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanSession(row *sql.Row, op string) (*domain.PaymentSession, error) {
	session, err := r.scanSessionRow(row)
	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan session: %v", ErrScanRow, op, err)
	}
	return session, nil
}

func (r *Repository) scanSessionRow(row rowScanner) (*domain.PaymentSession, error) {
	var session domain.PaymentSession
	var timeSlots string
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&session.TransactionID,
		&session.BookingID,
		&session.UserID,
		&session.Method,
		&session.State,
		&session.Amount,
		&session.FacilityID,
		&session.FacilityName,
		&session.SportType,
		&session.CourtID,
		&session.CourtName,
		&session.Date,
		&timeSlots,
		&session.PayURL,
		&session.FailureReason,
		&session.FinalizeWarning,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	session.Slots = splitSlots(timeSlots)
	session.CreatedAt = createdAt.Time
	session.UpdatedAt = updatedAt.Time

	return &session, nil
}

// splitSlots разбирает сохраненный список слотов ("16:00,17:00")
func splitSlots(raw string) []types.TimeString {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	slots := make([]types.TimeString, 0, len(parts))
	for _, p := range parts {
		slots = append(slots, types.TimeString(strings.TrimSpace(p)))
	}
	return slots
}
