package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/home-services-api/infrastructure/database/postgres"
	"github.com/vfg2006/home-services-api/internal/domain"
)

type BookingRepository interface {
	CreateBooking(booking *domain.Booking) (*domain.Booking, error)
	GetBookingByID(bookingID int) (*domain.Booking, error)
	ListBookings(filters *domain.BookingFilters) ([]*domain.Booking, error)
	UpdateBooking(booking *domain.Booking) error
	UpdateBookingStatus(bookingID int, status domain.BookingStatus) error
	CancelStaleRequested(maxAgeDays int) (int64, error)
}

type bookingRepository struct {
	conn *postgres.Connection
}

func NewBookingRepository(conn *postgres.Connection) BookingRepository {
	return &bookingRepository{
		conn: conn,
	}
}

const bookingColumns = "b.id, b.reference, b.customer_id, b.service_id, b.vendor_id, " +
	"b.status, b.price, b.booked_at, b.scheduled_at, b.created_at, b.updated_at"

func (r *bookingRepository) CreateBooking(booking *domain.Booking) (*domain.Booking, error) {
	query, args, err := squirrel.
		Insert("bookings").
		Columns("reference", "customer_id", "service_id", "vendor_id", "status", "price", "booked_at", "scheduled_at").
		Values(
			booking.Reference,
			booking.CustomerID,
			booking.ServiceID,
			booking.VendorID,
			booking.Status,
			booking.Price,
			booking.BookedAt,
			booking.ScheduledAt,
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir agendamento: %w", err)
	}

	return booking, nil
}

func (r *bookingRepository) GetBookingByID(bookingID int) (*domain.Booking, error) {
	query, args, err := squirrel.
		Select(bookingColumns).
		From(bookingsTable).
		Where(squirrel.Eq{"b.id": bookingID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	booking, err := scanBooking(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear agendamento: %w", err)
	}

	return booking, nil
}

func (r *bookingRepository) ListBookings(filters *domain.BookingFilters) ([]*domain.Booking, error) {
	queryBuilder := squirrel.
		Select(bookingColumns).
		From(bookingsTable).
		OrderBy("b.booked_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filters != nil {
		if filters.CustomerID != nil {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"b.customer_id": *filters.CustomerID})
		}
		if filters.VendorID != nil {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"b.vendor_id": *filters.VendorID})
		}
		if filters.Status != nil {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"b.status": *filters.Status})
		}
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear agendamento: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) UpdateBooking(booking *domain.Booking) error {
	queryBuilder := squirrel.
		Update("bookings").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID})

	if booking.VendorID != nil {
		queryBuilder = queryBuilder.Set("vendor_id", *booking.VendorID)
	}

	if !booking.Price.IsZero() {
		queryBuilder = queryBuilder.Set("price", booking.Price)
	}

	if booking.ScheduledAt != nil {
		queryBuilder = queryBuilder.Set("scheduled_at", *booking.ScheduledAt)
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar agendamento: %w", err)
	}

	return nil
}

// UpdateBookingStatus grava o novo status. A validação de transição acontece
// no usecase de agendamentos, não aqui.
func (r *bookingRepository) UpdateBookingStatus(bookingID int, status domain.BookingStatus) error {
	query, args, err := squirrel.
		Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": bookingID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar status do agendamento: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// CancelStaleRequested cancela agendamentos "requested" mais antigos que o
// limite informado. Usado pelo job de expiração.
func (r *bookingRepository) CancelStaleRequested(maxAgeDays int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -maxAgeDays)

	query, args, err := squirrel.
		Update("bookings").
		Set("status", domain.BookingStatusCancelled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": domain.BookingStatusRequested}).
		Where(squirrel.Lt{"booked_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao cancelar agendamentos expirados: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	booking := &domain.Booking{}

	err := row.Scan(
		&booking.ID,
		&booking.Reference,
		&booking.CustomerID,
		&booking.ServiceID,
		&booking.VendorID,
		&booking.Status,
		&booking.Price,
		&booking.BookedAt,
		&booking.ScheduledAt,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return booking, nil
}
