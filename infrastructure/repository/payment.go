package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/home-services-api/infrastructure/database/postgres"
	"github.com/vfg2006/home-services-api/internal/domain"
)

type PaymentRepository interface {
	CreatePayment(payment *domain.Payment) (*domain.Payment, error)
	GetPaymentByID(paymentID int) (*domain.Payment, error)
	ListPaymentsByBooking(bookingID int) ([]*domain.Payment, error)
	UpdatePaymentStatus(paymentID int, status domain.PaymentStatus) error
}

type paymentRepository struct {
	conn *postgres.Connection
}

func NewPaymentRepository(conn *postgres.Connection) PaymentRepository {
	return &paymentRepository{
		conn: conn,
	}
}

const paymentColumns = "p.id, p.amount, p.currency, p.status, p.booking_id, p.payer_id, p.payee_id, p.created_at"

func (r *paymentRepository) CreatePayment(payment *domain.Payment) (*domain.Payment, error) {
	query, args, err := squirrel.
		Insert("payments").
		Columns("amount", "currency", "status", "booking_id", "payer_id", "payee_id").
		Values(
			payment.Amount,
			payment.Currency,
			payment.Status,
			payment.BookingID,
			payment.PayerID,
			payment.PayeeID,
		).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&payment.ID, &payment.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao inserir pagamento: %w", err)
	}

	return payment, nil
}

func (r *paymentRepository) GetPaymentByID(paymentID int) (*domain.Payment, error) {
	query, args, err := squirrel.
		Select(paymentColumns).
		From(paymentsTable).
		Where(squirrel.Eq{"p.id": paymentID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	payment, err := scanPayment(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear pagamento: %w", err)
	}

	return payment, nil
}

func (r *paymentRepository) ListPaymentsByBooking(bookingID int) ([]*domain.Payment, error) {
	query, args, err := squirrel.
		Select(paymentColumns).
		From(paymentsTable).
		Where(squirrel.Eq{"p.booking_id": bookingID}).
		OrderBy("p.created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	payments := make([]*domain.Payment, 0)
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear pagamento: %w", err)
		}
		payments = append(payments, payment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return payments, nil
}

func (r *paymentRepository) UpdatePaymentStatus(paymentID int, status domain.PaymentStatus) error {
	query, args, err := squirrel.
		Update("payments").
		Set("status", status).
		Where(squirrel.Eq{"id": paymentID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar status do pagamento: %w", err)
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

func scanPayment(row rowScanner) (*domain.Payment, error) {
	payment := &domain.Payment{}

	err := row.Scan(
		&payment.ID,
		&payment.Amount,
		&payment.Currency,
		&payment.Status,
		&payment.BookingID,
		&payment.PayerID,
		&payment.PayeeID,
		&payment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return payment, nil
}
