package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/home-services-api/infrastructure/database/postgres"
	"github.com/vfg2006/home-services-api/internal/domain"
)

const inspectionsTable = "inspections i"

type InspectionRepository interface {
	CreateInspection(inspection *domain.Inspection) (*domain.Inspection, error)
	GetInspectionByID(inspectionID int) (*domain.Inspection, error)
	ListInspectionsByBooking(bookingID int) ([]*domain.Inspection, error)
	UpdateInspection(inspection *domain.Inspection) error
	DeleteInspection(inspectionID int) error
}

type inspectionRepository struct {
	conn *postgres.Connection
}

func NewInspectionRepository(conn *postgres.Connection) InspectionRepository {
	return &inspectionRepository{
		conn: conn,
	}
}

const inspectionColumns = "i.id, i.reference, i.booking_id, i.rm_user_id, i.status, i.scheduled_at, i.notes, i.created_at, i.updated_at"

func (r *inspectionRepository) CreateInspection(inspection *domain.Inspection) (*domain.Inspection, error) {
	query, args, err := squirrel.
		Insert("inspections").
		Columns("reference", "booking_id", "rm_user_id", "status", "scheduled_at", "notes").
		Values(
			inspection.Reference,
			inspection.BookingID,
			inspection.RMUserID,
			inspection.Status,
			inspection.ScheduledAt,
			inspection.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&inspection.ID, &inspection.CreatedAt, &inspection.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir vistoria: %w", err)
	}

	return inspection, nil
}

func (r *inspectionRepository) GetInspectionByID(inspectionID int) (*domain.Inspection, error) {
	query, args, err := squirrel.
		Select(inspectionColumns).
		From(inspectionsTable).
		Where(squirrel.Eq{"i.id": inspectionID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	inspection, err := scanInspection(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear vistoria: %w", err)
	}

	return inspection, nil
}

func (r *inspectionRepository) ListInspectionsByBooking(bookingID int) ([]*domain.Inspection, error) {
	query, args, err := squirrel.
		Select(inspectionColumns).
		From(inspectionsTable).
		Where(squirrel.Eq{"i.booking_id": bookingID}).
		OrderBy("i.scheduled_at ASC").
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

	inspections := make([]*domain.Inspection, 0)
	for rows.Next() {
		inspection, err := scanInspection(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear vistoria: %w", err)
		}
		inspections = append(inspections, inspection)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return inspections, nil
}

func (r *inspectionRepository) UpdateInspection(inspection *domain.Inspection) error {
	queryBuilder := squirrel.
		Update("inspections").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": inspection.ID})

	if inspection.RMUserID != nil {
		queryBuilder = queryBuilder.Set("rm_user_id", *inspection.RMUserID)
	}

	if inspection.Status != "" {
		queryBuilder = queryBuilder.Set("status", inspection.Status)
	}

	if !inspection.ScheduledAt.IsZero() {
		queryBuilder = queryBuilder.Set("scheduled_at", inspection.ScheduledAt)
	}

	if inspection.Notes != "" {
		queryBuilder = queryBuilder.Set("notes", inspection.Notes)
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar vistoria: %w", err)
	}

	return nil
}

func (r *inspectionRepository) DeleteInspection(inspectionID int) error {
	query, args, err := squirrel.
		Delete("inspections").
		Where(squirrel.Eq{"id": inspectionID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao remover vistoria: %w", err)
	}

	return nil
}

func scanInspection(row rowScanner) (*domain.Inspection, error) {
	inspection := &domain.Inspection{}

	err := row.Scan(
		&inspection.ID,
		&inspection.Reference,
		&inspection.BookingID,
		&inspection.RMUserID,
		&inspection.Status,
		&inspection.ScheduledAt,
		&inspection.Notes,
		&inspection.CreatedAt,
		&inspection.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return inspection, nil
}
