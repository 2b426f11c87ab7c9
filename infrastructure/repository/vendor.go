package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/home-services-api/infrastructure/database/postgres"
	"github.com/vfg2006/home-services-api/internal/domain"
)

type VendorRepository interface {
	CreateVendor(vendor *domain.Vendor) (*domain.Vendor, error)
	GetVendorByID(vendorID int) (*domain.Vendor, error)
	ListVendors() ([]*domain.Vendor, error)
	UpdateVendor(vendor *domain.Vendor) error
	DeleteVendor(vendorID int) error
	RecomputeTotalJobs() (int64, error)
}

type vendorRepository struct {
	conn *postgres.Connection
}

func NewVendorRepository(conn *postgres.Connection) VendorRepository {
	return &vendorRepository{
		conn: conn,
	}
}

func (r *vendorRepository) CreateVendor(vendor *domain.Vendor) (*domain.Vendor, error) {
	query, args, err := squirrel.
		Insert("vendors").
		Columns("company_name", "contact_name", "phone", "email", "services_offered", "active").
		Values(
			vendor.CompanyName,
			vendor.ContactName,
			vendor.Phone,
			vendor.Email,
			pq.Array(vendor.ServicesOffered),
			vendor.Active,
		).
		Suffix("RETURNING id, total_jobs, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(
		&vendor.ID,
		&vendor.TotalJobs,
		&vendor.CreatedAt,
		&vendor.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao inserir fornecedor: %w", err)
	}

	return vendor, nil
}

func (r *vendorRepository) GetVendorByID(vendorID int) (*domain.Vendor, error) {
	query, args, err := squirrel.
		Select("v.id", "v.company_name", "v.contact_name", "v.phone", "v.email",
			"v.total_jobs", "v.services_offered", "v.active", "v.created_at", "v.updated_at").
		From(vendorsTable).
		Where(squirrel.Eq{"v.id": vendorID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	vendor, err := scanVendor(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear fornecedor: %w", err)
	}

	return vendor, nil
}

func (r *vendorRepository) ListVendors() ([]*domain.Vendor, error) {
	query, args, err := squirrel.
		Select("v.id", "v.company_name", "v.contact_name", "v.phone", "v.email",
			"v.total_jobs", "v.services_offered", "v.active", "v.created_at", "v.updated_at").
		From(vendorsTable).
		OrderBy("v.company_name ASC").
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

	vendors := make([]*domain.Vendor, 0)
	for rows.Next() {
		vendor, err := scanVendor(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear fornecedor: %w", err)
		}
		vendors = append(vendors, vendor)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return vendors, nil
}

func (r *vendorRepository) UpdateVendor(vendor *domain.Vendor) error {
	queryBuilder := squirrel.
		Update("vendors").
		Set("active", vendor.Active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": vendor.ID})

	if vendor.CompanyName != "" {
		queryBuilder = queryBuilder.Set("company_name", vendor.CompanyName)
	}

	if vendor.ContactName != "" {
		queryBuilder = queryBuilder.Set("contact_name", vendor.ContactName)
	}

	if vendor.Phone != "" {
		queryBuilder = queryBuilder.Set("phone", vendor.Phone)
	}

	if vendor.Email != "" {
		queryBuilder = queryBuilder.Set("email", vendor.Email)
	}

	if vendor.ServicesOffered != nil {
		queryBuilder = queryBuilder.Set("services_offered", pq.Array(vendor.ServicesOffered))
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar fornecedor: %w", err)
	}

	return nil
}

func (r *vendorRepository) DeleteVendor(vendorID int) error {
	query, args, err := squirrel.
		Delete("vendors").
		Where(squirrel.Eq{"id": vendorID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao remover fornecedor: %w", err)
	}

	return nil
}

// RecomputeTotalJobs recalcula o contador total_jobs de todos os fornecedores
// a partir dos agendamentos concluídos. Usado pelo job de manutenção.
func (r *vendorRepository) RecomputeTotalJobs() (int64, error) {
	result, err := r.conn.Exec(`
		UPDATE vendors v SET
			total_jobs = sub.completed,
			updated_at = NOW()
		FROM (
			SELECT v2.id, COUNT(b.id) FILTER (WHERE b.status = 'completed') AS completed
			FROM vendors v2
			LEFT JOIN bookings b ON b.vendor_id = v2.id
			GROUP BY v2.id
		) sub
		WHERE sub.id = v.id AND v.total_jobs <> sub.completed
	`)
	if err != nil {
		return 0, fmt.Errorf("erro ao recalcular total_jobs: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func scanVendor(row rowScanner) (*domain.Vendor, error) {
	vendor := &domain.Vendor{}

	err := row.Scan(
		&vendor.ID,
		&vendor.CompanyName,
		&vendor.ContactName,
		&vendor.Phone,
		&vendor.Email,
		&vendor.TotalJobs,
		pq.Array(&vendor.ServicesOffered),
		&vendor.Active,
		&vendor.CreatedAt,
		&vendor.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return vendor, nil
}
