package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/home-services-api/infrastructure/database/postgres"
	"github.com/vfg2006/home-services-api/internal/domain"
)

type ServiceRepository interface {
	CreateService(service *domain.Service) (*domain.Service, error)
	GetServiceByID(serviceID int) (*domain.Service, error)
	ListServices(category string) ([]*domain.Service, error)
	UpdateService(service *domain.Service) error
	DeleteService(serviceID int) error
}

type serviceRepository struct {
	conn *postgres.Connection
}

func NewServiceRepository(conn *postgres.Connection) ServiceRepository {
	return &serviceRepository{
		conn: conn,
	}
}

const serviceColumns = "s.id, s.category, s.sub_category, s.name, s.description, s.price, s.active, s.created_at, s.updated_at"

func (r *serviceRepository) CreateService(service *domain.Service) (*domain.Service, error) {
	query, args, err := squirrel.
		Insert("services").
		Columns("category", "sub_category", "name", "description", "price", "active").
		Values(
			service.Category,
			service.SubCategory,
			service.Name,
			service.Description,
			service.Price,
			service.Active,
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&service.ID, &service.CreatedAt, &service.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir serviço: %w", err)
	}

	return service, nil
}

func (r *serviceRepository) GetServiceByID(serviceID int) (*domain.Service, error) {
	query, args, err := squirrel.
		Select(serviceColumns).
		From(servicesTable).
		Where(squirrel.Eq{"s.id": serviceID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	service, err := scanService(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear serviço: %w", err)
	}

	return service, nil
}

func (r *serviceRepository) ListServices(category string) ([]*domain.Service, error) {
	queryBuilder := squirrel.
		Select(serviceColumns).
		From(servicesTable).
		OrderBy("s.category ASC", "s.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if category != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"s.category": category})
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

	services := make([]*domain.Service, 0)
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear serviço: %w", err)
		}
		services = append(services, service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return services, nil
}

func (r *serviceRepository) UpdateService(service *domain.Service) error {
	queryBuilder := squirrel.
		Update("services").
		Set("active", service.Active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": service.ID})

	if service.Category != "" {
		queryBuilder = queryBuilder.Set("category", service.Category)
	}

	if service.SubCategory != "" {
		queryBuilder = queryBuilder.Set("sub_category", service.SubCategory)
	}

	if service.Name != "" {
		queryBuilder = queryBuilder.Set("name", service.Name)
	}

	if service.Description != "" {
		queryBuilder = queryBuilder.Set("description", service.Description)
	}

	if !service.Price.IsZero() {
		queryBuilder = queryBuilder.Set("price", service.Price)
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar serviço: %w", err)
	}

	return nil
}

func (r *serviceRepository) DeleteService(serviceID int) error {
	query, args, err := squirrel.
		Delete("services").
		Where(squirrel.Eq{"id": serviceID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao remover serviço: %w", err)
	}

	return nil
}

func scanService(row rowScanner) (*domain.Service, error) {
	service := &domain.Service{}

	err := row.Scan(
		&service.ID,
		&service.Category,
		&service.SubCategory,
		&service.Name,
		&service.Description,
		&service.Price,
		&service.Active,
		&service.CreatedAt,
		&service.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return service, nil
}
