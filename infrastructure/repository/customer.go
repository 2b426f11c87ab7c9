package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/home-services-api/infrastructure/database/postgres"
	"github.com/vfg2006/home-services-api/internal/domain"
)

type CustomerRepository interface {
	CreateCustomer(customer *domain.Customer) (*domain.Customer, error)
	GetCustomerByID(customerID int) (*domain.Customer, error)
	ListCustomers() ([]*domain.Customer, error)
	UpdateCustomer(customer *domain.Customer) error
	DeleteCustomer(customerID int) error
}

type customerRepository struct {
	conn *postgres.Connection
}

func NewCustomerRepository(conn *postgres.Connection) CustomerRepository {
	return &customerRepository{
		conn: conn,
	}
}

func (r *customerRepository) CreateCustomer(customer *domain.Customer) (*domain.Customer, error) {
	addressJSON, err := marshalAddress(customer.Address)
	if err != nil {
		return nil, err
	}

	query, args, err := squirrel.
		Insert("customers").
		Columns("name", "email", "phone", "address").
		Values(customer.Name, customer.Email, customer.Phone, addressJSON).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&customer.ID, &customer.CreatedAt, &customer.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir cliente: %w", err)
	}

	return customer, nil
}

func (r *customerRepository) GetCustomerByID(customerID int) (*domain.Customer, error) {
	query, args, err := squirrel.
		Select("c.id", "c.name", "c.email", "c.phone", "c.address", "c.created_at", "c.updated_at").
		From(customersTable).
		Where(squirrel.Eq{"c.id": customerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	customer, err := scanCustomer(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
	}

	return customer, nil
}

func (r *customerRepository) ListCustomers() ([]*domain.Customer, error) {
	query, args, err := squirrel.
		Select("c.id", "c.name", "c.email", "c.phone", "c.address", "c.created_at", "c.updated_at").
		From(customersTable).
		OrderBy("c.created_at DESC").
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

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
		}
		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return customers, nil
}

func (r *customerRepository) UpdateCustomer(customer *domain.Customer) error {
	queryBuilder := squirrel.
		Update("customers").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": customer.ID})

	if customer.Name != "" {
		queryBuilder = queryBuilder.Set("name", customer.Name)
	}

	if customer.Email != "" {
		queryBuilder = queryBuilder.Set("email", customer.Email)
	}

	if customer.Phone != "" {
		queryBuilder = queryBuilder.Set("phone", customer.Phone)
	}

	if customer.Address != nil {
		addressJSON, err := marshalAddress(customer.Address)
		if err != nil {
			return err
		}
		queryBuilder = queryBuilder.Set("address", addressJSON)
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar cliente: %w", err)
	}

	return nil
}

func (r *customerRepository) DeleteCustomer(customerID int) error {
	query, args, err := squirrel.
		Delete("customers").
		Where(squirrel.Eq{"id": customerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao remover cliente: %w", err)
	}

	return nil
}

func marshalAddress(address *domain.Address) ([]byte, error) {
	if address == nil {
		return nil, nil
	}

	addressJSON, err := json.Marshal(address)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar endereço para JSON: %w", err)
	}

	return addressJSON, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCustomer(row rowScanner) (*domain.Customer, error) {
	customer := &domain.Customer{}
	var addressJSON []byte

	err := row.Scan(
		&customer.ID,
		&customer.Name,
		&customer.Email,
		&customer.Phone,
		&addressJSON,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if addressJSON != nil {
		address := &domain.Address{}
		if err := json.Unmarshal(addressJSON, address); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de endereço: %w", err)
		}
		customer.Address = address
	}

	return customer, nil
}
