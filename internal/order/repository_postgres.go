package order

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	orderColumns = `id, product_id, product_name, customer_name, customer_phone, customer_address, status, created_at`

	listOrdersQuery = `
		SELECT ` + orderColumns + `
		FROM orders
		ORDER BY created_at DESC
	`
	listOrdersByStatusQuery = `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE status = ANY($1)
		ORDER BY created_at DESC
	`
	getOrderByIDQuery = `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1
	`
	insertOrderQuery = `
		INSERT INTO orders (product_id, product_name, customer_name, customer_phone, customer_address, status, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id
	`
	updateOrderStatusQuery = `
		UPDATE orders
		SET status = $1
		WHERE id = $2
		RETURNING ` + orderColumns + `
	`
	deleteOrderQuery = `DELETE FROM orders WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Order, error) {
	rows, err := r.db.Query(listOrdersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

func (r *PostgresRepository) ListByStatuses(statuses []string) ([]Order, error) {
	if len(statuses) == 0 {
		return r.List()
	}

	rows, err := r.db.Query(listOrdersByStatusQuery, pq.Array(statuses))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

func (r *PostgresRepository) GetByID(id int) (Order, error) {
	ord, err := scanOrder(r.db.QueryRow(getOrderByIDQuery, id))
	if err == sql.ErrNoRows {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) Create(ord Order) (Order, error) {
	err := r.db.QueryRow(insertOrderQuery,
		ord.ProductID, ord.ProductName, ord.CustomerName, ord.CustomerPhone, ord.CustomerAddress, ord.Status, ord.CreatedAt).
		Scan(&ord.ID)
	if err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) UpdateStatus(id int, status string) (Order, error) {
	ord, err := scanOrder(r.db.QueryRow(updateOrderStatusQuery, status, id))
	if err == sql.ErrNoRows {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) Delete(id int) error {
	_, err := r.db.Exec(deleteOrderQuery, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (Order, error) {
	var ord Order
	err := row.Scan(&ord.ID, &ord.ProductID, &ord.ProductName, &ord.CustomerName, &ord.CustomerPhone, &ord.CustomerAddress, &ord.Status, &ord.CreatedAt)
	if err != nil {
		return Order{}, err
	}
	return ord, nil
}

func collectOrders(rows *sql.Rows) ([]Order, error) {
	out := make([]Order, 0)
	for rows.Next() {
		ord, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ord)
	}
	return out, rows.Err()
}
