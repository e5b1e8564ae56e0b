package customer

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	listCustomersQuery = `
		SELECT id, name, phone, address, email, created_at
		FROM customers
		ORDER BY created_at DESC
	`
	getCustomerByIDQuery = `
		SELECT id, name, phone, address, email, created_at
		FROM customers
		WHERE id = $1
	`
	insertCustomerQuery = `
		INSERT INTO customers (name, phone, address, email, created_at)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`
	updateCustomerQuery = `
		UPDATE customers
		SET name = $1,
			phone = $2,
			address = $3,
			email = $4
		WHERE id = $5
		RETURNING id, name, phone, address, email, created_at
	`
	deleteCustomerQuery = `DELETE FROM customers WHERE id = $1`

	// conflict target is the unique phone index; created_at is kept from
	// the original row so dedup does not rewrite history
	upsertCustomerQuery = `
		INSERT INTO customers (name, phone, address, email, created_at)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (phone) DO UPDATE
		SET name = EXCLUDED.name,
			address = EXCLUDED.address,
			email = COALESCE(EXCLUDED.email, customers.email)
		RETURNING id, name, phone, address, email, created_at
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Customer, error) {
	rows, err := r.db.Query(listCustomersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Customer, error) {
	c, err := scanCustomer(r.db.QueryRow(getCustomerByIDQuery, id))
	if err == sql.ErrNoRows {
		return Customer{}, ErrNotFound
	}
	if err != nil {
		return Customer{}, err
	}
	return c, nil
}

func (r *PostgresRepository) Create(c Customer) (Customer, error) {
	err := r.db.QueryRow(insertCustomerQuery, c.Name, c.Phone, c.Address, c.Email, c.CreatedAt).Scan(&c.ID)
	if err != nil {
		return Customer{}, err
	}
	return c, nil
}

func (r *PostgresRepository) Update(id int, c Customer) (Customer, error) {
	updated, err := scanCustomer(r.db.QueryRow(updateCustomerQuery, c.Name, c.Phone, c.Address, c.Email, id))
	if err == sql.ErrNoRows {
		return Customer{}, ErrNotFound
	}
	if err != nil {
		return Customer{}, err
	}
	return updated, nil
}

func (r *PostgresRepository) Delete(id int) error {
	_, err := r.db.Exec(deleteCustomerQuery, id)
	return err
}

func (r *PostgresRepository) UpsertByPhone(c Customer) (Customer, error) {
	upserted, err := scanCustomer(r.db.QueryRow(upsertCustomerQuery, c.Name, c.Phone, c.Address, c.Email, c.CreatedAt))
	if err != nil {
		return Customer{}, err
	}
	return upserted, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCustomer(row rowScanner) (Customer, error) {
	var c Customer
	var email sql.NullString
	if err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Address, &email, &c.CreatedAt); err != nil {
		return Customer{}, err
	}
	if email.Valid {
		c.Email = &email.String
	}
	return c, nil
}
