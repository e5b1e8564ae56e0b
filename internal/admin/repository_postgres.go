package admin

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	getAdminByIDQuery    = `SELECT id, email, password, created_at FROM admins WHERE id = $1`
	getAdminByEmailQuery = `SELECT id, email, password, created_at FROM admins WHERE email = $1`
	insertAdminQuery     = `INSERT INTO admins (email, password, created_at) VALUES ($1,$2,$3) RETURNING id`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByID(id int) (Admin, error) {
	var a Admin
	err := r.db.QueryRow(getAdminByIDQuery, id).Scan(&a.ID, &a.Email, &a.Password, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return Admin{}, ErrNotFound
	}
	if err != nil {
		return Admin{}, err
	}
	return a, nil
}

func (r *PostgresRepository) GetByEmail(email string) (Admin, error) {
	var a Admin
	err := r.db.QueryRow(getAdminByEmailQuery, email).Scan(&a.ID, &a.Email, &a.Password, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return Admin{}, ErrNotFound
	}
	if err != nil {
		return Admin{}, err
	}
	return a, nil
}

func (r *PostgresRepository) Create(a Admin) (Admin, error) {
	err := r.db.QueryRow(insertAdminQuery, a.Email, a.Password, a.CreatedAt).Scan(&a.ID)
	if err != nil {
		return Admin{}, err
	}
	return a, nil
}
