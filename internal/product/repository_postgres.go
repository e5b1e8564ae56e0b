package product

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	listProductsQuery = `
		SELECT id, name, price, description, image_url, created_at
		FROM products
		ORDER BY created_at DESC
	`
	getProductByIDQuery = `
		SELECT id, name, price, description, image_url, created_at
		FROM products
		WHERE id = $1
	`
	insertProductQuery = `
		INSERT INTO products (name, price, description, image_url, created_at)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`
	updateProductQuery = `
		UPDATE products
		SET name = $1,
			price = $2,
			description = $3,
			image_url = $4
		WHERE id = $5
		RETURNING id, name, price, description, image_url, created_at
	`
	deleteProductQuery = `DELETE FROM products WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Product, error) {
	rows, err := r.db.Query(listProductsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Product, error) {
	var p Product
	err := r.db.QueryRow(getProductByIDQuery, id).Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.ImageURL, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Create(p Product) (Product, error) {
	err := r.db.QueryRow(insertProductQuery, p.Name, p.Price, p.Description, p.ImageURL, p.CreatedAt).Scan(&p.ID)
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Update(id int, p Product) (Product, error) {
	err := r.db.QueryRow(updateProductQuery, p.Name, p.Price, p.Description, p.ImageURL, id).
		Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.ImageURL, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

// Delete removes the product row. Zero matched rows is still a success,
// the remote layer does not distinguish it from a deletion.
func (r *PostgresRepository) Delete(id int) error {
	_, err := r.db.Exec(deleteProductQuery, id)
	return err
}
