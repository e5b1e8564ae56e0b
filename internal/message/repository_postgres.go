package message

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	listMessagesQuery = `
		SELECT id, name, email, phone, message, created_at
		FROM messages
		ORDER BY created_at DESC
	`
	getMessageByIDQuery = `
		SELECT id, name, email, phone, message, created_at
		FROM messages
		WHERE id = $1
	`
	insertMessageQuery = `
		INSERT INTO messages (name, email, phone, message, created_at)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`
	deleteMessageQuery = `DELETE FROM messages WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Message, error) {
	rows, err := r.db.Query(listMessagesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Message, 0)
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Body, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Message, error) {
	var m Message
	err := r.db.QueryRow(getMessageByIDQuery, id).Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Body, &m.CreatedAt)
	if err == sql.ErrNoRows {
		return Message{}, ErrNotFound
	}
	if err != nil {
		return Message{}, err
	}
	return m, nil
}

func (r *PostgresRepository) Create(m Message) (Message, error) {
	err := r.db.QueryRow(insertMessageQuery, m.Name, m.Email, m.Phone, m.Body, m.CreatedAt).Scan(&m.ID)
	if err != nil {
		return Message{}, err
	}
	return m, nil
}

func (r *PostgresRepository) Delete(id int) error {
	_, err := r.db.Exec(deleteMessageQuery, id)
	return err
}
