package user

const (
	InsertUser = `
		INSERT INTO users (uuid, username, password_hash)
		VALUES ($1, $2, $3)
		RETURNING
		  uuid, username, password_hash, created_at
	`
	SelectUserByID = `
		SELECT uuid, username, password_hash, created_at
		FROM users
		WHERE uuid = $1
	`
	SelectUserByUsername = `
		SELECT uuid, username, password_hash, created_at
		FROM users
		WHERE username = $1
	`
)
