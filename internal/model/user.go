package model

// User is a staff member. The password hash is stored in the "password"
// column and must never be serialized.
type User struct {
	ID           int64  `db:"user_id" json:"user_id"`
	Username     string `db:"username" json:"username"`
	FirstName    string `db:"first_name" json:"first_name"`
	LastName     string `db:"last_name" json:"last_name"`
	Role         string `db:"role" json:"role"`
	PasswordHash string `db:"password" json:"-"`
}
