package dto

type CreateUserInput struct {
	Username  string
	FirstName string
	LastName  string
	Role      string
	// Password is the plaintext password. It is hashed before storage.
	Password string
}

type UpdateUserInput struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
	Role      string
	// Password, when non-empty, replaces the stored hash.
	Password string
}
