package auth

// User is the domain entity.
type User struct {
	ID       string
	Username string
	Password string
	Role     string
}
