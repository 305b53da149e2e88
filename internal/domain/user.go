package domain

// User represents an admin account. Accounts are seeded at process
// start and never change while the process runs.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	DisplayName  string
}
