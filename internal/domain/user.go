package domain

// User is the authenticated identity of a session.
type User struct {
	ID    string
	Name  string
	Email string
}
