package core

type AuthMessage struct {
	Username string
	Password string
}

type RegisterMessage struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

type MessageSubmission struct {
	Title    string
	Message  string
	Category string
}

// UserRecord is the session user as seen by handlers; it never carries the hash.
type UserRecord struct {
	ID       uint
	Username string
	Email    string
}
