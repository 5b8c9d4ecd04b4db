package repository

type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	Username string `gorm:"size:20;uniqueIndex;not null"`
	Email    string `gorm:"size:120;uniqueIndex;not null"`
	Password string `gorm:"size:80;not null"` // bcrypt hash, never plaintext
}

func (User) TableName() string {
	return "user"
}

// Message declares every column unique, so reusing any title, body or
// category is rejected by the store.
type Message struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	Title    string `gorm:"size:50;uniqueIndex;not null"`
	Message  string `gorm:"size:500;uniqueIndex;not null"`
	Category string `gorm:"size:500;uniqueIndex;not null"`
}

func (Message) TableName() string {
	return "message"
}
