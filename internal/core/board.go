package core

import (
	"context"
	"errors"
	"fmt"
	"msgboard/internal/repository"
	tokenIssuer "msgboard/pkg/jwt"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUserNotFound error = errors.New("user not found")
var ErrUsernameTaken error = errors.New("username already exists")
var ErrPasswordMismatch error = errors.New("passwords do not match")
var ErrInvalidSession error = errors.New("invalid session")

// dummyHash is compared against when the username is unknown so that a
// failed lookup costs as much as a wrong password.
const dummyHash = "$2a$10$7PrikY/17DYiRAA6JlaGl.yo26gwhTT53ESuovxGWvWJ4HhvGI/GK"

// Board registers and authenticates users and stores submitted messages.
type Board struct {
	logs       *zap.SugaredLogger
	repo       Repository
	jwtIssuer  JWTIssuer
	hashCost   int
	sessionTTL time.Duration
}

// NewBoard is a constructor function for the Board type.
func NewBoard(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer, hashCost int, sessionTTL time.Duration) *Board {
	return &Board{
		logs:       logger,
		repo:       repo,
		jwtIssuer:  jwt,
		hashCost:   hashCost,
		sessionTTL: sessionTTL,
	}
}

// Register creates a new user with a bcrypt hash of the password after checking
// that the confirmation matches and the username is free.
func (b *Board) Register(ctx context.Context, msg RegisterMessage) error {
	if msg.Password != msg.ConfirmPassword {
		return ErrPasswordMismatch
	}

	exists, err := b.repo.UsernameExists(ctx, msg.Username)
	if err != nil {
		return fmt.Errorf("check username: %w", err)
	}
	if exists {
		return ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), b.hashCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := repository.User{
		Username: msg.Username,
		Email:    msg.Email,
		Password: string(hash),
	}
	if err := b.repo.CreateUser(ctx, &user); err != nil {
		return fmt.Errorf("save user: %w", err)
	}

	b.logs.Infow("user registered", "userId", user.ID, "username", user.Username)
	return nil
}

// Login checks the provided username and password against the database. If the
// credentials are valid, it returns a signed session token for the user.
func (b *Board) Login(ctx context.Context, msg AuthMessage) (string, error) {
	user, err := b.repo.GetUserByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(msg.Password))
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   user.Username,
		Subject:    strconv.FormatUint(uint64(user.ID), 10),
		Expiration: b.sessionTTL,
	}
	token := b.jwtIssuer.Generate(tokenInfo)
	signed, err := b.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// RestoreSession resolves a session token back to the user it was issued for.
func (b *Board) RestoreSession(ctx context.Context, token string) (UserRecord, error) {
	claims, err := b.jwtIssuer.Validate(token)
	if err != nil {
		return UserRecord{}, fmt.Errorf("validate session token: %w: %w", err, ErrInvalidSession)
	}

	subject, ok := claims["sub"].(string)
	if !ok {
		return UserRecord{}, fmt.Errorf("missing session subject: %w", ErrInvalidSession)
	}

	userID, err := strconv.ParseUint(subject, 10, 0)
	if err != nil {
		return UserRecord{}, fmt.Errorf("parse session subject %q: %w", subject, ErrInvalidSession)
	}

	user, err := b.repo.GetUserByID(ctx, uint(userID))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserRecord{}, ErrUserNotFound
		}
		return UserRecord{}, fmt.Errorf("get user by id: %w", err)
	}

	return UserRecord{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

// SubmitMessage stores a new message. Unique constraint violations from the
// store are returned to the caller unchanged.
func (b *Board) SubmitMessage(ctx context.Context, msg MessageSubmission) error {
	message := repository.Message{
		Title:    msg.Title,
		Message:  msg.Message,
		Category: msg.Category,
	}

	if err := b.repo.CreateMessage(ctx, &message); err != nil {
		return fmt.Errorf("save message: %w", err)
	}

	b.logs.Infow("message stored", "messageId", message.ID, "category", message.Category)
	return nil
}
