package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
)

const (
	CookieName = "msgboard_session"
	tokenKey   = "token"
)

// Manager keeps the signed session token and flash messages in a cookie.
type Manager struct {
	store *sessions.CookieStore
}

func NewManager(secret []byte, ttl time.Duration, secure bool) *Manager {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{
		store: store,
	}
}

// ErrNoToken is returned by Token when the session carries no token.
var ErrNoToken = errors.New("no session token")

// get returns a fresh session when the cookie cannot be decoded, together
// with the decode error.
func (m *Manager) get(r *http.Request) (*sessions.Session, error) {
	return m.store.Get(r, CookieName)
}

func (m *Manager) Save(w http.ResponseWriter, r *http.Request, token string) error {
	s, _ := m.get(r)
	s.Values[tokenKey] = token
	if err := s.Save(r, w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Token returns the stored session token. A cookie that fails to decode
// yields the decode error; a session without a token yields ErrNoToken.
func (m *Manager) Token(r *http.Request) (string, error) {
	s, err := m.get(r)
	if err != nil {
		return "", fmt.Errorf("decode session cookie: %w", err)
	}

	token, ok := s.Values[tokenKey].(string)
	if !ok || token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	s, _ := m.get(r)
	delete(s.Values, tokenKey)
	if err := s.Save(r, w); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (m *Manager) AddFlash(w http.ResponseWriter, r *http.Request, message string) error {
	s, _ := m.get(r)
	s.AddFlash(message)
	if err := s.Save(r, w); err != nil {
		return fmt.Errorf("save flash: %w", err)
	}
	return nil
}

// Flashes pops pending flash messages. Must be called before the response
// header is written. The messages are returned even when saving the emptied
// session fails.
func (m *Manager) Flashes(w http.ResponseWriter, r *http.Request) ([]string, error) {
	s, _ := m.get(r)
	flashes := s.Flashes()
	if len(flashes) == 0 {
		return nil, nil
	}

	messages := make([]string, 0, len(flashes))
	for _, f := range flashes {
		if msg, ok := f.(string); ok {
			messages = append(messages, msg)
		}
	}

	if err := s.Save(r, w); err != nil {
		return messages, fmt.Errorf("save popped flashes: %w", err)
	}
	return messages, nil
}
