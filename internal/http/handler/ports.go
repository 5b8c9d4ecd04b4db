package handler

import (
	"context"
	"io"
	"msgboard/internal/core"
	"msgboard/internal/http/payload"
	"msgboard/internal/http/view"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name BoardService . BoardService
type BoardService interface {
	Register(ctx context.Context, msg core.RegisterMessage) error
	Login(ctx context.Context, msg core.AuthMessage) (string, error)
	RestoreSession(ctx context.Context, token string) (core.UserRecord, error)
	SubmitMessage(ctx context.Context, msg core.MessageSubmission) error
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeForm(w http.ResponseWriter, r *http.Request, form payload.Form) error
}

//counterfeiter:generate -o fake -fake-name SessionStore . SessionStore
type SessionStore interface {
	Save(w http.ResponseWriter, r *http.Request, token string) error
	Token(r *http.Request) (string, error)
	Clear(w http.ResponseWriter, r *http.Request) error
	AddFlash(w http.ResponseWriter, r *http.Request, message string) error
	Flashes(w http.ResponseWriter, r *http.Request) ([]string, error)
}

//counterfeiter:generate -o fake -fake-name Renderer . Renderer
type Renderer interface {
	Render(w io.Writer, name string, page view.Page) error
}
