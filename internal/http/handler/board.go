package handler

import (
	"bytes"
	"errors"
	"msgboard/internal/core"
	"msgboard/internal/http/handler/middleware"
	"msgboard/internal/http/payload"
	"msgboard/internal/http/view"
	"msgboard/internal/metrics"
	"msgboard/internal/session"
	"net/http"

	"go.uber.org/zap"
)

var (
	Login    = "/"
	Register = "/register"
	User     = "/user"
	Logout   = "/logout"
	Metrics  = "/metrics"
)

type BoardHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	board            BoardService
	sessions         SessionStore
	views            Renderer
	metrics          *metrics.Metrics
}

func NewBoardHandler(
	logger *zap.SugaredLogger,
	requestValidator RequestValidator,
	boardService BoardService,
	sessions SessionStore,
	views Renderer,
	m *metrics.Metrics,
) *BoardHandler {
	return &BoardHandler{
		logs:             logger,
		requestValidator: requestValidator,
		board:            boardService,
		sessions:         sessions,
		views:            views,
		metrics:          m,
	}
}

func (h *BoardHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	page := view.Page{Title: "Log In"}

	if r.Method != http.MethodPost {
		h.render(w, r, view.LoginPage, page)
		return
	}

	var form payload.LoginForm
	err := h.requestValidator.DecodeForm(w, r, &form)
	page.Form = map[string]string{"username": form.Username}
	if err != nil {
		h.rejectForm(w, r, view.LoginPage, page, err, Login)
		return
	}

	token, err := h.board.Login(r.Context(), form.ToAuthMessage())
	if err != nil {
		reason := ""
		if errors.Is(err, core.ErrUserNotFound) {
			reason = metrics.ReasonUnknownUser
		} else if errors.Is(err, core.ErrIncorrectPassword) {
			reason = metrics.ReasonWrongPassword
		} else {
			http.Error(w, oopsErr, http.StatusInternalServerError)
			h.logs.Errorw("login failed",
				"error", err,
				"handler", Login,
				"request_id", requestId)
			return
		}

		h.metrics.LoginFailure.WithLabelValues(reason).Inc()
		h.logs.Infow("login rejected",
			"username", form.Username,
			"reason", reason,
			"handler", Login,
			"request_id", requestId)

		page.Notice = msgInvalidLogin
		h.render(w, r, view.LoginPage, page)
		return
	}

	if err := h.sessions.Save(w, r, token); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to save session",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	h.metrics.LoginSuccess.Inc()
	h.logs.Infow("user logged in",
		"username", form.Username,
		"handler", Login,
		"request_id", requestId)

	http.Redirect(w, r, User, http.StatusFound)
}

func (h *BoardHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	page := view.Page{Title: "Register"}

	if r.Method != http.MethodPost {
		h.render(w, r, view.RegisterPage, page)
		return
	}

	var form payload.RegisterForm
	err := h.requestValidator.DecodeForm(w, r, &form)
	page.Form = map[string]string{
		"username": form.Username,
		"email":    form.Email,
	}
	if err != nil {
		h.rejectForm(w, r, view.RegisterPage, page, err, Register)
		return
	}

	err = h.board.Register(r.Context(), form.ToRegisterMessage())
	if err != nil {
		switch {
		case errors.Is(err, core.ErrUsernameTaken):
			page.Errors = map[string]string{"username": msgUsernameTaken}
		case errors.Is(err, core.ErrPasswordMismatch):
			page.Errors = map[string]string{"approved_password": msgPasswordMismatch}
		default:
			http.Error(w, oopsErr, http.StatusInternalServerError)
			h.logs.Errorw("registration failed",
				"error", err,
				"handler", Register,
				"request_id", requestId)
			return
		}

		h.render(w, r, view.RegisterPage, page)
		return
	}

	h.metrics.RegisterSuccess.Inc()
	h.logs.Infow("user registered",
		"username", form.Username,
		"handler", Register,
		"request_id", requestId)

	if err := h.sessions.AddFlash(w, r, msgRegistered); err != nil {
		h.logs.Errorw("failed to add flash message",
			"error", err,
			"handler", Register,
			"request_id", requestId)
	}

	http.Redirect(w, r, Login, http.StatusFound)
}

func (h *BoardHandler) HandleUser(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	page := view.Page{Title: "Messages"}

	if r.Method != http.MethodPost {
		h.render(w, r, view.UserPage, page)
		return
	}

	var form payload.MessageForm
	err := h.requestValidator.DecodeForm(w, r, &form)
	page.Form = map[string]string{
		"title":    form.Title,
		"message":  form.Message,
		"category": form.Category,
	}
	if err != nil {
		h.rejectForm(w, r, view.UserPage, page, err, User)
		return
	}

	if err := h.board.SubmitMessage(r.Context(), form.ToSubmission()); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to submit message",
			"error", err,
			"handler", User,
			"request_id", requestId)
		return
	}

	h.metrics.MessagesPosted.Inc()
	h.logs.Infow("message posted",
		"title", form.Title,
		"handler", User,
		"request_id", requestId)

	if err := h.sessions.AddFlash(w, r, msgPosted); err != nil {
		h.logs.Errorw("failed to add flash message",
			"error", err,
			"handler", User,
			"request_id", requestId)
	}

	http.Redirect(w, r, User, http.StatusFound)
}

func (h *BoardHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Clear(w, r); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to clear session",
			"error", err,
			"handler", Logout,
			"request_id", requestID(r))
		return
	}

	http.Redirect(w, r, Login, http.StatusFound)
}

// rejectForm re-renders the page with field errors, or answers 400 when the
// body could not be read as a form at all.
func (h *BoardHandler) rejectForm(w http.ResponseWriter, r *http.Request, name string, page view.Page, err error, route string) {
	fields := payload.FieldErrors(err)
	if fields == nil {
		http.Error(w, badRequestErr, http.StatusBadRequest)
		h.logs.Errorw("failed to decode form",
			"error", err,
			"handler", route,
			"request_id", requestID(r))
		return
	}

	page.Errors = fields
	h.render(w, r, name, page)
}

// render fills in flashes and the session user, then writes the page. The
// page is buffered so a template failure can still become a 500.
func (h *BoardHandler) render(w http.ResponseWriter, r *http.Request, name string, page view.Page) {
	flashes, err := h.sessions.Flashes(w, r)
	if err != nil {
		h.logs.Errorw("failed to pop flash messages",
			"error", err,
			"page", name,
			"request_id", requestID(r))
	}
	page.Flashes = flashes
	page.Username = h.currentUser(r)

	var buf bytes.Buffer
	if err := h.views.Render(&buf, name, page); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to render page",
			"error", err,
			"page", name,
			"request_id", requestID(r))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logs.Errorw("failed to write page",
			"error", err,
			"page", name,
			"request_id", requestID(r))
	}
}

func (h *BoardHandler) currentUser(r *http.Request) string {
	token, err := h.sessions.Token(r)
	if err != nil {
		if !errors.Is(err, session.ErrNoToken) {
			h.logs.Debugw("session cookie rejected",
				"error", err,
				"request_id", requestID(r))
		}
		return ""
	}

	user, err := h.board.RestoreSession(r.Context(), token)
	if err != nil {
		h.logs.Debugw("session not restored",
			"error", err,
			"request_id", requestID(r))
		return ""
	}
	return user.Username
}

func requestID(r *http.Request) string {
	return middleware.RequestIDFrom(r.Context())
}
