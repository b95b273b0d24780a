package server

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"droscher.com/MyWhiskies/pkg/auth"
	"droscher.com/MyWhiskies/pkg/model"
	"droscher.com/MyWhiskies/pkg/policy"
	"droscher.com/MyWhiskies/pkg/repository"
	"droscher.com/MyWhiskies/pkg/validation"
)

const flashCookie = "my-whiskies-flash"

var ErrBadRequest = errors.New("bad request")

// Page is the data every template receives.
type Page struct {
	Title  string
	Viewer *model.User
	Flash  string
	Errors validation.FieldErrors
	Data   any
}

// Web holds what every handler needs to answer a request.
type Web struct {
	templates *Templates
	logger    *zap.Logger
	secure    bool
}

func NewWeb(templates *Templates, secureCookies bool, logger *zap.Logger) *Web {
	return &Web{templates: templates, logger: logger, secure: secureCookies}
}

func (w *Web) render(rw http.ResponseWriter, r *http.Request, status int, name string, page Page) {
	page.Viewer = auth.Viewer(r.Context())
	page.Flash = w.takeFlash(rw, r)

	if err := w.templates.Render(rw, status, name, page); err != nil {
		w.logger.Error("error rendering template", zap.String("template", name), zap.Error(err))
	}
}

// fail maps an error onto a response: lookups that fail or are hidden are
// 404s, anything else is logged and answered with a generic 500.
func (w *Web) fail(rw http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, policy.ErrNotFound), errors.Is(err, repository.ErrNotFound):
		w.render(rw, r, http.StatusNotFound, "error.html", Page{Title: "Not found", Data: "The page you asked for does not exist."})
	case errors.Is(err, ErrBadRequest):
		w.render(rw, r, http.StatusBadRequest, "error.html", Page{Title: "Bad request", Data: "The request could not be understood."})
	default:
		w.logger.Error("request failed", zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.Error(err))
		w.render(rw, r, http.StatusInternalServerError, "error.html", Page{Title: "Error", Data: "Something went wrong. Please try again later."})
	}
}

// redirect sends the browser on with an optional message for the next page.
func (w *Web) redirect(rw http.ResponseWriter, r *http.Request, location string, flash string) {
	if flash != "" {
		http.SetCookie(rw, &http.Cookie{
			Name:     flashCookie,
			Value:    url.QueryEscape(flash),
			Path:     "/",
			HttpOnly: true,
			Secure:   w.secure,
			SameSite: http.SameSiteLaxMode,
		})
	}

	http.Redirect(rw, r, location, http.StatusSeeOther)
}

func (w *Web) takeFlash(rw http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(flashCookie)
	if err != nil {
		return ""
	}

	http.SetCookie(rw, &http.Cookie{Name: flashCookie, Path: "/", MaxAge: -1, Expires: time.Unix(0, 0)})

	message, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return ""
	}

	return message
}

// refuse answers a refused mutation with the policy's message on the
// viewer's own home page.
func (w *Web) refuse(rw http.ResponseWriter, r *http.Request, err error) {
	location := "/"
	if viewer := auth.Viewer(r.Context()); viewer != nil {
		location = "/" + viewer.Username
	}

	w.redirect(rw, r, location, err.Error())
}

func idParam(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 0)
	if err != nil || id == 0 {
		return 0, repository.ErrNotFound
	}

	return uint(id), nil
}
