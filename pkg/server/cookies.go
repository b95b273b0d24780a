package server

import (
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const (
	distilleryListCookie = "dt-list-length"
	bottlerListCookie    = "bt-list-length"
	visitorCookie        = "my-whiskies-user"

	defaultListLength = 25
	cookieLifetime    = 365 * 24 * time.Hour
)

// listLengths are the page sizes a list can be shown with; zero shows
// everything.
var listLengths = []int{10, 25, 50, 100, 0}

// listLength picks the page size from the "length" parameter, remembering a
// valid choice in the named cookie, or falls back to the stored choice.
func (w *Web) listLength(rw http.ResponseWriter, r *http.Request, cookieName string) int {
	if raw := r.URL.Query().Get("length"); raw != "" {
		length, err := strconv.Atoi(raw)
		if err == nil && slices.Contains(listLengths, length) {
			w.setLongCookie(rw, cookieName, strconv.Itoa(length))

			return length
		}
	}

	if cookie, err := r.Cookie(cookieName); err == nil {
		length, err := strconv.Atoi(cookie.Value)
		if err == nil && slices.Contains(listLengths, length) {
			return length
		}
	}

	return defaultListLength
}

func pageNumber(r *http.Request) int {
	number, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || number < 1 {
		return 1
	}

	return number
}

// markVisitor gives an anonymous visitor a random identifier on first visit.
func (w *Web) markVisitor(rw http.ResponseWriter, r *http.Request) {
	if _, err := r.Cookie(visitorCookie); err == nil {
		return
	}

	w.setLongCookie(rw, visitorCookie, uuid.NewString())
}

func (w *Web) setLongCookie(rw http.ResponseWriter, name string, value string) {
	http.SetCookie(rw, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(cookieLifetime),
		MaxAge:   int(cookieLifetime.Seconds()),
		HttpOnly: true,
		Secure:   w.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
