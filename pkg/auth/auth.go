package auth

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"droscher.com/MyWhiskies/configs"
	"droscher.com/MyWhiskies/pkg/model"
	"droscher.com/MyWhiskies/pkg/repository"
)

type UserKey struct{}

const (
	SessionCookie = "my-whiskies-session"

	PurposeSession = "session"
	PurposeConfirm = "confirm"
	PurposeReset   = "reset"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("the link is invalid or has expired")
)

type UserStore interface {
	GetUserByID(ctx context.Context, id uint) (*model.User, error)
	GetUserByName(ctx context.Context, username string) (*model.User, error)
}

// Stamp ties a token to the password it was issued under, so changing
// the password retires every session and email token issued before.
type claims struct {
	Purpose string `json:"purpose"`
	Stamp   string `json:"stamp"`
	jwt.RegisteredClaims
}

// Manager signs sessions and email tokens and resolves the viewer of a
// request. One is built at startup and shared by the handlers.
type Manager struct {
	conf   configs.Auth
	secure bool
	users  UserStore
	logger *zap.Logger
	now    func() time.Time
}

func NewAuthManager(conf *configs.Config, users UserStore, logger *zap.Logger) *Manager {
	return &Manager{conf: conf.Auth, secure: conf.Server.SecureCookies, users: users, logger: logger, now: time.Now}
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// Authenticate checks a username and password. Unknown, deleted and
// unconfirmed users all get ErrInvalidCredentials.
func (a *Manager) Authenticate(ctx context.Context, username string, password string) (*model.User, error) {
	user, err := a.users.GetUserByName(ctx, username)
	if err != nil || user == nil {
		return nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	if user.IsDeleted || !user.EmailConfirmed {
		a.logger.Info("login refused", zap.Uint("user_id", user.ID),
			zap.Bool("deleted", user.IsDeleted), zap.Bool("confirmed", user.EmailConfirmed))

		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (a *Manager) stamp(user *model.User) string {
	mac := hmac.New(sha256.New, []byte(a.conf.SecretKey))
	mac.Write([]byte(user.PasswordHash))

	return hex.EncodeToString(mac.Sum(nil)[:8])
}

func (a *Manager) sign(user *model.User, purpose string, lifetime time.Duration) (string, error) {
	now := a.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Purpose: purpose,
		Stamp:   a.stamp(user),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		},
	})

	return token.SignedString([]byte(a.conf.SecretKey))
}

// verify checks the signature, purpose and expiry, then loads the user and
// checks the stamp. Missing users and stale stamps give ErrInvalidToken.
func (a *Manager) verify(ctx context.Context, tokenString string, purpose string) (*model.User, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(a.conf.SecretKey), nil
	}

	parsed := claims{}

	token, err := jwt.ParseWithClaims(tokenString, &parsed, keyFunc, jwt.WithoutClaimsValidation())
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if parsed.Purpose != purpose || parsed.ExpiresAt == nil || !parsed.ExpiresAt.After(a.now()) {
		return nil, ErrInvalidToken
	}

	userID, err := strconv.ParseUint(parsed.Subject, 10, 0)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := a.users.GetUserByID(ctx, uint(userID))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidToken
	}

	if err != nil {
		return nil, err
	}

	if user == nil || !hmac.Equal([]byte(parsed.Stamp), []byte(a.stamp(user))) {
		return nil, ErrInvalidToken
	}

	return user, nil
}

// IssueToken creates a token for the confirmation or reset email.
func (a *Manager) IssueToken(user *model.User, purpose string) (string, error) {
	return a.sign(user, purpose, a.conf.TokenLifetime)
}

// VerifyToken returns the user a token was issued for. Tokens for deleted
// users, or issued before the last password change, are invalid.
func (a *Manager) VerifyToken(ctx context.Context, token string, purpose string) (*model.User, error) {
	user, err := a.verify(ctx, token, purpose)
	if err != nil {
		return nil, err
	}

	if user.IsDeleted {
		return nil, ErrInvalidToken
	}

	return user, nil
}

func (a *Manager) StartSession(w http.ResponseWriter, user *model.User) error {
	token, err := a.sign(user, PurposeSession, a.conf.SessionLifetime)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   a.secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  a.now().Add(a.conf.SessionLifetime),
	})

	return nil
}

func (a *Manager) EndSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   a.secure,
		MaxAge:   -1,
	})
}

// Middleware attaches the logged in user to the request context. Bad,
// expired or stale sessions and deleted users are treated as anonymous.
func (a *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookie)
		if err != nil {
			next.ServeHTTP(w, r)

			return
		}

		user, err := a.verify(r.Context(), cookie.Value, PurposeSession)
		if err != nil || user.IsDeleted {
			a.logger.Debug("session unavailable", zap.Error(err))
			a.EndSession(w)
			next.ServeHTTP(w, r)

			return
		}

		next.ServeHTTP(w, r.WithContext(WithViewer(r.Context(), user)))
	})
}

// RequireUser sends anonymous visitors to the login page.
func (a *Manager) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if Viewer(r.Context()) == nil {
			http.Redirect(w, r, "/login?next="+url.QueryEscape(r.URL.Path), http.StatusFound)

			return
		}

		next.ServeHTTP(w, r)
	})
}

// Viewer returns the logged in user or nil.
func Viewer(ctx context.Context) *model.User {
	user, _ := ctx.Value(UserKey{}).(*model.User)

	return user
}

func WithViewer(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, UserKey{}, user)
}
