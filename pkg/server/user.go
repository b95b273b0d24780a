package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"droscher.com/MyWhiskies/pkg/auth"
	"droscher.com/MyWhiskies/pkg/mail"
	"droscher.com/MyWhiskies/pkg/model"
	"droscher.com/MyWhiskies/pkg/repository"
	"droscher.com/MyWhiskies/pkg/validation"
)

const (
	msgRegistered      = "Thanks for registering! Check your email for a link to confirm your account."
	msgMailFailed      = "Your account was created but the confirmation email could not be sent. Use the resend link to try again."
	msgConfirmed       = "Your account is confirmed. Please log in."
	msgAlreadyDone     = "Your account is already confirmed. Please log in."
	msgResendRequested = "If that address belongs to an unconfirmed account, a new confirmation email is on its way."
	msgResetRequested  = "If that address belongs to an account, an email with instructions to reset your password is on its way."
	msgPasswordReset   = "Your password has been reset. Please log in."
	msgLoggedOut       = "You have been logged out."
)

// reservedNames cannot be registered because they are top level routes.
var reservedNames = []string{
	"bottle", "bottler", "confirm_register", "distillery", "export_data", "healthz", "images",
	"login", "logout", "register", "resend_register", "reset_password", "reset_password_request", "static",
}

type bottleCounter interface {
	CountBottles(ctx context.Context) (int64, error)
}

// UserServer handles the landing page and the account flows.
type UserServer struct {
	*Web
	users     repository.UserRepository
	bottles   bottleCounter
	auth      *auth.Manager
	mailer    mail.Mailer
	validator *validation.Validator
	baseURL   string
	now       func() time.Time
}

func NewUserServer(web *Web, users repository.UserRepository, bottles bottleCounter, authManager *auth.Manager,
	mailer mail.Mailer, validator *validation.Validator, baseURL string,
) *UserServer {
	return &UserServer{
		Web: web, users: users, bottles: bottles, auth: authManager, mailer: mailer,
		validator: validator, baseURL: strings.TrimSuffix(baseURL, "/"), now: time.Now,
	}
}

type landingData struct {
	Users   int64
	Bottles int64
}

func (u *UserServer) Landing(w http.ResponseWriter, r *http.Request) {
	if viewer := auth.Viewer(r.Context()); viewer != nil {
		http.Redirect(w, r, "/"+viewer.Username, http.StatusFound)

		return
	}

	u.markVisitor(w, r)

	users, err := u.users.CountActiveUsers(r.Context())
	if err != nil {
		u.fail(w, r, err)

		return
	}

	bottles, err := u.bottles.CountBottles(r.Context())
	if err != nil {
		u.fail(w, r, err)

		return
	}

	u.render(w, r, http.StatusOK, "landing.html", Page{Title: "My Whiskies", Data: landingData{Users: users, Bottles: bottles}})
}

type loginData struct {
	Username string
	Next     string
}

func (u *UserServer) LoginPage(w http.ResponseWriter, r *http.Request) {
	if viewer := auth.Viewer(r.Context()); viewer != nil {
		http.Redirect(w, r, "/"+viewer.Username, http.StatusFound)

		return
	}

	u.render(w, r, http.StatusOK, "login.html", Page{Title: "Log in", Data: loginData{Next: r.URL.Query().Get("next")}})
}

func (u *UserServer) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		u.fail(w, r, ErrBadRequest)

		return
	}

	username := strings.TrimSpace(r.PostForm.Get("username"))
	data := loginData{Username: username, Next: r.PostForm.Get("next")}

	user, err := u.auth.Authenticate(r.Context(), username, r.PostForm.Get("password"))
	if err != nil {
		u.render(w, r, http.StatusUnauthorized, "login.html", Page{
			Title: "Log in", Errors: validation.FieldErrors{"form": "Invalid username or password."}, Data: data,
		})

		return
	}

	if err := u.auth.StartSession(w, user); err != nil {
		u.fail(w, r, err)

		return
	}

	now := u.now()
	user.LastLoginAt = &now

	if err := u.users.UpdateUser(r.Context(), user); err != nil {
		u.logger.Warn("error recording login", zap.Uint("user_id", user.ID), zap.Error(err))
	}

	http.Redirect(w, r, safeNext(data.Next, "/"+user.Username), http.StatusSeeOther)
}

// safeNext only follows local paths.
func safeNext(next string, fallback string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return fallback
	}

	return next
}

func (u *UserServer) Logout(w http.ResponseWriter, r *http.Request) {
	u.auth.EndSession(w)
	u.redirect(w, r, "/", msgLoggedOut)
}

func (u *UserServer) RegisterPage(w http.ResponseWriter, r *http.Request) {
	u.render(w, r, http.StatusOK, "register.html", Page{Title: "Register", Data: registerForm{}})
}

func (u *UserServer) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		u.fail(w, r, ErrBadRequest)

		return
	}

	form, reader := readRegisterForm(r.PostForm)
	errs := merge(reader.errs, u.validator.Validate(form))

	if errs == nil {
		var err error

		errs, err = u.checkAvailable(r.Context(), form)
		if err != nil {
			u.fail(w, r, err)

			return
		}
	}

	if errs != nil {
		form.Password, form.ConfirmPassword = "", ""
		u.render(w, r, http.StatusUnprocessableEntity, "register.html", Page{Title: "Register", Errors: errs, Data: form})

		return
	}

	hash, err := auth.HashPassword(form.Password)
	if err != nil {
		u.fail(w, r, err)

		return
	}

	user := model.User{Username: form.Username, Email: form.Email, PasswordHash: hash}
	user.Normalize()

	created, err := u.users.AddUser(r.Context(), user)
	if err != nil {
		u.fail(w, r, err)

		return
	}

	u.logger.Info("user registered", zap.Uint("user_id", created.ID), zap.String("username", created.Username))

	if !u.sendConfirmation(r.Context(), created) {
		u.redirect(w, r, "/login", msgMailFailed)

		return
	}

	u.redirect(w, r, "/login", msgRegistered)
}

// checkAvailable rejects reserved and taken usernames and registered
// emails.
func (u *UserServer) checkAvailable(ctx context.Context, form registerForm) (validation.FieldErrors, error) {
	errs := validation.FieldErrors{}

	for _, reserved := range reservedNames {
		if strings.EqualFold(form.Username, reserved) {
			errs.Add("username", "is not available")
		}
	}

	if _, err := u.users.GetUserByName(ctx, form.Username); err == nil {
		errs.Add("username", "is already taken")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if _, err := u.users.GetUserByEmail(ctx, form.Email); err == nil {
		errs.Add("email", "is already registered")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if len(errs) == 0 {
		return nil, nil
	}

	return errs, nil
}

func (u *UserServer) sendConfirmation(ctx context.Context, user *model.User) bool {
	token, err := u.auth.IssueToken(user, auth.PurposeConfirm)
	if err != nil {
		u.logger.Error("error issuing confirmation token", zap.Uint("user_id", user.ID), zap.Error(err))

		return false
	}

	message := mail.ConfirmationMessage(user.Email, user.Username, u.baseURL+"/confirm_register/"+token)
	if err := u.mailer.Send(ctx, message); err != nil {
		u.logger.Error("error sending confirmation email", zap.Uint("user_id", user.ID), zap.Error(err))

		return false
	}

	return true
}

func (u *UserServer) tokenUser(r *http.Request, purpose string) (*model.User, error) {
	return u.auth.VerifyToken(r.Context(), chi.URLParam(r, "token"), purpose)
}

func (u *UserServer) ConfirmPage(w http.ResponseWriter, r *http.Request) {
	if _, err := u.tokenUser(r, auth.PurposeConfirm); err != nil {
		u.tokenFailure(w, r, err, "/resend_register")

		return
	}

	u.render(w, r, http.StatusOK, "confirm.html", Page{Title: "Confirm your account", Data: chi.URLParam(r, "token")})
}

func (u *UserServer) Confirm(w http.ResponseWriter, r *http.Request) {
	user, err := u.tokenUser(r, auth.PurposeConfirm)
	if err != nil {
		u.tokenFailure(w, r, err, "/resend_register")

		return
	}

	if user.EmailConfirmed {
		u.redirect(w, r, "/login", msgAlreadyDone)

		return
	}

	now := u.now()
	user.EmailConfirmed = true
	user.EmailConfirmedAt = &now

	if err := u.users.UpdateUser(r.Context(), user); err != nil {
		u.fail(w, r, err)

		return
	}

	u.redirect(w, r, "/login", msgConfirmed)
}

func (u *UserServer) tokenFailure(w http.ResponseWriter, r *http.Request, err error, retry string) {
	if errors.Is(err, auth.ErrInvalidToken) {
		u.redirect(w, r, retry, auth.ErrInvalidToken.Error())

		return
	}

	u.fail(w, r, err)
}

type emailPage struct {
	Action string
	Email  string
}

func (u *UserServer) ResendPage(w http.ResponseWriter, r *http.Request) {
	u.render(w, r, http.StatusOK, "email_form.html", Page{Title: "Resend confirmation", Data: emailPage{Action: "/resend_register"}})
}

// Resend answers the same way whether or not the address is known.
func (u *UserServer) Resend(w http.ResponseWriter, r *http.Request) {
	user, ok := u.emailRequest(w, r, "Resend confirmation", "/resend_register")
	if !ok {
		return
	}

	if user != nil && !user.EmailConfirmed {
		u.sendConfirmation(r.Context(), user)
	}

	u.redirect(w, r, "/login", msgResendRequested)
}

func (u *UserServer) ResetRequestPage(w http.ResponseWriter, r *http.Request) {
	u.render(w, r, http.StatusOK, "email_form.html", Page{Title: "Reset password", Data: emailPage{Action: "/reset_password_request"}})
}

// ResetRequest answers the same way whether or not the address is known.
func (u *UserServer) ResetRequest(w http.ResponseWriter, r *http.Request) {
	user, ok := u.emailRequest(w, r, "Reset password", "/reset_password_request")
	if !ok {
		return
	}

	if user != nil {
		u.sendReset(r.Context(), user)
	}

	u.redirect(w, r, "/login", msgResetRequested)
}

// emailRequest validates an email form and looks the address up. It
// returns false once it has answered the request itself.
func (u *UserServer) emailRequest(w http.ResponseWriter, r *http.Request, title string, action string) (*model.User, bool) {
	if err := r.ParseForm(); err != nil {
		u.fail(w, r, ErrBadRequest)

		return nil, false
	}

	form := emailForm{Email: strings.ToLower(strings.TrimSpace(r.PostForm.Get("email")))}
	if errs := u.validator.Validate(form); errs != nil {
		u.render(w, r, http.StatusUnprocessableEntity, "email_form.html", Page{
			Title: title, Errors: errs, Data: emailPage{Action: action, Email: form.Email},
		})

		return nil, false
	}

	user, err := u.users.GetUserByEmail(r.Context(), form.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, true
	}

	if err != nil {
		u.fail(w, r, err)

		return nil, false
	}

	if user.IsDeleted {
		return nil, true
	}

	return user, true
}

func (u *UserServer) sendReset(ctx context.Context, user *model.User) bool {
	token, err := u.auth.IssueToken(user, auth.PurposeReset)
	if err != nil {
		u.logger.Error("error issuing reset token", zap.Uint("user_id", user.ID), zap.Error(err))

		return false
	}

	message := mail.ResetMessage(user.Email, user.Username, u.baseURL+"/reset_password/"+token)
	if err := u.mailer.Send(ctx, message); err != nil {
		u.logger.Error("error sending reset email", zap.Uint("user_id", user.ID), zap.Error(err))

		return false
	}

	return true
}

func (u *UserServer) ResetPage(w http.ResponseWriter, r *http.Request) {
	if _, err := u.tokenUser(r, auth.PurposeReset); err != nil {
		u.tokenFailure(w, r, err, "/reset_password_request")

		return
	}

	u.render(w, r, http.StatusOK, "reset_password.html", Page{Title: "Choose a new password", Data: chi.URLParam(r, "token")})
}

func (u *UserServer) Reset(w http.ResponseWriter, r *http.Request) {
	user, err := u.tokenUser(r, auth.PurposeReset)
	if err != nil {
		u.tokenFailure(w, r, err, "/reset_password_request")

		return
	}

	if err := r.ParseForm(); err != nil {
		u.fail(w, r, ErrBadRequest)

		return
	}

	form := passwordForm{Password: r.PostForm.Get("password"), ConfirmPassword: r.PostForm.Get("password2")}
	if errs := u.validator.Validate(form); errs != nil {
		u.render(w, r, http.StatusUnprocessableEntity, "reset_password.html", Page{
			Title: "Choose a new password", Errors: errs, Data: chi.URLParam(r, "token"),
		})

		return
	}

	hash, err := auth.HashPassword(form.Password)
	if err != nil {
		u.fail(w, r, err)

		return
	}

	user.PasswordHash = hash

	if err := u.users.UpdateUser(r.Context(), user); err != nil {
		u.fail(w, r, err)

		return
	}

	u.redirect(w, r, "/login", msgPasswordReset)
}
