package server

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"droscher.com/MyWhiskies/configs"
	"droscher.com/MyWhiskies/pkg/auth"
	"droscher.com/MyWhiskies/pkg/images"
	"droscher.com/MyWhiskies/pkg/integrations"
	"droscher.com/MyWhiskies/pkg/listing"
	"droscher.com/MyWhiskies/pkg/mail"
	"droscher.com/MyWhiskies/pkg/repository"
	"droscher.com/MyWhiskies/pkg/validation"
)

// Dependencies are the services the router wires into handlers.
type Dependencies struct {
	Config       *configs.Config
	Users        repository.UserRepository
	Distilleries repository.DistilleryRepository
	Bottlers     repository.BottlerRepository
	Bottles      repository.BottleRepository
	Images       *images.Manager
	// ImageFiles serves stored pictures under /images when the store is
	// not publicly reachable on its own.
	ImageFiles http.Handler
	Auth       *auth.Manager
	Mailer     mail.Mailer
	Lookup     integrations.Integration
	Picker     listing.Picker
	Logger     *zap.Logger
}

func NewRouter(deps Dependencies) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	static, err := fs.Sub(templateFS, staticDirectory)
	if err != nil {
		return nil, err
	}

	web := NewWeb(templates, deps.Config.Server.SecureCookies, deps.Logger)
	validator := validation.New()

	users := NewUserServer(web, deps.Users, deps.Bottles, deps.Auth, deps.Mailer, validator, deps.Config.Server.BaseURL)
	bottles := NewBottleServer(web, deps.Users, deps.Bottles, deps.Distilleries, deps.Bottlers, deps.Images, validator, deps.Picker)
	distilleries := NewDistilleryServer(web, deps.Users, deps.Distilleries, deps.Bottles, deps.Images, deps.Lookup, validator, deps.Picker)
	bottlers := NewBottlerServer(web, deps.Users, deps.Bottlers, deps.Bottles, deps.Images, validator, deps.Picker)
	export := NewExportServer(web, deps.Bottles)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(deps.Logger))
	r.Use(middleware.Recoverer)

	healthPath, healthHandler := NewHealthHandler()
	r.Handle(healthPath+"*", healthHandler)

	for path, handler := range NewReflectionHandlers() {
		r.Handle(path+"*", handler)
	}

	r.Get("/healthz", Healthz)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(static)))

	if deps.ImageFiles != nil {
		r.Handle("/images/*", http.StripPrefix("/images/", deps.ImageFiles))
	}

	r.Group(func(r chi.Router) {
		r.Use(deps.Auth.Middleware)

		r.Get("/", users.Landing)
		r.Get("/login", users.LoginPage)
		r.Post("/login", users.Login)
		r.Get("/logout", users.Logout)
		r.Get("/register", users.RegisterPage)
		r.Post("/register", users.Register)
		r.Get("/confirm_register/{token}", users.ConfirmPage)
		r.Post("/confirm_register/{token}", users.Confirm)
		r.Get("/resend_register", users.ResendPage)
		r.Post("/resend_register", users.Resend)
		r.Get("/reset_password_request", users.ResetRequestPage)
		r.Post("/reset_password_request", users.ResetRequest)
		r.Get("/reset_password/{token}", users.ResetPage)
		r.Post("/reset_password/{token}", users.Reset)

		r.Get("/bottle/{id}", bottles.ShowBottle)
		r.Get("/distillery/{id}", distilleries.ShowDistillery)
		r.Post("/distillery/{id}", distilleries.ShowDistillery)
		r.Get("/bottler/{id}", bottlers.ShowBottler)
		r.Post("/bottler/{id}", bottlers.ShowBottler)

		r.Group(func(r chi.Router) {
			r.Use(deps.Auth.RequireUser)

			r.Get("/bottle/add", bottles.AddBottlePage)
			r.Post("/bottle/add", bottles.AddBottle)
			r.Get("/bottle/edit/{id}", bottles.EditBottlePage)
			r.Post("/bottle/edit/{id}", bottles.EditBottle)
			r.Get("/bottle/delete/{id}", bottles.DeleteBottle)

			r.Get("/distillery/add", distilleries.AddDistilleryPage)
			r.Post("/distillery/add", distilleries.AddDistillery)
			r.Get("/distillery/edit/{id}", distilleries.EditDistilleryPage)
			r.Post("/distillery/edit/{id}", distilleries.EditDistillery)
			r.Get("/distillery/delete/{id}", distilleries.DeleteDistillery)
			r.Get("/distillery/add_defaults", distilleries.AddDefaults)
			r.Get("/distillery/lookup", distilleries.Lookup)

			r.Get("/bottler/add", bottlers.AddBottlerPage)
			r.Post("/bottler/add", bottlers.AddBottler)
			r.Get("/bottler/edit/{id}", bottlers.EditBottlerPage)
			r.Post("/bottler/edit/{id}", bottlers.EditBottler)
			r.Get("/bottler/delete/{id}", bottlers.DeleteBottler)

			r.Get("/export_data/{id}", export.ExportData)
		})

		r.Get("/{username}", bottles.Home)
		r.Get("/{username}/bottles", bottles.ListBottles)
		r.Post("/{username}/bottles", bottles.ListBottles)
		r.Get("/{username}/distilleries", distilleries.ListDistilleries)
		r.Get("/{username}/bottlers", bottlers.ListBottlers)
	})

	return r, nil
}

// ObjectGetter reads a stored object by key.
type ObjectGetter interface {
	Get(key string) ([]byte, bool)
}

// ObjectHandler serves pictures straight out of an in-process store.
func ObjectHandler(store ObjectGetter, contentType string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, ok := store.Get(strings.TrimPrefix(r.URL.Path, "/"))
		if !ok {
			http.NotFound(w, r)

			return
		}

		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write(data)
	})
}
