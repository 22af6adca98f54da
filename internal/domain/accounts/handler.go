package accounts

import (
	"errors"
	"net/http"

	"cat-collector/internal/middleware"
	"cat-collector/internal/platform/logger"
	"cat-collector/internal/platform/metrics"
	"cat-collector/internal/ports/auth"
	"cat-collector/internal/web"

	"github.com/go-chi/chi/v5"
)

const (
	msgInvalidSignup = "Invalid sign up - try again"
	msgInvalidLogin  = "Please enter a correct username and password."

	afterLogin = "/cats/"
)

type handlers struct {
	svc      *Service
	sessions auth.SessionManager
	rn       *web.Renderer
	metrics  *metrics.Metrics
	log      logger.Logger
}

// RegisterRoutes monta login (en "/"), signup y logout. limit se aplica solo
// a los POST de login y signup.
func RegisterRoutes(r chi.Router, svc *Service, sessions auth.SessionManager, rn *web.Renderer, m *metrics.Metrics, log logger.Logger, limit func(http.Handler) http.Handler) {
	if log == nil {
		log = logger.Nop()
	}
	if limit == nil {
		limit = func(next http.Handler) http.Handler { return next }
	}
	h := &handlers{svc: svc, sessions: sessions, rn: rn, metrics: m, log: log}

	r.Get("/", h.loginForm())
	r.Get("/home/", h.loginForm())
	r.With(limit).Post("/", h.login())

	r.Route("/accounts", func(ar chi.Router) {
		ar.Get("/signup/", h.signupForm())
		ar.With(limit).Post("/signup/", h.signup())
		ar.Post("/logout/", h.logout())
	})
}

// loginForm godoc
// @Summary Página de login
// @Description Muestra el formulario de login. `next` es la ruta a la que volver tras autenticarse.
// @Tags accounts
// @Produce html
// @Param next query string false "Ruta relativa a la que redirigir tras el login"
// @Success 200 {string} string "HTML"
// @Router / [get]
func (h *handlers) loginForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.rn.Render(w, r, http.StatusOK, "home.html", web.Page{
			Next: middleware.SafeNext(r.URL.Query().Get("next"), ""),
		})
	}
}

// login godoc
// @Summary Autenticar
// @Description Valida usuario y contraseña, fija la cookie de sesión y redirige a `next` o a /cats/.
// @Tags accounts
// @Accept x-www-form-urlencoded
// @Produce html
// @Param username formData string true "Usuario"
// @Param password formData string true "Contraseña"
// @Param next formData string false "Ruta relativa a la que redirigir"
// @Success 303 {string} string "redirect"
// @Failure 422 {string} string "credenciales inválidas"
// @Failure 429 {string} string "demasiados intentos"
// @Router / [post]
func (h *handlers) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		form := web.FormValues(r, "username", "next")
		next := middleware.SafeNext(form["next"], "")

		a, err := h.svc.Authenticate(r.Context(), form["username"], r.PostFormValue("password"))
		if errors.Is(err, ErrInvalidCredentials) {
			h.log.Info("login failed", map[string]any{"username": form["username"]})
			h.rn.Render(w, r, http.StatusUnprocessableEntity, "home.html", web.Page{
				Form:    form,
				Message: msgInvalidLogin,
				Next:    next,
			})
			return
		}
		if err != nil {
			h.rn.ServerError(w, r, err)
			return
		}

		if err := h.sessions.Login(w, auth.Claims{UserID: a.ID, Username: a.Username}); err != nil {
			h.rn.ServerError(w, r, err)
			return
		}
		http.Redirect(w, r, middleware.SafeNext(next, afterLogin), http.StatusSeeOther)
	}
}

// signupForm godoc
// @Summary Página de registro
// @Tags accounts
// @Produce html
// @Success 200 {string} string "HTML"
// @Router /accounts/signup/ [get]
func (h *handlers) signupForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.rn.Render(w, r, http.StatusOK, "signup.html", web.Page{})
	}
}

// signup godoc
// @Summary Crear cuenta
// @Description Crea la cuenta, inicia sesión y redirige a /cats/. Cualquier error de validación se reporta con un único mensaje genérico.
// @Tags accounts
// @Accept x-www-form-urlencoded
// @Produce html
// @Param username formData string true "Usuario (150 caracteres máx.)"
// @Param password1 formData string true "Contraseña"
// @Param password2 formData string true "Confirmación"
// @Success 303 {string} string "redirect a /cats/"
// @Failure 422 {string} string "Invalid sign up - try again"
// @Failure 429 {string} string "demasiados intentos"
// @Router /accounts/signup/ [post]
func (h *handlers) signup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		form := web.FormValues(r, "username")

		a, err := h.svc.Signup(r.Context(), SignupInput{
			Username:  form["username"],
			Password1: r.PostFormValue("password1"),
			Password2: r.PostFormValue("password2"),
		})
		if errors.Is(err, ErrInvalidSignup) {
			h.log.Debug("signup rejected", map[string]any{"username": form["username"], "error": err})
			h.rn.Render(w, r, http.StatusUnprocessableEntity, "signup.html", web.Page{
				Form:    form,
				Message: msgInvalidSignup,
			})
			return
		}
		if err != nil {
			h.rn.ServerError(w, r, err)
			return
		}
		h.metrics.RecordMutation("account", "create")
		h.log.Info("account created", map[string]any{"user_id": a.ID})

		if err := h.sessions.Login(w, auth.Claims{UserID: a.ID, Username: a.Username}); err != nil {
			h.rn.ServerError(w, r, err)
			return
		}
		http.Redirect(w, r, afterLogin, http.StatusSeeOther)
	}
}

// logout godoc
// @Summary Cerrar sesión
// @Tags accounts
// @Success 303 {string} string "redirect a /"
// @Router /accounts/logout/ [post]
func (h *handlers) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.sessions.Logout(w)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
