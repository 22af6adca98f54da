package cats

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"cat-collector/internal/domain/feedings"
	"cat-collector/internal/domain/toys"
	"cat-collector/internal/middleware"
	"cat-collector/internal/platform/metrics"
	"cat-collector/internal/platform/validate"
	"cat-collector/internal/web"

	"github.com/go-chi/chi/v5"
)

type handlers struct {
	svc      *Service
	feedings *feedings.Service
	toys     *toys.Service
	rn       *web.Renderer
	metrics  *metrics.Metrics
}

// Detail es el view model de cats/detail.html.
type Detail struct {
	Cat      Cat
	Feedings []feedings.Feeding
	Meals    []feedings.Meal

	Toys          []toys.Toy
	AvailableToys []toys.Toy
}

// RegisterRoutes monta /cats. Todas las rutas exigen sesión.
func RegisterRoutes(r chi.Router, svc *Service, feedingsSvc *feedings.Service, toysSvc *toys.Service, rn *web.Renderer, m *metrics.Metrics) {
	h := &handlers{svc: svc, feedings: feedingsSvc, toys: toysSvc, rn: rn, metrics: m}

	r.Route("/cats", func(cr chi.Router) {
		cr.Use(middleware.RequireLogin)

		cr.Get("/", h.index())
		cr.Get("/create/", h.createForm())
		cr.Post("/create/", h.create())

		cr.Route("/{catID}", func(one chi.Router) {
			one.Get("/", h.detail())
			one.Get("/update/", h.updateForm())
			one.Post("/update/", h.update())
			one.Get("/delete/", h.confirmDelete())
			one.Post("/delete/", h.delete())
			one.Post("/add_feeding/", h.addFeeding())
			one.Post("/assoc_toy/{toyID}/", h.assocToy())
			one.Post("/unassoc_toy/{toyID}/", h.unassocToy())
		})
	})
}

func currentUser(r *http.Request) string {
	c, _ := middleware.GetClaims(r.Context())
	return strings.TrimSpace(c.UserID)
}

// index godoc
// @Summary Listar mis gatos
// @Description Lista solo los gatos del usuario autenticado, en orden de creación.
// @Tags cats
// @Produce html
// @Param X-Debug-User-ID header string false "Solo con DEBUG_AUTH, ID de usuario para depuración"
// @Success 200 {string} string "HTML"
// @Failure 302 {string} string "redirect a login"
// @Router /cats/ [get]
func (h *handlers) index() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.svc.ListByOwner(r.Context(), currentUser(r))
		if err != nil {
			h.rn.ServerError(w, r, err)
			return
		}
		h.rn.Render(w, r, http.StatusOK, "cats/index.html", web.Page{Title: "My cats", Data: items})
	}
}

// detail godoc
// @Summary Detalle de un gato
// @Description Muestra el gato con sus comidas (fecha desc), un formulario de comida vacío y sus juguetes. Un gato ajeno responde 404.
// @Tags cats
// @Produce html
// @Param catID path string true "ID del gato"
// @Success 200 {string} string "HTML"
// @Failure 404 {string} string "not found"
// @Router /cats/{catID}/ [get]
func (h *handlers) detail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := h.svc.Get(r.Context(), chi.URLParam(r, "catID"), currentUser(r))
		if err != nil {
			h.fail(w, r, err)
			return
		}
		h.renderDetail(w, r, http.StatusOK, c, nil, nil)
	}
}

// renderDetail arma el view model; form/errs solo vienen tras un add_feeding inválido.
func (h *handlers) renderDetail(w http.ResponseWriter, r *http.Request, status int, c Cat, form map[string]string, errs validate.FieldErrors) {
	fs, err := h.feedings.ListByCat(r.Context(), c.ID)
	if err != nil {
		h.rn.ServerError(w, r, err)
		return
	}

	all, err := h.toys.List(r.Context())
	if err != nil {
		h.rn.ServerError(w, r, err)
		return
	}
	ids, err := h.svc.ToyIDs(r.Context(), c.ID)
	if err != nil {
		h.rn.ServerError(w, r, err)
		return
	}
	has := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		has[id] = struct{}{}
	}

	d := Detail{Cat: c, Feedings: fs, Meals: feedings.Meals}
	for _, t := range all {
		if _, ok := has[t.ID]; ok {
			d.Toys = append(d.Toys, t)
		} else {
			d.AvailableToys = append(d.AvailableToys, t)
		}
	}

	h.rn.Render(w, r, status, "cats/detail.html", web.Page{
		Title:  c.Name,
		Form:   form,
		Errors: errs,
		Data:   d,
	})
}

// createForm godoc
// @Summary Formulario de alta de gato
// @Tags cats
// @Produce html
// @Success 200 {string} string "HTML"
// @Router /cats/create/ [get]
func (h *handlers) createForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.rn.Render(w, r, http.StatusOK, "cats/form.html", web.Page{Title: "Add a cat"})
	}
}

// create godoc
// @Summary Crear gato
// @Description Crea un gato del usuario autenticado. age debe ser >= 0 (0 se muestra como "Kitten").
// @Tags cats
// @Accept x-www-form-urlencoded
// @Produce html
// @Param name formData string true "Nombre (100 máx.)"
// @Param breed formData string true "Raza (100 máx.)"
// @Param description formData string true "Descripción (250 máx.)"
// @Param age formData int true "Edad en años"
// @Success 303 {string} string "redirect al detalle"
// @Failure 422 {string} string "errores de validación"
// @Router /cats/create/ [post]
func (h *handlers) create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		form := web.FormValues(r, "name", "breed", "description", "age")
		age, ageErr := parseAge(form["age"])

		in := CreateInput{
			Name:        form["name"],
			Breed:       form["breed"],
			Description: form["description"],
			Age:         age,
		}

		var (
			c   Cat
			err error
		)
		if ageErr != nil {
			err = validate.Merge(validate.Struct(in), ageErr)
		} else {
			c, err = h.svc.Create(r.Context(), currentUser(r), in)
		}

		var fe validate.FieldErrors
		if errors.As(err, &fe) {
			h.rn.Render(w, r, http.StatusUnprocessableEntity, "cats/form.html", web.Page{
				Title:  "Add a cat",
				Form:   form,
				Errors: fe,
			})
			return
		}
		if err != nil {
			h.fail(w, r, err)
			return
		}

		h.metrics.RecordMutation("cat", "create")
		http.Redirect(w, r, "/cats/"+c.ID+"/", http.StatusSeeOther)
	}
}

// updateForm godoc
// @Summary Formulario de edición de gato
// @Description El nombre no se puede editar.
// @Tags cats
// @Produce html
// @Param catID path string true "ID del gato"
// @Success 200 {string} string "HTML"
// @Failure 404 {string} string "not found"
// @Router /cats/{catID}/update/ [get]
func (h *handlers) updateForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := h.svc.Get(r.Context(), chi.URLParam(r, "catID"), currentUser(r))
		if err != nil {
			h.fail(w, r, err)
			return
		}
		h.rn.Render(w, r, http.StatusOK, "cats/form.html", web.Page{
			Title: "Edit " + c.Name,
			Form: map[string]string{
				"breed":       c.Breed,
				"description": c.Description,
				"age":         strconv.Itoa(c.Age),
			},
			Data: c,
		})
	}
}

// update godoc
// @Summary Actualizar gato
// @Description Sobrescribe raza, descripción y edad. El nombre y el dueño no cambian.
// @Tags cats
// @Accept x-www-form-urlencoded
// @Produce html
// @Param catID path string true "ID del gato"
// @Param breed formData string true "Raza"
// @Param description formData string true "Descripción"
// @Param age formData int true "Edad"
// @Success 303 {string} string "redirect al detalle"
// @Failure 404 {string} string "not found"
// @Failure 422 {string} string "errores de validación"
// @Router /cats/{catID}/update/ [post]
func (h *handlers) update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner := currentUser(r)
		current, err := h.svc.Get(r.Context(), chi.URLParam(r, "catID"), owner)
		if err != nil {
			h.fail(w, r, err)
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		form := web.FormValues(r, "breed", "description", "age")
		age, ageErr := parseAge(form["age"])

		in := UpdateInput{
			Breed:       form["breed"],
			Description: form["description"],
			Age:         age,
		}
		if ageErr != nil {
			err = validate.Merge(validate.Struct(in), ageErr)
		} else {
			_, err = h.svc.Update(r.Context(), current.ID, owner, in)
		}

		var fe validate.FieldErrors
		if errors.As(err, &fe) {
			h.rn.Render(w, r, http.StatusUnprocessableEntity, "cats/form.html", web.Page{
				Title:  "Edit " + current.Name,
				Form:   form,
				Errors: fe,
				Data:   current,
			})
			return
		}
		if err != nil {
			h.fail(w, r, err)
			return
		}

		h.metrics.RecordMutation("cat", "update")
		http.Redirect(w, r, "/cats/"+current.ID+"/", http.StatusSeeOther)
	}
}

// confirmDelete godoc
// @Summary Confirmar borrado de gato
// @Tags cats
// @Produce html
// @Param catID path string true "ID del gato"
// @Success 200 {string} string "HTML"
// @Failure 404 {string} string "not found"
// @Router /cats/{catID}/delete/ [get]
func (h *handlers) confirmDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := h.svc.Get(r.Context(), chi.URLParam(r, "catID"), currentUser(r))
		if err != nil {
			h.fail(w, r, err)
			return
		}
		h.rn.Render(w, r, http.StatusOK, "cats/confirm_delete.html", web.Page{Title: "Delete " + c.Name, Data: c})
	}
}

// delete godoc
// @Summary Borrar gato
// @Description Borra el gato junto con sus comidas y asociaciones a juguetes.
// @Tags cats
// @Param catID path string true "ID del gato"
// @Success 303 {string} string "redirect a /cats/"
// @Failure 404 {string} string "not found"
// @Router /cats/{catID}/delete/ [post]
func (h *handlers) delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.svc.Delete(r.Context(), chi.URLParam(r, "catID"), currentUser(r)); err != nil {
			h.fail(w, r, err)
			return
		}
		h.metrics.RecordMutation("cat", "delete")
		http.Redirect(w, r, "/cats/", http.StatusSeeOther)
	}
}

// addFeeding godoc
// @Summary Registrar comida
// @Description Agrega una comida al gato. Si el gato no es del usuario responde 404 y no persiste nada.
// @Tags cats
// @Accept x-www-form-urlencoded
// @Produce html
// @Param catID path string true "ID del gato"
// @Param date formData string true "Fecha YYYY-MM-DD"
// @Param meal formData string false "B, L o D (por defecto B)"
// @Success 303 {string} string "redirect al detalle"
// @Failure 404 {string} string "not found"
// @Failure 422 {string} string "errores de validación"
// @Router /cats/{catID}/add_feeding/ [post]
func (h *handlers) addFeeding() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catID := chi.URLParam(r, "catID")
		owner := currentUser(r)

		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		form := web.FormValues(r, "date", "meal")

		_, err := h.feedings.Add(r.Context(), catID, owner, feedings.AddInput{
			Date: form["date"],
			Meal: feedings.Meal(form["meal"]),
		})

		var fe validate.FieldErrors
		if errors.As(err, &fe) {
			c, gerr := h.svc.Get(r.Context(), catID, owner)
			if gerr != nil {
				h.fail(w, r, gerr)
				return
			}
			h.renderDetail(w, r, http.StatusUnprocessableEntity, c, form, fe)
			return
		}
		if err != nil {
			h.fail(w, r, err)
			return
		}

		h.metrics.RecordMutation("feeding", "create")
		http.Redirect(w, r, "/cats/"+catID+"/", http.StatusSeeOther)
	}
}

// assocToy godoc
// @Summary Asociar juguete
// @Description Asocia un juguete existente al gato. Idempotente.
// @Tags cats
// @Param catID path string true "ID del gato"
// @Param toyID path string true "ID del juguete"
// @Success 303 {string} string "redirect al detalle"
// @Failure 404 {string} string "not found"
// @Router /cats/{catID}/assoc_toy/{toyID}/ [post]
func (h *handlers) assocToy() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catID := chi.URLParam(r, "catID")
		if err := h.svc.AddToy(r.Context(), catID, currentUser(r), chi.URLParam(r, "toyID")); err != nil {
			h.fail(w, r, err)
			return
		}
		h.metrics.RecordMutation("cat_toy", "create")
		http.Redirect(w, r, "/cats/"+catID+"/", http.StatusSeeOther)
	}
}

// unassocToy godoc
// @Summary Quitar juguete
// @Tags cats
// @Param catID path string true "ID del gato"
// @Param toyID path string true "ID del juguete"
// @Success 303 {string} string "redirect al detalle"
// @Failure 404 {string} string "not found"
// @Router /cats/{catID}/unassoc_toy/{toyID}/ [post]
func (h *handlers) unassocToy() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catID := chi.URLParam(r, "catID")
		if err := h.svc.RemoveToy(r.Context(), catID, currentUser(r), chi.URLParam(r, "toyID")); err != nil {
			h.fail(w, r, err)
			return
		}
		h.metrics.RecordMutation("cat_toy", "delete")
		http.Redirect(w, r, "/cats/"+catID+"/", http.StatusSeeOther)
	}
}

// fail traduce errores de servicio: not found (o ajeno) => 404, resto => 500.
func (h *handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, feedings.ErrNotFound), errors.Is(err, toys.ErrNotFound):
		h.rn.NotFound(w, r)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, "invalid input", http.StatusBadRequest)
	default:
		h.rn.ServerError(w, r, err)
	}
}

func parseAge(s string) (int, validate.FieldErrors) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, validate.FieldErrors{"age": "This field is required."}
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if errors.Is(err, strconv.ErrRange) {
		if strings.HasPrefix(s, "-") {
			return 0, validate.FieldErrors{"age": "Ensure this value is greater than or equal to 0."}
		}
		return 0, validate.FieldErrors{"age": fmt.Sprintf("Ensure this value is less than or equal to %d.", MaxAge)}
	}
	if err != nil {
		return 0, validate.FieldErrors{"age": "Enter a whole number."}
	}
	return int(n), nil
}
