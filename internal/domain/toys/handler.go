package toys

import (
	"errors"
	"net/http"

	"cat-collector/internal/middleware"
	"cat-collector/internal/platform/metrics"
	"cat-collector/internal/platform/validate"
	"cat-collector/internal/web"

	"github.com/go-chi/chi/v5"
)

// Los toys son compartidos: cualquier usuario autenticado los ve y edita.
func RegisterRoutes(r chi.Router, svc *Service, rn *web.Renderer, m *metrics.Metrics) {
	r.Route("/toys", func(tr chi.Router) {
		tr.Use(middleware.RequireLogin)

		tr.Get("/", listToysHandler(svc, rn))
		tr.Get("/create/", toyFormHandler(svc, rn, false))
		tr.Post("/create/", createToyHandler(svc, rn, m))
		tr.Get("/{toyID}/", getToyHandler(svc, rn))
		tr.Get("/{toyID}/update/", toyFormHandler(svc, rn, true))
		tr.Post("/{toyID}/update/", updateToyHandler(svc, rn, m))
		tr.Get("/{toyID}/delete/", confirmDeleteToyHandler(svc, rn))
		tr.Post("/{toyID}/delete/", deleteToyHandler(svc, rn, m))
	})
}

// listToysHandler godoc
// @Summary Listar juguetes
// @Tags toys
// @Produce html
// @Success 200 {string} string "HTML"
// @Router /toys/ [get]
func listToysHandler(svc *Service, rn *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			rn.ServerError(w, r, err)
			return
		}
		rn.Render(w, r, http.StatusOK, "toys/index.html", web.Page{Title: "Toys", Data: items})
	}
}

// getToyHandler godoc
// @Summary Detalle de juguete
// @Tags toys
// @Produce html
// @Param toyID path string true "ID del juguete"
// @Success 200 {string} string "HTML"
// @Failure 404 {string} string "not found"
// @Router /toys/{toyID}/ [get]
func getToyHandler(svc *Service, rn *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := svc.Get(r.Context(), chi.URLParam(r, "toyID"))
		if err != nil {
			fail(rn, w, r, err)
			return
		}
		rn.Render(w, r, http.StatusOK, "toys/detail.html", web.Page{Title: t.Name, Data: t})
	}
}

// toyFormHandler sirve tanto el alta (existing=false) como la edición.
//
// @Summary Formulario de juguete
// @Tags toys
// @Produce html
// @Param toyID path string true "ID del juguete"
// @Success 200 {string} string "HTML"
// @Failure 404 {string} string "not found"
// @Router /toys/{toyID}/update/ [get]
func toyFormHandler(svc *Service, rn *web.Renderer, existing bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !existing {
			rn.Render(w, r, http.StatusOK, "toys/form.html", web.Page{Title: "Add a toy"})
			return
		}

		t, err := svc.Get(r.Context(), chi.URLParam(r, "toyID"))
		if err != nil {
			fail(rn, w, r, err)
			return
		}
		rn.Render(w, r, http.StatusOK, "toys/form.html", web.Page{
			Title: "Edit " + t.Name,
			Form:  map[string]string{"name": t.Name, "color": t.Color},
			Data:  t,
		})
	}
}

// createToyHandler godoc
// @Summary Crear juguete
// @Tags toys
// @Accept x-www-form-urlencoded
// @Produce html
// @Param name formData string true "Nombre (50 máx.)"
// @Param color formData string true "Color (20 máx.)"
// @Success 303 {string} string "redirect al detalle"
// @Failure 422 {string} string "errores de validación"
// @Router /toys/create/ [post]
func createToyHandler(svc *Service, rn *web.Renderer, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		form := web.FormValues(r, "name", "color")

		t, err := svc.Create(r.Context(), Input{Name: form["name"], Color: form["color"]})
		var fe validate.FieldErrors
		if errors.As(err, &fe) {
			rn.Render(w, r, http.StatusUnprocessableEntity, "toys/form.html", web.Page{
				Title:  "Add a toy",
				Form:   form,
				Errors: fe,
			})
			return
		}
		if err != nil {
			fail(rn, w, r, err)
			return
		}

		m.RecordMutation("toy", "create")
		http.Redirect(w, r, "/toys/"+t.ID+"/", http.StatusSeeOther)
	}
}

// updateToyHandler godoc
// @Summary Actualizar juguete
// @Description No hay control de dueño: los juguetes son compartidos.
// @Tags toys
// @Accept x-www-form-urlencoded
// @Produce html
// @Param toyID path string true "ID del juguete"
// @Param name formData string true "Nombre"
// @Param color formData string true "Color"
// @Success 303 {string} string "redirect al detalle"
// @Failure 404 {string} string "not found"
// @Failure 422 {string} string "errores de validación"
// @Router /toys/{toyID}/update/ [post]
func updateToyHandler(svc *Service, rn *web.Renderer, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, err := svc.Get(r.Context(), chi.URLParam(r, "toyID"))
		if err != nil {
			fail(rn, w, r, err)
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		form := web.FormValues(r, "name", "color")

		t, err := svc.Update(r.Context(), current.ID, Input{Name: form["name"], Color: form["color"]})
		var fe validate.FieldErrors
		if errors.As(err, &fe) {
			rn.Render(w, r, http.StatusUnprocessableEntity, "toys/form.html", web.Page{
				Title:  "Edit " + current.Name,
				Form:   form,
				Errors: fe,
				Data:   current,
			})
			return
		}
		if err != nil {
			fail(rn, w, r, err)
			return
		}

		m.RecordMutation("toy", "update")
		http.Redirect(w, r, "/toys/"+t.ID+"/", http.StatusSeeOther)
	}
}

// confirmDeleteToyHandler godoc
// @Summary Confirmar borrado de juguete
// @Tags toys
// @Produce html
// @Param toyID path string true "ID del juguete"
// @Success 200 {string} string "HTML"
// @Failure 404 {string} string "not found"
// @Router /toys/{toyID}/delete/ [get]
func confirmDeleteToyHandler(svc *Service, rn *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := svc.Get(r.Context(), chi.URLParam(r, "toyID"))
		if err != nil {
			fail(rn, w, r, err)
			return
		}
		rn.Render(w, r, http.StatusOK, "toys/confirm_delete.html", web.Page{Title: "Delete " + t.Name, Data: t})
	}
}

// deleteToyHandler godoc
// @Summary Borrar juguete
// @Description Borra el juguete y sus asociaciones con gatos.
// @Tags toys
// @Param toyID path string true "ID del juguete"
// @Success 303 {string} string "redirect a /toys/"
// @Failure 404 {string} string "not found"
// @Router /toys/{toyID}/delete/ [post]
func deleteToyHandler(svc *Service, rn *web.Renderer, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "toyID")); err != nil {
			fail(rn, w, r, err)
			return
		}
		m.RecordMutation("toy", "delete")
		http.Redirect(w, r, "/toys/", http.StatusSeeOther)
	}
}

func fail(rn *web.Renderer, w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrNotFound) {
		rn.NotFound(w, r)
		return
	}
	rn.ServerError(w, r, err)
}
