package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestRouter_AddRoutes_MiddlewareOrder(t *testing.T) {
	var calls []string

	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls = append(calls, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	rt := New(WithRoutes(Route{
		Path:   "/api/delivery/:id",
		Method: http.MethodDelete,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls = append(calls, "handler:"+httprouter.ParamsFromContext(r.Context()).ByName("id"))
		}),
		Middlewares: []func(http.Handler) http.Handler{tag("primeiro"), tag("segundo")},
	}))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/delivery/9", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"primeiro", "segundo", "handler:9"}, calls)
}

func TestRouter_WithNotFound(t *testing.T) {
	rt := New(WithNotFound(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/quality", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestRouter_WithoutNotFound(t *testing.T) {
	rt := New(WithNotFound(nil))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/qualquer", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
