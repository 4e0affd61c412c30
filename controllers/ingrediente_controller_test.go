package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ChristianMoraLopez/nutriplanbackend/models"
	"github.com/ChristianMoraLopez/nutriplanbackend/services"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

func ingredienteRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, mock, cleanup := setupMockDB(t)

	ctrl := NewIngredienteController(services.NewIngredienteService(db), nil)
	r := gin.New()
	g := r.Group("/ingredientes")
	g.GET("/search", ctrl.Search)
	g.GET("/categoria/:categoriaId", ctrl.PorCategoria)
	g.POST("/:id/foto", ctrl.UploadFoto)
	return r, mock, cleanup
}

func TestIngredientesPorCategoria(t *testing.T) {
	r, mock, cleanup := ingredienteRouter(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "ingredientes" WHERE categoria_id =`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"ingrediente_id", "nombre", "categoria_id", "calorias"}).
			AddRow(10, "Espinaca", 3, "23 kcal / 100g").
			AddRow(11, "Brócoli", 3, "34 kcal / 100g"))

	req := httptest.NewRequest(http.MethodGet, "/ingredientes/categoria/3", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusOK)

	var out []models.Ingrediente
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if len(out) != 2 || out[0].CategoriaID != 3 {
		t.Fatalf("unexpected payload: %+v", out)
	}
}

func TestIngredienteSearch(t *testing.T) {
	r, mock, cleanup := ingredienteRouter(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "ingredientes" WHERE nombre ILIKE`).
		WithArgs("%poll%").
		WillReturnRows(sqlmock.NewRows([]string{"ingrediente_id", "nombre", "categoria_id"}).
			AddRow(20, "Pollo", 5))

	req := httptest.NewRequest(http.MethodGet, "/ingredientes/search?q=poll", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusOK)

	var out []models.Ingrediente
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if len(out) != 1 || out[0].Nombre != "Pollo" {
		t.Fatalf("unexpected payload: %+v", out)
	}
}

func TestIngredienteSearchMissingQuery(t *testing.T) {
	r, _, cleanup := ingredienteRouter(t)
	defer cleanup()

	req := httptest.NewRequest(http.MethodGet, "/ingredientes/search", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusBadRequest)
}

func TestIngredienteUploadFotoUnconfigured(t *testing.T) {
	r, _, cleanup := ingredienteRouter(t)
	defer cleanup()

	req := httptest.NewRequest(http.MethodPost, "/ingredientes/10/foto", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusServiceUnavailable)
}
