package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ChristianMoraLopez/nutriplanbackend/models"
	"github.com/ChristianMoraLopez/nutriplanbackend/services"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

func recetaRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, mock, cleanup := setupMockDB(t)

	ctrl := NewRecetaController(services.NewRecetaService(db), services.NewRecetaIngredienteService(db))
	r := gin.New()
	g := r.Group("/recetas")
	g.GET("/tipo/:tipoComidaId", ctrl.PorTipoComida)
	g.GET("/:id/ingredientes", ctrl.ListIngredientes)
	g.POST("/:id/ingredientes", ctrl.AddIngrediente)
	g.GET("/:id/ingredientes/:ingredienteId", ctrl.GetIngrediente)
	g.DELETE("/:id/ingredientes/:ingredienteId", ctrl.RemoveIngrediente)
	return r, mock, cleanup
}

func TestRecetasPorTipoComida(t *testing.T) {
	r, mock, cleanup := recetaRouter(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "recetas" WHERE tipo_comida_id =`).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"receta_id", "nombre", "tipo_comida_id", "instrucciones"}).
			AddRow(4, "Avena con frutas", 2, "Mezclar y servir."))

	req := httptest.NewRequest(http.MethodGet, "/recetas/tipo/2", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusOK)

	var out []models.Receta
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if len(out) != 1 || out[0].TipoComidaID != 2 {
		t.Fatalf("unexpected payload: %+v", out)
	}
}

func TestRecetaIngredientesJoined(t *testing.T) {
	r, mock, cleanup := recetaRouter(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "recetas" WHERE`).
		WillReturnRows(sqlmock.NewRows([]string{"receta_id", "nombre", "tipo_comida_id", "instrucciones"}).
			AddRow(4, "Avena con frutas", 2, "Mezclar y servir."))
	mock.ExpectQuery(`SELECT .* FROM "receta_ingredientes" JOIN ingredientes`).
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows([]string{"receta_id", "ingrediente_id", "nombre_ingrediente", "cantidad", "unidad"}).
			AddRow(4, 10, "Avena", 50.0, "g").
			AddRow(4, 11, "Banano", 1.0, "unidad"))

	req := httptest.NewRequest(http.MethodGet, "/recetas/4/ingredientes", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusOK)

	var out []models.RecetaIngredienteDetalle
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if len(out) != 2 || out[0].NombreIngrediente != "Avena" {
		t.Fatalf("unexpected payload: %+v", out)
	}
}

func TestRecetaAddIngrediente(t *testing.T) {
	r, mock, cleanup := recetaRouter(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "receta_ingredientes"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	body, _ := json.Marshal(map[string]any{
		"ingredienteId": 10,
		"cantidad":      50,
		"unidad":        "g",
	})
	req := httptest.NewRequest(http.MethodPost, "/recetas/4/ingredientes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusCreated)

	var out models.RecetaIngrediente
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if out.RecetaID != 4 || out.IngredienteID != 10 {
		t.Fatalf("unexpected payload: %+v", out)
	}
}

func TestRecetaGetIngredienteNotFound(t *testing.T) {
	r, mock, cleanup := recetaRouter(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT .* FROM "receta_ingredientes" JOIN ingredientes`).
		WithArgs(4, 99).
		WillReturnRows(sqlmock.NewRows([]string{"receta_id", "ingrediente_id", "nombre_ingrediente", "cantidad", "unidad"}))

	req := httptest.NewRequest(http.MethodGet, "/recetas/4/ingredientes/99", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusNotFound)
}

func TestRecetaRemoveIngredienteNotFound(t *testing.T) {
	r, mock, cleanup := recetaRouter(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "receta_ingredientes"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	req := httptest.NewRequest(http.MethodDelete, "/recetas/4/ingredientes/99", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusNotFound)
}
