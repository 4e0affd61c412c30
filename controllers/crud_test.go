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

func categoriaRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, mock, cleanup := setupMockDB(t)

	r := gin.New()
	RegisterCrud(r.Group("/categorias"), "categoría", services.NewCategoriaService(db))
	return r, mock, cleanup
}

func TestCategoriaList(t *testing.T) {
	r, mock, cleanup := categoriaRouter(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "categorias_ingredientes"`).
		WillReturnRows(sqlmock.NewRows([]string{"categoria_id", "nombre"}).
			AddRow(1, "Verduras").
			AddRow(2, "Frutas"))

	req := httptest.NewRequest(http.MethodGet, "/categorias", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusOK)

	var out []models.CategoriaIngrediente
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if len(out) != 2 || out[0].Nombre != "Verduras" {
		t.Fatalf("unexpected payload: %+v", out)
	}
}

func TestCategoriaGetNotFound(t *testing.T) {
	r, mock, cleanup := categoriaRouter(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "categorias_ingredientes" WHERE`).
		WillReturnRows(sqlmock.NewRows([]string{"categoria_id", "nombre"}))

	req := httptest.NewRequest(http.MethodGet, "/categorias/99", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusNotFound)
}

func TestCategoriaGetBadID(t *testing.T) {
	r, _, cleanup := categoriaRouter(t)
	defer cleanup()

	req := httptest.NewRequest(http.MethodGet, "/categorias/abc", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusBadRequest)
}

func TestCategoriaCreate(t *testing.T) {
	r, mock, cleanup := categoriaRouter(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "categorias_ingredientes"`).
		WithArgs("Lácteos").
		WillReturnRows(sqlmock.NewRows([]string{"categoria_id"}).AddRow(3))
	mock.ExpectCommit()

	body, _ := json.Marshal(map[string]string{"nombre": "Lácteos"})
	req := httptest.NewRequest(http.MethodPost, "/categorias", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusCreated)

	var out models.CategoriaIngrediente
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if out.CategoriaID != 3 {
		t.Fatalf("expected categoriaId 3, got %d", out.CategoriaID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestCategoriaUpdateNotFound(t *testing.T) {
	r, mock, cleanup := categoriaRouter(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "categorias_ingredientes" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	body, _ := json.Marshal(map[string]string{"nombre": "Granos"})
	req := httptest.NewRequest(http.MethodPut, "/categorias/99", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusNotFound)
}

func TestCategoriaDelete(t *testing.T) {
	r, mock, cleanup := categoriaRouter(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "categorias_ingredientes"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	req := httptest.NewRequest(http.MethodDelete, "/categorias/2", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusOK)
}
