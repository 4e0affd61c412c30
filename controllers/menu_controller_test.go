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

func menuRouter(t *testing.T, callerID uint) (*gin.Engine, sqlmock.Sqlmock, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, mock, cleanup := setupMockDB(t)

	ctrl := NewMenuController(services.NewMenuService(db), services.NewSeleccionService(db))
	r := gin.New()
	r.Use(withIdentity(callerID, "usuario"))
	g := r.Group("/menus")
	g.GET("", ctrl.List)
	g.GET("/:id", ctrl.Get)
	g.GET("/:id/ingredientes", ctrl.ListSelecciones)
	return r, mock, cleanup
}

func TestMenuListScopedToCaller(t *testing.T) {
	r, mock, cleanup := menuRouter(t, 1)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "menus" WHERE usuario_id =`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"menu_id", "usuario_id", "objetivo_id", "comida_id"}).
			AddRow(5, 1, 2, 3))

	req := httptest.NewRequest(http.MethodGet, "/menus", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusOK)

	var out []models.Menu
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if len(out) != 1 || out[0].MenuID != 5 {
		t.Fatalf("unexpected payload: %+v", out)
	}
}

func TestMenuGetOwned(t *testing.T) {
	r, mock, cleanup := menuRouter(t, 1)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "menus" WHERE`).
		WillReturnRows(sqlmock.NewRows([]string{"menu_id", "usuario_id", "objetivo_id", "comida_id"}).
			AddRow(5, 1, 2, 3))

	req := httptest.NewRequest(http.MethodGet, "/menus/5", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusOK)
}

func TestMenuGetForeignForbidden(t *testing.T) {
	r, mock, cleanup := menuRouter(t, 1)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "menus" WHERE`).
		WillReturnRows(sqlmock.NewRows([]string{"menu_id", "usuario_id", "objetivo_id", "comida_id"}).
			AddRow(5, 2, 2, 3))

	req := httptest.NewRequest(http.MethodGet, "/menus/5", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusForbidden)
}

func TestMenuSeleccionesJoined(t *testing.T) {
	r, mock, cleanup := menuRouter(t, 1)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "menus" WHERE`).
		WillReturnRows(sqlmock.NewRows([]string{"menu_id", "usuario_id", "objetivo_id", "comida_id"}).
			AddRow(5, 1, 2, 3))
	mock.ExpectQuery(`SELECT .* FROM "selecciones_ingredientes" JOIN ingredientes`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"seleccion_id", "menu_id", "ingrediente_id", "cantidad", "nombre_ingrediente", "calorias"}).
			AddRow(1, 5, 10, 150.0, "Espinaca", "23 kcal / 100g"))

	req := httptest.NewRequest(http.MethodGet, "/menus/5/ingredientes", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusOK)

	var out []models.SeleccionDetalle
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if len(out) != 1 || out[0].NombreIngrediente != "Espinaca" {
		t.Fatalf("unexpected payload: %+v", out)
	}
}
