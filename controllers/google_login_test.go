package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ChristianMoraLopez/nutriplanbackend/services"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

type fakeVerifier struct {
	identity *services.GoogleIdentity
	err      error
}

func (f *fakeVerifier) Verify(ctx context.Context, rawToken string) (*services.GoogleIdentity, error) {
	return f.identity, f.err
}

func googleRouter(t *testing.T, verifier services.TokenVerifier) (*gin.Engine, sqlmock.Sqlmock, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, mock, cleanup := setupMockDB(t)

	ctrl := NewAuthController(services.NewUsuarioService(db), verifier, testJWTSettings())
	r := gin.New()
	r.POST("/login/google", ctrl.LoginGoogle)
	return r, mock, cleanup
}

func TestLoginGoogleProvisionsAccount(t *testing.T) {
	verifier := &fakeVerifier{identity: &services.GoogleIdentity{Email: "ana@gmail.com", Nombre: "Ana"}}
	r, mock, cleanup := googleRouter(t, verifier)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "usuarios" WHERE email =`).
		WithArgs("ana@gmail.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"usuario_id"}))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "usuarios"`).
		WillReturnRows(sqlmock.NewRows([]string{"usuario_id"}).AddRow(11))
	mock.ExpectCommit()

	body, _ := json.Marshal(map[string]string{"idToken": "token-de-google"})
	req := httptest.NewRequest(http.MethodPost, "/login/google", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusOK)

	var out struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if out.Data.Token == "" {
		t.Fatalf("expected a session token")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestLoginGoogleRejectedToken(t *testing.T) {
	verifier := &fakeVerifier{err: errors.New("token expired")}
	r, _, cleanup := googleRouter(t, verifier)
	defer cleanup()

	body, _ := json.Marshal(map[string]string{"idToken": "caducado"})
	req := httptest.NewRequest(http.MethodPost, "/login/google", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusUnauthorized)
}

func TestLoginGoogleUnconfigured(t *testing.T) {
	r, _, cleanup := googleRouter(t, nil)
	defer cleanup()

	body, _ := json.Marshal(map[string]string{"idToken": "cualquiera"})
	req := httptest.NewRequest(http.MethodPost, "/login/google", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusServiceUnavailable)
}
