package controllers

import (
	"testing"

	"github.com/ChristianMoraLopez/nutriplanbackend/middlewares"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupMockDB opens gorm over a sqlmock connection so handler tests can assert
// the exact SQL traffic without a live database.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError:       true,
		DisableAutomaticPing: true,
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}

	cleanup := func() { _ = sqlDB.Close() }
	return gdb, mock, cleanup
}

// withIdentity injects an authenticated caller the way AuthMiddleware would.
func withIdentity(usuarioID uint, rol string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middlewares.CtxUsuarioID, usuarioID)
		c.Set(middlewares.CtxEmail, "test@example.com")
		c.Set(middlewares.CtxRol, rol)
		c.Next()
	}
}

func mustStatus(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Fatalf("expected status %d, got %d", want, got)
	}
}
