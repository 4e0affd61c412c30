package controllers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CrudService is the uniform data-access contract the generic routes bind to.
// Update and Delete report affected rows; zero means not-found.
type CrudService[T any] interface {
	Create(ctx context.Context, entity *T) error
	Read(ctx context.Context, id uint) (*T, error)
	Update(ctx context.Context, id uint, entity *T) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
	List(ctx context.Context) ([]T, error)
}

// RegisterReadOnly installs only the list and get routes, used for the public
// unauthenticated mirror of the catalogs.
func RegisterReadOnly[T any](rg *gin.RouterGroup, entityName string, svc CrudService[T]) {
	rg.GET("", func(c *gin.Context) {
		items, err := svc.List(c.Request.Context())
		if err != nil {
			writeServiceError(c, err, entityName)
			return
		}
		c.JSON(http.StatusOK, items)
	})

	rg.GET("/:id", func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}
		item, err := svc.Read(c.Request.Context(), id)
		if err != nil {
			writeServiceError(c, err, entityName)
			return
		}
		c.JSON(http.StatusOK, item)
	})
}

// RegisterCrud installs the conventional CRUD surface for one entity on rg.
// The handler is instantiated per entity type at registration, so request
// bodies bind to the concrete type with no runtime casts.
func RegisterCrud[T any](rg *gin.RouterGroup, entityName string, svc CrudService[T]) {
	rg.GET("", func(c *gin.Context) {
		items, err := svc.List(c.Request.Context())
		if err != nil {
			writeServiceError(c, err, entityName)
			return
		}
		c.JSON(http.StatusOK, items)
	})

	rg.GET("/:id", func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}
		item, err := svc.Read(c.Request.Context(), id)
		if err != nil {
			writeServiceError(c, err, entityName)
			return
		}
		c.JSON(http.StatusOK, item)
	})

	rg.POST("", func(c *gin.Context) {
		var entity T
		if err := c.ShouldBindJSON(&entity); err != nil {
			respondError(c, http.StatusBadRequest, "Cuerpo de la petición inválido", err.Error())
			return
		}
		if err := svc.Create(c.Request.Context(), &entity); err != nil {
			writeServiceError(c, err, entityName)
			return
		}
		c.JSON(http.StatusCreated, entity)
	})

	rg.PUT("/:id", func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}
		var entity T
		if err := c.ShouldBindJSON(&entity); err != nil {
			respondError(c, http.StatusBadRequest, "Cuerpo de la petición inválido", err.Error())
			return
		}
		affected, err := svc.Update(c.Request.Context(), id, &entity)
		if err != nil {
			writeServiceError(c, err, entityName)
			return
		}
		if affected == 0 {
			respondError(c, http.StatusNotFound, fmt.Sprintf("%s no encontrado", entityName), "el registro no existe")
			return
		}
		respondMessage(c, fmt.Sprintf("%s actualizado correctamente", entityName))
	})

	rg.DELETE("/:id", func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}
		affected, err := svc.Delete(c.Request.Context(), id)
		if err != nil {
			writeServiceError(c, err, entityName)
			return
		}
		if affected == 0 {
			respondError(c, http.StatusNotFound, fmt.Sprintf("%s no encontrado", entityName), "el registro no existe")
			return
		}
		respondMessage(c, fmt.Sprintf("%s eliminado correctamente", entityName))
	})
}
