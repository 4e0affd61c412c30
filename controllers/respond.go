package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ChristianMoraLopez/nutriplanbackend/logger"
	"github.com/ChristianMoraLopez/nutriplanbackend/models"
	"github.com/ChristianMoraLopez/nutriplanbackend/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func respondError(c *gin.Context, status int, message, detail string) {
	c.JSON(status, models.APIError{Message: message, Error: detail})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// parseIDParam converts a numeric path parameter, answering 400 on garbage.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID inválido", fmt.Sprintf("el parámetro %q debe ser numérico", name))
		return 0, false
	}
	return uint(id), true
}

// writeServiceError maps a service failure onto the HTTP taxonomy. Anything
// unexpected is logged and reported as a generic 500 without internal detail.
func writeServiceError(c *gin.Context, err error, entityName string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		respondError(c, http.StatusNotFound, fmt.Sprintf("%s no encontrado", entityName), "el registro no existe")
	case errors.Is(err, services.ErrDuplicate):
		respondError(c, http.StatusConflict, fmt.Sprintf("No se pudo guardar el %s", entityName), "ya existe un registro con esos datos")
	case errors.Is(err, services.ErrForeignKey):
		respondError(c, http.StatusConflict, fmt.Sprintf("No se pudo guardar el %s", entityName), "alguna referencia no existe")
	default:
		logger.L().Error("unexpected service error",
			zap.String("entity", entityName),
			zap.String("path", c.FullPath()),
			zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Error interno del servidor", "inténtalo de nuevo más tarde")
	}
}
