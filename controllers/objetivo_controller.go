package controllers

import (
	"net/http"

	"github.com/ChristianMoraLopez/nutriplanbackend/middlewares"
	"github.com/ChristianMoraLopez/nutriplanbackend/models"
	"github.com/ChristianMoraLopez/nutriplanbackend/services"

	"github.com/gin-gonic/gin"
)

// ObjetivoController manages goals. Goals without an owner are shared catalog
// entries readable by everyone; owned goals can only be mutated by their
// owner.
type ObjetivoController struct {
	objetivos *services.ObjetivoService
}

func NewObjetivoController(objetivos *services.ObjetivoService) *ObjetivoController {
	return &ObjetivoController{objetivos: objetivos}
}

// List returns every goal. GET /objetivos
func (o *ObjetivoController) List(c *gin.Context) {
	objetivos, err := o.objetivos.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, "objetivo")
		return
	}
	c.JSON(http.StatusOK, objetivos)
}

// Get returns one goal. GET /objetivos/:id
func (o *ObjetivoController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	objetivo, err := o.objetivos.Read(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err, "objetivo")
		return
	}
	c.JSON(http.StatusOK, objetivo)
}

// Create records a goal owned by the caller unless it is created as a shared
// catalog entry. POST /objetivos
func (o *ObjetivoController) Create(c *gin.Context) {
	var objetivo models.Objetivo
	if err := c.ShouldBindJSON(&objetivo); err != nil {
		respondError(c, http.StatusBadRequest, "Cuerpo de la petición inválido", err.Error())
		return
	}
	if objetivo.Nombre == "" {
		respondError(c, http.StatusBadRequest, "Datos incompletos", "nombre es obligatorio")
		return
	}
	if objetivo.UsuarioID == nil {
		if usuarioID, ok := middlewares.CallerID(c); ok {
			objetivo.UsuarioID = &usuarioID
		}
	}

	if err := o.objetivos.Create(c.Request.Context(), &objetivo); err != nil {
		writeServiceError(c, err, "objetivo")
		return
	}
	c.JSON(http.StatusCreated, objetivo)
}

// Update edits one goal. PUT /objetivos/:id
func (o *ObjetivoController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !o.mayMutate(c, id) {
		return
	}

	var objetivo models.Objetivo
	if err := c.ShouldBindJSON(&objetivo); err != nil {
		respondError(c, http.StatusBadRequest, "Cuerpo de la petición inválido", err.Error())
		return
	}

	affected, err := o.objetivos.Update(c.Request.Context(), id, &objetivo)
	if err != nil {
		writeServiceError(c, err, "objetivo")
		return
	}
	if affected == 0 {
		respondError(c, http.StatusNotFound, "objetivo no encontrado", "el registro no existe")
		return
	}
	respondMessage(c, "objetivo actualizado correctamente")
}

// Delete removes one goal. DELETE /objetivos/:id
func (o *ObjetivoController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !o.mayMutate(c, id) {
		return
	}

	affected, err := o.objetivos.Delete(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err, "objetivo")
		return
	}
	if affected == 0 {
		respondError(c, http.StatusNotFound, "objetivo no encontrado", "el registro no existe")
		return
	}
	respondMessage(c, "objetivo eliminado correctamente")
}

// mayMutate writes the response and returns false when the goal belongs to a
// different user. Shared goals require the admin role.
func (o *ObjetivoController) mayMutate(c *gin.Context, id uint) bool {
	objetivo, err := o.objetivos.Read(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err, "objetivo")
		return false
	}

	if middlewares.CallerRol(c) == "admin" {
		return true
	}
	usuarioID, _ := middlewares.CallerID(c)
	if objetivo.UsuarioID == nil || *objetivo.UsuarioID != usuarioID {
		respondError(c, http.StatusForbidden, "Operación no permitida", "el objetivo pertenece a otro usuario")
		return false
	}
	return true
}
