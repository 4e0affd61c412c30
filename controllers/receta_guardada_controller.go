package controllers

import (
	"net/http"

	"github.com/ChristianMoraLopez/nutriplanbackend/middlewares"
	"github.com/ChristianMoraLopez/nutriplanbackend/models"
	"github.com/ChristianMoraLopez/nutriplanbackend/services"

	"github.com/gin-gonic/gin"
)

// RecetaGuardadaController manages the caller's saved recipes. Every route is
// scoped to the authenticated user; touching someone else's entry answers 403.
type RecetaGuardadaController struct {
	guardadas *services.RecetaGuardadaService
}

func NewRecetaGuardadaController(guardadas *services.RecetaGuardadaService) *RecetaGuardadaController {
	return &RecetaGuardadaController{guardadas: guardadas}
}

// List returns the caller's saved recipes. GET /recetas_guardadas
func (r *RecetaGuardadaController) List(c *gin.Context) {
	usuarioID, ok := middlewares.CallerID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Acceso no autorizado", "Se requiere un token de autenticación")
		return
	}

	detalles, err := r.guardadas.ListByUsuario(c.Request.Context(), usuarioID)
	if err != nil {
		writeServiceError(c, err, "receta guardada")
		return
	}
	c.JSON(http.StatusOK, detalles)
}

// Get returns one saved recipe of the caller. GET /recetas_guardadas/:id
func (r *RecetaGuardadaController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	detalle, err := r.guardadas.Read(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err, "receta guardada")
		return
	}
	if usuarioID, _ := middlewares.CallerID(c); detalle.UsuarioID != usuarioID {
		respondError(c, http.StatusForbidden, "Operación no permitida", "la receta guardada pertenece a otro usuario")
		return
	}
	c.JSON(http.StatusOK, detalle)
}

// Create saves a recipe for the caller. POST /recetas_guardadas
func (r *RecetaGuardadaController) Create(c *gin.Context) {
	usuarioID, ok := middlewares.CallerID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Acceso no autorizado", "Se requiere un token de autenticación")
		return
	}

	var guardada models.RecetaGuardada
	if err := c.ShouldBindJSON(&guardada); err != nil {
		respondError(c, http.StatusBadRequest, "Cuerpo de la petición inválido", err.Error())
		return
	}
	guardada.UsuarioID = usuarioID
	if guardada.RecetaID == 0 {
		respondError(c, http.StatusBadRequest, "Datos incompletos", "recetaId es obligatorio")
		return
	}

	if err := r.guardadas.Create(c.Request.Context(), &guardada); err != nil {
		writeServiceError(c, err, "receta guardada")
		return
	}
	c.JSON(http.StatusCreated, guardada)
}

// Update edits the caller's saved recipe. PUT /recetas_guardadas/:id
func (r *RecetaGuardadaController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !r.ownedByCaller(c, id) {
		return
	}

	var guardada models.RecetaGuardada
	if err := c.ShouldBindJSON(&guardada); err != nil {
		respondError(c, http.StatusBadRequest, "Cuerpo de la petición inválido", err.Error())
		return
	}

	affected, err := r.guardadas.Update(c.Request.Context(), id, &guardada)
	if err != nil {
		writeServiceError(c, err, "receta guardada")
		return
	}
	if affected == 0 {
		respondError(c, http.StatusNotFound, "receta guardada no encontrado", "el registro no existe")
		return
	}
	respondMessage(c, "receta guardada actualizada correctamente")
}

// Delete removes the caller's saved recipe. DELETE /recetas_guardadas/:id
func (r *RecetaGuardadaController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !r.ownedByCaller(c, id) {
		return
	}

	affected, err := r.guardadas.Delete(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err, "receta guardada")
		return
	}
	if affected == 0 {
		respondError(c, http.StatusNotFound, "receta guardada no encontrado", "el registro no existe")
		return
	}
	respondMessage(c, "receta guardada eliminada correctamente")
}

// ownedByCaller loads the entry and checks ownership, writing the response on
// failure.
func (r *RecetaGuardadaController) ownedByCaller(c *gin.Context, id uint) bool {
	detalle, err := r.guardadas.Read(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err, "receta guardada")
		return false
	}
	if usuarioID, _ := middlewares.CallerID(c); detalle.UsuarioID != usuarioID {
		respondError(c, http.StatusForbidden, "Operación no permitida", "la receta guardada pertenece a otro usuario")
		return false
	}
	return true
}
