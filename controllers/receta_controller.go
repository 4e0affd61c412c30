package controllers

import (
	"net/http"
	"strconv"

	"github.com/ChristianMoraLopez/nutriplanbackend/models"
	"github.com/ChristianMoraLopez/nutriplanbackend/services"

	"github.com/gin-gonic/gin"
)

// RecetaController extends the generic CRUD surface with pagination, filtering
// by meal type and the nested ingredient association.
type RecetaController struct {
	recetas *services.RecetaService
	links   *services.RecetaIngredienteService
}

func NewRecetaController(recetas *services.RecetaService, links *services.RecetaIngredienteService) *RecetaController {
	return &RecetaController{recetas: recetas, links: links}
}

// ListPaginated returns one page of recipes. GET /recetas/paginated?page=&size=
func (r *RecetaController) ListPaginated(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	recetas, err := r.recetas.ListPaginated(c.Request.Context(), page, size)
	if err != nil {
		writeServiceError(c, err, "receta")
		return
	}
	c.JSON(http.StatusOK, recetas)
}

// PorTipoComida lists the recipes of one meal type. GET /recetas/tipo/:tipoComidaId
func (r *RecetaController) PorTipoComida(c *gin.Context) {
	tipoComidaID, ok := parseIDParam(c, "tipoComidaId")
	if !ok {
		return
	}

	recetas, err := r.recetas.ListByTipoComida(c.Request.Context(), tipoComidaID)
	if err != nil {
		writeServiceError(c, err, "receta")
		return
	}
	c.JSON(http.StatusOK, recetas)
}

// ListIngredientes returns the ingredients of one recipe with their names.
// GET /recetas/:id/ingredientes
func (r *RecetaController) ListIngredientes(c *gin.Context) {
	recetaID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if _, err := r.recetas.Read(c.Request.Context(), recetaID); err != nil {
		writeServiceError(c, err, "receta")
		return
	}

	detalles, err := r.links.ListByReceta(c.Request.Context(), recetaID)
	if err != nil {
		writeServiceError(c, err, "ingrediente de receta")
		return
	}
	c.JSON(http.StatusOK, detalles)
}

// AddIngrediente links an ingredient to a recipe. POST /recetas/:id/ingredientes
func (r *RecetaController) AddIngrediente(c *gin.Context) {
	recetaID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var link models.RecetaIngrediente
	if err := c.ShouldBindJSON(&link); err != nil {
		respondError(c, http.StatusBadRequest, "Cuerpo de la petición inválido", err.Error())
		return
	}
	link.RecetaID = recetaID
	if link.IngredienteID == 0 {
		respondError(c, http.StatusBadRequest, "Datos incompletos", "ingredienteId es obligatorio")
		return
	}

	if err := r.links.Create(c.Request.Context(), &link); err != nil {
		writeServiceError(c, err, "ingrediente de receta")
		return
	}
	c.JSON(http.StatusCreated, link)
}

// GetIngrediente returns one recipe-ingredient link.
// GET /recetas/:id/ingredientes/:ingredienteId
func (r *RecetaController) GetIngrediente(c *gin.Context) {
	recetaID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	ingredienteID, ok := parseIDParam(c, "ingredienteId")
	if !ok {
		return
	}

	detalle, err := r.links.Read(c.Request.Context(), recetaID, ingredienteID)
	if err != nil {
		writeServiceError(c, err, "ingrediente de receta")
		return
	}
	c.JSON(http.StatusOK, detalle)
}

// UpdateIngrediente changes the quantity or unit of one link.
// PUT /recetas/:id/ingredientes/:ingredienteId
func (r *RecetaController) UpdateIngrediente(c *gin.Context) {
	recetaID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	ingredienteID, ok := parseIDParam(c, "ingredienteId")
	if !ok {
		return
	}

	var link models.RecetaIngrediente
	if err := c.ShouldBindJSON(&link); err != nil {
		respondError(c, http.StatusBadRequest, "Cuerpo de la petición inválido", err.Error())
		return
	}

	affected, err := r.links.Update(c.Request.Context(), recetaID, ingredienteID, &link)
	if err != nil {
		writeServiceError(c, err, "ingrediente de receta")
		return
	}
	if affected == 0 {
		respondError(c, http.StatusNotFound, "ingrediente de receta no encontrado", "el registro no existe")
		return
	}
	respondMessage(c, "ingrediente de receta actualizado correctamente")
}

// RemoveIngrediente unlinks an ingredient from a recipe.
// DELETE /recetas/:id/ingredientes/:ingredienteId
func (r *RecetaController) RemoveIngrediente(c *gin.Context) {
	recetaID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	ingredienteID, ok := parseIDParam(c, "ingredienteId")
	if !ok {
		return
	}

	affected, err := r.links.Delete(c.Request.Context(), recetaID, ingredienteID)
	if err != nil {
		writeServiceError(c, err, "ingrediente de receta")
		return
	}
	if affected == 0 {
		respondError(c, http.StatusNotFound, "ingrediente de receta no encontrado", "el registro no existe")
		return
	}
	respondMessage(c, "ingrediente de receta eliminado correctamente")
}
