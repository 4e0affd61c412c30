package controllers

import (
	"net/http"
	"strings"

	"github.com/ChristianMoraLopez/nutriplanbackend/models"
	"github.com/ChristianMoraLopez/nutriplanbackend/services"
	"github.com/ChristianMoraLopez/nutriplanbackend/utils"

	"github.com/gin-gonic/gin"
)

// IngredienteController extends the generic CRUD surface with search, category
// filtering and photo upload. The uploader is nil when object storage is not
// configured.
type IngredienteController struct {
	ingredientes *services.IngredienteService
	uploader     *utils.S3Uploader
}

func NewIngredienteController(ingredientes *services.IngredienteService, uploader *utils.S3Uploader) *IngredienteController {
	return &IngredienteController{ingredientes: ingredientes, uploader: uploader}
}

// Search filters ingredients by name substring. GET /ingredientes/search?q=
func (i *IngredienteController) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		respondError(c, http.StatusBadRequest, "Búsqueda inválida", "el parámetro q es obligatorio")
		return
	}

	ingredientes, err := i.ingredientes.SearchByName(c.Request.Context(), query)
	if err != nil {
		writeServiceError(c, err, "ingrediente")
		return
	}
	c.JSON(http.StatusOK, ingredientes)
}

// PorCategoria lists the ingredients of one category.
// GET /ingredientes/categoria/:categoriaId
func (i *IngredienteController) PorCategoria(c *gin.Context) {
	categoriaID, ok := parseIDParam(c, "categoriaId")
	if !ok {
		return
	}

	ingredientes, err := i.ingredientes.ListByCategoria(c.Request.Context(), categoriaID)
	if err != nil {
		writeServiceError(c, err, "ingrediente")
		return
	}
	c.JSON(http.StatusOK, ingredientes)
}

type fotoInput struct {
	Imagen string `json:"imagen" binding:"required"`
}

// UploadFoto stores a base64 photo in object storage and records its public
// URL on the ingredient. POST /ingredientes/:id/foto
func (i *IngredienteController) UploadFoto(c *gin.Context) {
	if i.uploader == nil {
		respondError(c, http.StatusServiceUnavailable, "Carga de imágenes no disponible", "el almacenamiento de objetos no está configurado")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input fotoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Cuerpo de la petición inválido", err.Error())
		return
	}

	// Fail before uploading if the ingredient does not exist.
	if _, err := i.ingredientes.Read(c.Request.Context(), id); err != nil {
		writeServiceError(c, err, "ingrediente")
		return
	}

	url, err := i.uploader.UploadBase64Image(c.Request.Context(), input.Imagen, "ingredientes")
	if err != nil {
		respondError(c, http.StatusBadRequest, "No se pudo cargar la imagen", err.Error())
		return
	}

	if _, err := i.ingredientes.UpdateFotografia(c.Request.Context(), id, url); err != nil {
		writeServiceError(c, err, "ingrediente")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Data:    gin.H{"fotografia": url},
		Message: "Fotografía actualizada correctamente",
	})
}
