package controllers

import (
	"net/http"
	"strconv"

	"github.com/ChristianMoraLopez/nutriplanbackend/middlewares"
	"github.com/ChristianMoraLopez/nutriplanbackend/models"
	"github.com/ChristianMoraLopez/nutriplanbackend/services"

	"github.com/gin-gonic/gin"
)

// UsuarioController exposes account management. Reads are open to any
// authenticated caller; mutating someone else's account requires the admin
// role.
type UsuarioController struct {
	usuarios *services.UsuarioService
}

func NewUsuarioController(usuarios *services.UsuarioService) *UsuarioController {
	return &UsuarioController{usuarios: usuarios}
}

// canMutate reports whether the caller may modify the account with targetID.
func canMutate(c *gin.Context, targetID uint) bool {
	callerID, ok := middlewares.CallerID(c)
	if !ok {
		return false
	}
	return callerID == targetID || middlewares.CallerRol(c) == "admin"
}

// List returns every account. GET /usuarios
func (u *UsuarioController) List(c *gin.Context) {
	usuarios, err := u.usuarios.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, "usuario")
		return
	}
	c.JSON(http.StatusOK, usuarios)
}

// ListPaginated returns one page of accounts. GET /usuarios/paginated?page=&size=
func (u *UsuarioController) ListPaginated(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	usuarios, err := u.usuarios.ListPaginated(c.Request.Context(), page, size)
	if err != nil {
		writeServiceError(c, err, "usuario")
		return
	}
	c.JSON(http.StatusOK, usuarios)
}

// Get returns a single account. GET /usuarios/:id
func (u *UsuarioController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	usuario, err := u.usuarios.Read(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err, "usuario")
		return
	}
	c.JSON(http.StatusOK, usuario)
}

// Update replaces the profile of one account. PUT /usuarios/:id
func (u *UsuarioController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !canMutate(c, id) {
		respondError(c, http.StatusForbidden, "Operación no permitida", "solo puedes modificar tu propia cuenta")
		return
	}

	var usuario models.Usuario
	if err := c.ShouldBindJSON(&usuario); err != nil {
		respondError(c, http.StatusBadRequest, "Cuerpo de la petición inválido", err.Error())
		return
	}

	affected, err := u.usuarios.Update(c.Request.Context(), id, &usuario)
	if err != nil {
		writeServiceError(c, err, "usuario")
		return
	}
	if affected == 0 {
		respondError(c, http.StatusNotFound, "usuario no encontrado", "el registro no existe")
		return
	}
	respondMessage(c, "usuario actualizado correctamente")
}

// Delete removes one account. DELETE /usuarios/:id
func (u *UsuarioController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !canMutate(c, id) {
		respondError(c, http.StatusForbidden, "Operación no permitida", "solo puedes eliminar tu propia cuenta")
		return
	}

	affected, err := u.usuarios.Delete(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err, "usuario")
		return
	}
	if affected == 0 {
		respondError(c, http.StatusNotFound, "usuario no encontrado", "el registro no existe")
		return
	}
	respondMessage(c, "usuario eliminado correctamente")
}
