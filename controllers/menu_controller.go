package controllers

import (
	"net/http"

	"github.com/ChristianMoraLopez/nutriplanbackend/middlewares"
	"github.com/ChristianMoraLopez/nutriplanbackend/models"
	"github.com/ChristianMoraLopez/nutriplanbackend/services"

	"github.com/gin-gonic/gin"
)

// MenuController manages the caller's menus and the ingredients selected into
// them. Menus are strictly owner-scoped.
type MenuController struct {
	menus       *services.MenuService
	selecciones *services.SeleccionService
}

func NewMenuController(menus *services.MenuService, selecciones *services.SeleccionService) *MenuController {
	return &MenuController{menus: menus, selecciones: selecciones}
}

// List returns the caller's menus. GET /menus
func (m *MenuController) List(c *gin.Context) {
	usuarioID, ok := middlewares.CallerID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Acceso no autorizado", "Se requiere un token de autenticación")
		return
	}

	menus, err := m.menus.ListByUsuario(c.Request.Context(), usuarioID)
	if err != nil {
		writeServiceError(c, err, "menú")
		return
	}
	c.JSON(http.StatusOK, menus)
}

// PorObjetivo lists the caller's menus built for one goal.
// GET /menus/objetivo/:objetivoId
func (m *MenuController) PorObjetivo(c *gin.Context) {
	objetivoID, ok := parseIDParam(c, "objetivoId")
	if !ok {
		return
	}
	usuarioID, _ := middlewares.CallerID(c)

	menus, err := m.menus.ListByObjetivo(c.Request.Context(), objetivoID)
	if err != nil {
		writeServiceError(c, err, "menú")
		return
	}
	propios := make([]models.Menu, 0, len(menus))
	for _, menu := range menus {
		if menu.UsuarioID == usuarioID {
			propios = append(propios, menu)
		}
	}
	c.JSON(http.StatusOK, propios)
}

// Get returns one menu of the caller. GET /menus/:id
func (m *MenuController) Get(c *gin.Context) {
	menu, ok := m.ownedMenu(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, menu)
}

// Create records a menu owned by the caller. POST /menus
func (m *MenuController) Create(c *gin.Context) {
	usuarioID, ok := middlewares.CallerID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Acceso no autorizado", "Se requiere un token de autenticación")
		return
	}

	var menu models.Menu
	if err := c.ShouldBindJSON(&menu); err != nil {
		respondError(c, http.StatusBadRequest, "Cuerpo de la petición inválido", err.Error())
		return
	}
	if menu.UsuarioID != 0 && menu.UsuarioID != usuarioID {
		respondError(c, http.StatusForbidden, "Operación no permitida", "no puedes crear menús para otro usuario")
		return
	}
	menu.UsuarioID = usuarioID
	if menu.ObjetivoID == 0 || menu.ComidaID == 0 {
		respondError(c, http.StatusBadRequest, "Datos incompletos", "objetivoId y comidaId son obligatorios")
		return
	}

	if err := m.menus.Create(c.Request.Context(), &menu); err != nil {
		writeServiceError(c, err, "menú")
		return
	}
	c.JSON(http.StatusCreated, menu)
}

// Update edits one menu of the caller. PUT /menus/:id
func (m *MenuController) Update(c *gin.Context) {
	menu, ok := m.ownedMenu(c)
	if !ok {
		return
	}

	var input models.Menu
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Cuerpo de la petición inválido", err.Error())
		return
	}

	affected, err := m.menus.Update(c.Request.Context(), menu.MenuID, &input)
	if err != nil {
		writeServiceError(c, err, "menú")
		return
	}
	if affected == 0 {
		respondError(c, http.StatusNotFound, "menú no encontrado", "el registro no existe")
		return
	}
	respondMessage(c, "menú actualizado correctamente")
}

// Delete removes one menu of the caller. DELETE /menus/:id
func (m *MenuController) Delete(c *gin.Context) {
	menu, ok := m.ownedMenu(c)
	if !ok {
		return
	}

	affected, err := m.menus.Delete(c.Request.Context(), menu.MenuID)
	if err != nil {
		writeServiceError(c, err, "menú")
		return
	}
	if affected == 0 {
		respondError(c, http.StatusNotFound, "menú no encontrado", "el registro no existe")
		return
	}
	respondMessage(c, "menú eliminado correctamente")
}

// ListSelecciones returns the ingredients selected into the menu.
// GET /menus/:id/ingredientes
func (m *MenuController) ListSelecciones(c *gin.Context) {
	menu, ok := m.ownedMenu(c)
	if !ok {
		return
	}

	detalles, err := m.selecciones.ListByMenu(c.Request.Context(), menu.MenuID)
	if err != nil {
		writeServiceError(c, err, "selección de ingrediente")
		return
	}
	c.JSON(http.StatusOK, detalles)
}

// AddSeleccion picks an ingredient into the menu. POST /menus/:id/ingredientes
func (m *MenuController) AddSeleccion(c *gin.Context) {
	menu, ok := m.ownedMenu(c)
	if !ok {
		return
	}

	var seleccion models.SeleccionIngrediente
	if err := c.ShouldBindJSON(&seleccion); err != nil {
		respondError(c, http.StatusBadRequest, "Cuerpo de la petición inválido", err.Error())
		return
	}
	seleccion.MenuID = menu.MenuID
	if seleccion.IngredienteID == 0 {
		respondError(c, http.StatusBadRequest, "Datos incompletos", "ingredienteId es obligatorio")
		return
	}

	if err := m.selecciones.Create(c.Request.Context(), &seleccion); err != nil {
		writeServiceError(c, err, "selección de ingrediente")
		return
	}
	c.JSON(http.StatusCreated, seleccion)
}

// UpdateSeleccion changes one selection of the menu.
// PUT /menus/:id/ingredientes/:seleccionId
func (m *MenuController) UpdateSeleccion(c *gin.Context) {
	menu, ok := m.ownedMenu(c)
	if !ok {
		return
	}
	seleccion, ok := m.seleccionInMenu(c, menu.MenuID)
	if !ok {
		return
	}

	var input models.SeleccionIngrediente
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Cuerpo de la petición inválido", err.Error())
		return
	}

	affected, err := m.selecciones.Update(c.Request.Context(), seleccion.SeleccionID, &input)
	if err != nil {
		writeServiceError(c, err, "selección de ingrediente")
		return
	}
	if affected == 0 {
		respondError(c, http.StatusNotFound, "selección de ingrediente no encontrado", "el registro no existe")
		return
	}
	respondMessage(c, "selección de ingrediente actualizada correctamente")
}

// RemoveSeleccion drops one selection from the menu.
// DELETE /menus/:id/ingredientes/:seleccionId
func (m *MenuController) RemoveSeleccion(c *gin.Context) {
	menu, ok := m.ownedMenu(c)
	if !ok {
		return
	}
	seleccion, ok := m.seleccionInMenu(c, menu.MenuID)
	if !ok {
		return
	}

	affected, err := m.selecciones.Delete(c.Request.Context(), seleccion.SeleccionID)
	if err != nil {
		writeServiceError(c, err, "selección de ingrediente")
		return
	}
	if affected == 0 {
		respondError(c, http.StatusNotFound, "selección de ingrediente no encontrado", "el registro no existe")
		return
	}
	respondMessage(c, "selección de ingrediente eliminada correctamente")
}

// ownedMenu resolves the :id parameter to a menu owned by the caller, writing
// the response on any failure.
func (m *MenuController) ownedMenu(c *gin.Context) (*models.Menu, bool) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil, false
	}
	menu, err := m.menus.Read(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err, "menú")
		return nil, false
	}
	if usuarioID, _ := middlewares.CallerID(c); menu.UsuarioID != usuarioID {
		respondError(c, http.StatusForbidden, "Operación no permitida", "el menú pertenece a otro usuario")
		return nil, false
	}
	return menu, true
}

// seleccionInMenu resolves :seleccionId and rejects selections that belong to
// a different menu.
func (m *MenuController) seleccionInMenu(c *gin.Context, menuID uint) (*models.SeleccionIngrediente, bool) {
	seleccionID, ok := parseIDParam(c, "seleccionId")
	if !ok {
		return nil, false
	}
	seleccion, err := m.selecciones.Read(c.Request.Context(), seleccionID)
	if err != nil {
		writeServiceError(c, err, "selección de ingrediente")
		return nil, false
	}
	if seleccion.MenuID != menuID {
		respondError(c, http.StatusForbidden, "Operación no permitida", "la selección no pertenece a este menú")
		return nil, false
	}
	return seleccion, true
}
