package services

import (
	"context"
	"errors"

	"github.com/ChristianMoraLopez/nutriplanbackend/models"

	"gorm.io/gorm"
)

// SeleccionService manages the ingredients picked into a menu.
type SeleccionService struct {
	db *gorm.DB
}

func NewSeleccionService(db *gorm.DB) *SeleccionService {
	return &SeleccionService{db: db}
}

func (s *SeleccionService) Create(ctx context.Context, seleccion *models.SeleccionIngrediente) error {
	return translate(s.db.WithContext(ctx).Create(seleccion).Error)
}

func (s *SeleccionService) Read(ctx context.Context, id uint) (*models.SeleccionIngrediente, error) {
	var seleccion models.SeleccionIngrediente
	err := s.db.WithContext(ctx).First(&seleccion, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &seleccion, nil
}

func (s *SeleccionService) Update(ctx context.Context, id uint, seleccion *models.SeleccionIngrediente) (int64, error) {
	res := s.db.WithContext(ctx).Model(&models.SeleccionIngrediente{}).
		Where("seleccion_id = ?", id).
		Updates(map[string]any{
			"ingrediente_id": seleccion.IngredienteID,
			"cantidad":       seleccion.Cantidad,
		})
	if res.Error != nil {
		return 0, translate(res.Error)
	}
	return res.RowsAffected, nil
}

func (s *SeleccionService) Delete(ctx context.Context, id uint) (int64, error) {
	res := s.db.WithContext(ctx).Delete(&models.SeleccionIngrediente{}, id)
	if res.Error != nil {
		return 0, translate(res.Error)
	}
	return res.RowsAffected, nil
}

// ListByMenu returns the selections of a menu joined with ingredient name and
// calorie info.
func (s *SeleccionService) ListByMenu(ctx context.Context, menuID uint) ([]models.SeleccionDetalle, error) {
	var detalles []models.SeleccionDetalle
	err := s.db.WithContext(ctx).
		Table("selecciones_ingredientes").
		Select("selecciones_ingredientes.seleccion_id, selecciones_ingredientes.menu_id, selecciones_ingredientes.ingrediente_id, selecciones_ingredientes.cantidad, ingredientes.nombre AS nombre_ingrediente, ingredientes.calorias").
		Joins("JOIN ingredientes ON ingredientes.ingrediente_id = selecciones_ingredientes.ingrediente_id").
		Where("selecciones_ingredientes.menu_id = ?", menuID).
		Scan(&detalles).Error
	if err != nil {
		return nil, err
	}
	return detalles, nil
}
