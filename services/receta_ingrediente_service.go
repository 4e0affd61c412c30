package services

import (
	"context"

	"github.com/ChristianMoraLopez/nutriplanbackend/models"

	"gorm.io/gorm"
)

// RecetaIngredienteService manages the recipe-ingredient association, which is
// keyed by (recetaId, ingredienteId) instead of a surrogate id.
type RecetaIngredienteService struct {
	db *gorm.DB
}

func NewRecetaIngredienteService(db *gorm.DB) *RecetaIngredienteService {
	return &RecetaIngredienteService{db: db}
}

func (s *RecetaIngredienteService) Create(ctx context.Context, link *models.RecetaIngrediente) error {
	return translate(s.db.WithContext(ctx).Create(link).Error)
}

func (s *RecetaIngredienteService) Read(ctx context.Context, recetaID, ingredienteID uint) (*models.RecetaIngredienteDetalle, error) {
	var detalle models.RecetaIngredienteDetalle
	res := s.db.WithContext(ctx).
		Table("receta_ingredientes").
		Select("receta_ingredientes.receta_id, receta_ingredientes.ingrediente_id, ingredientes.nombre AS nombre_ingrediente, receta_ingredientes.cantidad, receta_ingredientes.unidad").
		Joins("JOIN ingredientes ON ingredientes.ingrediente_id = receta_ingredientes.ingrediente_id").
		Where("receta_ingredientes.receta_id = ? AND receta_ingredientes.ingrediente_id = ?", recetaID, ingredienteID).
		Scan(&detalle)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &detalle, nil
}

func (s *RecetaIngredienteService) Update(ctx context.Context, recetaID, ingredienteID uint, link *models.RecetaIngrediente) (int64, error) {
	res := s.db.WithContext(ctx).Model(&models.RecetaIngrediente{}).
		Where("receta_id = ? AND ingrediente_id = ?", recetaID, ingredienteID).
		Updates(map[string]any{
			"cantidad": link.Cantidad,
			"unidad":   link.Unidad,
		})
	if res.Error != nil {
		return 0, translate(res.Error)
	}
	return res.RowsAffected, nil
}

func (s *RecetaIngredienteService) Delete(ctx context.Context, recetaID, ingredienteID uint) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("receta_id = ? AND ingrediente_id = ?", recetaID, ingredienteID).
		Delete(&models.RecetaIngrediente{})
	if res.Error != nil {
		return 0, translate(res.Error)
	}
	return res.RowsAffected, nil
}

// ListByReceta returns the links of one recipe joined with ingredient names.
func (s *RecetaIngredienteService) ListByReceta(ctx context.Context, recetaID uint) ([]models.RecetaIngredienteDetalle, error) {
	var detalles []models.RecetaIngredienteDetalle
	err := s.db.WithContext(ctx).
		Table("receta_ingredientes").
		Select("receta_ingredientes.receta_id, receta_ingredientes.ingrediente_id, ingredientes.nombre AS nombre_ingrediente, receta_ingredientes.cantidad, receta_ingredientes.unidad").
		Joins("JOIN ingredientes ON ingredientes.ingrediente_id = receta_ingredientes.ingrediente_id").
		Where("receta_ingredientes.receta_id = ?", recetaID).
		Scan(&detalles).Error
	if err != nil {
		return nil, err
	}
	return detalles, nil
}
