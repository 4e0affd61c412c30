package services

import (
	"context"
	"errors"

	"github.com/ChristianMoraLopez/nutriplanbackend/models"

	"gorm.io/gorm"
)

type IngredienteService struct {
	db *gorm.DB
}

func NewIngredienteService(db *gorm.DB) *IngredienteService {
	return &IngredienteService{db: db}
}

func (s *IngredienteService) Create(ctx context.Context, ingrediente *models.Ingrediente) error {
	return translate(s.db.WithContext(ctx).Create(ingrediente).Error)
}

func (s *IngredienteService) Read(ctx context.Context, id uint) (*models.Ingrediente, error) {
	var ingrediente models.Ingrediente
	err := s.db.WithContext(ctx).First(&ingrediente, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ingrediente, nil
}

func (s *IngredienteService) Update(ctx context.Context, id uint, ingrediente *models.Ingrediente) (int64, error) {
	res := s.db.WithContext(ctx).Model(&models.Ingrediente{}).
		Where("ingrediente_id = ?", id).
		Updates(map[string]any{
			"nombre":            ingrediente.Nombre,
			"categoria_id":      ingrediente.CategoriaID,
			"calorias":          ingrediente.Calorias,
			"fit":               ingrediente.Fit,
			"disponible_bogota": ingrediente.DisponibleBogota,
			"fotografia":        ingrediente.Fotografia,
		})
	if res.Error != nil {
		return 0, translate(res.Error)
	}
	return res.RowsAffected, nil
}

// UpdateFotografia stores the uploaded photo URL without touching the rest of
// the row.
func (s *IngredienteService) UpdateFotografia(ctx context.Context, id uint, url string) (int64, error) {
	res := s.db.WithContext(ctx).Model(&models.Ingrediente{}).
		Where("ingrediente_id = ?", id).
		Update("fotografia", url)
	if res.Error != nil {
		return 0, translate(res.Error)
	}
	return res.RowsAffected, nil
}

func (s *IngredienteService) Delete(ctx context.Context, id uint) (int64, error) {
	res := s.db.WithContext(ctx).Delete(&models.Ingrediente{}, id)
	if res.Error != nil {
		return 0, translate(res.Error)
	}
	return res.RowsAffected, nil
}

func (s *IngredienteService) List(ctx context.Context) ([]models.Ingrediente, error) {
	var ingredientes []models.Ingrediente
	if err := s.db.WithContext(ctx).Find(&ingredientes).Error; err != nil {
		return nil, err
	}
	return ingredientes, nil
}

// SearchByName does a case-insensitive substring match on nombre.
func (s *IngredienteService) SearchByName(ctx context.Context, query string) ([]models.Ingrediente, error) {
	var ingredientes []models.Ingrediente
	err := s.db.WithContext(ctx).
		Where("nombre ILIKE ?", "%"+query+"%").
		Find(&ingredientes).Error
	if err != nil {
		return nil, err
	}
	return ingredientes, nil
}

func (s *IngredienteService) ListByCategoria(ctx context.Context, categoriaID uint) ([]models.Ingrediente, error) {
	var ingredientes []models.Ingrediente
	err := s.db.WithContext(ctx).
		Where("categoria_id = ?", categoriaID).
		Find(&ingredientes).Error
	if err != nil {
		return nil, err
	}
	return ingredientes, nil
}
