package services

import (
	"context"
	"errors"

	"github.com/ChristianMoraLopez/nutriplanbackend/models"

	"gorm.io/gorm"
)

type CategoriaService struct {
	db *gorm.DB
}

func NewCategoriaService(db *gorm.DB) *CategoriaService {
	return &CategoriaService{db: db}
}

func (s *CategoriaService) Create(ctx context.Context, categoria *models.CategoriaIngrediente) error {
	return translate(s.db.WithContext(ctx).Create(categoria).Error)
}

func (s *CategoriaService) Read(ctx context.Context, id uint) (*models.CategoriaIngrediente, error) {
	var categoria models.CategoriaIngrediente
	err := s.db.WithContext(ctx).First(&categoria, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &categoria, nil
}

func (s *CategoriaService) Update(ctx context.Context, id uint, categoria *models.CategoriaIngrediente) (int64, error) {
	res := s.db.WithContext(ctx).Model(&models.CategoriaIngrediente{}).
		Where("categoria_id = ?", id).
		Updates(map[string]any{"nombre": categoria.Nombre})
	if res.Error != nil {
		return 0, translate(res.Error)
	}
	return res.RowsAffected, nil
}

func (s *CategoriaService) Delete(ctx context.Context, id uint) (int64, error) {
	res := s.db.WithContext(ctx).Delete(&models.CategoriaIngrediente{}, id)
	if res.Error != nil {
		return 0, translate(res.Error)
	}
	return res.RowsAffected, nil
}

func (s *CategoriaService) List(ctx context.Context) ([]models.CategoriaIngrediente, error) {
	var categorias []models.CategoriaIngrediente
	if err := s.db.WithContext(ctx).Find(&categorias).Error; err != nil {
		return nil, err
	}
	return categorias, nil
}
