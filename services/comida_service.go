package services

import (
	"context"
	"errors"

	"github.com/ChristianMoraLopez/nutriplanbackend/models"

	"gorm.io/gorm"
)

type ComidaService struct {
	db *gorm.DB
}

func NewComidaService(db *gorm.DB) *ComidaService {
	return &ComidaService{db: db}
}

func (s *ComidaService) Create(ctx context.Context, comida *models.Comida) error {
	return translate(s.db.WithContext(ctx).Create(comida).Error)
}

func (s *ComidaService) Read(ctx context.Context, id uint) (*models.Comida, error) {
	var comida models.Comida
	err := s.db.WithContext(ctx).First(&comida, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &comida, nil
}

func (s *ComidaService) Update(ctx context.Context, id uint, comida *models.Comida) (int64, error) {
	res := s.db.WithContext(ctx).Model(&models.Comida{}).
		Where("comida_id = ?", id).
		Updates(map[string]any{"nombre": comida.Nombre})
	if res.Error != nil {
		return 0, translate(res.Error)
	}
	return res.RowsAffected, nil
}

func (s *ComidaService) Delete(ctx context.Context, id uint) (int64, error) {
	res := s.db.WithContext(ctx).Delete(&models.Comida{}, id)
	if res.Error != nil {
		return 0, translate(res.Error)
	}
	return res.RowsAffected, nil
}

func (s *ComidaService) List(ctx context.Context) ([]models.Comida, error) {
	var comidas []models.Comida
	if err := s.db.WithContext(ctx).Find(&comidas).Error; err != nil {
		return nil, err
	}
	return comidas, nil
}
