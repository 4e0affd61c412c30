package services

import (
	"context"
	"errors"

	"github.com/ChristianMoraLopez/nutriplanbackend/models"

	"gorm.io/gorm"
)

type MetodoService struct {
	db *gorm.DB
}

func NewMetodoService(db *gorm.DB) *MetodoService {
	return &MetodoService{db: db}
}

func (s *MetodoService) Create(ctx context.Context, metodo *models.MetodoPreparacion) error {
	return translate(s.db.WithContext(ctx).Create(metodo).Error)
}

func (s *MetodoService) Read(ctx context.Context, id uint) (*models.MetodoPreparacion, error) {
	var metodo models.MetodoPreparacion
	err := s.db.WithContext(ctx).First(&metodo, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &metodo, nil
}

func (s *MetodoService) Update(ctx context.Context, id uint, metodo *models.MetodoPreparacion) (int64, error) {
	res := s.db.WithContext(ctx).Model(&models.MetodoPreparacion{}).
		Where("metodo_id = ?", id).
		Updates(map[string]any{
			"nombre":      metodo.Nombre,
			"descripcion": metodo.Descripcion,
		})
	if res.Error != nil {
		return 0, translate(res.Error)
	}
	return res.RowsAffected, nil
}

func (s *MetodoService) Delete(ctx context.Context, id uint) (int64, error) {
	res := s.db.WithContext(ctx).Delete(&models.MetodoPreparacion{}, id)
	if res.Error != nil {
		return 0, translate(res.Error)
	}
	return res.RowsAffected, nil
}

func (s *MetodoService) List(ctx context.Context) ([]models.MetodoPreparacion, error) {
	var metodos []models.MetodoPreparacion
	if err := s.db.WithContext(ctx).Find(&metodos).Error; err != nil {
		return nil, err
	}
	return metodos, nil
}
