package services

import (
	"context"
	"errors"

	"github.com/ChristianMoraLopez/nutriplanbackend/models"

	"gorm.io/gorm"
)

type TipoComidaService struct {
	db *gorm.DB
}

func NewTipoComidaService(db *gorm.DB) *TipoComidaService {
	return &TipoComidaService{db: db}
}

func (s *TipoComidaService) Create(ctx context.Context, tipo *models.TipoComida) error {
	return translate(s.db.WithContext(ctx).Create(tipo).Error)
}

func (s *TipoComidaService) Read(ctx context.Context, id uint) (*models.TipoComida, error) {
	var tipo models.TipoComida
	err := s.db.WithContext(ctx).First(&tipo, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tipo, nil
}

func (s *TipoComidaService) Update(ctx context.Context, id uint, tipo *models.TipoComida) (int64, error) {
	res := s.db.WithContext(ctx).Model(&models.TipoComida{}).
		Where("tipo_comida_id = ?", id).
		Updates(map[string]any{"nombre": tipo.Nombre})
	if res.Error != nil {
		return 0, translate(res.Error)
	}
	return res.RowsAffected, nil
}

func (s *TipoComidaService) Delete(ctx context.Context, id uint) (int64, error) {
	res := s.db.WithContext(ctx).Delete(&models.TipoComida{}, id)
	if res.Error != nil {
		return 0, translate(res.Error)
	}
	return res.RowsAffected, nil
}

func (s *TipoComidaService) List(ctx context.Context) ([]models.TipoComida, error) {
	var tipos []models.TipoComida
	if err := s.db.WithContext(ctx).Find(&tipos).Error; err != nil {
		return nil, err
	}
	return tipos, nil
}
