package services

import (
	"context"
	"errors"

	"github.com/ChristianMoraLopez/nutriplanbackend/models"

	"gorm.io/gorm"
)

type ObjetivoService struct {
	db *gorm.DB
}

func NewObjetivoService(db *gorm.DB) *ObjetivoService {
	return &ObjetivoService{db: db}
}

func (s *ObjetivoService) Create(ctx context.Context, objetivo *models.Objetivo) error {
	return translate(s.db.WithContext(ctx).Create(objetivo).Error)
}

func (s *ObjetivoService) Read(ctx context.Context, id uint) (*models.Objetivo, error) {
	var objetivo models.Objetivo
	err := s.db.WithContext(ctx).First(&objetivo, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &objetivo, nil
}

// Update overwrites name and time-limit flag; ownership never changes after
// creation.
func (s *ObjetivoService) Update(ctx context.Context, id uint, objetivo *models.Objetivo) (int64, error) {
	res := s.db.WithContext(ctx).Model(&models.Objetivo{}).
		Where("objetivo_id = ?", id).
		Updates(map[string]any{
			"nombre":       objetivo.Nombre,
			"tiene_tiempo": objetivo.TieneTiempo,
		})
	if res.Error != nil {
		return 0, translate(res.Error)
	}
	return res.RowsAffected, nil
}

func (s *ObjetivoService) Delete(ctx context.Context, id uint) (int64, error) {
	res := s.db.WithContext(ctx).Delete(&models.Objetivo{}, id)
	if res.Error != nil {
		return 0, translate(res.Error)
	}
	return res.RowsAffected, nil
}

func (s *ObjetivoService) List(ctx context.Context) ([]models.Objetivo, error) {
	var objetivos []models.Objetivo
	if err := s.db.WithContext(ctx).Find(&objetivos).Error; err != nil {
		return nil, err
	}
	return objetivos, nil
}
