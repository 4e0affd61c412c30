package services

import (
	"context"
	"errors"

	"github.com/ChristianMoraLopez/nutriplanbackend/models"

	"gorm.io/gorm"
)

type RecetaService struct {
	db *gorm.DB
}

func NewRecetaService(db *gorm.DB) *RecetaService {
	return &RecetaService{db: db}
}

func (s *RecetaService) Create(ctx context.Context, receta *models.Receta) error {
	return translate(s.db.WithContext(ctx).Create(receta).Error)
}

func (s *RecetaService) Read(ctx context.Context, id uint) (*models.Receta, error) {
	var receta models.Receta
	err := s.db.WithContext(ctx).First(&receta, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &receta, nil
}

func (s *RecetaService) Update(ctx context.Context, id uint, receta *models.Receta) (int64, error) {
	res := s.db.WithContext(ctx).Model(&models.Receta{}).
		Where("receta_id = ?", id).
		Updates(map[string]any{
			"nombre":             receta.Nombre,
			"tipo_comida_id":     receta.TipoComidaID,
			"fit":                receta.Fit,
			"instrucciones":      receta.Instrucciones,
			"tiempo_preparacion": receta.TiempoPreparacion,
			"disponible_bogota":  receta.DisponibleBogota,
			"metodo_id":          receta.MetodoID,
		})
	if res.Error != nil {
		return 0, translate(res.Error)
	}
	return res.RowsAffected, nil
}

func (s *RecetaService) Delete(ctx context.Context, id uint) (int64, error) {
	res := s.db.WithContext(ctx).Delete(&models.Receta{}, id)
	if res.Error != nil {
		return 0, translate(res.Error)
	}
	return res.RowsAffected, nil
}

func (s *RecetaService) List(ctx context.Context) ([]models.Receta, error) {
	var recetas []models.Receta
	if err := s.db.WithContext(ctx).Find(&recetas).Error; err != nil {
		return nil, err
	}
	return recetas, nil
}

func (s *RecetaService) ListPaginated(ctx context.Context, page, size int) ([]models.Receta, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}
	var recetas []models.Receta
	err := s.db.WithContext(ctx).Limit(size).Offset((page - 1) * size).Find(&recetas).Error
	if err != nil {
		return nil, err
	}
	return recetas, nil
}

func (s *RecetaService) ListByTipoComida(ctx context.Context, tipoComidaID uint) ([]models.Receta, error) {
	var recetas []models.Receta
	err := s.db.WithContext(ctx).
		Where("tipo_comida_id = ?", tipoComidaID).
		Find(&recetas).Error
	if err != nil {
		return nil, err
	}
	return recetas, nil
}
