package services

import (
	"context"
	"errors"

	"github.com/ChristianMoraLopez/nutriplanbackend/models"

	"gorm.io/gorm"
)

type MenuService struct {
	db *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{db: db}
}

func (s *MenuService) Create(ctx context.Context, menu *models.Menu) error {
	return translate(s.db.WithContext(ctx).Create(menu).Error)
}

func (s *MenuService) Read(ctx context.Context, id uint) (*models.Menu, error) {
	var menu models.Menu
	err := s.db.WithContext(ctx).First(&menu, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

// Update overwrites the plan references; the owner is fixed at creation.
func (s *MenuService) Update(ctx context.Context, id uint, menu *models.Menu) (int64, error) {
	res := s.db.WithContext(ctx).Model(&models.Menu{}).
		Where("menu_id = ?", id).
		Updates(map[string]any{
			"objetivo_id": menu.ObjetivoID,
			"comida_id":   menu.ComidaID,
			"metodo_id":   menu.MetodoID,
		})
	if res.Error != nil {
		return 0, translate(res.Error)
	}
	return res.RowsAffected, nil
}

func (s *MenuService) Delete(ctx context.Context, id uint) (int64, error) {
	res := s.db.WithContext(ctx).Delete(&models.Menu{}, id)
	if res.Error != nil {
		return 0, translate(res.Error)
	}
	return res.RowsAffected, nil
}

func (s *MenuService) List(ctx context.Context) ([]models.Menu, error) {
	var menus []models.Menu
	if err := s.db.WithContext(ctx).Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

func (s *MenuService) ListByUsuario(ctx context.Context, usuarioID uint) ([]models.Menu, error) {
	var menus []models.Menu
	err := s.db.WithContext(ctx).
		Where("usuario_id = ?", usuarioID).
		Find(&menus).Error
	if err != nil {
		return nil, err
	}
	return menus, nil
}

func (s *MenuService) ListByObjetivo(ctx context.Context, objetivoID uint) ([]models.Menu, error) {
	var menus []models.Menu
	err := s.db.WithContext(ctx).
		Where("objetivo_id = ?", objetivoID).
		Find(&menus).Error
	if err != nil {
		return nil, err
	}
	return menus, nil
}
