package services

import (
	"context"

	"github.com/ChristianMoraLopez/nutriplanbackend/models"

	"gorm.io/gorm"
)

type RecetaGuardadaService struct {
	db *gorm.DB
}

func NewRecetaGuardadaService(db *gorm.DB) *RecetaGuardadaService {
	return &RecetaGuardadaService{db: db}
}

func (s *RecetaGuardadaService) Create(ctx context.Context, guardada *models.RecetaGuardada) error {
	return translate(s.db.WithContext(ctx).Create(guardada).Error)
}

// Read returns the saved recipe joined with the recipe name; ownership checks
// use the UsuarioID of the result.
func (s *RecetaGuardadaService) Read(ctx context.Context, id uint) (*models.RecetaGuardadaDetalle, error) {
	var detalle models.RecetaGuardadaDetalle
	res := s.db.WithContext(ctx).
		Table("recetas_guardadas").
		Select("recetas_guardadas.guardado_id, recetas_guardadas.usuario_id, recetas_guardadas.receta_id, recetas_guardadas.fecha_guardado, recetas_guardadas.comentario_personal, recetas.nombre AS nombre_receta").
		Joins("JOIN recetas ON recetas.receta_id = recetas_guardadas.receta_id").
		Where("recetas_guardadas.guardado_id = ?", id).
		Scan(&detalle)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &detalle, nil
}

func (s *RecetaGuardadaService) Update(ctx context.Context, id uint, guardada *models.RecetaGuardada) (int64, error) {
	res := s.db.WithContext(ctx).Model(&models.RecetaGuardada{}).
		Where("guardado_id = ?", id).
		Updates(map[string]any{
			"receta_id":           guardada.RecetaID,
			"comentario_personal": guardada.ComentarioPersonal,
		})
	if res.Error != nil {
		return 0, translate(res.Error)
	}
	return res.RowsAffected, nil
}

func (s *RecetaGuardadaService) Delete(ctx context.Context, id uint) (int64, error) {
	res := s.db.WithContext(ctx).Delete(&models.RecetaGuardada{}, id)
	if res.Error != nil {
		return 0, translate(res.Error)
	}
	return res.RowsAffected, nil
}

func (s *RecetaGuardadaService) ListByUsuario(ctx context.Context, usuarioID uint) ([]models.RecetaGuardadaDetalle, error) {
	var detalles []models.RecetaGuardadaDetalle
	err := s.db.WithContext(ctx).
		Table("recetas_guardadas").
		Select("recetas_guardadas.guardado_id, recetas_guardadas.usuario_id, recetas_guardadas.receta_id, recetas_guardadas.fecha_guardado, recetas_guardadas.comentario_personal, recetas.nombre AS nombre_receta").
		Joins("JOIN recetas ON recetas.receta_id = recetas_guardadas.receta_id").
		Where("recetas_guardadas.usuario_id = ?", usuarioID).
		Scan(&detalles).Error
	if err != nil {
		return nil, err
	}
	return detalles, nil
}
