package services

import (
	"context"
	"errors"

	"github.com/ChristianMoraLopez/nutriplanbackend/logger"
	"github.com/ChristianMoraLopez/nutriplanbackend/models"
	"github.com/ChristianMoraLopez/nutriplanbackend/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrInvalidCredentials is returned for any failed login, regardless of which
// factor failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

type UsuarioService struct {
	db *gorm.DB
}

func NewUsuarioService(db *gorm.DB) *UsuarioService {
	return &UsuarioService{db: db}
}

// Create hashes the password (empty stays empty for Google accounts) and
// inserts the row. The stored hash is cleared on the way out.
func (s *UsuarioService) Create(ctx context.Context, usuario *models.Usuario) error {
	hashed, err := utils.HashPassword(usuario.Contrasena)
	if err != nil {
		return err
	}
	usuario.Contrasena = hashed
	if usuario.Rol == "" {
		usuario.Rol = "usuario"
	}

	if err := s.db.WithContext(ctx).Create(usuario).Error; err != nil {
		logger.L().Warn("usuario create failed", zap.String("email", usuario.Email), zap.Error(err))
		return translate(err)
	}
	usuario.Sanitize()
	return nil
}

func (s *UsuarioService) Read(ctx context.Context, id uint) (*models.Usuario, error) {
	var usuario models.Usuario
	err := s.db.WithContext(ctx).First(&usuario, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	usuario.Sanitize()
	return &usuario, nil
}

func (s *UsuarioService) FindByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	var usuario models.Usuario
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&usuario).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	usuario.Sanitize()
	return &usuario, nil
}

// Login verifies the credential pair and returns the sanitized account.
// Accounts with an empty hash are provider-only and never verify.
func (s *UsuarioService) Login(ctx context.Context, email, password string) (*models.Usuario, error) {
	var usuario models.Usuario
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&usuario).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !utils.CheckPasswordHash(password, usuario.Contrasena) {
		logger.L().Info("login failed", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	usuario.Sanitize()
	return &usuario, nil
}

// Update overwrites the profile fields; the password is only rehashed when a
// new one is supplied.
func (s *UsuarioService) Update(ctx context.Context, id uint, usuario *models.Usuario) (int64, error) {
	values := map[string]any{
		"nombre":          usuario.Nombre,
		"email":           usuario.Email,
		"acepta_terminos": usuario.AceptaTerminos,
		"rol":             usuario.Rol,
		"ciudad":          usuario.Ciudad,
		"localidad":       usuario.Localidad,
	}
	if usuario.Contrasena != "" {
		hashed, err := utils.HashPassword(usuario.Contrasena)
		if err != nil {
			return 0, err
		}
		values["contrasena"] = hashed
	}

	res := s.db.WithContext(ctx).Model(&models.Usuario{}).Where("usuario_id = ?", id).Updates(values)
	if res.Error != nil {
		return 0, translate(res.Error)
	}
	return res.RowsAffected, nil
}

func (s *UsuarioService) Delete(ctx context.Context, id uint) (int64, error) {
	res := s.db.WithContext(ctx).Delete(&models.Usuario{}, id)
	if res.Error != nil {
		return 0, translate(res.Error)
	}
	return res.RowsAffected, nil
}

func (s *UsuarioService) List(ctx context.Context) ([]models.Usuario, error) {
	var usuarios []models.Usuario
	if err := s.db.WithContext(ctx).Find(&usuarios).Error; err != nil {
		return nil, err
	}
	for i := range usuarios {
		usuarios[i].Sanitize()
	}
	return usuarios, nil
}

// ListPaginated returns one page of accounts; offset = (page-1)*size.
func (s *UsuarioService) ListPaginated(ctx context.Context, page, size int) ([]models.Usuario, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}
	var usuarios []models.Usuario
	err := s.db.WithContext(ctx).Limit(size).Offset((page - 1) * size).Find(&usuarios).Error
	if err != nil {
		return nil, err
	}
	for i := range usuarios {
		usuarios[i].Sanitize()
	}
	return usuarios, nil
}
