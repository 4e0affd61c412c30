package models

import "time"

// Usuario is a registered account. The stored contrasena is always the bcrypt
// hash; an empty string means the account was created through Google Sign-In.
type Usuario struct {
	UsuarioID      uint      `json:"usuarioId" gorm:"column:usuario_id;primaryKey"`
	Nombre         string    `json:"nombre" gorm:"size:255;not null"`
	Email          string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Contrasena     string    `json:"contrasena" gorm:"size:255"`
	AceptaTerminos bool      `json:"aceptaTerminos" gorm:"column:acepta_terminos;default:false"`
	Rol            string    `json:"rol" gorm:"size:50;default:usuario"`
	FechaRegistro  time.Time `json:"fechaRegistro" gorm:"column:fecha_registro;autoCreateTime"`
	Ciudad         string    `json:"ciudad" gorm:"size:100;default:''"`
	Localidad      string    `json:"localidad" gorm:"size:100;default:''"`
}

func (Usuario) TableName() string { return "usuarios" }

// Sanitize clears the hash before the account is serialized into a response.
func (u *Usuario) Sanitize() {
	u.Contrasena = ""
}

// Credentials is the transient login pair; it is never persisted.
type Credentials struct {
	Email      string `json:"email" binding:"required,email"`
	Contrasena string `json:"contrasena" binding:"required"`
}
