package controllers

import (
	"errors"
	"net/http"

	"github.com/ChristianMoraLopez/nutriplanbackend/config"
	"github.com/ChristianMoraLopez/nutriplanbackend/logger"
	"github.com/ChristianMoraLopez/nutriplanbackend/models"
	"github.com/ChristianMoraLopez/nutriplanbackend/services"
	"github.com/ChristianMoraLopez/nutriplanbackend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthController serves registration and both login flows. The provider
// verifier is injected; when Google Sign-In is not configured it is nil and
// /login/google answers 503.
type AuthController struct {
	usuarios *services.UsuarioService
	verifier services.TokenVerifier
	jwtCfg   config.JWTSettings
}

func NewAuthController(usuarios *services.UsuarioService, verifier services.TokenVerifier, jwtCfg config.JWTSettings) *AuthController {
	return &AuthController{usuarios: usuarios, verifier: verifier, jwtCfg: jwtCfg}
}

// Registro creates a local account. POST /registro
func (a *AuthController) Registro(c *gin.Context) {
	var usuario models.Usuario
	if err := c.ShouldBindJSON(&usuario); err != nil {
		respondError(c, http.StatusBadRequest, "Cuerpo de la petición inválido", err.Error())
		return
	}
	if usuario.Nombre == "" || usuario.Email == "" {
		respondError(c, http.StatusBadRequest, "Datos incompletos", "nombre y email son obligatorios")
		return
	}

	if err := a.usuarios.Create(c.Request.Context(), &usuario); err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			respondError(c, http.StatusConflict, "No se pudo crear el usuario", "ya existe una cuenta con ese email")
			return
		}
		writeServiceError(c, err, "usuario")
		return
	}

	c.JSON(http.StatusCreated, models.APIResponse{
		Data:    usuario,
		Message: "Usuario creado exitosamente",
	})
}

// Login verifies local credentials and issues a session token. POST /login
func (a *AuthController) Login(c *gin.Context) {
	var credentials models.Credentials
	if err := c.ShouldBindJSON(&credentials); err != nil {
		respondError(c, http.StatusBadRequest, "Cuerpo de la petición inválido", err.Error())
		return
	}

	usuario, err := a.usuarios.Login(c.Request.Context(), credentials.Email, credentials.Contrasena)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			// Same answer for unknown email and wrong password.
			respondError(c, http.StatusUnauthorized, "Credenciales inválidas", "el email o la contraseña son incorrectos")
			return
		}
		writeServiceError(c, err, "usuario")
		return
	}

	a.respondWithToken(c, usuario)
}

type googleLoginInput struct {
	IDToken string `json:"idToken" binding:"required"`
}

// LoginGoogle exchanges a Google-issued identity token for a local session,
// provisioning the account on first sight. POST /login/google
func (a *AuthController) LoginGoogle(c *gin.Context) {
	if a.verifier == nil {
		respondError(c, http.StatusServiceUnavailable, "Inicio de sesión con Google no disponible", "el proveedor de identidad no está configurado")
		return
	}

	var input googleLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Cuerpo de la petición inválido", err.Error())
		return
	}

	identity, err := a.verifier.Verify(c.Request.Context(), input.IDToken)
	if err != nil {
		logger.L().Info("google token rejected", zap.Error(err))
		respondError(c, http.StatusUnauthorized, "Credenciales inválidas", "el token de Google no es válido")
		return
	}

	usuario, err := a.usuarios.FindByEmail(c.Request.Context(), identity.Email)
	if errors.Is(err, services.ErrNotFound) {
		usuario = &models.Usuario{
			Nombre:         identity.Nombre,
			Email:          identity.Email,
			Contrasena:     "",
			AceptaTerminos: true,
			Rol:            "usuario",
		}
		if err := a.usuarios.Create(c.Request.Context(), usuario); err != nil {
			writeServiceError(c, err, "usuario")
			return
		}
	} else if err != nil {
		writeServiceError(c, err, "usuario")
		return
	}

	a.respondWithToken(c, usuario)
}

func (a *AuthController) respondWithToken(c *gin.Context, usuario *models.Usuario) {
	token, err := utils.GenerateJWT(a.jwtCfg, usuario)
	if err != nil {
		logger.L().Error("token generation failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Error al procesar el inicio de sesión", "inténtalo de nuevo más tarde")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Data:    gin.H{"token": token, "usuario": usuario},
		Message: "Inicio de sesión exitoso",
	})
}
