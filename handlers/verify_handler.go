package handlers

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/catsflow-servers/sistemakids/models"
)

type VerifyHandler struct {
	db        *gorm.DB
	jwtSecret string
}

func NewVerifyHandler(db *gorm.DB, jwtSecret string) *VerifyHandler {
	return &VerifyHandler{db: db, jwtSecret: jwtSecret}
}

// POST /verify/token (e /auth/verify/token, deprecado)
// Duas fases: assinatura/expiração e depois presença no espelho do banco —
// um token assinado mas já deslogado é inválido.
func (h *VerifyHandler) Token(c echo.Context) error {
	var req tokenPayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Dados inválidos"})
	}

	if _, err := parseSessionToken(h.jwtSecret, req.Token); err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]any{"message": "Token inválido"})
	}

	var espelho models.Token
	if err := h.db.Where("token = ?", req.Token).First(&espelho).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusUnauthorized, map[string]any{"message": "Token não encontrado no banco de dados"})
		}
		log.Println("Erro ao verificar o token:", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Erro interno do servidor"})
	}

	return c.JSON(http.StatusOK, map[string]any{"message": "Token válido"})
}

type userIDPayload struct {
	UserID flexString `json:"userId"`
}

func (h *VerifyHandler) findUsuario(c echo.Context) (*models.Usuario, error) {
	var req userIDPayload
	if err := c.Bind(&req); err != nil {
		return nil, c.JSON(http.StatusBadRequest, map[string]any{"message": "Dados inválidos"})
	}
	userID, ok := req.UserID.Uint()
	if !ok {
		return nil, c.JSON(http.StatusBadRequest, map[string]any{"message": "ID do usuário não fornecido"})
	}

	var usuario models.Usuario
	if err := h.db.First(&usuario, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, c.JSON(http.StatusNotFound, map[string]any{"message": "Usuário não encontrado"})
		}
		log.Println("Erro ao buscar usuário:", err)
		return nil, c.JSON(http.StatusInternalServerError, map[string]any{"message": "Erro no servidor"})
	}
	return &usuario, nil
}

// POST /verify/permission
func (h *VerifyHandler) Permission(c echo.Context) error {
	usuario, done := h.findUsuario(c)
	if usuario == nil {
		return done
	}
	return c.JSON(http.StatusOK, map[string]any{"permission": usuario.Permission})
}

// POST /verify/name
func (h *VerifyHandler) Name(c echo.Context) error {
	usuario, done := h.findUsuario(c)
	if usuario == nil {
		return done
	}
	return c.JSON(http.StatusOK, map[string]any{"nome": usuario.Nome})
}

// POST /verify/profile
// A senha nunca entra na resposta, nem hasheada.
func (h *VerifyHandler) Profile(c echo.Context) error {
	usuario, done := h.findUsuario(c)
	if usuario == nil {
		return done
	}
	return c.JSON(http.StatusOK, map[string]any{
		"id":         usuario.ID,
		"nome":       usuario.Nome,
		"user":       usuario.User,
		"permission": usuario.Permission,
		"photoPath":  usuario.PhotoPath,
	})
}

// GET /verify/usuarios
func (h *VerifyHandler) Usuarios(c echo.Context) error {
	var usuarios []models.Usuario
	if err := h.db.Find(&usuarios).Error; err != nil {
		log.Println("Erro ao buscar usuários:", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "Erro ao buscar usuários"})
	}
	return c.JSON(http.StatusOK, usuarios)
}

func (h *VerifyHandler) usuarioFromToken(c echo.Context) (*models.Usuario, error) {
	var req tokenPayload
	if err := c.Bind(&req); err != nil {
		return nil, c.JSON(http.StatusBadRequest, map[string]any{"message": "Dados inválidos"})
	}
	claims, err := parseSessionToken(h.jwtSecret, req.Token)
	if err != nil {
		return nil, c.JSON(http.StatusUnauthorized, map[string]any{"message": "Token inválido"})
	}

	var usuario models.Usuario
	if err := h.db.First(&usuario, claims.UserID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, c.JSON(http.StatusNotFound, map[string]any{"message": "Usuário não encontrado"})
		}
		log.Println("Erro ao buscar usuário:", err)
		return nil, c.JSON(http.StatusInternalServerError, map[string]any{"message": "Erro interno do servidor"})
	}
	return &usuario, nil
}

// POST /auth/verify/permission (deprecado)
// A permissão sai do cadastro atual do usuário, não do claim: mudanças de
// permissão valem sem novo login.
func (h *VerifyHandler) PermissionByToken(c echo.Context) error {
	usuario, done := h.usuarioFromToken(c)
	if usuario == nil {
		return done
	}
	return c.JSON(http.StatusOK, map[string]any{"permissions": usuario.Permission})
}

// POST /auth/verify/profile (deprecado)
func (h *VerifyHandler) ProfileByToken(c echo.Context) error {
	usuario, done := h.usuarioFromToken(c)
	if usuario == nil {
		return done
	}
	return c.JSON(http.StatusOK, map[string]any{
		"nome":    usuario.Nome,
		"usuario": usuario.User,
		"userId":  usuario.ID,
	})
}
