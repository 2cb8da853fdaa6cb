package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/catsflow-servers/sistemakids/models"
	"github.com/catsflow-servers/sistemakids/utils"
)

// Validade fixa do token de sessão.
const tokenTTL = 3 * time.Hour

type AuthHandler struct {
	db        *gorm.DB
	jwtSecret string
}

func NewAuthHandler(db *gorm.DB, jwtSecret string) *AuthHandler {
	return &AuthHandler{db: db, jwtSecret: jwtSecret}
}

// Claims carregados no token de sessão. A permissão embutida é a da hora do
// login; leituras de permissão sempre consultam o usuário no banco.
type SessionClaims struct {
	UserID     uint   `json:"userId"`
	Permission string `json:"permission"`
	jwt.RegisteredClaims
}

// parseSessionToken valida assinatura (só HS256) e expiração; a presença no
// espelho do banco é a segunda fase, feita por quem chama.
func parseSessionToken(secret, raw string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(raw, &SessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

func (h *AuthHandler) signToken(u *models.Usuario, now time.Time) (signed, jti string, err error) {
	jti = uuid.NewString()
	claims := SessionClaims{
		UserID:     u.ID,
		Permission: u.Permission,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	signed, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.jwtSecret))
	return signed, jti, err
}

type registrarUsuarioPayload struct {
	Nome      string `json:"nome"`
	Usuario   string `json:"usuario"`
	Photo     string `json:"photo"`
	Senha     string `json:"senha"`
	Permissao string `json:"permissao"`
}

// POST /auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req registrarUsuarioPayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "Dados do usuário inválidos"})
	}
	if strings.TrimSpace(req.Usuario) == "" || req.Senha == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "Usuário e senha são obrigatórios"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "Erro interno do servidor"})
	}

	novo := models.Usuario{
		Nome:       req.Nome,
		User:       req.Usuario,
		PhotoPath:  req.Photo,
		Password:   string(hash),
		Permission: req.Permissao,
	}
	if err := h.db.Create(&novo).Error; err != nil {
		log.Println("Erro ao cadastrar usuário:", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "Erro interno do servidor"})
	}
	return c.JSON(http.StatusCreated, map[string]any{"message": "Usuário cadastrado com sucesso", "data": novo})
}

type loginPayload struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

// POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginPayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Dados de login inválidos"})
	}

	var usuario models.Usuario
	if err := h.db.Where(`"user" = ?`, req.User).First(&usuario).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusUnauthorized, map[string]any{"message": "Usuário não encontrado"})
		}
		log.Println("Erro ao fazer login:", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Erro interno do servidor"})
	}
	if bcrypt.CompareHashAndPassword([]byte(usuario.Password), []byte(req.Password)) != nil {
		log.Println("Senha incorreta")
		return c.JSON(http.StatusUnauthorized, map[string]any{"message": "Senha incorreta"})
	}

	now := time.Now()
	token, jti, err := h.signToken(&usuario, now)
	if err != nil {
		log.Println("Erro ao assinar token:", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Erro interno do servidor"})
	}

	espelho := models.Token{
		UserID:     usuario.ID,
		User:       usuario.User,
		Permission: usuario.Permission,
		Token:      token,
		Jti:        jti,
		CreateAt:   utils.FormatSaoPaulo(now),
		ExpiresAt:  utils.FormatSaoPaulo(now.Add(tokenTTL)),
	}
	if err := h.db.Create(&espelho).Error; err != nil {
		log.Println("Erro ao salvar token:", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Erro interno do servidor"})
	}

	audit := models.LogUser{
		UserID:   usuario.ID,
		User:     usuario.User,
		Token:    token,
		Datatime: utils.NowSaoPaulo(),
		Info:     "Usuário entrou no sistema",
	}
	if err := h.db.Create(&audit).Error; err != nil {
		log.Println("Erro ao registrar log de login:", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Erro interno do servidor"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"token":  token,
		"userId": usuario.ID,
	})
}

type tokenPayload struct {
	Token string `json:"token"`
}

// POST /auth/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	var req tokenPayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Dados inválidos"})
	}

	var espelho models.Token
	if err := h.db.Where("token = ?", req.Token).First(&espelho).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusUnauthorized, map[string]any{"message": "Token inválido"})
		}
		log.Println("Erro ao desconectar usuário:", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Erro interno do servidor"})
	}

	audit := models.LogUser{
		UserID:   espelho.UserID,
		User:     espelho.User,
		Token:    req.Token,
		Datatime: utils.NowSaoPaulo(),
		Info:     "Usuário saiu do sistema",
	}
	if err := h.db.Create(&audit).Error; err != nil {
		log.Println("Erro ao registrar log de logout:", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Erro interno do servidor"})
	}

	// remoção por valor: se houver mais de uma linha com o mesmo token,
	// todas caem juntas
	if err := h.db.Where("token = ?", req.Token).Delete(&models.Token{}).Error; err != nil {
		log.Println("Erro ao remover token:", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Erro interno do servidor"})
	}

	return c.JSON(http.StatusOK, map[string]any{"message": "Usuário desconectado com sucesso", "redirectUrl": "/"})
}

// GET /auth/gerenciar/usuarios?permission=&ordem=A-Z|Z-A
func (h *AuthHandler) List(c echo.Context) error {
	tx := h.db.Model(&models.Usuario{})
	if permission := strings.TrimSpace(c.QueryParam("permission")); permission != "" {
		tx = tx.Where("permission = ?", permission)
	}
	order := "nome ASC"
	if c.QueryParam("ordem") == "Z-A" {
		order = "nome DESC"
	}

	var usuarios []models.Usuario
	if err := tx.Order(order).Find(&usuarios).Error; err != nil {
		log.Println("Erro ao obter usuários:", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "Erro ao obter usuários"})
	}
	return c.JSON(http.StatusOK, usuarios)
}

// GET /auth/view/:id
func (h *AuthHandler) View(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "ID inválido"})
	}

	var usuario models.Usuario
	if err := h.db.First(&usuario, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Usuário não encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Erro ao buscar usuário"})
	}
	return c.JSON(http.StatusOK, usuario)
}

type atualizarUsuarioPayload struct {
	Nome       string `json:"nome"`
	User       string `json:"user"`
	PhotoPath  string `json:"photoPath"`
	Permission string `json:"permission"`
}

// PUT /auth/update/:id
func (h *AuthHandler) Update(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "ID inválido"})
	}

	var req atualizarUsuarioPayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Dados do usuário inválidos"})
	}

	var usuario models.Usuario
	if err := h.db.First(&usuario, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Usuário não encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Erro ao atualizar usuário"})
	}

	usuario.Nome = req.Nome
	usuario.User = req.User
	usuario.PhotoPath = req.PhotoPath
	usuario.Permission = req.Permission
	if err := h.db.Save(&usuario).Error; err != nil {
		log.Println("Erro ao atualizar usuário:", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Erro ao atualizar usuário"})
	}
	return c.JSON(http.StatusOK, usuario)
}

// DELETE /auth/delete/:id
func (h *AuthHandler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "ID inválido"})
	}

	var usuario models.Usuario
	if err := h.db.First(&usuario, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Usuário não encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Erro interno do servidor"})
	}
	if err := h.db.Delete(&usuario).Error; err != nil {
		log.Println("Erro ao excluir usuário:", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Erro interno do servidor"})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Usuário excluído com sucesso"})
}

type trocarSenhaPayload struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// POST /auth/change/password/user
// A troca exige só assinatura válida; a presença no espelho fica com o
// verify/token.
func (h *AuthHandler) ChangePasswordUser(c echo.Context) error {
	var req trocarSenhaPayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Dados inválidos"})
	}

	claims, err := parseSessionToken(h.jwtSecret, req.Token)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]any{"message": "Token inválido"})
	}

	var usuario models.Usuario
	if err := h.db.First(&usuario, claims.UserID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Usuário não encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Erro interno do servidor"})
	}

	if err := h.storePassword(&usuario, req.NewPassword); err != nil {
		log.Println("Erro ao alterar senha:", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Erro interno do servidor"})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Senha alterada com sucesso"})
}

type trocarSenhaAdminPayload struct {
	UserID      flexString `json:"userId"`
	NewPassword string     `json:"newPassword"`
}

// POST /auth/change/password/admin
func (h *AuthHandler) ChangePasswordAdmin(c echo.Context) error {
	var req trocarSenhaAdminPayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Dados inválidos"})
	}
	userID, ok := req.UserID.Uint()
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "ID do usuário não fornecido"})
	}

	var usuario models.Usuario
	if err := h.db.First(&usuario, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Usuário não encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Erro ao alterar senha"})
	}

	if err := h.storePassword(&usuario, req.NewPassword); err != nil {
		log.Println("Erro ao alterar senha:", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Erro ao alterar senha"})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Senha alterada com sucesso"})
}

func (h *AuthHandler) storePassword(usuario *models.Usuario, senha string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return h.db.Model(usuario).Update("password", string(hash)).Error
}
