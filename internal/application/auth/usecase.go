package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/cases"

	"github.com/jhoicas/Estacionamientos-api/internal/application/dto"
	"github.com/jhoicas/Estacionamientos-api/internal/application/validation"
	"github.com/jhoicas/Estacionamientos-api/internal/domain"
	"github.com/jhoicas/Estacionamientos-api/internal/domain/entity"
	"github.com/jhoicas/Estacionamientos-api/internal/domain/repository"
	"github.com/jhoicas/Estacionamientos-api/pkg/jwt"
)

// RememberMeMinutes duración del token cuando el usuario marca "recordarme" (30 días).
const RememberMeMinutes = 30 * 24 * 60

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, now: time.Now}
}

// NormalizeIdentifier pliega mayúsculas/minúsculas (Unicode) y recorta espacios de un email o username.
func NormalizeIdentifier(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// RegisterUser valida el formulario, hashea la contraseña con bcrypt y persiste el usuario.
// Devuelve validation.Errors si el formulario es inválido y ErrUserAlreadyExists si el email o el username ya existen.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if errs := validation.ValidateRegister(in); errs != nil {
		return nil, errs
	}
	normEmail := NormalizeIdentifier(in.Email)
	normUsername := NormalizeIdentifier(in.Username)
	exists, err := uc.userRepo.ExistsByNormalized(ctx, normEmail, normUsername)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	user := &entity.User{
		ID:                 uuid.New().String(),
		Name:               strings.TrimSpace(in.Name),
		Username:           strings.TrimSpace(in.Username),
		NormalizedUsername: normUsername,
		Email:              strings.TrimSpace(in.Email),
		NormalizedEmail:    normEmail,
		Phone:              strings.TrimSpace(in.Phone),
		PasswordHash:       string(hash),
		Role:               entity.RoleCliente,
		Status:             entity.UserStatusActive,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email-o-username/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if errs := validation.ValidateLogin(in); errs != nil {
		return nil, errs
	}
	user, err := uc.userRepo.FindByNormalizedIdentifier(ctx, NormalizeIdentifier(in.EmailOrUsername))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.UserStatusActive {
		return nil, domain.ErrForbidden
	}
	exp := uc.jwtCfg.ExpMinutes
	if in.RememberMe {
		exp = RememberMeMinutes
	}
	expiresAt := uc.now().Add(time.Duration(exp) * time.Minute)
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, exp)
	if err != nil {
		return nil, err
	}
	out := &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      *toUserResponse(user),
	}
	if IsLocalURL(in.ReturnURL) {
		out.ReturnURL = in.ReturnURL
	}
	return out, nil
}

// Me devuelve el usuario autenticado. ErrUserNotFound si el token apunta a un usuario inexistente.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// IsLocalURL indica si u es una ruta relativa al propio sitio (evita redirecciones abiertas).
func IsLocalURL(u string) bool {
	if u == "" || u[0] != '/' {
		return false
	}
	if len(u) > 1 && (u[1] == '/' || u[1] == '\\') {
		return false
	}
	return true
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Username:  u.Username,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
