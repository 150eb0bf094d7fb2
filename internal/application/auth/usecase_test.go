package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estacionamientos-api/internal/application/auth"
	"github.com/jhoicas/Estacionamientos-api/internal/application/dto"
	"github.com/jhoicas/Estacionamientos-api/internal/application/validation"
	"github.com/jhoicas/Estacionamientos-api/internal/domain"
	"github.com/jhoicas/Estacionamientos-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/Estacionamientos-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

type memUserRepo struct {
	users []*entity.User
}

func (r *memUserRepo) Create(ctx context.Context, u *entity.User) error {
	r.users = append(r.users, u)
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByNormalizedIdentifier(ctx context.Context, id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.NormalizedEmail == id || u.NormalizedUsername == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) ExistsByNormalized(ctx context.Context, email, username string) (bool, error) {
	for _, u := range r.users {
		if u.NormalizedEmail == email || u.NormalizedUsername == username {
			return true, nil
		}
	}
	return false, nil
}

func newUC(repo *memUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "estacionamientos-test"})
}

func registro() dto.RegisterRequest {
	return dto.RegisterRequest{
		Name:            "Juan Pérez",
		Username:        "JPerez",
		Email:           "Juan.Perez@Example.com",
		Password:        "claveSegura1",
		ConfirmPassword: "claveSegura1",
		AcceptTerms:     true,
	}
}

func TestRegisterUser_OK(t *testing.T) {
	repo := &memUserRepo{}
	out, err := newUC(repo).RegisterUser(context.Background(), registro())
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "JPerez", out.Username)
	assert.Equal(t, entity.RoleCliente, out.Role)
	require.Len(t, repo.users, 1)
	assert.Equal(t, "jperez", repo.users[0].NormalizedUsername)
	assert.Equal(t, "juan.perez@example.com", repo.users[0].NormalizedEmail)
	assert.NotEqual(t, "claveSegura1", repo.users[0].PasswordHash, "la contraseña nunca se guarda en claro")
}

func TestRegisterUser_FormularioInvalido(t *testing.T) {
	in := registro()
	in.AcceptTerms = false
	in.Password = "abc"

	_, err := newUC(&memUserRepo{}).RegisterUser(context.Background(), in)
	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	assert.True(t, errs.Has("acceptTerms", validation.RuleMustBeTrue))
	assert.True(t, errs.Has("password", validation.RuleLength))
}

func TestRegisterUser_Duplicado(t *testing.T) {
	repo := &memUserRepo{}
	uc := newUC(repo)
	_, err := uc.RegisterUser(context.Background(), registro())
	require.NoError(t, err)

	otro := registro()
	otro.Email = "otro@example.com"
	otro.Username = "jperez" // mismo username con otra capitalización
	_, err = uc.RegisterUser(context.Background(), otro)
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestLogin_PorEmailOUsername(t *testing.T) {
	repo := &memUserRepo{}
	uc := newUC(repo)
	_, err := uc.RegisterUser(context.Background(), registro())
	require.NoError(t, err)

	for _, id := range []string{"jperez", "JPEREZ", "juan.perez@example.com", "  Juan.Perez@EXAMPLE.com "} {
		out, err := uc.Login(context.Background(), dto.LoginRequest{EmailOrUsername: id, Password: "claveSegura1"})
		require.NoError(t, err, "login con %q", id)

		userID, username, role, err := pkgjwt.Parse(testSecret, out.Token)
		require.NoError(t, err)
		assert.Equal(t, out.User.ID, userID)
		assert.Equal(t, "JPerez", username)
		assert.Equal(t, entity.RoleCliente, role)
	}
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	repo := &memUserRepo{}
	uc := newUC(repo)
	_, err := uc.RegisterUser(context.Background(), registro())
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{EmailOrUsername: "jperez", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{EmailOrUsername: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_UsuarioSuspendido(t *testing.T) {
	repo := &memUserRepo{}
	uc := newUC(repo)
	_, err := uc.RegisterUser(context.Background(), registro())
	require.NoError(t, err)
	repo.users[0].Status = entity.UserStatusSuspended

	_, err = uc.Login(context.Background(), dto.LoginRequest{EmailOrUsername: "jperez", Password: "claveSegura1"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLogin_RememberMeYReturnURL(t *testing.T) {
	repo := &memUserRepo{}
	uc := newUC(repo)
	_, err := uc.RegisterUser(context.Background(), registro())
	require.NoError(t, err)

	corto, err := uc.Login(context.Background(), dto.LoginRequest{EmailOrUsername: "jperez", Password: "claveSegura1", ReturnURL: "https://evil.example.com"})
	require.NoError(t, err)
	assert.Empty(t, corto.ReturnURL, "no se devuelven URLs externas")

	largo, err := uc.Login(context.Background(), dto.LoginRequest{EmailOrUsername: "jperez", Password: "claveSegura1", RememberMe: true, ReturnURL: "/abonos/mios"})
	require.NoError(t, err)
	assert.Equal(t, "/abonos/mios", largo.ReturnURL)
	assert.True(t, largo.ExpiresAt.After(corto.ExpiresAt.Add(24*time.Hour)), "recordarme extiende la sesión")
}

func TestMe(t *testing.T) {
	repo := &memUserRepo{}
	uc := newUC(repo)
	creado, err := uc.RegisterUser(context.Background(), registro())
	require.NoError(t, err)

	me, err := uc.Me(context.Background(), creado.ID)
	require.NoError(t, err)
	assert.Equal(t, "juan.perez@example.com", auth.NormalizeIdentifier(me.Email))

	_, err = uc.Me(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestIsLocalURL(t *testing.T) {
	assert.True(t, auth.IsLocalURL("/"))
	assert.True(t, auth.IsLocalURL("/abonos?id=1"))
	assert.False(t, auth.IsLocalURL(""))
	assert.False(t, auth.IsLocalURL("//evil.com"))
	assert.False(t, auth.IsLocalURL("/\\evil.com"))
	assert.False(t, auth.IsLocalURL("http://evil.com"))
}
