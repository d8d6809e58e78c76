package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/tienda-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de UserRepository en memoria (replica el contrato del adaptador pgx,
// incluido el UNIQUE de email y el (nil, nil) cuando no hay fila)
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byID map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	for _, u := range r.byID {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *user
	r.byID[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(user *entity.User) error {
	if _, ok := r.byID[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *user
	r.byID[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.byID {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byID, id)
	return nil
}

func newAuthUC(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		ExpMinutes: 60,
		Issuer:     "tienda-api-test",
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaUsuarioSinExponerHash(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	out, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "shane@gmail.com",
		Password: "s_pop_2024!",
		Address:  "Philadelphia",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "shane@gmail.com", out.Email)
	assert.False(t, out.IsAdmin, "el registro público nunca crea admins")

	// El hash persistido debe ser bcrypt del password, nunca el texto plano.
	stored, err := repo.GetByID(out.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "s_pop_2024!", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s_pop_2024!")))
}

func TestRegister_EmailDuplicado_RetornaConflicto(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "shane@gmail.com", Password: "s_pop_2024!"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "shane@gmail.com", Password: "otra-clave-123"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Len(t, repo.byID, 1, "debe quedar exactamente una fila para ese email")
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_PasswordCorrecta_ElTokenResuelveAlMismoUsuario(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	reg, err := uc.RegisterUser(dto.RegisterRequest{Email: "mark@gmail.com", Password: "m_pop_2024!"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "mark@gmail.com", Password: "m_pop_2024!"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, err := pkgjwt.Parse("test-secret-key-for-unit-tests", out.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, userID, "el sub del token debe ser el id del usuario")
}

func TestLogin_PasswordIncorrectaYEmailDesconocido_MismoError(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ari@gmail.com", Password: "a_pop_2024!"})
	require.NoError(t, err)

	_, errBadPass := uc.Login(dto.LoginRequest{Email: "ari@gmail.com", Password: "incorrecta"})
	_, errNoUser := uc.Login(dto.LoginRequest{Email: "nadie@gmail.com", Password: "a_pop_2024!"})

	// Ambos fallos deben ser indistinguibles para el cliente.
	assert.ErrorIs(t, errBadPass, domain.ErrUnauthorized)
	assert.ErrorIs(t, errNoUser, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolve
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_UsuarioVivo_DevuelveProyeccionMinima(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	reg, err := uc.RegisterUser(dto.RegisterRequest{Email: "joe@gmail.com", Password: "j_pop_2024!"})
	require.NoError(t, err)

	id, err := uc.Resolve(reg.ID)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, id.ID)
	assert.Equal(t, "joe@gmail.com", id.Email)
	assert.False(t, id.IsAdmin)
}

func TestResolve_CuentaBorrada_RetornaUnauthorized(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	reg, err := uc.RegisterUser(dto.RegisterRequest{Email: "joe@gmail.com", Password: "j_pop_2024!"})
	require.NoError(t, err)
	require.NoError(t, repo.Delete(reg.ID))

	_, err = uc.Resolve(reg.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"un id que ya no mapea a un usuario debe ser 401, no 404")
}
