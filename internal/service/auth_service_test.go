package service_test

import (
	"testing"
	"time"

	"cursos_backend/internal/config"
	"cursos_backend/internal/model"
	"cursos_backend/internal/repository"
	"cursos_backend/internal/service"
	"cursos_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *service.AuthService {
	t.Helper()
	db := newTestDB(t)
	cfg := &config.Config{}
	cfg.JWT.Secret = "secreto-de-prueba-para-el-backend-de-cursos"
	cfg.JWT.ExpireTime = time.Hour
	return service.NewAuthService(repository.NewUserRepository(db), cfg)
}

func TestRegisterRechazaDuplicados(t *testing.T) {
	svc := newAuthService(t)

	primero := &model.User{
		Username: "ana", FirstName: "Ana", LastName: "Soto",
		Email: "ana@example.com", Password: "clave12345", Role: model.Estudiante,
	}
	require.NoError(t, svc.Register(primero))

	mismoEmail := &model.User{
		Username: "otra", FirstName: "Otra", LastName: "Soto",
		Email: "ana@example.com", Password: "clave12345", Role: model.Estudiante,
	}
	assert.ErrorIs(t, svc.Register(mismoEmail), util.ErrEmailRegistered)

	mismoUsername := &model.User{
		Username: "ana", FirstName: "Ana", LastName: "Diaz",
		Email: "ana2@example.com", Password: "clave12345", Role: model.Estudiante,
	}
	assert.ErrorIs(t, svc.Register(mismoUsername), util.ErrUsernameTaken)
}

func TestLoginEmiteToken(t *testing.T) {
	svc := newAuthService(t)

	user := &model.User{
		Username: "bruno", FirstName: "Bruno", LastName: "Lopez",
		Email: "bruno@example.com", Password: "clave12345", Role: model.Estudiante,
	}
	require.NoError(t, svc.Register(user))

	// The stored password is a hash, never the plain text.
	assert.NotEqual(t, "clave12345", user.Password)

	token, err := svc.Login("bruno@example.com", "clave12345")
	require.NoError(t, err)

	claims, err := util.ParseJWT(token, svc.Cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "bruno@example.com", claims.Email)

	_, err = svc.Login("bruno@example.com", "incorrecta")
	assert.ErrorIs(t, err, util.ErrInvalidCredential)

	_, err = svc.Login("nadie@example.com", "clave12345")
	assert.ErrorIs(t, err, util.ErrInvalidCredential)
}
