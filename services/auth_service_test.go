package services

import (
	"testing"

	"glossary-cms/config"
	"glossary-cms/models"
	"glossary-cms/repositories"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(t *testing.T) AuthService {
	t.Helper()

	config.JWTSecret = []byte("test-secret")
	db := newTestDB(t)
	return NewAuthService(repositories.NewUserRepository(db))
}

func TestRegister(t *testing.T) {
	svc := newTestAuthService(t)

	resp, err := svc.Register(models.RegisterRequest{
		Username: "janis",
		Email:    "janis@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, models.RoleEditor, resp.User.Role)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(resp.User.Password), []byte("secret123")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestAuthService(t)

	req := models.RegisterRequest{Username: "janis", Email: "janis@example.com", Password: "secret123"}
	_, err := svc.Register(req)
	require.NoError(t, err)

	req.Username = "janis2"
	_, err = svc.Register(req)
	require.ErrorIs(t, err, models.ErrConflict)
}

func TestLogin(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Register(models.RegisterRequest{
		Username: "anna",
		Email:    "anna@example.com",
		Password: "secret123",
		Role:     models.RoleAdmin,
	})
	require.NoError(t, err)

	resp, err := svc.Login(models.LoginRequest{Email: "anna@example.com", Password: "secret123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, models.RoleAdmin, resp.User.Role)

	_, err = svc.Login(models.LoginRequest{Email: "anna@example.com", Password: "wrong"})
	require.ErrorIs(t, err, models.ErrUnauthorized)

	_, err = svc.Login(models.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	require.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestCreateCategoryAndLabelRequireAdmin(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryService(repositories.NewCategoryRepository(db))
	labels := NewLabelService(repositories.NewLabelRepository(db))

	_, err := categories.CreateCategory(editorCaller, models.CreateCategoryRequest{Name: "Anatomy"})
	require.ErrorIs(t, err, models.ErrUnauthorized)
	_, err = labels.CreateLabel(editorCaller, models.CreateLabelRequest{Name: "dental"})
	require.ErrorIs(t, err, models.ErrUnauthorized)

	category, err := categories.CreateCategory(adminCaller, models.CreateCategoryRequest{Name: "Anatomy"})
	require.NoError(t, err)
	require.NotZero(t, category.ID)

	_, err = categories.CreateCategory(adminCaller, models.CreateCategoryRequest{Name: "Anatomy"})
	require.ErrorIs(t, err, models.ErrConflict)

	label, err := labels.CreateLabel(adminCaller, models.CreateLabelRequest{Name: "dental"})
	require.NoError(t, err)

	got, err := labels.GetLabel(label.ID)
	require.NoError(t, err)
	require.Equal(t, "dental", got.Name)
}
