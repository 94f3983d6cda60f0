package user

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/entities"
	"Recipe-Hub/pkg/jwt"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	byEmail map[string]*entities.User
}

func newFakeUserRepo() *fakeUserRepository {
	return &fakeUserRepository{byEmail: map[string]*entities.User{}}
}

func (f *fakeUserRepository) Create(_ context.Context, user *entities.User) error {
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepository) GetByID(_ context.Context, id string) (*entities.User, error) {
	for _, u := range f.byEmail {
		if u.ID.String() == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func newUserService() (UserService, *fakeUserRepository) {
	repo := newFakeUserRepo()
	return NewUserService(repo, jwt.NewJWTService()), repo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, repo := newUserService()

	res, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, res.Role)

	// password is stored hashed, never verbatim
	stored := repo.byEmail["ada@example.com"]
	assert.NotEqual(t, "hunter2hunter2", stored.Password)

	login, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "ada@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, domain.RoleUser, login.Role)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newUserService()

	_, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), domain.RegisterRequest{
		Name:     "Grace",
		Email:    "ada@example.com",
		Password: "different-password",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newUserService()

	_, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), domain.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newUserService()

	_, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestTokenRoundTrip(t *testing.T) {
	svc, repo := newUserService()
	jwtService := jwt.NewJWTService()

	_, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	login, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "ada@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	userID, role, err := jwtService.GetUserIDByToken(login.Token)
	require.NoError(t, err)
	assert.Equal(t, repo.byEmail["ada@example.com"].ID.String(), userID)
	assert.Equal(t, domain.RoleUser, role)
}
