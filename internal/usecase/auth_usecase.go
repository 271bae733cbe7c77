package usecase

import (
	"context"
	"errors"
	"log"
	"orcamento_api/internal/domain/entities"
	"orcamento_api/internal/infrastructure/security"
	"orcamento_api/internal/usecase/interfaces"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const MinPasswordLength = 8

//go:generate mockgen -source=auth_usecase.go -destination=../adapter/http/handlers/mocks/auth_usecase_mock.go -package=mocks

var (
	ErrInvalidCredentials     = errors.New("invalid username or password")
	ErrInvalidToken           = errors.New("invalid or missing token")
	ErrPasswordChangeRequired = errors.New("password change required")
	ErrWeakPassword           = errors.New("new password must have at least 8 characters and differ from the current one")
)

// LoginResult is what a successful login hands back to the client.
type LoginResult struct {
	Token                  string
	Username               string
	PasswordChangeRequired bool
}

// IAuthUseCase is the session/token registry of the admin area.
//
// Tokens are opaque UUIDv4 strings with no expiry; logout removes them.

type IAuthUseCase interface {
	Login(ctx context.Context, username, password string) (LoginResult, error)
	Validate(ctx context.Context, token string) bool
	Logout(ctx context.Context, token string) error
	Authorize(ctx context.Context, token string) (entities.Session, entities.AdminUser, error)
	ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error
	EnsureDefaultAdmin(ctx context.Context, username, password string) (bool, error)
}

type AuthUseCase struct {
	users    interfaces.IAdminUserRepository
	sessions interfaces.ISessionStore
	newToken func() string
	now      func() time.Time

	dummyOnce sync.Once
	dummyHash string
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IAdminUserRepository, sessions interfaces.ISessionStore) *AuthUseCase {
	return &AuthUseCase{
		users:    users,
		sessions: sessions,
		newToken: uuid.NewString,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *AuthUseCase) Login(ctx context.Context, username, password string) (LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	user, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		return LoginResult{}, err
	}
	if user.Username == "" || !user.Active {
		// Spend the same hashing time as a real check so unknown usernames
		// cannot be told apart by latency.
		security.CheckPassword(password, u.dummy())
		log.Printf("[auth][usecase] login rejected username=%s", username)
		return LoginResult{}, ErrInvalidCredentials
	}
	if !security.CheckPassword(password, user.PasswordHash) {
		log.Printf("[auth][usecase] login rejected username=%s", username)
		return LoginResult{}, ErrInvalidCredentials
	}

	s := entities.Session{Token: u.newToken(), Username: user.Username, CreatedAt: u.now()}
	if err := u.sessions.Save(ctx, s); err != nil {
		return LoginResult{}, err
	}
	log.Printf("[auth][usecase] login success username=%s must_change_password=%t", user.Username, user.MustChangePassword)
	return LoginResult{Token: s.Token, Username: user.Username, PasswordChangeRequired: user.MustChangePassword}, nil
}

func (u *AuthUseCase) dummy() string {
	u.dummyOnce.Do(func() {
		u.dummyHash, _ = security.HashPassword(u.newToken())
	})
	return u.dummyHash
}

// Validate reports whether token belongs to a live session. Store failures
// count as invalid.
func (u *AuthUseCase) Validate(ctx context.Context, token string) bool {
	token = strings.TrimSpace(token)
	if token == "" {
		return false
	}
	s, err := u.sessions.Get(ctx, token)
	if err != nil {
		log.Printf("[auth][usecase] validate failed err=%v", err)
		return false
	}
	return s.Token != ""
}

func (u *AuthUseCase) Logout(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	return u.sessions.Delete(ctx, token)
}

// Authorize resolves token to its session and an active admin. It does not
// check MustChangePassword; the caller decides which routes allow that.
func (u *AuthUseCase) Authorize(ctx context.Context, token string) (entities.Session, entities.AdminUser, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Session{}, entities.AdminUser{}, ErrInvalidToken
	}

	s, err := u.sessions.Get(ctx, token)
	if err != nil {
		return entities.Session{}, entities.AdminUser{}, err
	}
	if s.Token == "" {
		return entities.Session{}, entities.AdminUser{}, ErrInvalidToken
	}

	user, err := u.users.GetByUsername(ctx, s.Username)
	if err != nil {
		return entities.Session{}, entities.AdminUser{}, err
	}
	if user.Username == "" || !user.Active {
		return entities.Session{}, entities.AdminUser{}, ErrInvalidToken
	}
	return s, user, nil
}

func (u *AuthUseCase) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error {
	user, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if user.Username == "" || !user.Active || !security.CheckPassword(currentPassword, user.PasswordHash) {
		return ErrInvalidCredentials
	}
	if len(newPassword) < MinPasswordLength || newPassword == currentPassword {
		return ErrWeakPassword
	}

	hash, err := security.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if _, err := u.users.UpdatePassword(ctx, user.Username, hash, false); err != nil {
		return err
	}
	log.Printf("[auth][usecase] password changed username=%s", user.Username)
	return nil
}

// EnsureDefaultAdmin creates the bootstrap account when missing. The account
// must change its password before it can use the admin area.
func (u *AuthUseCase) EnsureDefaultAdmin(ctx context.Context, username, password string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return false, ErrInvalidCredentials
	}

	existing, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if existing.Username != "" {
		return false, nil
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return false, err
	}
	now := u.now()
	created, err := u.users.CreateIfAbsent(ctx, entities.AdminUser{
		Username:           username,
		PasswordHash:       hash,
		Active:             true,
		MustChangePassword: true,
		CreatedAt:          now,
		UpdatedAt:          now,
	})
	if err != nil {
		return false, err
	}
	if created {
		log.Printf("[auth][usecase] default admin created username=%s", username)
	}
	return created, nil
}
