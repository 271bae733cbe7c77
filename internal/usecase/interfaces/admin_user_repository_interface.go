package interfaces

import (
	"context"
	"orcamento_api/internal/domain/entities"
)

//go:generate mockgen -source=admin_user_repository_interface.go -destination=mocks/admin_user_repository_mock.go -package=mock_interfaces

// IAdminUserRepository abstracts persistence for admin accounts.
//
// GetByUsername returns a zero-value AdminUser (empty Username) when absent.
// CreateIfAbsent reports created=false when the username is already taken.

type IAdminUserRepository interface {
	GetByUsername(ctx context.Context, username string) (entities.AdminUser, error)
	CreateIfAbsent(ctx context.Context, u entities.AdminUser) (created bool, err error)
	UpdatePassword(ctx context.Context, username, passwordHash string, mustChange bool) (entities.AdminUser, error)
}
