package interfaces

import (
	"context"
	"orcamento_api/internal/domain/entities"
)

//go:generate mockgen -source=session_store_interface.go -destination=mocks/session_store_mock.go -package=mock_interfaces

// ISessionStore keeps issued bearer tokens.
//
// Implementations must be safe for concurrent use. Get returns a zero-value
// Session (empty Token) when the token is unknown; Delete is idempotent.

type ISessionStore interface {
	Save(ctx context.Context, s entities.Session) error
	Get(ctx context.Context, token string) (entities.Session, error)
	Delete(ctx context.Context, token string) error
}
