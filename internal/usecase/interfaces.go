package usecase

import "context"

// Gateway is the transport the usecases dispatch through. Satisfied by
// *gateway.Client; mocked in tests.
type Gateway interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
}
