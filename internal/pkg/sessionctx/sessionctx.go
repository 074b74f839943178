package sessionctx

import "context"

type sessionKey struct{}

func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionKey{}, sessionID)
}

func SessionID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionKey{}).(string)
	return id, ok && id != ""
}

// Key используется как ключ блокировки pkg/tx.
func Key(ctx context.Context) string {
	id, _ := SessionID(ctx)
	return id
}
