package api

import "context"

// withSessionID stores the resolved session id on the request context.
func withSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, id)
}

// sessionIDFrom returns the session id placed by SessionMiddleware,
// or the empty string when the handler runs without it.
func sessionIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDKey{}).(string)
	return id
}
