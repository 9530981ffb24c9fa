package ctxutil

import "context"

type ctxGoogleIDTokenKey struct{}

func WithGoogleIDToken(ctx context.Context, token map[string]any) context.Context {
	return context.WithValue(ctx, ctxGoogleIDTokenKey{}, token)
}

func GoogleIDToken(ctx context.Context) map[string]any {
	token, ok := ctx.Value(ctxGoogleIDTokenKey{}).(map[string]any)
	if !ok {
		return nil
	}
	return token
}
