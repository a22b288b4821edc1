package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/auth"
)

// Authenticate reads an optional bearer token. With a validator the token
// must verify or the request is rejected; without one the token is passed
// through unverified for the payment provider to check. Requests without a
// token continue anonymously.
func Authenticate(v *auth.Validator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			p := auth.Principal{Token: token}
			if v != nil {
				var err error
				p, err = v.Validate(token)
				if err != nil {
					WriteError(w, r, http.StatusUnauthorized, "invalid bearer token")
					return
				}
			}

			ctx := context.WithValue(r.Context(), ctxPrincipal, p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	h := strings.TrimSpace(r.Header.Get("Authorization"))
	if h == "" {
		return "", false
	}
	scheme, token, found := strings.Cut(h, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func GetPrincipal(ctx context.Context) (auth.Principal, bool) {
	p, ok := ctx.Value(ctxPrincipal).(auth.Principal)
	return p, ok
}
