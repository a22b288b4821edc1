package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/session"
)

const (
	HeaderSessionID   = "X-Session-Id"
	SessionCookieName = "storefront_session"
)

// Session attaches the shopper session named by the X-Session-Id header or
// the session cookie. Unknown ids are not adopted: a new session with a
// server-generated id is started instead. The id is echoed back in the
// header and the cookie.
func Session(store *session.Store, secureCookie bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(HeaderSessionID))
			if id == "" {
				if c, err := r.Cookie(SessionCookieName); err == nil {
					id = c.Value
				}
			}

			sess, ok := store.Get(id)
			if !ok {
				sess = store.Create()
			}

			w.Header().Set(HeaderSessionID, sess.ID)
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookieName,
				Value:    sess.ID,
				Path:     "/",
				HttpOnly: true,
				Secure:   secureCookie,
				SameSite: http.SameSiteLaxMode,
			})

			ctx := context.WithValue(r.Context(), ctxSession, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetSession(ctx context.Context) *session.Session {
	s, _ := ctx.Value(ctxSession).(*session.Session)
	return s
}
