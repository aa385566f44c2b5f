package middleware

import (
	"context"
	"net/http"
	"time"

	"alsayed-store/internal/auth"
	"alsayed-store/internal/i18n"
	"alsayed-store/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// SessionCookie is the cookie carrying the cart session id.
	SessionCookie = "cart_session"
	// SessionHeader lets non-browser clients pass the session id explicitly.
	SessionHeader = "X-Cart-Session"

	sessionMaxAge = 30 * 24 * time.Hour
)

type (
	sessionKey  struct{}
	languageKey struct{}
)

// Session resolves the cart session id from the header or cookie and
// issues a new one when the request has none.
func Session(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := sessionFromRequest(r)
			if id == "" {
				id = uuid.NewString()
				logger.Debug().Str("session", id).Msg("issued cart session")
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookie,
					Value:    id,
					Path:     "/",
					MaxAge:   int(sessionMaxAge.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			w.Header().Set(SessionHeader, id)

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, id)))
		})
	}
}

func sessionFromRequest(r *http.Request) string {
	if v := r.Header.Get(SessionHeader); validSession(v) {
		return v
	}
	if c, err := r.Cookie(SessionCookie); err == nil && validSession(c.Value) {
		return c.Value
	}
	return ""
}

func validSession(v string) bool {
	_, err := uuid.Parse(v)
	return v != "" && err == nil
}

// SessionFromContext returns the cart session id set by Session.
func SessionFromContext(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}

// LanguageSource returns a session's stored language choice.
type LanguageSource interface {
	Get(ctx context.Context, session string) (i18n.Lang, bool)
}

// Language picks the request language: the session's stored choice,
// then Accept-Language, then fallback. Must run after Session.
func Language(prefs LanguageSource, fallback i18n.Lang) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := fallback
			if stored, ok := prefs.Get(r.Context(), SessionFromContext(r.Context())); ok {
				lang = stored
			} else if negotiated, ok := i18n.Negotiate(r.Header.Get("Accept-Language")); ok {
				lang = negotiated
			}

			w.Header().Set("Content-Language", string(lang))
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), languageKey{}, lang)))
		})
	}
}

// LanguageFromContext returns the language chosen by Language.
func LanguageFromContext(ctx context.Context) i18n.Lang {
	if lang, ok := ctx.Value(languageKey{}).(i18n.Lang); ok {
		return lang
	}
	return i18n.Arabic
}

// Identity attaches the signed-in user when a bearer token is present.
// Requests without a token pass through anonymously; a bad token is rejected.
func Identity(verifier *auth.Verifier, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := auth.ExtractBearer(r.Header.Get("Authorization"))
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := verifier.Verify(token)
			if err != nil {
				logger.Warn().Err(err).Str("path", r.URL.Path).Msg("rejected bearer token")
				writeError(w, r, http.StatusUnauthorized, model.ErrCodeUnauthorised, "invalid bearer token")
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
		})
	}
}

// RequireUser rejects requests that Identity did not authenticate.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := auth.UserIDFromContext(r.Context()); !ok {
			writeError(w, r, http.StatusUnauthorized, model.ErrCodeUnauthorised, model.ErrUnauthorised.Message)
			return
		}
		next.ServeHTTP(w, r)
	})
}
