package middleware // middleware provides shared request processing for handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/notes-backend/internal/model"
	"github.com/iliyamo/notes-backend/internal/repository"
	"github.com/iliyamo/notes-backend/internal/session"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "session_id"

// userContextKey is the echo context key under which the resolved
// user is stored for the duration of a single request.
const userContextKey = "user"

// SessionAuth returns an Echo middleware that authenticates requests
// via the session cookie. It extracts the token, resolves it through
// the session store, loads the user record (a session whose user was
// deleted is treated as invalid) and stores the *model.User in the
// request context. Every failure mode answers 401 with the same body
// so clients cannot distinguish a missing cookie from an expired one.
func SessionAuth(store session.Store, users *repository.UserRepo) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
			}
			ctx := c.Request().Context()
			username, err := store.Resolve(ctx, cookie.Value)
			if err != nil {
				if errors.Is(err, session.ErrNoSession) {
					return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
				}
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "session lookup failed"})
			}
			u, err := users.FindByUsername(ctx, username)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
			}
			if u == nil {
				// account deleted after the session was issued
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
			}
			c.Set(userContextKey, u)
			return next(c)
		}
	}
}

// CurrentUser returns the user resolved by SessionAuth for this
// request. The second return value is false when the middleware did
// not run or did not authenticate.
func CurrentUser(c echo.Context) (*model.User, bool) {
	u, ok := c.Get(userContextKey).(*model.User)
	return u, ok
}
