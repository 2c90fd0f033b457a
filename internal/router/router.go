package router // package router defines how HTTP routes are registered for the API

import (
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/notes-backend/internal/config"
	"github.com/iliyamo/notes-backend/internal/handler"
	"github.com/iliyamo/notes-backend/internal/middleware"
	"github.com/iliyamo/notes-backend/internal/repository"
	"github.com/iliyamo/notes-backend/internal/session"
)

// RegisterRoutes wires the whole HTTP surface onto the Echo instance:
// the open endpoints (register, login, health), the session-guarded
// group (me, logout, note CRUD) and the static single-page app served
// for every non-API path. The rate limiter only guards the credential
// endpoints and disables itself when Redis is absent.
func RegisterRoutes(e *echo.Echo, cfg config.Config, a *handler.AuthHandler, n *handler.NoteHandler,
	store session.Store, users *repository.UserRepo, rdb *redis.Client) {

	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowCredentials: true,
	}))

	api := e.Group("/api")
	api.GET("/health", handler.Health)

	rl := middleware.NewRateLimiter(config.LoadRateLimitConfig(), rdb)
	api.POST("/register", a.Register, rl)
	api.POST("/login", a.Login, rl)

	priv := api.Group("", middleware.SessionAuth(store, users))
	priv.POST("/logout", a.Logout)
	priv.GET("/me", a.Me)
	priv.GET("/notes", n.List)
	priv.POST("/notes", n.Create)
	priv.GET("/notes/:id", n.Get)
	priv.PUT("/notes/:id", n.Update)
	priv.DELETE("/notes/:id", n.Delete)

	// Everything outside /api falls back to the bundled SPA; HTML5
	// mode rewrites unknown paths to index.html for client routing.
	e.Use(echomw.StaticWithConfig(echomw.StaticConfig{
		Root:  cfg.StaticDir,
		HTML5: true,
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Request().URL.Path, "/api")
		},
	}))
}
