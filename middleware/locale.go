package middleware

import (
	"net/http"
	"time"

	"travel_wonders_go/config"
	"travel_wonders_go/services"

	"github.com/labstack/echo/v4"
)

// Locale middleware resolves the request locale and persists it.
// Priority:
// 1. Query param "locale" (sets cookie)
// 2. Cookie "locale"
// 3. Configured default, then "cs"
//
// Matching is exact; unknown or differently-cased values fall through
// to the next source.
func Locale(cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			param := c.QueryParam("locale")

			var cookieValue string
			if cookie, err := c.Cookie("locale"); err == nil {
				cookieValue = cookie.Value
			}

			loc := services.ResolveLocale(param, cookieValue, cfg.DefaultLocale)

			if services.IsSupportedLocale(param) {
				SetLocaleCookie(c, loc, cfg)
			}

			c.Set("locale", loc)

			return next(c)
		}
	}
}

// SetLocaleCookie persists the locale choice for a year
func SetLocaleCookie(c echo.Context, loc services.Locale, cfg *config.Config) {
	cookie := new(http.Cookie)
	cookie.Name = "locale"
	cookie.Value = string(loc)
	cookie.Expires = time.Now().Add(24 * 365 * time.Hour) // 1 year
	cookie.Path = "/"
	cookie.HttpOnly = true
	cookie.SameSite = http.SameSiteLaxMode

	if cfg != nil && cfg.Environment == "production" {
		cookie.Secure = true
	}

	c.SetCookie(cookie)
}

// GetLocale returns the resolved locale from context
func GetLocale(c echo.Context) services.Locale {
	if loc, ok := c.Get("locale").(services.Locale); ok {
		return loc
	}
	return services.DefaultLocale
}
