package view

import (
	"fmt"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	prefsSessionName = "prefs"
	prefsKeyLang     = "lang"

	// one year
	prefsMaxAge = 365 * 24 * 60 * 60
)

// LanguagePreference returns the language stored for the visitor, or "".
func LanguagePreference(c echo.Context) string {
	sess, err := session.Get(prefsSessionName, c)
	if err != nil {
		return ""
	}
	lang, _ := sess.Values[prefsKeyLang].(string)
	return lang
}

// SetLanguagePreference stores lang for subsequent visits.
func SetLanguagePreference(c echo.Context, lang string) error {
	sess, err := session.Get(prefsSessionName, c)
	if err != nil {
		return fmt.Errorf("get prefs session: %w", err)
	}
	sess.Options.MaxAge = prefsMaxAge
	sess.Values[prefsKeyLang] = lang
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("save prefs session: %w", err)
	}
	return nil
}
