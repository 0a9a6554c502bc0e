package view

import (
	"fmt"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	flashSessionName = "flash-session"
	flashKeySuccess  = "success"
	flashKeyError    = "error"
)

// FlashData holds the one-shot messages shown in the layout banner.
type FlashData struct {
	Success []string
	Error   []string
}

// Empty reports whether there is nothing to show.
func (f FlashData) Empty() bool {
	return len(f.Success) == 0 && len(f.Error) == 0
}

// setFlash sets a flash message in the session.
func setFlash(c echo.Context, key, message string) error {
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return fmt.Errorf("get flash session: %w", err)
	}
	sess.AddFlash(message, key)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("save flash session: %w", err)
	}
	return nil
}

// SetFlashSuccess sets a success flash message.
func SetFlashSuccess(c echo.Context, message string) error {
	return setFlash(c, flashKeySuccess, message)
}

// SetFlashError sets an error flash message.
func SetFlashError(c echo.Context, message string) error {
	return setFlash(c, flashKeyError, message)
}

// GetFlashData retrieves and clears flash messages from the session.
// A missing or unreadable session yields empty FlashData.
func GetFlashData(c echo.Context) FlashData {
	var data FlashData

	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return data
	}

	// Flashes() clears what it returns, so the session is saved afterwards.
	success := sess.Flashes(flashKeySuccess)
	failures := sess.Flashes(flashKeyError)
	if len(success) == 0 && len(failures) == 0 {
		return data
	}

	data.Success = toStrings(success)
	data.Error = toStrings(failures)
	_ = sess.Save(c.Request(), c.Response())
	return data
}

func toStrings(values []interface{}) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
