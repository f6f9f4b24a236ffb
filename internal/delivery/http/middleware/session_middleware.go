package middleware

import (
	"encoding/gob"

	"sagedo/internal/domain/entity"
	domainerrors "sagedo/internal/domain/errors"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	// SessionName is the cookie name of the server-side session.
	SessionName = "sagedo_session"

	sessionUserKey = "user"
)

func init() {
	// The snapshot crosses the gorilla/sessions gob boundary.
	gob.Register(entity.SessionSnapshot{})
}

// SessionMiddleware guards routes behind the cookie session.
type SessionMiddleware struct{}

// NewSessionMiddleware creates the session guard middleware.
func NewSessionMiddleware() *SessionMiddleware {
	return &SessionMiddleware{}
}

// CurrentUser returns the session snapshot, or nil when the caller is
// anonymous.
func CurrentUser(c echo.Context) *entity.SessionSnapshot {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return nil
	}

	snapshot, ok := sess.Values[sessionUserKey].(entity.SessionSnapshot)
	if !ok {
		return nil
	}

	return &snapshot
}

// SetCurrentUser stores the snapshot in the session cookie. Saving also
// refreshes the sliding expiry.
func SetCurrentUser(c echo.Context, snapshot entity.SessionSnapshot) error {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return err
	}

	sess.Values[sessionUserKey] = snapshot

	return sess.Save(c.Request(), c.Response())
}

// ClearCurrentUser drops the session.
func ClearCurrentUser(c echo.Context) error {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return err
	}

	sess.Options.MaxAge = -1
	delete(sess.Values, sessionUserKey)

	return sess.Save(c.Request(), c.Response())
}

// RequireSession rejects anonymous callers.
func (m *SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if CurrentUser(c) == nil {
			return domainerrors.ErrUnauthorized
		}

		return next(c)
	}
}

// RequireAdmin rejects callers without the admin flag. The flag is captured
// at login; admin sessions only come from the configured back-office login.
func (m *SessionMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := CurrentUser(c)
		if user == nil {
			return domainerrors.ErrUnauthorized
		}
		if !user.IsAdmin {
			return domainerrors.ErrForbidden
		}

		return next(c)
	}
}
