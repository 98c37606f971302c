package middlewares

import (
	"github.com/gin-gonic/gin"

	"gin-bookstore/constants"
	"gin-bookstore/sessions"
)

const (
	ContextSession   = "session"
	ContextSessionID = "sessionID"
)

// SessionMiddleware resolves the session cookie into a server-side session
// record. Requests without a valid cookie continue anonymously; the role
// middleware decides whether that is allowed.
func SessionMiddleware(store sessions.ISessionStore, secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		cookie, err := ctx.Cookie(constants.SessionCookie)
		if err != nil || cookie == "" {
			ctx.Next()
			return
		}

		sessionID, err := sessions.ParseToken(cookie, secret)
		if err != nil {
			ctx.Next()
			return
		}

		session, err := store.Get(ctx.Request.Context(), sessionID)
		if err != nil || session == nil {
			ctx.Next()
			return
		}

		ctx.Set(ContextSession, session)
		ctx.Set(ContextSessionID, sessionID)
		ctx.Next()
	}
}

// CurrentSession returns the resolved session for this request, if any.
func CurrentSession(ctx *gin.Context) (*sessions.Session, string, bool) {
	value, exists := ctx.Get(ContextSession)
	if !exists {
		return nil, "", false
	}
	session, ok := value.(*sessions.Session)
	if !ok {
		return nil, "", false
	}
	sessionID := ctx.GetString(ContextSessionID)
	return session, sessionID, true
}
