package theme

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
)

const SessionName = "routerlogin"

// NewSessionStore returns a cookie session store signing cookies
// with the given secret.
func NewSessionStore(secret []byte) *sessions.CookieStore {
	store := sessions.NewCookieStore(secret)
	const oneYear = 365 * 24 * 60 * 60
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   oneYear,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// SessionStorage is a Storage backed by a cookie session.
// Set must be called before the response body is written.
type SessionStorage struct {
	session *sessions.Session
	request *http.Request
	writer  http.ResponseWriter
}

// NewSessionStorage returns the storage for the session of the request.
// A session cookie that cannot be decoded is replaced by a new session,
// in which case a non nil error is returned together with the storage.
func NewSessionStorage(store sessions.Store, w http.ResponseWriter,
	r *http.Request) (storage *SessionStorage, err error) {
	session, err := store.Get(r, SessionName)
	if err != nil {
		err = fmt.Errorf("decoding session: %w", err)
	}
	return &SessionStorage{
		session: session,
		request: r,
		writer:  w,
	}, err
}

func (s *SessionStorage) Get(key string) (value string, ok bool) {
	value, ok = s.session.Values[key].(string)
	return value, ok
}

func (s *SessionStorage) Set(key, value string) (err error) {
	s.session.Values[key] = value
	err = s.session.Save(s.request, s.writer)
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}
