package sessions

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
)

const usernameKey = "username"

// Manager управляет cookie-сессиями администраторов.
// Cookie подписывается секретом из окружения; срок жизни 0 означает
// сессию браузера.
type Manager struct {
	store      *sessions.CookieStore
	cookieName string
}

// NewManager создаёт менеджер сессий с заданным секретом подписи
func NewManager(secret, cookieName string, maxAge time.Duration) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{
		store:      store,
		cookieName: cookieName,
	}
}

// SignIn создаёт сессию для администратора
func (m *Manager) SignIn(w http.ResponseWriter, r *http.Request, username string) error {
	session, _ := m.store.Get(r, m.cookieName)
	session.Values[usernameKey] = username

	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// SignOut уничтожает текущую сессию.
// Значения очищаются вместе с протуханием cookie: истёкшая cookie
// всё ещё несёт подписанное содержимое, и полагаться только на MaxAge нельзя.
func (m *Manager) SignOut(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, m.cookieName)
	session.Values = make(map[interface{}]interface{})
	session.Options.MaxAge = -1

	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	return nil
}

// Username возвращает имя администратора из сессии, если она активна
func (m *Manager) Username(r *http.Request) (string, bool) {
	session, err := m.store.Get(r, m.cookieName)
	if err != nil {
		return "", false
	}

	username, ok := session.Values[usernameKey].(string)
	if !ok || username == "" {
		return "", false
	}

	return username, true
}
