package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/avdeec/salon-booking-service/internal/api/handlers"
)

// HeaderUserID заголовок идентификации: chat id пользователя
const HeaderUserID = "X-User-ID"

type contextKey string

const actorKey contextKey = "actor"

// Actor идентичность запроса
type Actor struct {
	UserID   string
	IsMaster bool
}

// Identity извлекает X-User-ID и помечает запрос ролью master,
// если id совпадает с настроенным id мастера.
// Запросы без заголовка отклоняются с 401.
func Identity(masterID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := strings.TrimSpace(r.Header.Get(HeaderUserID))
			if userID == "" {
				handlers.RespondError(w, http.StatusUnauthorized, "отсутствует заголовок "+HeaderUserID)
				return
			}

			actor := Actor{UserID: userID, IsMaster: userID == masterID}
			ctx := context.WithValue(r.Context(), actorKey, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ActorFromContext возвращает идентичность запроса, установленную Identity
func ActorFromContext(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorKey).(Actor)
	return actor, ok
}
