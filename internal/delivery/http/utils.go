package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dkozyrev/foodway/internal/delivery/http/middleware"
	"github.com/dkozyrev/foodway/internal/domain"
	"github.com/dkozyrev/foodway/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
)

// respondJSON отправляет JSON ответ
func respondJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Failed to marshal response"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// respondError отправляет JSON ответ с ошибкой
func respondError(w http.ResponseWriter, code int, message string) {
	respondJSON(w, code, map[string]string{
		"error": message,
	})
}

// respondDomainError - единая точка трансляции доменных ошибок в HTTP статусы:
// 404 для "не найдено", 400 для валидации и конфликтов (исторически занятый
// грузовик возвращал 400, а не 409), 401/403 для авторизации, 500 для
// остального без утечки внутренних деталей.
func respondDomainError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case domain.IsNotFound(err):
		respondError(w, http.StatusNotFound, err.Error())
	case domain.IsValidation(err):
		respondError(w, http.StatusBadRequest, err.Error())
	case domain.IsConflict(err):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, fallback)
	}
}

// getClaims извлекает claims аутентифицированного пользователя из запроса
func getClaims(r *http.Request) (*jwt.Claims, bool) {
	return middleware.GetUserClaims(r.Context())
}

// parseIDParam извлекает числовой параметр пути
func parseIDParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrBadRequest
	}
	return id, nil
}
