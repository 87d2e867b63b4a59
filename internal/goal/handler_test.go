package goal

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/saulo-duarte/skillbridge-lambda/internal/auth"
)

func TestHandlerUnknownGoalReturnsNotFound(t *testing.T) {
	handler := NewHandler(NewService(newMemoryRepository()))
	routes := Routes(handler)
	claims := &auth.Claims{UserID: uuid.New().String(), Role: "user"}
	missing := uuid.New().String()

	t.Run("Update", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/"+missing, strings.NewReader(`{"title":"x"}`))
		req = req.WithContext(auth.WithClaims(req.Context(), claims))
		rec := httptest.NewRecorder()

		routes.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("esperava status 404, obteve %d", rec.Code)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/"+missing, nil)
		req = req.WithContext(auth.WithClaims(req.Context(), claims))
		rec := httptest.NewRecorder()

		routes.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("esperava status 404, obteve %d", rec.Code)
		}
	})
}
