package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/cohort-tools/api/internal/app/models"
	"github.com/cohort-tools/api/internal/pkg/apperrors"
	"github.com/cohort-tools/api/internal/pkg/auth"
	"github.com/cohort-tools/api/internal/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestErrorHandlerMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
		wantCode   string
	}{
		{"not found", apperrors.ErrCohortNotFound, http.StatusNotFound, "Cohort not found", "RES_001"},
		{"wrapped not found", fmt.Errorf("lookup: %w", apperrors.ErrResourceNotFound), http.StatusNotFound, "Resource not found", "RES_001"},
		{"invalid id", apperrors.NewInvalidIDError("abc"), http.StatusBadRequest, "Specified id is not valid", "RES_003"},
		{"validation", apperrors.NewValidationError("campus", "Tokyo is not a valid campus"), http.StatusBadRequest, "Tokyo is not a valid campus", "VAL_001"},
		{"bad request", apperrors.NewBadRequestError("nope"), http.StatusBadRequest, "nope", "BAD_REQUEST"},
		{"credentials", apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Unable to authenticate the user"), http.StatusUnauthorized, "Unable to authenticate the user", "AUTH_001"},
		{"invalid email", apperrors.NewCustomError(apperrors.ErrInvalidEmail, "Provide a valid email address."), http.StatusBadRequest, "Provide a valid email address.", "AUTH_002"},
		{"weak password", apperrors.NewCustomError(apperrors.ErrInvalidPassword, "too weak"), http.StatusBadRequest, "too weak", "AUTH_003"},
		{"expired", apperrors.ErrTokenExpired, http.StatusUnauthorized, MsgTokenInvalid, "AUTH_006"},
		{"revoked", apperrors.ErrTokenRevoked, http.StatusUnauthorized, MsgTokenInvalid, "AUTH_005"},
		{"driver error", errors.New("connection refused by 10.0.0.3"), http.StatusInternalServerError, MsgInternalError, "SRV_001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(ErrorHandler())
			router.GET("/", func(c *gin.Context) { _ = c.Error(tt.err) })

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			body := decode(t, w)
			if body["message"] != tt.wantMsg {
				t.Errorf("message = %v, want %q", body["message"], tt.wantMsg)
			}
			if body["code"] != tt.wantCode {
				t.Errorf("code = %v, want %q", body["code"], tt.wantCode)
			}
		})
	}
}

func TestErrorHandlerDuplicate(t *testing.T) {
	router := gin.New()
	router.Use(ErrorHandler())
	router.POST("/", func(c *gin.Context) { _ = c.Error(apperrors.ErrCohortAlreadyExists) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	body := decode(t, w)
	if body["duplicate"] != true || body["field"] != "cohortSlug" || body["code"] != "RES_002" {
		t.Errorf("body = %v", body)
	}
}

func TestErrorHandlerLeavesWrittenResponses(t *testing.T) {
	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusTeapot, gin.H{"ok": true})
		_ = c.Error(errors.New("late"))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusTeapot {
		t.Errorf("status = %d", w.Code)
	}
}

func TestNotFoundAndRecovery(t *testing.T) {
	router := gin.New()
	router.Use(Recovery(), ErrorHandler())
	router.GET("/panic", func(c *gin.Context) { panic("boom") })
	router.NoRoute(NotFoundHandler())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	if w.Code != http.StatusNotFound || decode(t, w)["message"] != MsgRouteNotFound {
		t.Errorf("no route: %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	if w.Code != http.StatusInternalServerError || strings.Contains(w.Body.String(), "boom") {
		t.Errorf("panic: %d %s", w.Code, w.Body.String())
	}
}

type stubVerifier struct {
	token string
}

var errStoreDown = errors.New("dial tcp 10.0.0.7:6379: connection refused")

func (s stubVerifier) VerifyToken(_ context.Context, token string) (*auth.Claims, error) {
	switch token {
	case "expired":
		return nil, apperrors.ErrTokenExpired
	case "store-down":
		return nil, fmt.Errorf("error checking token revocation: %w", errStoreDown)
	}
	if token != s.token {
		return nil, apperrors.ErrTokenInvalid
	}
	return &auth.Claims{UserID: "u1", Email: "ada@example.com", Name: "Ada"}, nil
}

func TestJWTAuth(t *testing.T) {
	m := NewAuthMiddleware(stubVerifier{token: "good"})
	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/me", m.JWTAuth(), func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": claims.UserID, "userID": c.GetString(UserIDKey)})
	})

	tests := []struct {
		name     string
		header   string
		want     int
		wantCode string
	}{
		{"missing header", "", http.StatusUnauthorized, "AUTH_007"},
		{"not bearer", "Token good", http.StatusUnauthorized, "AUTH_007"},
		{"bad token", "Bearer bad", http.StatusUnauthorized, "AUTH_005"},
		{"expired token", "Bearer expired", http.StatusUnauthorized, "AUTH_006"},
		{"revocation store down", "Bearer store-down", http.StatusInternalServerError, "SRV_001"},
		{"valid", "Bearer good", http.StatusOK, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d", w.Code, tt.want)
			}
			body := decode(t, w)
			if tt.want == http.StatusUnauthorized && body["message"] != MsgTokenInvalid {
				t.Errorf("message = %v", body["message"])
			}
			if tt.wantCode != "" && body["code"] != tt.wantCode {
				t.Errorf("code = %v, want %s", body["code"], tt.wantCode)
			}
			if tt.want == http.StatusInternalServerError && strings.Contains(w.Body.String(), "10.0.0.7") {
				t.Errorf("store error leaked: %s", w.Body.String())
			}
			if tt.want == http.StatusOK && (body["id"] != "u1" || body["userID"] != "u1") {
				t.Errorf("body = %v", body)
			}
		})
	}
}

type bindTarget struct {
	Name    string          `json:"cohortName" binding:"required"`
	Hours   *int            `json:"totalHours" binding:"omitempty,min=0"`
	Campus  models.Campus   `json:"campus" binding:"omitempty,enum"`
	Program *models.Program `json:"program" binding:"omitempty,enum"`
}

func TestBindingError(t *testing.T) {
	if err := validation.RegisterBindingValidators(); err != nil {
		t.Fatal(err)
	}

	router := gin.New()
	router.Use(ErrorHandler())
	router.POST("/", func(c *gin.Context) {
		var req bindTarget
		if err := c.ShouldBindJSON(&req); err != nil {
			_ = c.Error(BindingError(err))
			return
		}
		c.Status(http.StatusNoContent)
	})

	post := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		return w
	}

	w := post(`{"campus":"Paris"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing name: status %d", w.Code)
	}
	body := decode(t, w)
	if body["field"] != "cohortName" || body["code"] != "VAL_001" {
		t.Errorf("missing name: %v", body)
	}

	w = post(`{"cohortName":"x","campus":"Tokyo"}`)
	body = decode(t, w)
	if w.Code != http.StatusBadRequest || body["field"] != "campus" {
		t.Errorf("bad campus: %d %v", w.Code, body)
	}

	w = post(`{"cohortName":"x","totalHours":"many"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("wrong type: %d", w.Code)
	}

	w = post(`{"cohortName":`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("broken json: %d", w.Code)
	}

	if w := post(`{"cohortName":"x","campus":"Paris","program":"UX/UI"}`); w.Code != http.StatusNoContent {
		t.Errorf("valid body: %d %s", w.Code, w.Body.String())
	}
}

func TestRequestLogger(t *testing.T) {
	var buf strings.Builder
	router := gin.New()
	router.Use(RequestLogger(zerolog.New(&buf)))
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health?x=1", nil))

	line := buf.String()
	for _, want := range []string{`"method":"GET"`, `"path":"/health?x=1"`, `"status":200`} {
		if !strings.Contains(line, want) {
			t.Errorf("log line %q missing %s", line, want)
		}
	}
}
