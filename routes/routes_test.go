package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"almanack/database/kv"
	"almanack/handlers"
	"almanack/middleware"
	"almanack/services/auth"
	"almanack/services/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(t *testing.T) (*gin.Engine, *kv.MemoryBackend) {
	t.Helper()
	backend := kv.NewMemoryBackend()
	st := store.New(context.Background(), backend, store.Options{UnitPrice: 25})

	hash, err := auth.HashPassword("almanack")
	if err != nil {
		t.Fatal(err)
	}
	loginSvc := auth.NewService(auth.NewLocalAuthenticator("naval", hash), st, 0, nil)

	r := gin.New()
	r.Use(middleware.RequestLogger(zap.NewNop()))
	RegisterRoutes(r, handlers.NewHandlerBundle(st, loginSvc), "*")
	return r, backend
}

func do(t *testing.T, r http.Handler, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("%s %s: decode %q: %v", method, path, w.Body.String(), err)
		}
	}
	return w, out
}

func login(t *testing.T, r http.Handler) {
	t.Helper()
	w, _ := do(t, r, http.MethodPost, "/api/auth/login", map[string]string{"username": "naval", "password": "almanack"})
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d: %s", w.Code, w.Body.String())
	}
}

func TestLoginWrongCredentials(t *testing.T) {
	r, _ := newRouter(t)
	w, body := do(t, r, http.MethodPost, "/api/auth/login", map[string]string{"username": "naval", "password": "nope"})
	if w.Code != http.StatusUnauthorized || body["error"] != auth.MsgWrongCredentials {
		t.Fatalf("status %d body %v", w.Code, body)
	}
	_, session := do(t, r, http.MethodGet, "/api/session", nil)
	if session["isLoggedIn"] != false {
		t.Fatalf("session = %v", session)
	}
}

func TestBookingsRequireSession(t *testing.T) {
	r, _ := newRouter(t)
	w, _ := do(t, r, http.MethodGet, "/api/bookings", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	w, _ = do(t, r, http.MethodPost, "/api/bookings", map[string]any{"movieName": "Inception", "ticketCount": 1, "time": "18:00", "date": "01-01-2030"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestBookingFlow(t *testing.T) {
	r, backend := newRouter(t)
	login(t, r)

	w, body := do(t, r, http.MethodPost, "/api/bookings", map[string]any{
		"movieName": "Inception", "ticketCount": 3, "time": "18:00", "date": "01-01-2030",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	created := body["booking"].(map[string]any)
	if created["amount"] != 75.0 || created["displayAmount"] != "$75.00" {
		t.Fatalf("booking = %v", created)
	}

	w, body = do(t, r, http.MethodPost, "/api/bookings", map[string]any{
		"movieId": "1", "ticketCount": 1, "time": "09:00", "date": "02-01-2030",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if name := body["booking"].(map[string]any)["movie"]; name != "The Godfather" {
		t.Fatalf("movie = %v", name)
	}

	w, body = do(t, r, http.MethodPost, "/api/bookings", map[string]any{
		"movieName": "Inception", "ticketCount": 0, "time": "18:00", "date": "01-01-2030",
	})
	if w.Code != http.StatusBadRequest || body["field"] != "ticketCount" {
		t.Fatalf("zero tickets: status %d body %v", w.Code, body)
	}

	_, body = do(t, r, http.MethodGet, "/api/bookings", nil)
	if body["count"] != 2.0 {
		t.Fatalf("count = %v, want 2", body["count"])
	}

	w, body = do(t, r, http.MethodDelete, "/api/bookings", nil)
	if w.Code != http.StatusOK || body["count"] != 0.0 {
		t.Fatalf("reset: status %d body %v", w.Code, body)
	}
	_, body = do(t, r, http.MethodGet, "/api/session", nil)
	if body["isLoggedIn"] != true {
		t.Fatalf("reset ended the session: %v", body)
	}
	w, _ = do(t, r, http.MethodPost, "/api/bookings", map[string]any{
		"movieName": "Inception", "ticketCount": 1, "time": "18:00", "date": "01-01-2030",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	w, _ = do(t, r, http.MethodPost, "/api/auth/logout", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("logout status = %d", w.Code)
	}
	if backend.Len() != 0 {
		t.Fatalf("logout left %d keys", backend.Len())
	}
	login(t, r)
	_, body = do(t, r, http.MethodGet, "/api/bookings", nil)
	if body["count"] != 0.0 {
		t.Fatalf("bookings survived logout: %v", body)
	}
}

func TestMovies(t *testing.T) {
	r, _ := newRouter(t)

	_, body := do(t, r, http.MethodGet, "/api/movies", nil)
	if body["count"] != 10.0 {
		t.Fatalf("count = %v", body["count"])
	}
	_, body = do(t, r, http.MethodGet, "/api/movies?q=god", nil)
	movies := body["movies"].([]any)
	if len(movies) != 1 || movies[0].(map[string]any)["name"] != "The Godfather" {
		t.Fatalf("filter god = %v", movies)
	}
	w, _ := do(t, r, http.MethodGet, "/api/movies/42", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown movie status = %d", w.Code)
	}
}

func TestDraftRequiresSession(t *testing.T) {
	r, _ := newRouter(t)
	w, _ := do(t, r, http.MethodGet, "/api/movies/2/draft", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
	login(t, r)
	w, body := do(t, r, http.MethodGet, "/api/movies/2/draft", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	draft := body["draft"].(map[string]any)
	if draft["ticketCount"] != 1.0 || draft["time"] != "18:00" {
		t.Fatalf("draft = %v", draft)
	}
}

func TestNavigation(t *testing.T) {
	r, _ := newRouter(t)

	nav := func(path, movieID string) map[string]any {
		t.Helper()
		w, body := do(t, r, http.MethodPost, "/api/navigation", map[string]string{"path": path, "movieId": movieID})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		return body
	}

	if got := nav("/activity", "")["finalPath"]; got != "/login" {
		t.Fatalf("logged out /activity -> %v", got)
	}
	login(t, r)
	if got := nav("/login", "")["finalPath"]; got != "/booking" {
		t.Fatalf("logged in /login -> %v", got)
	}
	if got := nav("/selection/1", "")["finalPath"]; got != "/booking" {
		t.Fatalf("selection without payload -> %v", got)
	}
	if got := nav("/selection/1", "1")["finalPath"]; got != "/selection/1" {
		t.Fatalf("selection with payload -> %v", got)
	}
	if got := nav("/nowhere", "")["finalPath"]; got != "/booking" {
		t.Fatalf("unknown path -> %v", got)
	}
}

func TestRequestIDHeader(t *testing.T) {
	r, _ := newRouter(t)
	w, _ := do(t, r, http.MethodGet, "/api/session", nil)
	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Fatal("missing request id header")
	}
}

func TestCORSConfig(t *testing.T) {
	if cfg := CORSConfig("*"); !cfg.AllowAllOrigins || cfg.AllowCredentials {
		t.Fatalf("wildcard config = %+v", cfg)
	}
	cfg := CORSConfig("http://a.test, http://b.test")
	if cfg.AllowAllOrigins || len(cfg.AllowOrigins) != 2 || !cfg.AllowCredentials {
		t.Fatalf("list config = %+v", cfg)
	}
}

func TestHealth(t *testing.T) {
	r, _ := newRouter(t)
	w, body := do(t, r, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK || body["status"] != "OK" {
		t.Fatalf("status %d body %v", w.Code, body)
	}
}
