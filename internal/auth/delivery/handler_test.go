package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	authdomain "chat-backend/internal/auth/domain"
	"chat-backend/internal/auth/usecase"
	"chat-backend/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSecret = "delivery-test-secret-0123456789"

type fakeUsers struct {
	mu    sync.Mutex
	users map[string]*authdomain.User
	err   error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: map[string]*authdomain.User{}}
}

func (f *fakeUsers) Create(_ context.Context, user *authdomain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email {
			return authdomain.ErrEmailTaken.Wrap(errors.New("duplicate key"))
		}
	}
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*authdomain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) FindByID(_ context.Context, id string) (*authdomain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeUsers) ListExcept(context.Context, string) ([]*authdomain.User, error) {
	return nil, nil
}

func (f *fakeUsers) Update(context.Context, *authdomain.User) error { return nil }

func (f *fakeUsers) delete(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, id)
}

func newTestRouter(t *testing.T, users *fakeUsers) (*gin.Engine, *usecase.TokenIssuer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	issuer, err := usecase.NewTokenIssuer(testSecret, 7*24*time.Hour)
	require.NoError(t, err)
	uc := usecase.NewAuthUsecase(users, issuer)
	h := NewAuthHandler(uc, false, false)

	r := gin.New()
	auth := r.Group("/api/auth")
	auth.POST("/signup", h.Signup)
	auth.POST("/login", h.Login)
	auth.POST("/logout", h.Logout)
	auth.GET("/check-auth", AuthMiddleware(uc, false), h.CheckAuth)
	return r, issuer
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, body []byte) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(body, &env))
	return env
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range w.Result().Cookies() {
		if ck.Name == SessionCookie {
			return ck
		}
	}
	t.Fatalf("no %s cookie in response", SessionCookie)
	return nil
}

func TestSignup_SetsCookieAndHidesPassword(t *testing.T) {
	req := require.New(t)
	r, _ := newTestRouter(t, newFakeUsers())

	w := postJSON(r, "/api/auth/signup", `{"fullName":"Ada Lovelace","email":"Ada@Example.com","password":"secret12"}`)
	req.Equal(http.StatusCreated, w.Code)
	req.NotContains(w.Body.String(), "password")
	req.NotContains(w.Body.String(), "secret12")

	env := decode(t, w.Body.Bytes())
	req.True(env.Success)
	var user authdomain.PublicUser
	req.NoError(json.Unmarshal(env.Data, &user))
	req.Equal("ada@example.com", user.Email)
	req.NotEmpty(user.ID)

	ck := sessionCookie(t, w)
	req.NotEmpty(ck.Value)
	req.True(ck.HttpOnly)
	req.False(ck.Secure)
	req.Equal(http.SameSiteStrictMode, ck.SameSite)
	req.Equal("/", ck.Path)
	req.Equal(7*24*60*60, ck.MaxAge)
}

func TestSignup_Errors(t *testing.T) {
	r, _ := newTestRouter(t, newFakeUsers())
	w := postJSON(r, "/api/auth/signup", `{"fullName":"First","email":"taken@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"missing fields", `{"email":"a@b.com"}`, "All fields are required"},
		{"bad email", `{"fullName":"Ada","email":"nope","password":"secret1"}`, "Invalid email address"},
		{"duplicate any case", `{"fullName":"Second","email":"TAKEN@x.com","password":"secret1"}`, "Email already exists"},
		{"malformed body", `{`, "Invalid request body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			w := postJSON(r, "/api/auth/signup", tt.body)
			req.Equal(http.StatusBadRequest, w.Code)
			env := decode(t, w.Body.Bytes())
			req.False(env.Success)
			req.Equal(tt.message, env.Message)
			req.Empty(w.Result().Cookies())
		})
	}
}

func TestLogin_IdenticalFailures(t *testing.T) {
	req := require.New(t)
	r, _ := newTestRouter(t, newFakeUsers())
	postJSON(r, "/api/auth/signup", `{"fullName":"Ada Lovelace","email":"ada@x.com","password":"secret12"}`)

	unknown := postJSON(r, "/api/auth/login", `{"email":"ghost@x.com","password":"secret12"}`)
	wrong := postJSON(r, "/api/auth/login", `{"email":"ada@x.com","password":"wrong-pass"}`)

	req.Equal(http.StatusBadRequest, unknown.Code)
	req.Equal(unknown.Code, wrong.Code)
	req.JSONEq(unknown.Body.String(), wrong.Body.String())

	ok := postJSON(r, "/api/auth/login", `{"email":"ADA@x.com","password":"secret12"}`)
	req.Equal(http.StatusOK, ok.Code)
	req.NotEmpty(sessionCookie(t, ok).Value)
}

func TestLogout_IsIdempotentAndExpiresCookie(t *testing.T) {
	req := require.New(t)
	r, _ := newTestRouter(t, newFakeUsers())

	for i := 0; i < 2; i++ {
		w := postJSON(r, "/api/auth/logout", "")
		req.Equal(http.StatusOK, w.Code)
		ck := sessionCookie(t, w)
		req.Empty(ck.Value)
		req.Less(ck.MaxAge, 0)
	}
}

func TestAuthMiddleware_States(t *testing.T) {
	users := newFakeUsers()
	r, issuer := newTestRouter(t, users)

	w := postJSON(r, "/api/auth/signup", `{"fullName":"Ada Lovelace","email":"ada@x.com","password":"secret12"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	valid := sessionCookie(t, w).Value

	past, err := usecase.NewTokenIssuer(testSecret, 7*24*time.Hour)
	require.NoError(t, err)
	expired, _, err := past.WithClock(func() time.Time { return time.Now().Add(-8 * 24 * time.Hour) }).Issue("someone")
	require.NoError(t, err)
	orphan, _, err := issuer.Issue("deleted-user")
	require.NoError(t, err)

	tests := []struct {
		name    string
		cookie  string
		status  int
		message string
	}{
		{"no cookie", "", http.StatusUnauthorized, "Unauthorized - No Token Provided"},
		{"garbage", "not-a-token", http.StatusUnauthorized, "Unauthorized - Invalid Token"},
		{"expired", expired, http.StatusUnauthorized, "Unauthorized - Invalid Token"},
		{"user gone", orphan, http.StatusUnauthorized, "Unauthorized - User not found"},
		{"valid", valid, http.StatusOK, "User is authenticated"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			hr := httptest.NewRequest(http.MethodGet, "/api/auth/check-auth", nil)
			if tt.cookie != "" {
				hr.AddCookie(&http.Cookie{Name: SessionCookie, Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, hr)
			req.Equal(tt.status, w.Code)
			req.Equal(tt.message, decode(t, w.Body.Bytes()).Message)
		})
	}
}

func TestAuthMiddleware_StoreFailureIsInternal(t *testing.T) {
	req := require.New(t)
	users := newFakeUsers()
	r, issuer := newTestRouter(t, users)
	token, _, err := issuer.Issue("user-1")
	req.NoError(err)

	users.err = errors.New("connection refused")
	hr := httptest.NewRequest(http.MethodGet, "/api/auth/check-auth", nil)
	hr.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, hr)

	req.Equal(http.StatusInternalServerError, w.Code)
	env := decode(t, w.Body.Bytes())
	req.Equal("Internal server error", env.Message)
	req.NotContains(w.Body.String(), "connection refused")
}

func TestAuthMiddleware_UsesRepositoryLookup(t *testing.T) {
	req := require.New(t)
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	issuer, err := usecase.NewTokenIssuer(testSecret, time.Hour)
	req.NoError(err)
	uc := usecase.NewAuthUsecase(repo, issuer)

	token, _, err := issuer.Issue("user-42")
	req.NoError(err)
	repo.EXPECT().FindByID(gomock.Any(), "user-42").
		Return(&authdomain.User{ID: "user-42", FullName: "Grace", Password: "hash"}, nil).Times(1)

	var seen *authdomain.User
	r := gin.New()
	r.GET("/private", AuthMiddleware(uc, false), func(c *gin.Context) {
		seen, _ = CurrentUser(c)
		c.Status(http.StatusNoContent)
	})

	hr := httptest.NewRequest(http.MethodGet, "/private", nil)
	hr.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, hr)

	req.Equal(http.StatusNoContent, w.Code)
	req.NotNil(seen)
	req.Equal("user-42", seen.ID)
	req.Empty(seen.Password)
}

// Logging out drops the browser's copy of the cookie, so the next
// check-auth carries no token.
func TestSessionFlow_LogoutThenCheckAuth(t *testing.T) {
	req := require.New(t)
	r, _ := newTestRouter(t, newFakeUsers())
	srv := httptest.NewServer(r)
	defer srv.Close()

	jar, err := cookiejar.New(nil)
	req.NoError(err)
	client := &http.Client{Jar: jar}

	post := func(path, body string) *http.Response {
		resp, err := client.Post(srv.URL+path, "application/json", bytes.NewBufferString(body))
		req.NoError(err)
		return resp
	}
	get := func(path string) *http.Response {
		resp, err := client.Get(srv.URL + path)
		req.NoError(err)
		return resp
	}

	resp := post("/api/auth/signup", `{"fullName":"Ada Lovelace","email":"ada@x.com","password":"secret12"}`)
	resp.Body.Close()
	req.Equal(http.StatusCreated, resp.StatusCode)

	resp = get("/api/auth/check-auth")
	resp.Body.Close()
	req.Equal(http.StatusOK, resp.StatusCode)

	resp = post("/api/auth/logout", "")
	resp.Body.Close()
	req.Equal(http.StatusOK, resp.StatusCode)

	resp = get("/api/auth/check-auth")
	defer resp.Body.Close()
	req.Equal(http.StatusUnauthorized, resp.StatusCode)
	var env envelope
	req.NoError(json.NewDecoder(resp.Body).Decode(&env))
	req.Equal("Unauthorized - No Token Provided", env.Message)
}

func TestAuthMiddleware_DeletedUserRejected(t *testing.T) {
	req := require.New(t)
	users := newFakeUsers()
	r, _ := newTestRouter(t, users)

	w := postJSON(r, "/api/auth/signup", `{"fullName":"Ada Lovelace","email":"ada@x.com","password":"secret12"}`)
	req.Equal(http.StatusCreated, w.Code)
	var user authdomain.PublicUser
	req.NoError(json.Unmarshal(decode(t, w.Body.Bytes()).Data, &user))
	users.delete(user.ID)

	hr := httptest.NewRequest(http.MethodGet, "/api/auth/check-auth", nil)
	hr.AddCookie(sessionCookie(t, w))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, hr)
	req.Equal(http.StatusUnauthorized, rec.Code)
}
