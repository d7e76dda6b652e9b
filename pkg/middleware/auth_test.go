package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gym-booking/internal/data/entity"
	"gym-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeSessionRepo struct {
	sessions map[string]*entity.Session
	lookups  int
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error { return nil }

func (f *fakeSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	f.lookups++
	return f.sessions[token], nil
}

func (f *fakeSessionRepo) Revoke(ctx context.Context, token string) error { return nil }

func (f *fakeSessionRepo) RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) error {
	return nil
}

func (f *fakeSessionRepo) CleanExpiredSessions(ctx context.Context) error { return nil }

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthSessionMalformedToken(t *testing.T) {
	sessions := &fakeSessionRepo{sessions: map[string]*entity.Session{}}
	users := &fakeUserRepo{users: map[uuid.UUID]*entity.User{}}
	handler := AuthSession(sessions, users, zap.NewNop())(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, sessions.lookups, "malformed token must not reach the session store")
}

func TestAuthSessionUnknownToken(t *testing.T) {
	sessions := &fakeSessionRepo{sessions: map[string]*entity.Session{}}
	users := &fakeUserRepo{users: map[uuid.UUID]*entity.User{}}
	handler := AuthSession(sessions, users, zap.NewNop())(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	req.Header.Set("Authorization", "Bearer "+uuid.NewString())
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 1, sessions.lookups)
}

func TestAuthSessionValidToken(t *testing.T) {
	userID := uuid.New()
	token := uuid.New()
	sessions := &fakeSessionRepo{sessions: map[string]*entity.Session{
		token.String(): {
			UserID:    userID,
			Token:     token,
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}}
	users := &fakeUserRepo{users: map[uuid.UUID]*entity.User{
		userID: {Role: entity.RoleRegistered, IsActive: true},
	}}

	var gotRole string
	handler := AuthSession(sessions, users, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRole, _ = utils.GetRoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token.String())
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, string(entity.RoleRegistered), gotRole)
}

func TestAdmin(t *testing.T) {
	tests := []struct {
		name string
		role entity.UserRole
		want int
	}{
		{"admin allowed", entity.RoleAdmin, http.StatusOK},
		{"registered forbidden", entity.RoleRegistered, http.StatusForbidden},
		{"guest forbidden", entity.RoleGuest, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := Admin(zap.NewNop())(okHandler())

			req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
			ctx := utils.SetUserContext(req.Context(), uuid.New(), string(tt.role))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req.WithContext(ctx))

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestAdminWithoutSession(t *testing.T) {
	handler := Admin(zap.NewNop())(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
