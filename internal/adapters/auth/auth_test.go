package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"event_hotels/internal/adapters/auth"
	"event_hotels/internal/domain"
	"event_hotels/internal/domain/mocks"
)

const secret = "test-secret"

func TestAuthenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mocks.NewMockSessionReader(ctrl)
	a := auth.New(secret, sessions)
	ctx := context.Background()

	valid, err := a.Issue(42, time.Hour)
	require.NoError(t, err)
	expired, err := a.Issue(42, -time.Minute)
	require.NoError(t, err)
	foreign, err := auth.New("other-secret", sessions).Issue(42, 0)
	require.NoError(t, err)
	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, auth.Claims{UserID: 42}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	t.Run("valid token with session", func(t *testing.T) {
		sessions.EXPECT().FindSessionByToken(gomock.Any(), valid).Return(&domain.Session{ID: 1, UserID: 42, Token: valid}, nil)
		id, err := a.Authenticate(ctx, valid)
		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
	})

	t.Run("valid token without session", func(t *testing.T) {
		sessions.EXPECT().FindSessionByToken(gomock.Any(), valid).Return(nil, nil)
		_, err := a.Authenticate(ctx, valid)
		assert.ErrorIs(t, err, auth.ErrNoSession)
		assert.True(t, auth.IsUnauthorized(err))
	})

	t.Run("session of another user", func(t *testing.T) {
		sessions.EXPECT().FindSessionByToken(gomock.Any(), valid).Return(&domain.Session{UserID: 7}, nil)
		_, err := a.Authenticate(ctx, valid)
		assert.ErrorIs(t, err, auth.ErrNoSession)
	})

	t.Run("session storage failure is not an auth failure", func(t *testing.T) {
		sessions.EXPECT().FindSessionByToken(gomock.Any(), valid).Return(nil, errors.New("db down"))
		_, err := a.Authenticate(ctx, valid)
		require.Error(t, err)
		assert.False(t, auth.IsUnauthorized(err))
	})

	for name, tok := range map[string]string{
		"garbage":        "lorem",
		"expired":        expired,
		"wrong secret":   foreign,
		"none algorithm": noneAlg,
		"empty":          "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := a.Authenticate(ctx, tok)
			assert.True(t, auth.IsUnauthorized(err), "got %v", err)
		})
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def", want: "abc.def"},
		{header: "bearer abc", want: "abc"},
		{header: "Bearer ", wantErr: true},
		{header: "Bearer", wantErr: true},
		{header: "Basic dXNlcjpwYXNz", wantErr: true},
		{header: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := auth.BearerToken(tt.header)
		if tt.wantErr {
			assert.ErrorIs(t, err, auth.ErrMissingToken, tt.header)
			continue
		}
		require.NoError(t, err, tt.header)
		assert.Equal(t, tt.want, got)
	}
}

func TestUserIDContext(t *testing.T) {
	_, ok := auth.UserID(context.Background())
	assert.False(t, ok)

	id, ok := auth.UserID(auth.WithUserID(context.Background(), 9))
	assert.True(t, ok)
	assert.Equal(t, int64(9), id)
}
