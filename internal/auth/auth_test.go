package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourname/moodjournal/internal"
	"github.com/yourname/moodjournal/internal/config"
)

func TestLocalAuthProvider(t *testing.T) {
	p := NewLocalAuthProvider("secret", "u1", internal.NewNopLogger())

	user, err := p.ValidateToken(context.Background(), "secret")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	for _, bad := range []string{"nope", "secre", "secret2", "SECRET"} {
		_, err = p.ValidateToken(context.Background(), bad)
		assert.ErrorIs(t, err, ErrInvalidToken, bad)
	}

	empty := NewLocalAuthProvider("", "u1", internal.NewNopLogger())
	_, err = empty.ValidateToken(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRemoteAuthProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		switch body["token"] {
		case "good":
			_ = json.NewEncoder(w).Encode(internal.User{ID: "remote-1", Name: "Remote"})
		case "anonymous":
			_ = json.NewEncoder(w).Encode(internal.User{})
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer srv.Close()

	p := NewRemoteAuthProvider(srv.URL, internal.NewNopLogger())

	user, err := p.ValidateToken(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, "remote-1", user.ID)

	_, err = p.ValidateToken(context.Background(), "bad")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = p.ValidateToken(context.Background(), "anonymous")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewProvider(t *testing.T) {
	logger := internal.NewNopLogger()
	assert.IsType(t, &RemoteAuthProvider{}, NewProvider(&config.Config{AuthMode: "remote", AuthServiceURL: "http://x"}, logger))
	assert.IsType(t, &LocalAuthProvider{}, NewProvider(&config.Config{AuthMode: "local"}, logger))
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware(NewLocalAuthProvider("secret", "u1", internal.NewNopLogger())))
	r.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, CurrentUser(c))
	})

	cases := []struct {
		header string
		status int
	}{
		{"Bearer secret", http.StatusOK},
		{"Bearer  secret ", http.StatusOK},
		{"Bearer other", http.StatusUnauthorized},
		{"secret", http.StatusUnauthorized},
		{"", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, tc.status, w.Code, tc.header)
		if tc.status == http.StatusOK {
			assert.Contains(t, w.Body.String(), `"id":"u1"`)
		}
	}
}
