package admin_test

import (
	"context"
	"testing"
	"time"

	appadmin "github.com/andrifals/gasstore/application/admin"
	"github.com/andrifals/gasstore/cmd/config"
	"github.com/andrifals/gasstore/constant"
	redismocks "github.com/andrifals/gasstore/mocks/repository/redis"
	"github.com/andrifals/gasstore/model"
	cerr "github.com/andrifals/gasstore/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	assert.NoError(t, err)

	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret",
			JWTExpiration:  time.Hour,
			SessionExpTime: time.Hour,
		},
		Admin: config.AdminConfig{
			Username:     "admin123",
			PasswordHash: string(hash),
		},
	}
}

func TestAdminApp_Login(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.LoginRequest
		mockCall func(r *redismocks.Repository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: configured credential pair",
			req:  &model.LoginRequest{Username: "admin123", Password: "admin123"},
			mockCall: func(r *redismocks.Repository) {
				r.On("SetSession", mock.Anything, mock.Anything, "admin123", time.Hour).Return(nil).Once()
			},
		},
		{
			name:    "error: wrong username",
			req:     &model.LoginRequest{Username: "intruder", Password: "admin123"},
			wantErr: true,
			errCode: constant.ErrInvalidCredentials,
		},
		{
			name:    "error: wrong password",
			req:     &model.LoginRequest{Username: "admin123", Password: "hunter2"},
			wantErr: true,
			errCode: constant.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			redisRepo := redismocks.NewRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(redisRepo)
			}

			app := appadmin.NewAdminApp(testConfig(t), redisRepo)
			res, err := app.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Nil(t, res)
				assert.True(t, cerr.IsType(err, tt.errCode), "unexpected error: %v", err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "admin123", res.Username)
			assert.NotEmpty(t, res.Token)
		})
	}
}

func TestAdminApp_ValidateToken(t *testing.T) {
	cfg := testConfig(t)

	login := func(t *testing.T, redisRepo *redismocks.Repository) string {
		t.Helper()
		redisRepo.On("SetSession", mock.Anything, mock.Anything, "admin123", time.Hour).Return(nil).Once()
		app := appadmin.NewAdminApp(cfg, redisRepo)
		res, err := app.Login(context.Background(), &model.LoginRequest{Username: "admin123", Password: "admin123"})
		assert.NoError(t, err)
		return res.Token
	}

	t.Run("success: live session", func(t *testing.T) {
		redisRepo := redismocks.NewRepository(t)
		token := login(t, redisRepo)
		redisRepo.On("GetSession", mock.Anything, mock.Anything).Return("admin123", nil).Once()

		app := appadmin.NewAdminApp(cfg, redisRepo)
		username, err := app.ValidateToken(context.Background(), token)
		assert.NoError(t, err)
		assert.Equal(t, "admin123", username)
	})

	t.Run("error: session missing from redis", func(t *testing.T) {
		redisRepo := redismocks.NewRepository(t)
		token := login(t, redisRepo)
		redisRepo.On("GetSession", mock.Anything, mock.Anything).Return("", nil).Once()

		app := appadmin.NewAdminApp(cfg, redisRepo)
		_, err := app.ValidateToken(context.Background(), token)
		assert.Error(t, err)
	})

	t.Run("error: garbage token", func(t *testing.T) {
		redisRepo := redismocks.NewRepository(t)
		app := appadmin.NewAdminApp(cfg, redisRepo)
		_, err := app.ValidateToken(context.Background(), "not-a-token")
		assert.Error(t, err)
	})
}

func TestAdminApp_Logout(t *testing.T) {
	cfg := testConfig(t)

	redisRepo := redismocks.NewRepository(t)
	redisRepo.On("SetSession", mock.Anything, mock.Anything, "admin123", time.Hour).Return(nil).Once()
	app := appadmin.NewAdminApp(cfg, redisRepo)
	res, err := app.Login(context.Background(), &model.LoginRequest{Username: "admin123", Password: "admin123"})
	assert.NoError(t, err)

	redisRepo.On("DeleteSession", mock.Anything, mock.Anything).Return(nil).Once()
	assert.NoError(t, app.Logout(context.Background(), res.Token))
}
