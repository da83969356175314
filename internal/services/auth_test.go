package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/therapease/therapy-booking/internal/models"
	"github.com/therapease/therapy-booking/internal/services"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	tests := []struct {
		name         string
		username     string
		password     string
		email        string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		wantErr      error
	}{
		{
			name:     "successful registration",
			username: "alice",
			password: "pass123",
			email:    "alice@example.com",
		},
		{
			name:         "user already exists",
			username:     "bob",
			password:     "pass123",
			email:        "bob@example.com",
			existingUser: &models.UserDB{UserID: uuid.New()},
			wantErr:      services.ErrUserAlreadyExists,
		},
		{
			name:      "reader error",
			username:  "eve",
			password:  "pass123",
			email:     "eve@example.com",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			username:  "carol",
			password:  "pass123",
			email:     "carol@example.com",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsernameOrEmail(gomock.Any(), &tt.username, &tt.email).
				Return(tt.existingUser, tt.readerErr)

			if tt.existingUser == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), tt.username, gomock.Any(), tt.email).
					Return(uuid.New(), tt.writerErr)
			}

			err := svc.Register(context.Background(), tt.username, tt.password, tt.email)

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	password := "secret-pass"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	assert.NoError(t, err)

	userID := uuid.New()
	username := "alice"

	tests := []struct {
		name      string
		password  string
		user      *models.UserDB
		readerErr error
		token     string
		tokenErr  error
		wantErr   error
	}{
		{
			name:     "successful login",
			password: password,
			user:     &models.UserDB{UserID: userID, Username: username, PasswordHash: string(hash)},
			token:    "jwt-token",
		},
		{
			name:     "unknown user",
			password: password,
			wantErr:  services.ErrUserDoesNotExist,
		},
		{
			name:     "wrong password",
			password: "wrong",
			user:     &models.UserDB{UserID: userID, Username: username, PasswordHash: string(hash)},
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			password:  password,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:     "token generation error",
			password: password,
			user:     &models.UserDB{UserID: userID, Username: username, PasswordHash: string(hash)},
			tokenErr: errors.New("sign error"),
			wantErr:  errors.New("sign error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReader := services.NewMockUserReader(ctrl)
			mockJWT := services.NewMockJWTGenerator(ctrl)
			svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), mockJWT)

			mockReader.EXPECT().
				GetByUsernameOrEmail(gomock.Any(), &username, nil).
				Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.password == password && tt.readerErr == nil {
				mockJWT.EXPECT().Generate(gomock.Any(), userID).Return(tt.token, tt.tokenErr)
			}

			token, err := svc.Login(context.Background(), username, tt.password)

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.token, token)
		})
	}
}

func TestAuthService_FindOrCreateByEmail(t *testing.T) {
	email := "buyer@example.com"
	local := "buyer"

	t.Run("existing user found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReader := services.NewMockUserReader(ctrl)
		svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), services.NewMockJWTGenerator(ctrl))

		userID := uuid.New()
		mockReader.EXPECT().
			GetByUsernameOrEmail(gomock.Any(), nil, &email).
			Return(&models.UserDB{UserID: userID}, nil)

		got, err := svc.FindOrCreateByEmail(context.Background(), email)
		assert.NoError(t, err)
		assert.Equal(t, userID, got)
	})

	t.Run("new user gets email local part as username", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockUserWriter(ctrl)
		svc := services.NewAuthService(mockReader, mockWriter, services.NewMockJWTGenerator(ctrl))

		userID := uuid.New()
		mockReader.EXPECT().GetByUsernameOrEmail(gomock.Any(), nil, &email).Return(nil, nil)
		mockReader.EXPECT().GetByUsernameOrEmail(gomock.Any(), &local, nil).Return(nil, nil)
		mockWriter.EXPECT().Save(gomock.Any(), local, gomock.Any(), email).Return(userID, nil)

		got, err := svc.FindOrCreateByEmail(context.Background(), email)
		assert.NoError(t, err)
		assert.Equal(t, userID, got)
	})

	t.Run("username collision falls back to full email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockUserWriter(ctrl)
		svc := services.NewAuthService(mockReader, mockWriter, services.NewMockJWTGenerator(ctrl))

		userID := uuid.New()
		mockReader.EXPECT().GetByUsernameOrEmail(gomock.Any(), nil, &email).Return(nil, nil)
		mockReader.EXPECT().GetByUsernameOrEmail(gomock.Any(), &local, nil).
			Return(&models.UserDB{UserID: uuid.New()}, nil)
		mockWriter.EXPECT().Save(gomock.Any(), email, gomock.Any(), email).Return(userID, nil)

		got, err := svc.FindOrCreateByEmail(context.Background(), email)
		assert.NoError(t, err)
		assert.Equal(t, userID, got)
	})
}
