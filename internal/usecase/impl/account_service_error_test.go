package impl

import (
	"context"
	"testing"

	"schoolhub/internal/domain/entity"
	domainerrors "schoolhub/internal/domain/errors"
	"schoolhub/internal/domain/repository"
	"schoolhub/internal/domain/service"
	"schoolhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func requireAppError(t *testing.T, err error, want *domainerrors.BaseError) {
	t.Helper()

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, want.HTTPCode(), appErr.HTTPCode())
	assert.Equal(t, want.ErrorCode(), appErr.ErrorCode())
	assert.Equal(t, want.Message(), appErr.Message())
}

func TestAccountService_CreateAccount_Errors(t *testing.T) {
	t.Run("missing password collapses to not found", func(t *testing.T) {
		fx := createTestAccountService(t)

		_, err := fx.service.CreateAccount(context.Background(), &usecase.CreateAccountInput{Email: "a@x.com"})
		requireAppError(t, err, domainerrors.ErrAccountCreationFailed)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("missing email collapses to not found", func(t *testing.T) {
		fx := createTestAccountService(t)

		_, err := fx.service.CreateAccount(context.Background(), &usecase.CreateAccountInput{Email: "  ", Password: "secret"})
		requireAppError(t, err, domainerrors.ErrAccountCreationFailed)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("duplicate email collapses to not found", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		fx.hasher.EXPECT().Hash("secret").Return("hashed_password", nil)
		fx.userRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			Return(domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists"))

		user, err := fx.service.CreateAccount(ctx, &usecase.CreateAccountInput{Email: "a@x.com", Password: "secret"})

		assert.Nil(t, user)
		requireAppError(t, err, domainerrors.ErrAccountCreationFailed)
		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists, "the cause stays in the chain")
	})

	t.Run("hash failure collapses to not found", func(t *testing.T) {
		fx := createTestAccountService(t)

		fx.hasher.EXPECT().Hash("secret").Return("", errors.New("bcrypt failure"))

		_, err := fx.service.CreateAccount(context.Background(), &usecase.CreateAccountInput{Email: "a@x.com", Password: "secret"})

		requireAppError(t, err, domainerrors.ErrAccountCreationFailed)
		assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	})

	t.Run("database failure collapses to not found", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "failed to create user")
		fx.hasher.EXPECT().Hash("secret").Return("hashed_password", nil)
		fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(dbErr)

		_, err := fx.service.CreateAccount(ctx, &usecase.CreateAccountInput{Email: "a@x.com", Password: "secret"})

		requireAppError(t, err, domainerrors.ErrAccountCreationFailed)
	})
}

func TestAccountService_CreateAccount_PublishFailureIgnored(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret").Return("hashed_password", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.publisher.EXPECT().
		PublishAccountEvent(mock.Anything, eventOfType(service.AccountEventCreated)).
		Return(errors.New("broker unavailable"))

	user, err := fx.service.CreateAccount(ctx, &usecase.CreateAccountInput{Email: "a@x.com", Password: "secret"})

	require.NoError(t, err)
	assert.NotNil(t, user)
}

func TestAccountService_Login_Errors(t *testing.T) {
	t.Run("missing email", func(t *testing.T) {
		fx := createTestAccountService(t)

		_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Password: "secret"})
		requireAppError(t, err, domainerrors.ErrMissingCredentials)
	})

	t.Run("missing password", func(t *testing.T) {
		fx := createTestAccountService(t)

		_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "a@x.com"})
		requireAppError(t, err, domainerrors.ErrMissingCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "nobody@x.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@x.com", Password: "secret"})
		requireAppError(t, err, domainerrors.ErrUserNotExist)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(&entity.User{ID: uuid.New(), PasswordHash: "hashed_password"}, nil)
		fx.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "wrong"})
		requireAppError(t, err, domainerrors.ErrInvalidPassword)
	})

	t.Run("lookup failure", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, errors.New("connection reset"))

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "secret"})
		requireAppError(t, err, domainerrors.ErrLoginFailed)
	})

	t.Run("token failure", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		user := &entity.User{ID: uuid.New(), PasswordHash: "hashed_password"}
		fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(user, nil)
		fx.hasher.EXPECT().Check("secret", "hashed_password").Return(true)
		fx.tokenService.EXPECT().IssueToken(user.ID).Return("", errors.New("signing failed"))

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "secret"})
		requireAppError(t, err, domainerrors.ErrLoginFailed)
	})
}

func TestAccountService_UpdateProfile_Errors(t *testing.T) {
	userID := uuid.New()

	t.Run("missing id number", func(t *testing.T) {
		fx := createTestAccountService(t)

		_, err := fx.service.UpdateProfile(context.Background(), userID, &usecase.UpdateProfileInput{})
		requireAppError(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("unknown user", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		fx.decoder.EXPECT().Decode("8506155012089").Return(entity.IdentityInfo{DateOfBirth: "2085-06-15", Gender: entity.GenderMale})
		txRepo := fx.expectTx(ctx)
		txRepo.EXPECT().UpdateProfile(ctx, userID, mock.AnythingOfType("*entity.ProfileChanges")).Return(repository.ErrUserNotFound)

		_, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{IDNumber: "8506155012089"})

		requireAppError(t, err, domainerrors.ErrUpdateFailed)
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})

	t.Run("reload failure", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		fx.decoder.EXPECT().Decode("8506155012089").Return(entity.IdentityInfo{DateOfBirth: "2085-06-15", Gender: entity.GenderMale})
		txRepo := fx.expectTx(ctx)
		txRepo.EXPECT().UpdateProfile(ctx, userID, mock.AnythingOfType("*entity.ProfileChanges")).Return(nil)
		txRepo.EXPECT().FindByID(ctx, userID).Return(nil, errors.New("connection reset"))

		_, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{IDNumber: "8506155012089"})

		requireAppError(t, err, domainerrors.ErrUpdateFailed)
	})
}

func TestAccountService_UploadPhoto_Errors(t *testing.T) {
	userID := uuid.New()

	t.Run("invalid base64 is a photo update failure", func(t *testing.T) {
		fx := createTestAccountService(t)

		_, err := fx.service.UploadPhoto(context.Background(), userID, &usecase.UploadPhotoInput{Image: "%%%"})
		requireAppError(t, err, domainerrors.ErrPhotoUpdateFailed)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidImage)
	})

	t.Run("unknown user", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		txRepo := fx.expectTx(ctx)
		txRepo.EXPECT().UpdatePhoto(ctx, userID, []byte("hi")).Return(repository.ErrUserNotFound)

		_, err := fx.service.UploadPhoto(ctx, userID, &usecase.UploadPhotoInput{Image: "aGk="})
		requireAppError(t, err, domainerrors.ErrPhotoUpdateFailed)
	})
}

func TestAccountService_GetProfile_Errors(t *testing.T) {
	userID := uuid.New()

	t.Run("missing record yields empty profile", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

		output, err := fx.service.GetProfile(ctx, userID)

		require.NoError(t, err)
		assert.Nil(t, output.User)
		assert.Empty(t, output.Photo)
	})

	t.Run("lookup failure", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, errors.New("connection reset"))

		_, err := fx.service.GetProfile(ctx, userID)
		requireAppError(t, err, domainerrors.ErrUserRetrievalFailed)
	})
}
