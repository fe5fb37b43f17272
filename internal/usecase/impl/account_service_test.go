package impl

import (
	"context"
	"testing"
	"time"

	deliverycontext "schoolhub/internal/delivery/context"
	"schoolhub/internal/domain/entity"
	"schoolhub/internal/domain/service"
	"schoolhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func eventOfType(eventType string) any {
	return mock.MatchedBy(func(e *service.AccountEvent) bool {
		return e.Type == eventType
	})
}

func TestAccountService_CreateAccount_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")

	input := &usecase.CreateAccountInput{
		FirstName:   "Thandi",
		LastName:    "Nkosi",
		IDNumber:    "0501015800087",
		DateOfBirth: "2005-01-01",
		Gender:      "Male",
		Email:       "a@x.com",
		PhoneNumber: "0820000000",
		Address:     "12 School Road",
		Role:        entity.RoleStudent,
		Password:    "secret",
	}
	userID := uuid.New()

	fx.hasher.EXPECT().Hash("secret").Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "hashed_password", user.PasswordHash)
			assert.Equal(t, "a@x.com", user.Email)
			assert.Equal(t, "2005-01-01", user.DateOfBirth)
			user.ID = userID
		}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishAccountEvent(mock.Anything, mock.MatchedBy(func(e *service.AccountEvent) bool {
			return e.Type == service.AccountEventCreated &&
				e.UserID == userID.String() &&
				e.RequestID == "req-1" &&
				e.Role == "student" &&
				e.EventID != ""
		})).
		Return(nil)

	user, err := fx.service.CreateAccount(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "Thandi", user.FirstName)
	assert.NotEqual(t, "secret", user.PasswordHash)
}

func TestAccountService_CreateAccount_UnknownRoleStillStored(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret").Return("hashed_password", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.publisher.EXPECT().PublishAccountEvent(mock.Anything, eventOfType(service.AccountEventCreated)).Return(nil)

	user, err := fx.service.CreateAccount(ctx, &usecase.CreateAccountInput{
		Email:    "janitor@x.com",
		Password: "secret",
		Role:     entity.Role("janitor"),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.Role("janitor"), user.Role)
}

func TestAccountService_CreateAccount_PublishOutlivesRequest(t *testing.T) {
	fx := createTestAccountService(t)
	reqCtx, cancel := context.WithCancel(deliverycontext.WithRequestID(context.Background(), "req-9"))

	fx.hasher.EXPECT().Hash("secret").Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(reqCtx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(context.Context, *entity.User) error {
			// The client goes away right after the row is written.
			cancel()
			return nil
		})
	fx.publisher.EXPECT().
		PublishAccountEvent(mock.Anything, eventOfType(service.AccountEventCreated)).
		RunAndReturn(func(publishCtx context.Context, event *service.AccountEvent) error {
			assert.NoError(t, publishCtx.Err())
			deadline, ok := publishCtx.Deadline()
			assert.True(t, ok)
			assert.LessOrEqual(t, time.Until(deadline), publishTimeout)
			assert.Equal(t, "req-9", deliverycontext.GetRequestIDFromContext(publishCtx))
			assert.Equal(t, "req-9", event.RequestID)

			return nil
		})

	_, err := fx.service.CreateAccount(reqCtx, &usecase.CreateAccountInput{Email: "a@x.com", Password: "secret"})

	require.NoError(t, err)
	assert.Error(t, reqCtx.Err())
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Email: "a@x.com", PasswordHash: "hashed_password"}
	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(user, nil)
	fx.hasher.EXPECT().Check("secret", "hashed_password").Return(true)
	fx.tokenService.EXPECT().IssueToken(user.ID).Return("signed.jwt.token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", output.Token)
	assert.Equal(t, user, output.User)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
}

func TestAccountService_UpdateProfile_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	userID := uuid.New()

	firstName := "Lerato"
	fx.decoder.EXPECT().Decode("8506150012089").Return(entity.IdentityInfo{
		DateOfBirth: "2085-06-15",
		Gender:      entity.GenderFemale,
	})

	txRepo := fx.expectTx(ctx)
	txRepo.EXPECT().
		UpdateProfile(ctx, userID, &entity.ProfileChanges{
			FirstName:   &firstName,
			IDNumber:    "8506150012089",
			DateOfBirth: "2085-06-15",
			Gender:      entity.GenderFemale,
		}).
		Return(nil)
	updated := &entity.User{ID: userID, FirstName: "Lerato", DateOfBirth: "2085-06-15", Gender: entity.GenderFemale}
	txRepo.EXPECT().FindByID(ctx, userID).Return(updated, nil)
	fx.publisher.EXPECT().PublishAccountEvent(mock.Anything, eventOfType(service.AccountEventUpdated)).Return(nil)

	user, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{
		FirstName: &firstName,
		IDNumber:  "8506150012089",
	})

	require.NoError(t, err)
	assert.Equal(t, updated, user)
}

func TestAccountService_UploadPhoto_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	userID := uuid.New()
	photo := []byte("\x89PNG\r\n")

	txRepo := fx.expectTx(ctx)
	txRepo.EXPECT().UpdatePhoto(ctx, userID, photo).Return(nil)
	txRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, ProfilePhoto: photo}, nil)
	fx.publisher.EXPECT().PublishAccountEvent(mock.Anything, eventOfType(service.AccountEventPhotoUpdated)).Return(nil)

	user, err := fx.service.UploadPhoto(ctx, userID, &usecase.UploadPhotoInput{Image: "iVBORw0K"})

	require.NoError(t, err)
	assert.Equal(t, photo, user.ProfilePhoto)
}

func TestAccountService_GetProfile(t *testing.T) {
	userID := uuid.New()

	t.Run("with photo", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		user := &entity.User{ID: userID, ProfilePhoto: []byte("\x89PNG\r\n")}
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

		output, err := fx.service.GetProfile(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, "iVBORw0K", output.Photo)
		assert.Equal(t, user, output.User)
	})

	t.Run("without photo", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)

		output, err := fx.service.GetProfile(ctx, userID)

		require.NoError(t, err)
		assert.Empty(t, output.Photo)
		assert.NotNil(t, output.User)
	})
}

func TestDecodeImage(t *testing.T) {
	want := []byte("\x89PNG\r\n")

	tests := []struct {
		name  string
		image string
	}{
		{name: "standard", image: "iVBORw0K"},
		{name: "data url", image: "data:image/png;base64,iVBORw0K"},
		{name: "with whitespace", image: "iVBO\nRw0K "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeImage(tt.image)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	unpadded, err := decodeImage("aGk")
	require.NoError(t, err)
	assert.Equal(t, []byte("hi"), unpadded)

	urlSafe, err := decodeImage("-_8")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xfb, 0xff}, urlSafe)

	_, err = decodeImage("")
	assert.Error(t, err)

	_, err = decodeImage("!!!not base64!!!")
	assert.Error(t, err)
}
