// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"encoding/base64"
	"log/slog"
	"strings"
	"time"

	deliverycontext "schoolhub/internal/delivery/context"
	"schoolhub/internal/domain/entity"
	domainerrors "schoolhub/internal/domain/errors"
	"schoolhub/internal/domain/repository"
	"schoolhub/internal/domain/service"
	"schoolhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// publishTimeout bounds event publishing, which outlives the request that triggered it.
const publishTimeout = 5 * time.Second

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	decoder      service.IdentityDecoder
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Decoder      service.IdentityDecoder
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		decoder:      params.Decoder,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateAccount hashes the password and stores a new user.
// Every failure, a missing email or password included, is reported as
// ErrAccountCreationFailed; the cause, e.g. a duplicate email, stays in the error chain.
func (srv *accountService) CreateAccount(ctx context.Context, input *usecase.CreateAccountInput) (*entity.User, error) {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, srv.creationFailed(ctx, domainerrors.ErrValidationFailed.WrapMessage("email and password are required"))
	}

	srv.log(ctx).Info("Creating account", slog.String("email", input.Email), slog.String("role", input.Role.String()))
	if !input.Role.IsKnown() {
		srv.log(ctx).Warn("Creating account with unrecognised role", slog.String("role", input.Role.String()))
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, srv.creationFailed(ctx, domainerrors.ErrPasswordHashFailed.Because(err))
	}

	user := &entity.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		IDNumber:     input.IDNumber,
		DateOfBirth:  input.DateOfBirth,
		Gender:       input.Gender,
		Email:        input.Email,
		PhoneNumber:  input.PhoneNumber,
		Address:      input.Address,
		Role:         input.Role,
		PasswordHash: hash,
		ProfilePhoto: input.ProfilePhoto,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, srv.creationFailed(ctx, err)
	}

	srv.log(ctx).Debug("Account created", slog.Any("userID", user.ID))
	srv.publish(ctx, service.AccountEventCreated, user)

	return user, nil
}

func (srv *accountService) creationFailed(ctx context.Context, cause error) error {
	srv.log(ctx).Warn("Account creation failed", slog.Any("error", cause))

	return domainerrors.ErrAccountCreationFailed.Because(cause)
}

// Login verifies the credentials and issues a bearer token.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingCredentials.WrapMessage("login rejected")
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotExist.WrapMessage("login rejected")
	}
	if err != nil {
		srv.log(ctx).Error("Failed to look up user for login", slog.Any("error", err))

		return nil, domainerrors.ErrLoginFailed.Because(err)
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidPassword.WrapMessage("login rejected")
	}

	token, err := srv.tokenService.IssueToken(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, domainerrors.ErrLoginFailed.Because(err)
	}

	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{Token: token, User: user}, nil
}

// UpdateProfile applies a partial update. Date of birth and gender are derived from
// the identity number and overwrite whatever was stored before.
func (srv *accountService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	if input.IDNumber == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("idNumber is required")
	}

	info := srv.decoder.Decode(input.IDNumber)
	changes := &entity.ProfileChanges{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Address:     input.Address,
		Role:        input.Role,
		IDNumber:    input.IDNumber,
		DateOfBirth: info.DateOfBirth,
		Gender:      info.Gender,
	}

	updated, err := srv.updateAndReload(ctx, userID, func(repo repository.UserRepository) error {
		return repo.UpdateProfile(ctx, userID, changes)
	})
	if err != nil {
		srv.log(ctx).Warn("Profile update failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, domainerrors.ErrUpdateFailed.Because(err)
	}

	srv.publish(ctx, service.AccountEventUpdated, updated)

	return updated, nil
}

// UploadPhoto decodes the base64 image and stores it as the user's photo.
func (srv *accountService) UploadPhoto(ctx context.Context, userID uuid.UUID, input *usecase.UploadPhotoInput) (*entity.User, error) {
	photo, err := decodeImage(input.Image)
	if err != nil {
		srv.log(ctx).Warn("Photo rejected", slog.Any("userID", userID), slog.Any("error", err))

		return nil, domainerrors.ErrPhotoUpdateFailed.Because(domainerrors.ErrInvalidImage.Because(err))
	}

	updated, err := srv.updateAndReload(ctx, userID, func(repo repository.UserRepository) error {
		return repo.UpdatePhoto(ctx, userID, photo)
	})
	if err != nil {
		srv.log(ctx).Error("Photo update failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, domainerrors.ErrPhotoUpdateFailed.Because(err)
	}

	srv.log(ctx).Debug("Photo updated", slog.Any("userID", userID), slog.Int("bytes", len(photo)))
	srv.publish(ctx, service.AccountEventPhotoUpdated, updated)

	return updated, nil
}

// GetProfile returns the caller's record with the photo encoded as base64.
// A caller whose record no longer exists gets an empty profile rather than an error.
func (srv *accountService) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.ProfileOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Authenticated user has no record", slog.Any("userID", userID))

		return &usecase.ProfileOutput{}, nil
	}
	if err != nil {
		return nil, domainerrors.ErrUserRetrievalFailed.Because(err)
	}

	output := &usecase.ProfileOutput{User: user}
	if user.HasPhoto() {
		output.Photo = base64.StdEncoding.EncodeToString(user.ProfilePhoto)
	}

	return output, nil
}

// updateAndReload runs update and re-reads the user in one transaction.
func (srv *accountService) updateAndReload(
	ctx context.Context,
	userID uuid.UUID,
	update func(repo repository.UserRepository) error,
) (*entity.User, error) {
	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		if err := update(userRepo); err != nil {
			return err
		}

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return err
		}
		updated = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// publish announces an account change. Failures are logged and never fail the operation.
func (srv *accountService) publish(ctx context.Context, eventType string, user *entity.User) {
	if srv.publisher == nil || user == nil {
		return
	}

	event := &service.AccountEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Type:       eventType,
		UserID:     user.ID.String(),
		Role:       user.Role.String(),
		OccurredAt: time.Now().UTC(),
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := srv.publisher.PublishAccountEvent(publishCtx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish account event",
			slog.String("event_type", eventType),
			slog.Any("userID", user.ID),
			slog.Any("error", err),
		)
	}
}

var imageEncodings = []*base64.Encoding{
	base64.StdEncoding,
	base64.RawStdEncoding,
	base64.URLEncoding,
	base64.RawURLEncoding,
}

// decodeImage accepts padded or unpadded, standard or URL-safe base64, optionally as a data URL.
func decodeImage(image string) ([]byte, error) {
	if _, payload, ok := strings.Cut(image, ";base64,"); ok && strings.HasPrefix(image, "data:") {
		image = payload
	}
	image = strings.Join(strings.Fields(image), "")
	if image == "" {
		return nil, errors.New("image is empty")
	}

	var lastErr error
	for _, enc := range imageEncodings {
		data, err := enc.DecodeString(image)
		if err == nil {
			return data, nil
		}
		lastErr = err
	}

	return nil, errors.Wrap(lastErr, "image is not valid base64")
}
