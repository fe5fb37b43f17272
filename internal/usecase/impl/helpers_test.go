package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"schoolhub/internal/domain/repository"
	mockRepo "schoolhub/internal/mocks/repository"
	mockSvc "schoolhub/internal/mocks/service"
	"schoolhub/internal/usecase"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	t            *testing.T
	service      usecase.AccountUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	decoder      *mockSvc.MockIdentityDecoder
	publisher    *mockSvc.MockEventPublisher
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	fx := accountServiceFixtures{
		t:            t,
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
		decoder:      mockSvc.NewMockIdentityDecoder(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}

	fx.service = NewAccountService(AccountServiceParams{
		TxManager:    fx.txManager,
		UserRepo:     fx.userRepo,
		Hasher:       fx.hasher,
		TokenService: fx.tokenService,
		Decoder:      fx.decoder,
		Publisher:    fx.publisher,
		Logger:       newDiscardLogger(),
	})

	return fx
}

// expectTx runs the transaction callback against a fresh transactional user repository.
func (fx accountServiceFixtures) expectTx(ctx context.Context) *mockRepo.MockUserRepository {
	txUserRepo := mockRepo.NewMockUserRepository(fx.t)
	factory := mockRepo.NewMockRepositoryFactory(fx.t)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	return txUserRepo
}
