package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"votegate/internal/domain/repository"
	mockRepo "votegate/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2025, 10, 12, 9, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// expectTx expects one transaction whose callback runs against a fresh mock factory.
// The callback error is returned from Execute, like a real rollback.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			setup(mockFactory)

			return fn(mockFactory)
		}).
		Once()
}
