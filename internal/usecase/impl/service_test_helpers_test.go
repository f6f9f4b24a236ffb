package impl

import (
	"context"
	"io"
	"log/slog"

	"sagedo/internal/domain/repository"
	mockRepo "sagedo/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

// newDiscardLogger creates a logger that discards all output for testing
func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTransaction wires the transaction manager mock so the Execute
// callback runs against the given factory, as if a transaction were open.
func expectTransaction(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
