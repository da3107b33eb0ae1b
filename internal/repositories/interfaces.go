package repositories

import (
	"finease-server/internal/models"

	"github.com/google/uuid"
)

// TransactionRepositoryInterface is the storage collaborator boundary: the
// reporting engine never fetches data itself, it consumes whatever batch a
// caller obtained through this interface. A fetch error and an empty result
// are distinct outcomes and must stay distinct all the way to the client.
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetByOwnerEmail(ownerEmail string) ([]models.Transaction, error)
	GetByOwnerAndCategory(ownerEmail, category string) ([]models.Transaction, error)
	Delete(id uuid.UUID) error
	CountByOwner(ownerEmail string) (int64, error)
}
