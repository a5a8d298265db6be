package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// Each versioning-engine operation runs inside exactly one Execute call:
// load, authorize, snapshot, mutate and persist either all succeed or all
// roll back.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise, it's committed.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repository instances bound to one specific
// transaction, so every repository operation inside an Execute callback uses
// the same database connection.
type RepositoryFactory interface {
	// RecipeRepo returns a RecipeRepository bound to the current transaction.
	RecipeRepo() RecipeRepository

	// IngredientRepo returns an IngredientRepository bound to the current transaction.
	IngredientRepo() IngredientRepository

	// ProductRepo returns a ProductRepository bound to the current transaction.
	ProductRepo() ProductRepository

	// SupplierRepo returns a SupplierRepository bound to the current transaction.
	SupplierRepo() SupplierRepository

	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository
}
