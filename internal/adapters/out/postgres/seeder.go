package postgres

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/domain/model/user"

	"github.com/shopspring/decimal"
)

// SeedDemoData inserts a small demo data set: two users and two products
// with initial stock. It is idempotent: a database that already has users or
// products is left untouched.
func SeedDemoData(ctx context.Context, factory *GormUnitOfWorkFactory) error {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	existingUsers, err := userRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	productRepo := uow.ProductRepository()
	existingProducts, err := productRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	if len(existingUsers) > 0 || len(existingProducts) > 0 {
		return nil
	}

	for _, username := range []string{"alice", "bob"} {
		u, userErr := user.NewUser(kernel.NewUUID(), username)
		if userErr != nil {
			return userErr
		}
		if userErr = userRepo.Add(ctx, u); userErr != nil {
			return userErr
		}
	}

	seedProducts := []struct {
		name  string
		price decimal.Decimal
		stock int
	}{
		{"Bottles", decimal.NewFromFloat(10.99), 5},
		{"Fries", decimal.NewFromFloat(4.99), 10},
	}

	for _, sp := range seedProducts {
		p, productErr := product.NewProduct(kernel.NewUUID(), sp.name, sp.price, sp.stock)
		if productErr != nil {
			return productErr
		}
		if productErr = productRepo.Add(ctx, p); productErr != nil {
			return productErr
		}
	}

	return uow.Commit(ctx)
}
