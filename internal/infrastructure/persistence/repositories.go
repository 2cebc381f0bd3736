package persistence

import (
	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/backoffice/backend/internal/domain/finance"
	"github.com/backoffice/backend/internal/domain/identity"
	"github.com/backoffice/backend/internal/domain/partner"
	"github.com/backoffice/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// Named constructors for the owner-scoped entity repositories.

// NewPermissionRepository creates the permission repository
func NewPermissionRepository(db *gorm.DB) *GormRepository[identity.Permission] {
	return NewGormRepository[identity.Permission](db)
}

// NewStoreRepository creates the store repository
func NewStoreRepository(db *gorm.DB) *GormRepository[partner.Store] {
	return NewGormRepository[partner.Store](db)
}

// NewSupplierRepository creates the supplier repository
func NewSupplierRepository(db *gorm.DB) *GormRepository[partner.Supplier] {
	return NewGormRepository[partner.Supplier](db)
}

// NewCustomerTypeRepository creates the customer type repository
func NewCustomerTypeRepository(db *gorm.DB) *GormRepository[partner.CustomerType] {
	return NewGormRepository[partner.CustomerType](db)
}

// NewCustomerRepository creates the customer repository
func NewCustomerRepository(db *gorm.DB) *GormRepository[partner.Customer] {
	return NewGormRepository[partner.Customer](db)
}

// NewItemCategoryRepository creates the item category repository
func NewItemCategoryRepository(db *gorm.DB) *GormRepository[catalog.ItemCategory] {
	return NewGormRepository[catalog.ItemCategory](db)
}

// NewItemUnitRepository creates the item unit repository
func NewItemUnitRepository(db *gorm.DB) *GormRepository[catalog.ItemUnit] {
	return NewGormRepository[catalog.ItemUnit](db)
}

// NewPurchaseRepository creates the purchase repository
func NewPurchaseRepository(db *gorm.DB) *GormRepository[trade.Purchase] {
	return NewGormRepository[trade.Purchase](db)
}

// NewPurchaseItemRepository creates the purchase line repository
func NewPurchaseItemRepository(db *gorm.DB) *GormRepository[trade.PurchaseItem] {
	return NewGormRepository[trade.PurchaseItem](db)
}

// NewSaleRepository creates the sale repository
func NewSaleRepository(db *gorm.DB) *GormRepository[trade.Sale] {
	return NewGormRepository[trade.Sale](db)
}

// NewSaleItemRepository creates the sale line repository
func NewSaleItemRepository(db *gorm.DB) *GormRepository[trade.SaleItem] {
	return NewGormRepository[trade.SaleItem](db)
}

// NewAccountRepository creates the account repository
func NewAccountRepository(db *gorm.DB) *GormRepository[finance.Account] {
	return NewGormRepository[finance.Account](db)
}

// NewAccountTransactionRepository creates the account transaction repository
func NewAccountTransactionRepository(db *gorm.DB) *GormRepository[finance.AccountTransaction] {
	return NewGormRepository[finance.AccountTransaction](db)
}

// NewPaymentRepository creates the payment repository
func NewPaymentRepository(db *gorm.DB) *GormRepository[finance.Payment] {
	return NewGormRepository[finance.Payment](db)
}
