// Package repository provides explicit per-entity data access over GORM.
// Every query is tenant-scoped by a mandatory tenant_id column; cascade
// behavior on tenant deletion is spelled out in TenantRepo.DeleteCascade
// rather than left to implicit ORM associations.
package repository

import "gorm.io/gorm"

type Repositories struct {
	Tenants   TenantRepo
	Users     UserRepo
	Customers CustomerRepo
	Orders    OrderRepo
	Products  ProductRepo
	Dashboard DashboardRepo
}

func New(db *gorm.DB) *Repositories {
	return &Repositories{
		Tenants:   NewTenantRepo(db),
		Users:     NewUserRepo(db),
		Customers: NewCustomerRepo(db),
		Orders:    NewOrderRepo(db),
		Products:  NewProductRepo(db),
		Dashboard: NewDashboardRepo(db),
	}
}
