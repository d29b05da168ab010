// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"laborders/internal/core/domain/model/kernel"
	"laborders/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational tables with indexing for the
// state filter used by listings.
type OrderDTO struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Lab       string       `gorm:"not null"`
	Patient   string       `gorm:"not null"`
	Customer  string       `gorm:"not null"`
	State     string       `gorm:"index;not null"`
	Status    string       `gorm:"index;not null"`
	Services  []ServiceDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ServiceDTO represents one service line of an order.
// Position preserves the request order of the services across reloads.
type ServiceDTO struct {
	ID       uint      `gorm:"primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Position int       `gorm:"not null"`
	Name     string    `gorm:"not null"`
	Value    float64   `gorm:"not null"`
	Status   string    `gorm:"not null"`
}

// TableName specifies the database table name for order service lines.
func (ServiceDTO) TableName() string {
	return "order_services"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().UUID()
	domainServices := aggregate.Services()

	services := make([]ServiceDTO, 0, len(domainServices))
	for i, s := range domainServices {
		services = append(services, ServiceDTO{
			OrderID:  orderID,
			Position: i,
			Name:     s.Name(),
			Value:    s.Value(),
			Status:   s.Status().String(),
		})
	}

	return OrderDTO{
		ID:       orderID,
		Lab:      aggregate.Lab(),
		Patient:  aggregate.Patient(),
		Customer: aggregate.Customer(),
		State:    aggregate.State().String(),
		Status:   aggregate.Status().String(),
		Services: services,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including state and status using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	state, err := order.StateFromString(dto.State)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	services := make([]order.Service, 0, len(dto.Services))
	for _, s := range dto.Services {
		serviceStatus, statusErr := order.ServiceStatusFromString(s.Status)
		if statusErr != nil {
			return nil, statusErr
		}

		service, serviceErr := order.NewService(s.Name, s.Value, serviceStatus)
		if serviceErr != nil {
			return nil, serviceErr
		}
		services = append(services, service)
	}

	return order.RestoreOrder(id, dto.Lab, dto.Patient, dto.Customer, state, status, services)
}
