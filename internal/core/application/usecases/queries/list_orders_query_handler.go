package queries

import (
	"context"
	"database/sql"

	"laborders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves order listings from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
// The state filter and pagination are applied over the full snapshot so the
// reported total always matches the filtered set.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(db)
//	query, _ := NewListOrdersQuery(1, 10, "")
//
//	result, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list orders: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d orders\n", result.Total)
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing query.
// Returns one page of order read models sorted by creation time, together
// with the total number of orders matching the state filter.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	orders, err := h.loadOrders(ctx)
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	if state, ok := query.State(); ok {
		filtered := make([]OrderResponse, 0, len(orders))
		for _, o := range orders {
			if o.State == state.String() {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}

	return ListOrdersQueryResponse{
		Total:      len(orders),
		Page:       query.Page(),
		RowPerPage: query.RowPerPage(),
		Orders:     Paginate(orders, query.Page(), query.RowPerPage()),
	}, nil
}

func (h ListOrdersQueryHandler) loadOrders(ctx context.Context) ([]OrderResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.lab,
			o.patient,
			o.customer,
			o.state,
			o.status,
			s.name,
			s.value,
			s.status
		FROM orders o
		LEFT JOIN order_services s ON s.order_id = o.id
		ORDER BY o.created_at, o.id, s.position
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	index := make(map[uuid.UUID]int)

	for rows.Next() {
		var id uuid.UUID
		var lab, patient, customer, state, status string
		var serviceName, serviceStatus sql.NullString
		var serviceValue sql.NullFloat64

		err = rows.Scan(
			&id,
			&lab,
			&patient,
			&customer,
			&state,
			&status,
			&serviceName,
			&serviceValue,
			&serviceStatus,
		)
		if err != nil {
			return nil, err
		}

		pos, seen := index[id]
		if !seen {
			orderID, idErr := kernel.UUIDFromBytes(id[:])
			if idErr != nil {
				return nil, idErr
			}

			orders = append(orders, OrderResponse{
				ID:       orderID,
				Lab:      lab,
				Patient:  patient,
				Customer: customer,
				State:    state,
				Status:   status,
				Services: make([]ServiceResponse, 0),
			})
			pos = len(orders) - 1
			index[id] = pos
		}

		if serviceName.Valid {
			orders[pos].Services = append(orders[pos].Services, ServiceResponse{
				Name:   serviceName.String,
				Value:  serviceValue.Float64,
				Status: serviceStatus.String,
			})
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
