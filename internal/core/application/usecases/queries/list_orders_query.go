// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"laborders/internal/core/domain/model/kernel"
	"laborders/internal/core/domain/model/order"
	"laborders/internal/pkg/errs"
	"laborders/internal/pkg/guard"
)

// Defaults applied when the caller omits pagination parameters.
const (
	DefaultPage       = 1
	DefaultRowPerPage = 10
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves a page of lab orders, optionally narrowed to a
// single lifecycle state. Pagination is 1-based; the total count reflects
// the filtered set, not just the returned page.
//
// Example:
//
//	query, _ := NewListOrdersQuery(2, 10, "CREATED")
//	handler := NewListOrdersQueryHandler(db)
//
//	result, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//
//	fmt.Printf("Page holds %d of %d orders\n", len(result.Orders), result.Total)
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	page       int
	rowPerPage int
	state      order.State
	hasState   bool

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for one page of orders.
// Zero page and rowPerPage fall back to DefaultPage and DefaultRowPerPage;
// negative values are rejected. An empty state means no state filter.
func NewListOrdersQuery(page, rowPerPage int, state string) (ListOrdersQuery, error) {
	query := ListOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setPage(page),
		query.setRowPerPage(rowPerPage),
		query.setState(state),
	); err != nil {
		return ListOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Page returns the 1-based page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// RowPerPage returns the page size.
func (q ListOrdersQuery) RowPerPage() int {
	return q.rowPerPage
}

// State returns the state filter and whether one was set.
func (q ListOrdersQuery) State() (order.State, bool) {
	return q.state, q.hasState
}

func (q *ListOrdersQuery) setPage(page int) error {
	if page < 0 {
		return errs.NewValueIsInvalidError("page")
	}
	if page == 0 {
		page = DefaultPage
	}

	q.page = page
	return nil
}

func (q *ListOrdersQuery) setRowPerPage(rowPerPage int) error {
	if rowPerPage < 0 {
		return errs.NewValueIsInvalidError("rowPerPage")
	}
	if rowPerPage == 0 {
		rowPerPage = DefaultRowPerPage
	}

	q.rowPerPage = rowPerPage
	return nil
}

func (q *ListOrdersQuery) setState(state string) error {
	if state == "" {
		return nil
	}

	parsed, err := order.StateFromString(state)
	if err != nil {
		return err
	}

	q.state = parsed
	q.hasState = true
	return nil
}

// ListOrdersQueryResponse is the paginated read model returned to clients.
// Page and RowPerPage echo the resolved window, defaults included.
type ListOrdersQueryResponse struct {
	Total      int
	Page       int
	RowPerPage int
	Orders     []OrderResponse
}

// OrderResponse represents one order in the listing read model.
type OrderResponse struct {
	ID       kernel.UUID
	Lab      string
	Patient  string
	Customer string
	State    string
	Status   string
	Services []ServiceResponse
}

// ServiceResponse represents one service line of an order in the read model.
type ServiceResponse struct {
	Name   string
	Value  float64
	Status string
}
