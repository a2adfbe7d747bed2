package queries

import (
	"context"

	"github.com/soukonline/cli/internal/api"
	"github.com/soukonline/cli/internal/models"
	"github.com/soukonline/cli/internal/mutate"
	"github.com/soukonline/cli/internal/query"
)

// Orders bundles the read accessors and write mutations for customer orders,
// cached under orders/allOrders.
type Orders struct {
	client *api.Client
	cache  *query.Store
	notify mutate.Notifier
	all    *query.Collection[models.Order]
}

// NewOrders creates the order resource accessors
func NewOrders(client *api.Client, cache *query.Store, notify mutate.Notifier) *Orders {
	o := &Orders{
		client: client,
		cache:  cache,
		notify: notify,
	}
	// New orders arrive from the storefront at any time
	o.all = query.NewCollection(cache, string(models.AllOrders), query.Policy{AlwaysRefetch: true}, o.fetchAll)
	return o
}

func (o *Orders) fetchAll(ctx context.Context) ([]models.Order, error) {
	res, err := api.List[models.Order](ctx, o.client, models.AllOrders, nil)
	if err != nil {
		return nil, err
	}
	return res.Payload, nil
}

// All returns every order, cached under the collection's resource key
func (o *Orders) All(ctx context.Context) ([]models.Order, error) {
	return o.all.Get(ctx)
}

// Search performs a filtered, sorted, paginated read, uncached
func (o *Orders) Search(ctx context.Context, q *api.Query) ([]models.Order, models.Meta, error) {
	res, err := api.List[models.Order](ctx, o.client, models.Orders, q)
	if err != nil {
		return nil, models.Meta{}, err
	}
	return res.Payload, res.Meta, nil
}

// Get fetches one order by id
func (o *Orders) Get(ctx context.Context, id string) (models.Order, error) {
	res, err := api.GetByID[models.Order](ctx, o.client, models.Orders, id)
	if err != nil {
		return models.Order{}, err
	}
	return res.Payload, nil
}

// Create records a new order and invalidates the cached collection
func (o *Orders) Create(ctx context.Context, ord models.Order) (mutate.Outcome, error) {
	m := mutate.New(o.cache, o.notify, func(ctx context.Context, in models.Order) (*api.WriteResponse, error) {
		var res api.WriteResponse
		if err := o.client.Post(ctx, string(models.AddOrder), in, &res); err != nil {
			return nil, err
		}
		return &res, nil
	}, string(models.AllOrders))
	return m.Run(ctx, ord)
}

// Update replaces an existing order (status changes included) and
// invalidates the cached collection
func (o *Orders) Update(ctx context.Context, ord models.Order) (mutate.Outcome, error) {
	m := mutate.New(o.cache, o.notify, func(ctx context.Context, in models.Order) (*api.WriteResponse, error) {
		var res api.WriteResponse
		if err := o.client.Put(ctx, string(models.EditOrder), in, &res); err != nil {
			return nil, err
		}
		return &res, nil
	}, string(models.AllOrders))
	return m.Run(ctx, ord)
}

// Delete removes one order; the backend takes the id in the body
func (o *Orders) Delete(ctx context.Context, id string) (mutate.Outcome, error) {
	m := mutate.New(o.cache, o.notify, func(ctx context.Context, in models.DeleteOrderRequest) (*api.WriteResponse, error) {
		var res api.WriteResponse
		if err := o.client.Post(ctx, string(models.DeleteOrder), in, &res); err != nil {
			return nil, err
		}
		return &res, nil
	}, string(models.AllOrders))
	return m.WithMessages("Order deleted successfully", "Failed to delete order").
		Run(ctx, models.DeleteOrderRequest{OrderID: id})
}
