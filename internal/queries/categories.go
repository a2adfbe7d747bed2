package queries

import (
	"context"
	"fmt"
	"sync"

	"github.com/soukonline/cli/internal/api"
	"github.com/soukonline/cli/internal/models"
	"github.com/soukonline/cli/internal/mutate"
	"github.com/soukonline/cli/internal/query"
	"github.com/soukonline/cli/internal/utils"
)

// Categories bundles the read accessors and write mutations for the category
// collection. All category reads share the categories/allCategories cache key.
type Categories struct {
	client *api.Client
	cache  *query.Store
	notify mutate.Notifier
	all    *query.Collection[models.Category]
}

// NewCategories creates the category resource accessors
func NewCategories(client *api.Client, cache *query.Store, notify mutate.Notifier) *Categories {
	c := &Categories{
		client: client,
		cache:  cache,
		notify: notify,
	}
	// Categories back the storefront's navigation and change behind the
	// CLI's back, so freshness wins over request minimisation here.
	c.all = query.NewCollection(cache, string(models.AllCategories), query.Policy{AlwaysRefetch: true}, c.fetchAll)
	return c
}

func (c *Categories) fetchAll(ctx context.Context) ([]models.Category, error) {
	res, err := api.List[models.Category](ctx, c.client, models.AllCategories, nil)
	if err != nil {
		return nil, err
	}
	return res.Payload, nil
}

// All returns every category, cached under the collection's resource key
func (c *Categories) All(ctx context.Context) ([]models.Category, error) {
	return c.all.Get(ctx)
}

// ByID returns the categories indexed by their id; entries the backend has
// not assigned an id are skipped
func (c *Categories) ByID(ctx context.Context) (map[string]models.Category, error) {
	return c.all.ByID(ctx, func(cat models.Category) string { return cat.ID })
}

// Search performs a filtered, sorted, paginated read. Results are not cached:
// every distinct query goes straight through the parameter codec to the
// backend.
func (c *Categories) Search(ctx context.Context, q *api.Query) ([]models.Category, models.Meta, error) {
	res, err := api.List[models.Category](ctx, c.client, models.Categories, q)
	if err != nil {
		return nil, models.Meta{}, err
	}
	return res.Payload, res.Meta, nil
}

// Get fetches one category by id
func (c *Categories) Get(ctx context.Context, id string) (models.Category, error) {
	res, err := api.GetByID[models.Category](ctx, c.client, models.Categories, id)
	if err != nil {
		return models.Category{}, err
	}
	return res.Payload, nil
}

// Create adds a new category and invalidates the cached collection
func (c *Categories) Create(ctx context.Context, cat models.Category) (mutate.Outcome, error) {
	m := mutate.New(c.cache, c.notify, func(ctx context.Context, in models.Category) (*api.WriteResponse, error) {
		var res api.WriteResponse
		if err := c.client.Post(ctx, string(models.AddCategory), in, &res); err != nil {
			return nil, err
		}
		return &res, nil
	}, string(models.AllCategories))
	return m.Run(ctx, cat)
}

// CreateTree creates a category subtree in one call through the recursive
// add marker
func (c *Categories) CreateTree(ctx context.Context, tree models.CategoryTree) (mutate.Outcome, error) {
	m := mutate.New(c.cache, c.notify, func(ctx context.Context, in models.CategoryTree) (*api.WriteResponse, error) {
		return api.CreateRecursive(ctx, c.client, models.Categories, in)
	}, string(models.AllCategories))
	return m.Run(ctx, tree)
}

// Update replaces an existing category and invalidates the cached collection
func (c *Categories) Update(ctx context.Context, cat models.Category) (mutate.Outcome, error) {
	m := mutate.New(c.cache, c.notify, func(ctx context.Context, in models.Category) (*api.WriteResponse, error) {
		var res api.WriteResponse
		if err := c.client.Put(ctx, string(models.EditCategory), in, &res); err != nil {
			return nil, err
		}
		return &res, nil
	}, string(models.AllCategories))
	return m.Run(ctx, cat)
}

// Delete removes one category; the backend takes the id in the body
func (c *Categories) Delete(ctx context.Context, id string) (mutate.Outcome, error) {
	m := mutate.New(c.cache, c.notify, func(ctx context.Context, in models.DeleteCategoryRequest) (*api.WriteResponse, error) {
		var res api.WriteResponse
		if err := c.client.Post(ctx, string(models.DeleteCategory), in, &res); err != nil {
			return nil, err
		}
		return &res, nil
	}, string(models.AllCategories))
	return m.WithMessages("Category deleted successfully", "Failed to delete category").
		Run(ctx, models.DeleteCategoryRequest{CategoryID: id})
}

// BulkDelete issues one delete per id. There is no all-or-nothing guarantee:
// a failure leaves the other deletions applied, with no rollback. The cache
// is invalidated once after every call settles, whatever the outcomes, and a
// single aggregate notification is emitted.
func (c *Categories) BulkDelete(ctx context.Context, ids []string) error {
	var wg sync.WaitGroup
	errs := make([]error, len(ids))

	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			var res api.WriteResponse
			errs[i] = c.client.Post(ctx, string(models.DeleteCategory), models.DeleteCategoryRequest{CategoryID: id}, &res)
		}(i, id)
	}
	wg.Wait()

	c.cache.Invalidate(string(models.AllCategories))

	multi := utils.NewMultiError()
	for _, err := range errs {
		multi.Add(err)
	}
	if multi.HasErrors() {
		c.notify.Failure(fmt.Sprintf("%d of %d categories could not be deleted", len(multi.Errors), len(ids)))
		return multi
	}

	c.notify.Success(fmt.Sprintf("%d categories deleted", len(ids)))
	return nil
}
