package queries

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/soukonline/cli/internal/api"
	"github.com/soukonline/cli/internal/models"
	"github.com/soukonline/cli/internal/mutate"
	"github.com/soukonline/cli/internal/query"
	"github.com/soukonline/cli/internal/utils"
)

// Products bundles the read accessors and write mutations for the product
// catalog, cached under products/allProducts.
type Products struct {
	client *api.Client
	cache  *query.Store
	notify mutate.Notifier
	all    *query.Collection[models.Product]
}

// NewProducts creates the product resource accessors
func NewProducts(client *api.Client, cache *query.Store, notify mutate.Notifier) *Products {
	p := &Products{
		client: client,
		cache:  cache,
		notify: notify,
	}
	p.all = query.NewCollection(cache, string(models.AllProducts), query.Policy{}, p.fetchAll)
	return p
}

func (p *Products) fetchAll(ctx context.Context) ([]models.Product, error) {
	res, err := api.List[models.Product](ctx, p.client, models.AllProducts, nil)
	if err != nil {
		return nil, err
	}
	return res.Payload, nil
}

// All returns the product catalog, cached under its resource key
func (p *Products) All(ctx context.Context) ([]models.Product, error) {
	return p.all.Get(ctx)
}

// ByID returns the catalog indexed by product id
func (p *Products) ByID(ctx context.Context) (map[string]models.Product, error) {
	return p.all.ByID(ctx, func(prod models.Product) string { return prod.ID })
}

// Refresh forces a fresh fetch of the catalog
func (p *Products) Refresh(ctx context.Context) ([]models.Product, error) {
	return p.all.Refetch(ctx)
}

// Search performs a filtered, sorted, paginated read, uncached
func (p *Products) Search(ctx context.Context, q *api.Query) ([]models.Product, models.Meta, error) {
	res, err := api.List[models.Product](ctx, p.client, models.Products, q)
	if err != nil {
		return nil, models.Meta{}, err
	}
	return res.Payload, res.Meta, nil
}

// Get fetches one product by id
func (p *Products) Get(ctx context.Context, id string) (models.Product, error) {
	res, err := api.GetByID[models.Product](ctx, p.client, models.Products, id)
	if err != nil {
		return models.Product{}, err
	}
	return res.Payload, nil
}

// Create adds a new product and invalidates the cached catalog
func (p *Products) Create(ctx context.Context, prod models.Product) (mutate.Outcome, error) {
	m := mutate.New(p.cache, p.notify, func(ctx context.Context, in models.Product) (*api.WriteResponse, error) {
		var res api.WriteResponse
		if err := p.client.Post(ctx, string(models.AddProduct), in, &res); err != nil {
			return nil, err
		}
		return &res, nil
	}, string(models.AllProducts))
	return m.Run(ctx, prod)
}

// Update replaces an existing product and invalidates the cached catalog
func (p *Products) Update(ctx context.Context, prod models.Product) (mutate.Outcome, error) {
	m := mutate.New(p.cache, p.notify, func(ctx context.Context, in models.Product) (*api.WriteResponse, error) {
		var res api.WriteResponse
		if err := p.client.Put(ctx, string(models.EditProduct), in, &res); err != nil {
			return nil, err
		}
		return &res, nil
	}, string(models.AllProducts))
	return m.Run(ctx, prod)
}

// Delete removes one product; the backend takes the id in the body
func (p *Products) Delete(ctx context.Context, id string) (mutate.Outcome, error) {
	m := mutate.New(p.cache, p.notify, func(ctx context.Context, in models.DeleteProductRequest) (*api.WriteResponse, error) {
		var res api.WriteResponse
		if err := p.client.Post(ctx, string(models.DeleteProduct), in, &res); err != nil {
			return nil, err
		}
		return &res, nil
	}, string(models.AllProducts))
	return m.WithMessages("Product deleted successfully", "Failed to delete product").
		Run(ctx, models.DeleteProductRequest{ProductID: id})
}

// BulkDelete issues one delete per id with no all-or-nothing guarantee; the
// cache is invalidated once after all calls settle
func (p *Products) BulkDelete(ctx context.Context, ids []string) error {
	var wg sync.WaitGroup
	errs := make([]error, len(ids))

	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			var res api.WriteResponse
			errs[i] = p.client.Post(ctx, string(models.DeleteProduct), models.DeleteProductRequest{ProductID: id}, &res)
		}(i, id)
	}
	wg.Wait()

	p.cache.Invalidate(string(models.AllProducts))

	multi := utils.NewMultiError()
	for _, err := range errs {
		multi.Add(err)
	}
	if multi.HasErrors() {
		p.notify.Failure(fmt.Sprintf("%d of %d products could not be deleted", len(multi.Errors), len(ids)))
		return multi
	}

	p.notify.Success(fmt.Sprintf("%d products deleted", len(ids)))
	return nil
}

// UploadImage attaches an image file to the product catalog through the
// multipart upload endpoint
func (p *Products) UploadImage(ctx context.Context, filename string, content io.Reader) (mutate.Outcome, error) {
	m := mutate.New(p.cache, p.notify, func(ctx context.Context, _ struct{}) (*api.WriteResponse, error) {
		return p.client.Upload(ctx, models.Products, "image", filename, content)
	}, string(models.AllProducts))
	return m.WithMessages("Image uploaded", "Failed to upload image").Run(ctx, struct{}{})
}
