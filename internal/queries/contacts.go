package queries

import (
	"context"

	"github.com/soukonline/cli/internal/api"
	"github.com/soukonline/cli/internal/models"
	"github.com/soukonline/cli/internal/mutate"
	"github.com/soukonline/cli/internal/query"
)

// Contacts bundles the read accessors and write mutations for contact-us
// threads, cached under contacts/allContacts.
type Contacts struct {
	client *api.Client
	cache  *query.Store
	notify mutate.Notifier
	all    *query.Collection[models.Contact]
}

// NewContacts creates the contact resource accessors
func NewContacts(client *api.Client, cache *query.Store, notify mutate.Notifier) *Contacts {
	c := &Contacts{
		client: client,
		cache:  cache,
		notify: notify,
	}
	c.all = query.NewCollection(cache, string(models.AllContacts), query.Policy{}, c.fetchAll)
	return c
}

func (c *Contacts) fetchAll(ctx context.Context) ([]models.Contact, error) {
	res, err := api.List[models.Contact](ctx, c.client, models.AllContacts, nil)
	if err != nil {
		return nil, err
	}
	return res.Payload, nil
}

// All returns every contact thread, cached under the collection's resource key
func (c *Contacts) All(ctx context.Context) ([]models.Contact, error) {
	return c.all.Get(ctx)
}

// ByID returns the contact threads indexed by id
func (c *Contacts) ByID(ctx context.Context) (map[string]models.Contact, error) {
	return c.all.ByID(ctx, func(ct models.Contact) string { return ct.ID })
}

// Get fetches one contact thread by id
func (c *Contacts) Get(ctx context.Context, id string) (models.Contact, error) {
	res, err := api.GetByID[models.Contact](ctx, c.client, models.Contacts, id)
	if err != nil {
		return models.Contact{}, err
	}
	return res.Payload, nil
}

// Create adds a contact submission and invalidates the cached collection
func (c *Contacts) Create(ctx context.Context, ct models.Contact) (mutate.Outcome, error) {
	m := mutate.New(c.cache, c.notify, func(ctx context.Context, in models.Contact) (*api.WriteResponse, error) {
		var res api.WriteResponse
		if err := c.client.Post(ctx, string(models.AddContact), in, &res); err != nil {
			return nil, err
		}
		return &res, nil
	}, string(models.AllContacts))
	return m.Run(ctx, ct)
}

// Delete removes one contact thread; the backend takes the id in the body
func (c *Contacts) Delete(ctx context.Context, id string) (mutate.Outcome, error) {
	m := mutate.New(c.cache, c.notify, func(ctx context.Context, in models.DeleteContactRequest) (*api.WriteResponse, error) {
		var res api.WriteResponse
		if err := c.client.Post(ctx, string(models.DeleteContact), in, &res); err != nil {
			return nil, err
		}
		return &res, nil
	}, string(models.AllContacts))
	return m.WithMessages("Contact deleted successfully", "Failed to delete contact").
		Run(ctx, models.DeleteContactRequest{ContactID: id})
}

// ReadMessage marks a single message in a thread as read, addressed by index
func (c *Contacts) ReadMessage(ctx context.Context, contactID string, index int) (mutate.Outcome, error) {
	m := mutate.New(c.cache, c.notify, func(ctx context.Context, in models.MessageRequest) (*api.WriteResponse, error) {
		var res api.WriteResponse
		if err := c.client.Post(ctx, string(models.ReadMessage), in, &res); err != nil {
			return nil, err
		}
		return &res, nil
	}, string(models.AllContacts))
	return m.WithMessages("Message marked as read", "Failed to mark message as read").
		Run(ctx, models.MessageRequest{ContactID: contactID, MessageIndex: index})
}

// DeleteMessage removes a single message from a thread, addressed by index
func (c *Contacts) DeleteMessage(ctx context.Context, contactID string, index int) (mutate.Outcome, error) {
	m := mutate.New(c.cache, c.notify, func(ctx context.Context, in models.MessageRequest) (*api.WriteResponse, error) {
		var res api.WriteResponse
		if err := c.client.Post(ctx, string(models.DeleteMessage), in, &res); err != nil {
			return nil, err
		}
		return &res, nil
	}, string(models.AllContacts))
	return m.WithMessages("Message deleted successfully", "Failed to delete message").
		Run(ctx, models.MessageRequest{ContactID: contactID, MessageIndex: index})
}
