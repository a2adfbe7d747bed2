package app

import (
	"time"

	"github.com/soukonline/cli/internal/api"
	"github.com/soukonline/cli/internal/config"
	"github.com/soukonline/cli/internal/format"
	"github.com/soukonline/cli/internal/queries"
	"github.com/soukonline/cli/internal/query"
	"github.com/soukonline/cli/internal/session"
)

// App wires the client layer together once at process start: one configured
// HTTP client, one cache store, one session store, one notifier. Commands
// receive it by injection; nothing here is package-level state.
type App struct {
	Client  *api.Client
	Cache   *query.Store
	Session *session.Store
	Notify  *format.Notifier

	Users      *queries.Users
	Categories *queries.Categories
	Products   *queries.Products
	Orders     *queries.Orders
	Contacts   *queries.Contacts
}

// New builds the application container from loaded configuration
func New(cfg *config.Config) *App {
	timeout, err := time.ParseDuration(cfg.Server.Timeout)
	if err != nil || timeout <= 0 {
		timeout = 30 * time.Second
	}

	sess := session.NewStore()
	client := api.NewClient(cfg.Server.URL, timeout, sess)
	cache := query.NewStore()
	notify := format.NewNotifier()

	return &App{
		Client:  client,
		Cache:   cache,
		Session: sess,
		Notify:  notify,

		Users:      queries.NewUsers(client, cache, notify, sess),
		Categories: queries.NewCategories(client, cache, notify),
		Products:   queries.NewProducts(client, cache, notify),
		Orders:     queries.NewOrders(client, cache, notify),
		Contacts:   queries.NewContacts(client, cache, notify),
	}
}
