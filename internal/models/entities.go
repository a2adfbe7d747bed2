package models

// Entity identifies a backend resource path. The backend multiplexes verbs by
// path suffix, so each resource exposes fixed allX/addX/deleteX/editX paths in
// addition to the generic add/update/upload markers handled by the API client.
//
// List paths double as cache resource keys: every reader of the same logical
// collection must use the identical value or cache sharing and invalidation
// break silently.
type Entity string

const (
	// User management
	Users Entity = "users"
	Login Entity = "users/login"

	// Categories
	Categories     Entity = "categories"
	AllCategories  Entity = "categories/allCategories"
	AddCategory    Entity = "categories/addCategory"
	DeleteCategory Entity = "categories/deleteCategory"
	EditCategory   Entity = "categories/editCategory"

	// Products
	Products      Entity = "products"
	AllProducts   Entity = "products/allProducts"
	AddProduct    Entity = "products/addProduct"
	DeleteProduct Entity = "products/deleteProduct"
	EditProduct   Entity = "products/editProduct"

	// Orders
	Orders      Entity = "orders"
	AllOrders   Entity = "orders/allOrders"
	AddOrder    Entity = "orders/addOrder"
	DeleteOrder Entity = "orders/deleteOrder"
	EditOrder   Entity = "orders/editOrder"

	// Contact messages
	Contacts      Entity = "contacts"
	AllContacts   Entity = "contacts/allContacts"
	AddContact    Entity = "contacts/addContact"
	DeleteContact Entity = "contacts/deleteContact"
	EditContact   Entity = "contacts/editContact"
	ReadMessage   Entity = "contacts/readMessage"
	DeleteMessage Entity = "contacts/deleteMessage"
)
