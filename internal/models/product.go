package models

// Product represents a storefront product
type Product struct {
	ID             string            `json:"_id,omitempty" yaml:"id,omitempty"`
	Name           string            `json:"name" yaml:"name"`
	Description    string            `json:"description" yaml:"description"`
	Categories     []string          `json:"categories" yaml:"categories"`
	Images         []string          `json:"images" yaml:"images"`
	IsAvailable    bool              `json:"isAvailable" yaml:"is_available"`
	Specifications map[string]string `json:"specifications,omitempty" yaml:"specifications,omitempty"`
	Version        int               `json:"__v,omitempty" yaml:"-"`
}

// DeleteProductRequest is the body of a product delete call
type DeleteProductRequest struct {
	ProductID string `json:"productId"`
}
