package models

// Category represents a product category
type Category struct {
	ID             string   `json:"_id,omitempty" yaml:"id,omitempty"`
	Name           string   `json:"name" yaml:"name"`
	ParentCategory *string  `json:"parentCategory" yaml:"parent_category"`
	Attributes     []string `json:"attributes" yaml:"attributes"`
	Version        int      `json:"__v,omitempty" yaml:"-"`
}

// CategoryTree represents a category with nested children for recursive creation
type CategoryTree struct {
	Name       string         `json:"name" yaml:"name"`
	Attributes []string       `json:"attributes" yaml:"attributes"`
	Children   []CategoryTree `json:"children,omitempty" yaml:"children,omitempty"`
}

// DeleteCategoryRequest is the body of a category delete call; the backend
// takes the id in the body, not as a path parameter
type DeleteCategoryRequest struct {
	CategoryID string `json:"categoryId"`
}
