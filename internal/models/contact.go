package models

// ContactMessage is a single message in a contact thread
type ContactMessage struct {
	Text      string `json:"text" yaml:"text"`
	IsRead    bool   `json:"isRead" yaml:"is_read"`
	CreatedAt string `json:"createdAt,omitempty" yaml:"created_at,omitempty"`
}

// Contact represents a contact-us submission with its message thread
type Contact struct {
	ID        string           `json:"_id,omitempty" yaml:"id,omitempty"`
	Name      string           `json:"name" yaml:"name"`
	Email     string           `json:"email" yaml:"email"`
	Phone     string           `json:"phone" yaml:"phone"`
	Messages  []ContactMessage `json:"messages" yaml:"messages"`
	CreatedAt string           `json:"createdAt,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt string           `json:"updatedAt,omitempty" yaml:"updated_at,omitempty"`
	Version   int              `json:"__v,omitempty" yaml:"-"`
}

// DeleteContactRequest is the body of a contact delete call
type DeleteContactRequest struct {
	ContactID string `json:"contactId"`
}

// MessageRequest addresses a single message inside a contact thread by index
type MessageRequest struct {
	ContactID    string `json:"contactId"`
	MessageIndex int    `json:"messageIndex"`
}
