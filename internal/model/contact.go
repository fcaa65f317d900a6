package model

// ContactRequest carries the fields accepted for contact create/update.
// All fields are optional at the JSON level; create requires at least one
// identifying field.
type ContactRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// HasIdentity reports whether at least one identifying field is set.
func (c ContactRequest) HasIdentity() bool {
	return c.FirstName != "" || c.LastName != "" || c.Email != "" || c.Phone != ""
}

// Fields returns only the set fields (exclude-none semantics for updates).
func (c ContactRequest) Fields() map[string]any {
	m := map[string]any{}
	if c.FirstName != "" {
		m["firstName"] = c.FirstName
	}
	if c.LastName != "" {
		m["lastName"] = c.LastName
	}
	if c.Email != "" {
		m["email"] = c.Email
	}
	if c.Phone != "" {
		m["phone"] = c.Phone
	}
	return m
}
