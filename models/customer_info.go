package models

// CustomerInfo holds the contact and event details attached to a quote.
// All fields are free-form; required-field enforcement belongs to the form layer.
type CustomerInfo struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	EventDate string `json:"eventDate"`
	EventType string `json:"eventType"`
	VenueName string `json:"venueName"`
	Notes     string `json:"notes"`
}

// CustomerInfoUpdate is a partial update: nil fields are left untouched on merge
type CustomerInfoUpdate struct {
	Name      *string `json:"name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	EventDate *string `json:"eventDate,omitempty"`
	EventType *string `json:"eventType,omitempty"`
	VenueName *string `json:"venueName,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// Merge applies the non-nil fields of the update onto the receiver
func (c *CustomerInfo) Merge(update CustomerInfoUpdate) {
	if update.Name != nil {
		c.Name = *update.Name
	}
	if update.Email != nil {
		c.Email = *update.Email
	}
	if update.Phone != nil {
		c.Phone = *update.Phone
	}
	if update.EventDate != nil {
		c.EventDate = *update.EventDate
	}
	if update.EventType != nil {
		c.EventType = *update.EventType
	}
	if update.VenueName != nil {
		c.VenueName = *update.VenueName
	}
	if update.Notes != nil {
		c.Notes = *update.Notes
	}
}
