package category

import "encoding/json"

// Category groups events and carries their display color. System
// categories (the built-in holiday category) cannot be deleted, only
// renamed, recolored, or toggled. Disabling a category hides all of its
// events from the day view without deleting them.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	IsSystem  bool   `json:"isSystem,omitempty"`
	IsEnabled bool   `json:"isEnabled"`
}

// UnmarshalJSON treats an absent isEnabled field as enabled. Older blobs
// omitted the flag entirely.
func (c *Category) UnmarshalJSON(data []byte) error {
	type alias Category
	aux := struct {
		*alias
		IsEnabled *bool `json:"isEnabled"`
	}{alias: (*alias)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	c.IsEnabled = aux.IsEnabled == nil || *aux.IsEnabled
	return nil
}
