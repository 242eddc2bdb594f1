package models

// Store is a sales location, physical or online.
type Store struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Location  string  `json:"location"`
	ManagerID *string `json:"managerId,omitempty"`
}
