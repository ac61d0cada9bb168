package model

// ServiceOffering is one card of the services showcase.
type ServiceOffering struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Price       string   `json:"price"`
}

// ServiceOption is a value accepted by the contact form's service select.
type ServiceOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Catalog is the payload of GET /api/services.
type Catalog struct {
	Services []ServiceOffering `json:"services"`
	Options  []ServiceOption   `json:"options"`
}
