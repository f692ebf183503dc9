package models

// NKO is a non-profit organization listed in the portal catalog.
type NKO struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Logo        string         `json:"logo"`
	Address     string         `json:"address"`
	City        string         `json:"city"`
	Latitude    float64        `json:"latitude"`
	Longitude   float64        `json:"longitude"`
	Meta        map[string]any `json:"meta"`
	CreatedAt   string         `json:"created_at"`
	Categories  []string       `json:"categories"`
}

// NKOFilter narrows GET /nko. Zero values mean "no filter". Favorite requires
// an authenticated session.
type NKOFilter struct {
	City       string
	Favorite   bool
	Categories []string
	Regex      string
}
