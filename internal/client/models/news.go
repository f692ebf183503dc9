package models

// News is a portal news item.
type News struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	City        string `json:"city"`
	CreatedBy   int64  `json:"created_by"`
	ApprovedBy  *int64 `json:"approved_by"`
	Meta        string `json:"meta"`
	CreatedAt   string `json:"created_at"`
}

// NewsFilter narrows GET /news.
type NewsFilter struct {
	City     string
	Favorite bool
	Regex    string
}

// City is a city known to the portal.
type City struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
