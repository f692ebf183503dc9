package models

// EventState is the moderation state of an event.
type EventState string

const (
	EventDraft    EventState = "draft"
	EventApproved EventState = "approved"
	EventRejected EventState = "rejected"
	EventReview   EventState = "review"
)

// Event is a volunteer event organized by an NKO.
type Event struct {
	ID          int64      `json:"id"`
	NKOID       int64      `json:"nko_id"`
	NKOName     string     `json:"nko_name"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Address     string     `json:"address"`
	City        string     `json:"city"`
	Picture     string     `json:"picture"`
	Latitude    *float64   `json:"latitude"`
	Longitude   *float64   `json:"longitude"`
	StartsAt    string     `json:"starts_at"`
	FinishAt    string     `json:"finish_at"`
	CreatedBy   int64      `json:"created_by"`
	ApprovedBy  *int64     `json:"approved_by"`
	State       EventState `json:"state"`
	Meta        string     `json:"meta"`
	CreatedAt   string     `json:"created_at"`
	Categories  []string   `json:"categories"`
}

// EventFilter narrows GET /event. TimeFrom/TimeTo are ISO-8601 strings,
// matching what the backend expects verbatim.
type EventFilter struct {
	NKOIDs     []int64
	City       string
	Favorite   bool
	Categories []string
	Regex      string
	TimeFrom   string
	TimeTo     string
}
