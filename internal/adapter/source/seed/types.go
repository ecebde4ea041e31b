package seed

// catalogFile is the on-disk shape of the seed catalog.
type catalogFile struct {
	Version     int            `json:"version"`
	Itineraries []catalogEntry `json:"itineraries"`
}

type catalogEntry struct {
	ID          int          `json:"id"`
	Title       string       `json:"title"`
	Destination string       `json:"destination"`
	Dates       catalogDates `json:"dates"`
	Vibe        string       `json:"vibe"`
	Tags        []string     `json:"tags"`
	GroupSize   string       `json:"group_size"`
	Summary     string       `json:"summary"`
	Price       *float64     `json:"price"`
	Days        []catalogDay `json:"days"`
}

type catalogDates struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type catalogDay struct {
	Date   string         `json:"date"`
	Events []catalogEvent `json:"events"`
}

type catalogEvent struct {
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	DurationMinutes int             `json:"duration_minutes"`
	Mandatory       bool            `json:"mandatory"`
	Travel          []catalogTravel `json:"travel"`
	Fare            []catalogFare   `json:"fare"`
}

type catalogTravel struct {
	Mode string  `json:"mode"`
	Cost float64 `json:"cost"`
}

type catalogFare struct {
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
}
