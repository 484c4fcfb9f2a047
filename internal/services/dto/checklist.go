package dto

// ChecklistItem - один пункт чеклиста подготовки к событию
type ChecklistItem struct {
	Label    string `json:"label"`
	Tip      string `json:"tip,omitempty"`
	Category string `json:"category"`
}

// ChecklistTemplate - готовый шаблон чеклиста для типа события
type ChecklistTemplate struct {
	EventType string          `json:"event_type"`
	Title     string          `json:"title"`
	Items     []ChecklistItem `json:"items"`
}

type ChecklistListResponse struct {
	Templates []*ChecklistTemplate `json:"templates"`
	Total     int                  `json:"total"`
}
