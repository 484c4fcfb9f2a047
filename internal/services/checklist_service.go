package services

import (
	"sort"

	"evently_backend/internal/services/dto"
	"evently_backend/pkg/apperrors"
)

// ChecklistService отдает статические шаблоны чеклистов подготовки
// к событию. Контент зашит в код, БД не трогается.
type ChecklistService interface {
	List() *dto.ChecklistListResponse
	Get(eventType string) (*dto.ChecklistTemplate, error)
}

type ChecklistServiceImpl struct{}

func NewChecklistService() ChecklistService {
	return &ChecklistServiceImpl{}
}

func (s *ChecklistServiceImpl) List() *dto.ChecklistListResponse {
	keys := make([]string, 0, len(checklistTemplates))
	for k := range checklistTemplates {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	templates := make([]*dto.ChecklistTemplate, 0, len(keys))
	for _, k := range keys {
		t := checklistTemplates[k]
		templates = append(templates, &t)
	}
	return &dto.ChecklistListResponse{Templates: templates, Total: len(templates)}
}

func (s *ChecklistServiceImpl) Get(eventType string) (*dto.ChecklistTemplate, error) {
	t, ok := checklistTemplates[eventType]
	if !ok {
		return nil, apperrors.NotFound("Checklist")
	}
	return &t, nil
}

var checklistTemplates = map[string]dto.ChecklistTemplate{
	"wedding": {
		EventType: "wedding",
		Title:     "Wedding planning checklist",
		Items: []dto.ChecklistItem{
			{Label: "Set a budget", Tip: "Agree on the total before booking anything", Category: "planning"},
			{Label: "Draft the guest list", Category: "planning"},
			{Label: "Book the venue", Tip: "Popular venues fill up 9-12 months ahead", Category: "vendors"},
			{Label: "Book a photographer", Category: "vendors"},
			{Label: "Choose catering", Tip: "Schedule a tasting first", Category: "vendors"},
			{Label: "Send invitations", Tip: "6-8 weeks before the date", Category: "guests"},
			{Label: "Plan the seating chart", Category: "guests"},
			{Label: "Confirm all vendors", Tip: "Call everyone a week before", Category: "final"},
		},
	},
	"birthday-party": {
		EventType: "birthday-party",
		Title:     "Birthday party checklist",
		Items: []dto.ChecklistItem{
			{Label: "Pick a theme", Category: "planning"},
			{Label: "Book a venue or prepare the space", Category: "planning"},
			{Label: "Order the cake", Tip: "Confirm allergies with guests", Category: "food"},
			{Label: "Plan food and drinks", Category: "food"},
			{Label: "Arrange entertainment", Tip: "DJ, games or a host for kids", Category: "vendors"},
			{Label: "Send invites", Category: "guests"},
			{Label: "Prepare decorations", Category: "final"},
		},
	},
	"corporate-event": {
		EventType: "corporate-event",
		Title:     "Corporate event checklist",
		Items: []dto.ChecklistItem{
			{Label: "Define goals and format", Category: "planning"},
			{Label: "Set the budget and get approval", Category: "planning"},
			{Label: "Book the venue", Tip: "Check AV equipment and capacity", Category: "vendors"},
			{Label: "Arrange catering", Tip: "Collect dietary requirements", Category: "food"},
			{Label: "Book speakers or entertainment", Category: "vendors"},
			{Label: "Send calendar invites", Category: "guests"},
			{Label: "Prepare name tags and materials", Category: "final"},
			{Label: "Run a tech rehearsal", Category: "final"},
		},
	},
	"baby-shower": {
		EventType: "baby-shower",
		Title:     "Baby shower checklist",
		Items: []dto.ChecklistItem{
			{Label: "Pick a date with the parents", Category: "planning"},
			{Label: "Choose a theme and colors", Category: "planning"},
			{Label: "Book a venue or host at home", Category: "vendors"},
			{Label: "Plan games and prizes", Category: "entertainment"},
			{Label: "Order the cake and snacks", Category: "food"},
			{Label: "Send invitations", Tip: "3-4 weeks ahead", Category: "guests"},
			{Label: "Set up a gift registry", Category: "guests"},
		},
	},
}
