package model

import "time"

// QuestionType defines the type of question
type QuestionType string

const (
	QuestionTypeShortText    QuestionType = "SHORT_TEXT"    // One-line free text
	QuestionTypeLongText     QuestionType = "LONG_TEXT"     // Multi-line free text
	QuestionTypeSingleChoice QuestionType = "SINGLE_CHOICE" // Pick one option
	QuestionTypeMultiChoice  QuestionType = "MULTI_CHOICE"  // Pick any number of options
	QuestionTypeLikert       QuestionType = "LIKERT"        // Five-point agreement scale
	QuestionTypeBudget       QuestionType = "BUDGET"        // Split a budget across targets
)

// IsText reports whether the type collects free text
func (t QuestionType) IsText() bool {
	return t == QuestionTypeShortText || t == QuestionTypeLongText
}

// BudgetTarget is one allocation target of a budget question
type BudgetTarget struct {
	ID   string `json:"id" bson:"id"`
	Name string `json:"name" bson:"name"`
}

// BudgetPayload configures a BUDGET question
type BudgetPayload struct {
	Total   float64        `json:"total" bson:"total"` // Total pool respondents split
	Targets []BudgetTarget `json:"targets" bson:"targets"`
}

// Question is one question of a panorama. Options is set for choice
// types, Budget for BUDGET; both are nil otherwise.
type Question struct {
	ID       string         `json:"id" bson:"id"`
	Text     string         `json:"text" bson:"text"`
	Type     QuestionType   `json:"type" bson:"type"`
	Options  []string       `json:"options,omitempty" bson:"options,omitempty"`
	Budget   *BudgetPayload `json:"budget,omitempty" bson:"budget,omitempty"`
	Required bool           `json:"required" bson:"required"`
	Order    int            `json:"order" bson:"order"` // Display order, unique within a panorama
}

// Panorama is a survey instance tied to an event
type Panorama struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	OrganizerID string     `json:"organizerId" bson:"organizerId"`
	Name        string     `json:"name" bson:"name"`
	Description string     `json:"description,omitempty" bson:"description,omitempty"`
	EventName   string     `json:"eventName,omitempty" bson:"eventName,omitempty"`
	EventDate   *time.Time `json:"eventDate,omitempty" bson:"eventDate,omitempty"`
	Questions   []Question `json:"questions" bson:"questions"`
	CreatedAt   time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt" bson:"updatedAt"`
}

// QuestionByID returns the question with the given id, or nil
func (p *Panorama) QuestionByID(id string) *Question {
	for i := range p.Questions {
		if p.Questions[i].ID == id {
			return &p.Questions[i]
		}
	}
	return nil
}
