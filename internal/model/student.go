package model

import "time"

// Student is a signed-in learner. Points and the flashcard counters are
// written by the quiz flow; this service only reads them.
type Student struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	Username            string    `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Grade               string    `gorm:"size:4;not null;index" json:"grade"`
	School              string    `gorm:"size:100" json:"school,omitempty"`
	Points              int       `gorm:"not null;default:0;index" json:"points"`
	FlashcardsCorrect   int       `gorm:"not null;default:0" json:"flashcards_correct"`
	FlashcardsAttempted int       `gorm:"not null;default:0" json:"flashcards_attempted"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (Student) TableName() string {
	return "students"
}
