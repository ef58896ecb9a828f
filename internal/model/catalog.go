// internal/model/catalog.go
package model

// Grade is a school year level. One row per grade code ("K", "1" .. "8").
type Grade struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Grade string `gorm:"size:4;uniqueIndex;not null" json:"grade"`

	Subjects []Subject `gorm:"foreignKey:GradeID" json:"-"`
}

func (Grade) TableName() string {
	return "grades"
}

// Subject is a topic area within one grade.
type Subject struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	GradeID uint   `gorm:"not null;uniqueIndex:uq_subject_grade_name" json:"grade_id"`
	Name    string `gorm:"size:100;not null;uniqueIndex:uq_subject_grade_name" json:"name"`

	Decks []Deck `gorm:"foreignKey:SubjectID" json:"-"`
}

func (Subject) TableName() string {
	return "subjects"
}

// Deck is a named collection of flashcards within one subject.
type Deck struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	SubjectID uint   `gorm:"not null;uniqueIndex:uq_deck_subject_name" json:"subject_id"`
	Name      string `gorm:"size:100;not null;uniqueIndex:uq_deck_subject_name" json:"name"`

	Flashcards []Flashcard `gorm:"foreignKey:DeckID" json:"-"`
}

func (Deck) TableName() string {
	return "decks"
}

// Flashcard is a single study item.
type Flashcard struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	DeckID   uint   `gorm:"not null;index" json:"deck_id"`
	Question string `gorm:"type:text;not null" json:"question"`
	Answer   string `gorm:"type:text;not null" json:"answer"`
}

func (Flashcard) TableName() string {
	return "flashcards"
}

// AllModels lists the tables in dependency order, for AutoMigrate.
func AllModels() []interface{} {
	return []interface{}{&Grade{}, &Subject{}, &Deck{}, &Flashcard{}, &Student{}}
}
