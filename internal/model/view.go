package model

// NavigationView feeds the home template for the dashboard, subject and deck
// pages. Flashcard is nil unless a deck was opened.
type NavigationView struct {
	Subjects    []*Subject
	Decks       []*Deck
	Flashcard   *Flashcard
	CurrSubject string
	CurrDeck    string
	// FromFallback marks a Flashcard taken from the legacy fallback deck
	// rather than from CurrDeck.
	FromFallback bool
}

// ProfileView holds the display values of the profile page.
type ProfileView struct {
	SchoolName string
	Grade      string
}

// StatsView holds the stats page values. Percentages are already formatted,
// e.g. "70%".
type StatsView struct {
	Score    int
	Accuracy string
	Progress string
}

// FlashcardView is a single card together with its place in the deck.
type FlashcardView struct {
	Subjects    []*Subject
	Decks       []*Deck
	Deck        *Deck
	Flashcard   *Flashcard
	CurrSubject string
	Position    int
	Total       int
	PreviousID  uint
	NextID      uint
}
