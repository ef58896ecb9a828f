package main

import (
	"flash_learning/internal/model"
	"flash_learning/internal/repository"
)

// sampleCatalog is a small K-8 catalog for local development.
func sampleCatalog() repository.SeedCatalog {
	return repository.SeedCatalog{
		Grades: []repository.SeedGrade{
			{Code: "K", Subjects: []repository.SeedSubject{
				{Name: "Math", Decks: []repository.SeedDeck{
					{Name: "Counting", Cards: []repository.SeedCard{
						{Question: "What comes after 4?", Answer: "5"},
						{Question: "How many fingers are on one hand?", Answer: "5"},
					}},
					{Name: "Shapes", Cards: []repository.SeedCard{
						{Question: "How many sides does a triangle have?", Answer: "3"},
					}},
				}},
				{Name: "Reading", Decks: []repository.SeedDeck{
					{Name: "Letters", Cards: []repository.SeedCard{
						{Question: "Which letter does apple start with?", Answer: "A"},
					}},
				}},
			}},
			{Code: "1", Subjects: []repository.SeedSubject{
				{Name: "Math", Decks: []repository.SeedDeck{
					{Name: "Addition", Cards: []repository.SeedCard{
						{Question: "3 plus 4", Answer: "7"},
						{Question: "6 plus 2", Answer: "8"},
					}},
				}},
			}},
			{Code: "2", Subjects: []repository.SeedSubject{
				{Name: "Math", Decks: []repository.SeedDeck{
					{Name: "Subtraction", Cards: []repository.SeedCard{
						{Question: "12 minus 5", Answer: "7"},
					}},
				}},
			}},
			{Code: "3", Subjects: []repository.SeedSubject{
				{Name: "Math", Decks: []repository.SeedDeck{
					{Name: "Multiplication", Cards: []repository.SeedCard{
						{Question: "6 times 7", Answer: "42"},
						{Question: "8 times 3", Answer: "24"},
					}},
					{Name: "Fractions", Cards: []repository.SeedCard{
						{Question: "What is half of 10?", Answer: "5"},
					}},
				}},
				{Name: "Science", Decks: []repository.SeedDeck{
					{Name: "Planets", Cards: []repository.SeedCard{
						{Question: "Which planet is the largest?", Answer: "Jupiter"},
						{Question: "Which planet is closest to the sun?", Answer: "Mercury"},
					}},
				}},
			}},
			{Code: "4", Subjects: []repository.SeedSubject{
				{Name: "Social Studies", Decks: []repository.SeedDeck{
					{Name: "Maps", Cards: []repository.SeedCard{
						{Question: "Which direction is opposite of north?", Answer: "South"},
					}},
				}},
			}},
			{Code: "5", Subjects: []repository.SeedSubject{
				{Name: "Science", Decks: []repository.SeedDeck{
					{Name: "Matter", Cards: []repository.SeedCard{
						{Question: "What are the three common states of matter?", Answer: "Solid, liquid and gas"},
					}},
				}},
			}},
			{Code: "6", Subjects: []repository.SeedSubject{
				{Name: "Math", Decks: []repository.SeedDeck{
					{Name: "Ratios", Cards: []repository.SeedCard{
						{Question: "Simplify 4:8", Answer: "1:2"},
					}},
				}},
			}},
			{Code: "7", Subjects: []repository.SeedSubject{
				{Name: "Science", Decks: []repository.SeedDeck{
					{Name: "Cells", Cards: []repository.SeedCard{
						{Question: "Which organelle holds the DNA?", Answer: "The nucleus"},
					}},
				}},
			}},
			{Code: "8", Subjects: []repository.SeedSubject{
				{Name: "Math", Decks: []repository.SeedDeck{
					{Name: "Linear Equations", Cards: []repository.SeedCard{
						{Question: "Solve 2x = 14", Answer: "x = 7"},
					}},
				}},
			}},
		},
		Students: []model.Student{
			{Username: "ana", Grade: "3", School: "Maple Elementary", Points: 120, FlashcardsCorrect: 34, FlashcardsAttempted: 40},
			{Username: "ben", Grade: "3", School: "Maple Elementary", Points: 95, FlashcardsCorrect: 20, FlashcardsAttempted: 31},
			{Username: "kim", Grade: "K", Points: 10, FlashcardsCorrect: 3, FlashcardsAttempted: 4},
			{Username: "leo", Grade: "8", School: "Cedar Middle", Points: 0},
		},
	}
}
