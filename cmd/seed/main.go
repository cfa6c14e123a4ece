package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"panorama/internal/model"
)

// Seeds one demo panorama with synthetic responses so the analytics
// dashboard has something to show locally.
func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	mongoDB := os.Getenv("MONGO_DB")
	if mongoDB == "" {
		mongoDB = "panoramadb"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(mongoDB)

	questions := []model.Question{
		{
			ID:   uuid.New().String(),
			Text: "The event was well organized",
			Type: model.QuestionTypeLikert,
			Options: []string{
				"Strongly Agree", "Agree", "Neutral", "Disagree", "Strongly Disagree",
			},
			Required: true,
			Order:    0,
		},
		{
			ID:      uuid.New().String(),
			Text:    "How was the sound quality?",
			Type:    model.QuestionTypeSingleChoice,
			Options: []string{"Excellent", "Good", "Okay", "Poor"},
			Order:   1,
		},
		{
			ID:      uuid.New().String(),
			Text:    "Which parts did you enjoy?",
			Type:    model.QuestionTypeMultiChoice,
			Options: []string{"Music", "Food", "Talks", "Workshops"},
			Order:   2,
		},
		{
			ID:   uuid.New().String(),
			Text: "Split next year's lineup budget",
			Type: model.QuestionTypeBudget,
			Budget: &model.BudgetPayload{
				Total: 100,
				Targets: []model.BudgetTarget{
					{ID: "headliners", Name: "Headliners"},
					{ID: "local-acts", Name: "Local acts"},
				},
			},
			Order: 3,
		},
		{
			ID:    uuid.New().String(),
			Text:  "Anything else you want to tell us?",
			Type:  model.QuestionTypeLongText,
			Order: 4,
		},
	}

	panorama := model.Panorama{
		OrganizerID: "org_demo",
		Name:        "Harbor Lights Festival 2026",
		Description: "Post-event feedback for the spring edition.",
		EventName:   "Harbor Lights Festival",
		Questions:   questions,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	result, err := db.Collection("panoramas").InsertOne(ctx, panorama)
	if err != nil {
		log.Fatalf("Failed to insert panorama: %v", err)
	}
	panorama.ID = result.InsertedID.(primitive.ObjectID).Hex()

	likertValues := []string{"Strongly Agree", "Agree", "Agree", "Neutral", "Disagree"}
	soundValues := []string{"Excellent", "Good", "Good", "Okay", "Poor"}
	multiValues := []string{"Music", "Food", "Talks", "Workshops"}
	comments := []string{
		"great show great vibe",
		"parking was chaos but the music made up for it",
		"more food stalls please",
		"sound quality near the back stage was poor",
		"loved the local acts this year",
	}

	var rows []interface{}
	for i := 0; i < 25; i++ {
		submissionID := uuid.New().String()
		now := time.Now()

		rows = append(rows, row(panorama.ID, questions[0].ID, submissionID, likertValues[rand.Intn(len(likertValues))], now))
		rows = append(rows, row(panorama.ID, questions[1].ID, submissionID, soundValues[rand.Intn(len(soundValues))], now))

		// Two multi-choice picks per respondent, one row each
		for _, pick := range rand.Perm(len(multiValues))[:2] {
			rows = append(rows, row(panorama.ID, questions[2].ID, submissionID, multiValues[pick], now))
		}

		headliners := float64(rand.Intn(101))
		allocations, _ := json.Marshal(map[string]float64{
			"headliners": headliners,
			"local-acts": 100 - headliners,
		})
		rows = append(rows, row(panorama.ID, questions[3].ID, submissionID, string(allocations), now))

		rows = append(rows, row(panorama.ID, questions[4].ID, submissionID, comments[rand.Intn(len(comments))], now))
	}

	if _, err := db.Collection("responses").InsertMany(ctx, rows); err != nil {
		log.Fatalf("Failed to insert responses: %v", err)
	}

	fmt.Printf("Seeded panorama %s with %d response rows\n", panorama.ID, len(rows))
}

func row(panoramaID, questionID, submissionID, text string, at time.Time) model.Response {
	return model.Response{
		ID:           uuid.New().String(),
		PanoramaID:   panoramaID,
		QuestionID:   questionID,
		SubmissionID: submissionID,
		Text:         text,
		CreatedAt:    at,
	}
}
