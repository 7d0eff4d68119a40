// Loads interview questions from a CSV export into the questions table.
//
// The loader accepts both the raw survey export and the pre-cleaned file:
// when Company_Normalized / Question_Category columns are present they
// are used as-is, otherwise both are derived from the raw columns.
// The load is skipped when the table already has rows.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"io"
	"os"

	"productsiksha-backend/config"
	"productsiksha-backend/dataset"
	"productsiksha-backend/models"
	"productsiksha-backend/repository"

	"github.com/sirupsen/logrus"
)

// Column headers of the survey export.
const (
	colTimestamp     = "Timestamp"
	colCompany       = "Company"
	colQuestion      = "What was the interview question?"
	colQuestionType  = "Question Type (e.g. Product, Strategy)"
	colInterviewType = "Interview Type"
	colComments      = "Comments (e.g. your approach)"
	colJobTitle      = "What was the job title for this question?"
	colNormalized    = "Company_Normalized"
	colCategory      = "Question_Category"
)

func main() {
	log := logrus.New()

	csvPath := flag.String("csv", "PM_Interview_Questions_Cleaned.csv", "path to the questions CSV")
	force := flag.Bool("force", false, "load even if the questions table is not empty")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	store, err := repository.NewStoreFromURL(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close()

	if err := store.InitSchema(ctx); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	count, err := store.CountQuestions(ctx)
	if err != nil {
		log.Fatalf("Failed to count questions: %v", err)
	}
	if count > 0 && !*force {
		log.Infof("Questions already loaded (%d rows), nothing to do", count)
		return
	}

	questions, err := readQuestions(*csvPath)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *csvPath, err)
	}

	if err := store.InsertQuestions(ctx, questions); err != nil {
		log.Fatalf("Failed to insert questions: %v", err)
	}

	log.Infof("Loaded %d questions", len(questions))
}

func readQuestions(path string) ([]models.Question, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	field := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var questions []models.Question
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		// Skip rows without enough content to be a question
		if len(row) < 4 {
			continue
		}

		q := models.Question{
			Timestamp:         field(row, colTimestamp),
			Company:           field(row, colCompany),
			Question:          field(row, colQuestion),
			QuestionType:      field(row, colQuestionType),
			InterviewType:     field(row, colInterviewType),
			Comments:          field(row, colComments),
			JobTitle:          field(row, colJobTitle),
			CompanyNormalized: field(row, colNormalized),
			QuestionCategory:  field(row, colCategory),
		}
		if q.CompanyNormalized == "" {
			q.CompanyNormalized = dataset.NormalizeCompany(q.Company)
		}
		if q.QuestionCategory == "" {
			q.QuestionCategory = dataset.CategorizeQuestion(q.QuestionType)
		}

		questions = append(questions, q)
	}

	return questions, nil
}
