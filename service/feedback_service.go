package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"productsiksha-backend/storage"

	"github.com/google/generative-ai-go/genai"
	"github.com/sirupsen/logrus"
)

// ErrQuestionRequired is returned when a feedback request has no question.
var ErrQuestionRequired = errors.New("question is required")

const defaultFeedbackPrompt = "Please analyze my answer and provide feedback."

const coachPersona = `You are an expert PM interview coach having a conversation with a candidate.
Your role is to help them prepare for product management interviews through constructive, actionable feedback.

Be conversational and encouraging but honest. Adapt your response to what the candidate asks:
- If they share an answer, provide structured feedback (Strengths, Areas for Improvement, Suggested Framework)
- If they ask a clarifying question, answer it directly
- If they share a diagram or image, analyze it and provide feedback on their visual communication
- Keep responses focused and not too long

Remember the context: This is about the PM interview question provided.`

// FeedbackService forwards a question/answer exchange to the generative
// AI service. Without a configured client it answers in demo mode.
type FeedbackService struct {
	client  *genai.Client
	model   string
	archive storage.Archive
	log     *logrus.Logger
}

// FeedbackServiceOption is a functional option for FeedbackService
type FeedbackServiceOption func(*FeedbackService)

// FeedbackWithGeminiClient sets the Gemini client; nil enables demo mode
func FeedbackWithGeminiClient(client *genai.Client) FeedbackServiceOption {
	return func(s *FeedbackService) {
		s.client = client
	}
}

// FeedbackWithModel sets the generation model name
func FeedbackWithModel(model string) FeedbackServiceOption {
	return func(s *FeedbackService) {
		s.model = model
	}
}

// FeedbackWithArchive sets the attachment archive
func FeedbackWithArchive(archive storage.Archive) FeedbackServiceOption {
	return func(s *FeedbackService) {
		s.archive = archive
	}
}

// FeedbackWithLogger sets the logger
func FeedbackWithLogger(log *logrus.Logger) FeedbackServiceOption {
	return func(s *FeedbackService) {
		s.log = log
	}
}

// NewFeedbackService creates a new feedback service
func NewFeedbackService(opts ...FeedbackServiceOption) *FeedbackService {
	s := &FeedbackService{
		model: "gemini-2.0-flash-exp",
		log:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AttachedFile is one uploaded attachment: a declared media type plus a
// base64 payload, optionally carrying a data-URL prefix.
type AttachedFile struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Base64 string `json:"base64"`
}

// FeedbackRequest is a question/answer exchange to forward.
type FeedbackRequest struct {
	Question string
	Answer   string
	Prompt   string
	Files    []AttachedFile
}

// FeedbackResult carries the feedback text and generation metadata.
type FeedbackResult struct {
	Feedback       string
	Model          string
	FilesProcessed int
}

// GetFeedback builds the coaching context and performs one blocking
// generation call. Image attachments are forwarded as binary payloads
// and archived best-effort; other file types are skipped.
func (s *FeedbackService) GetFeedback(ctx context.Context, req FeedbackRequest) (*FeedbackResult, error) {
	if strings.TrimSpace(req.Question) == "" {
		return nil, ErrQuestionRequired
	}

	prompt := req.Prompt
	if prompt == "" {
		prompt = defaultFeedbackPrompt
	}

	userRequest := prompt
	if strings.TrimSpace(req.Answer) == "" {
		userRequest = fmt.Sprintf(
			"I haven't written an answer yet. %s Please provide guidance on how to approach this question.",
			prompt,
		)
	}

	if s.client == nil {
		return s.demoFeedback(req), nil
	}

	answer := req.Answer
	if answer == "" {
		answer = "(No answer provided yet)"
	}

	coachContext := fmt.Sprintf(`%s

**Interview Question:** %s

**Candidate's Answer/Message:** %s

**Candidate's Request:** %s
`, coachPersona, req.Question, answer, userRequest)

	parts := []genai.Part{genai.Text(coachContext)}

	processed := 0
	for _, file := range req.Files {
		if !strings.HasPrefix(file.Type, "image/") || file.Base64 == "" {
			continue
		}
		data, err := decodeAttachment(file.Base64)
		if err != nil {
			s.log.WithField("file", file.Name).Warnf("Skipping attachment: %v", err)
			continue
		}
		s.archiveAttachment(ctx, file, data)
		parts = append(parts, genai.Blob{MIMEType: file.Type, Data: data})
		processed++
	}

	parts = append(parts, genai.Text("\nPlease provide your response:"))

	model := s.client.GenerativeModel(s.model)
	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return nil, fmt.Errorf("generating feedback: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return nil, errors.New("generating feedback: empty response")
	}

	return &FeedbackResult{
		Feedback:       text,
		Model:          s.model,
		FilesProcessed: processed,
	}, nil
}

func (s *FeedbackService) demoFeedback(req FeedbackRequest) *FeedbackResult {
	fileMention := ""
	if len(req.Files) > 0 {
		fileMention = fmt.Sprintf(
			"\n\n*Note: You attached %d file(s). In demo mode, file analysis is not available.*",
			len(req.Files),
		)
	}

	feedback := fmt.Sprintf(`**AI Feedback** (Demo Mode - No API Key)

Thank you for your message! Here's some structured feedback:

**Your Question Context:**
This is about: %s...

**Strengths:**
- You're actively practicing PM interview questions
- Seeking feedback shows growth mindset

**Guidance:**
- Structure your answer using frameworks like CIRCLES, STAR, or RICE
- Include specific metrics and success measures
- Consider multiple stakeholder perspectives

**Next Steps:**
- Try answering the question before asking for feedback
- Focus on quantifiable outcomes%s

*Note: Connect your Google Gemini API key for personalized AI feedback.*`,
		truncate(req.Question, 100), fileMention)

	return &FeedbackResult{Feedback: feedback, Model: "demo"}
}

// archiveAttachment stores an attachment for later inspection. Archive
// failures are logged, never surfaced to the caller.
func (s *FeedbackService) archiveAttachment(ctx context.Context, file AttachedFile, data []byte) {
	if s.archive == nil {
		return
	}
	if _, err := s.archive.Save(ctx, file.Name, file.Type, data); err != nil {
		s.log.WithField("file", file.Name).Warnf("Failed to archive attachment: %v", err)
	}
}

// decodeAttachment decodes a base64 payload, stripping a data-URL
// prefix ("data:image/png;base64,...") when present.
func decodeAttachment(encoded string) ([]byte, error) {
	if i := strings.Index(encoded, ","); i >= 0 {
		encoded = encoded[i+1:]
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decoding base64 payload: %w", err)
	}
	return data, nil
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
