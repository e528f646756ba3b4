package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"quizhub/internal/common"
)

// CompletionClient is the single outbound call the feedback feature needs.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// FeedbackCache stores generated feedback keyed by the graded answers it was
// produced for. Get returns "" on a miss.
type FeedbackCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

type FeedbackService struct {
	completions CompletionClient
	cache       FeedbackCache
	cacheTTL    time.Duration
}

func NewFeedbackService(completions CompletionClient, cache FeedbackCache, cacheTTL time.Duration) *FeedbackService {
	return &FeedbackService{completions: completions, cache: cache, cacheTTL: cacheTTL}
}

type FeedbackAnswer struct {
	Question      string `json:"question"`
	StudentAnswer string `json:"studentAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
}

const feedbackSystemPrompt = "You are a strict but encouraging teacher reviewing a graded quiz. " +
	"For each wrong answer, explain in two or three sentences why the student's choice is incorrect " +
	"and what makes the correct answer right. Address the student directly."

// BulkFeedback generates feedback for the wrong answers in a graded attempt.
// Correct answers are skipped; if nothing was wrong, no completion request is
// made at all. Cache failures degrade to calling the API.
func (s *FeedbackService) BulkFeedback(ctx context.Context, answers []FeedbackAnswer) (string, error) {
	wrong := make([]FeedbackAnswer, 0, len(answers))
	for _, a := range answers {
		if !a.IsCorrect {
			wrong = append(wrong, a)
		}
	}
	if len(wrong) == 0 {
		return "All answers are correct. Nothing to review!", nil
	}

	key := feedbackCacheKey(wrong)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key); err != nil {
			log.Printf("WARN: feedback cache lookup failed: %v", err)
		} else if cached != "" {
			return cached, nil
		}
	}

	prompt := buildFeedbackPrompt(wrong)
	feedback, err := s.completions.Complete(ctx, feedbackSystemPrompt, prompt)
	if err != nil {
		return "", common.Errorf("feedback generation failed: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, feedback, s.cacheTTL); err != nil {
			log.Printf("WARN: feedback cache store failed: %v", err)
		}
	}
	return feedback, nil
}

func buildFeedbackPrompt(wrong []FeedbackAnswer) string {
	prompt := "Review the following wrong answers and give feedback for each.\n"
	for i, a := range wrong {
		prompt += fmt.Sprintf(
			"\nQuestion %d:\n%s\nStudent's Answer: %s\nCorrect Answer: %s\nFeedback:\n",
			i+1, a.Question, a.StudentAnswer, a.CorrectAnswer,
		)
	}
	return prompt
}

func feedbackCacheKey(wrong []FeedbackAnswer) string {
	payload, err := json.Marshal(wrong)
	if err != nil {
		// Marshal of plain structs cannot fail; keep a stable fallback anyway.
		return "feedback:unkeyed"
	}
	sum := sha256.Sum256(payload)
	return "feedback:" + hex.EncodeToString(sum[:])
}
