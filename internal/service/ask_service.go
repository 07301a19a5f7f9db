package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"duoscale/internal/domain"
	"duoscale/internal/llm"
)

// AskService answers free-text questions about a Summary. It prefers the
// hosted model when one is configured and silently degrades to the
// deterministic fallback engine on any model failure.
type AskService struct {
	llmClient   llm.Client
	prompts     AskPromptBuilder
	fallback    *FallbackAnswerer
	transcripts *TranscriptRegistry
	logger      *zap.Logger
}

// NewAskService builds an AskService. llmClient may be nil, in which case
// every question goes through the fallback engine.
func NewAskService(llmClient llm.Client, fallback *FallbackAnswerer, transcripts *TranscriptRegistry, logger *zap.Logger) *AskService {
	return &AskService{
		llmClient:   llmClient,
		fallback:    fallback,
		transcripts: transcripts,
		logger:      logger,
	}
}

// Ask validates the request, records the exchange in the session transcript,
// and returns the final answer with the wrapper-owned disclaimer appended.
func (s *AskService) Ask(ctx context.Context, sessionID, question string, summary *domain.Summary) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", domain.ErrEmptyQuestion
	}
	if summary == nil {
		return "", domain.ErrNoSummary
	}

	if sessionID != "" {
		s.transcripts.Append(sessionID, domain.RoleUser, question)
	}

	answer := s.generate(ctx, question, *summary) + "\n\n" + AnswerDisclaimer

	if sessionID != "" {
		s.transcripts.Append(sessionID, domain.RoleAssistant, answer)
	}
	return answer, nil
}

func (s *AskService) generate(ctx context.Context, question string, summary domain.Summary) string {
	if s.llmClient == nil {
		return s.fallback.Answer(summary, question)
	}

	prompt, err := s.prompts.BuildAskPrompt(summary, question)
	if err != nil {
		s.logger.Warn("build prompt failed, using fallback", zap.Error(err))
		return s.fallback.Answer(summary, question)
	}

	raw, err := s.llmClient.Generate(ctx, s.prompts.Instruction(), prompt)
	if err != nil {
		s.logger.Warn("llm generate failed, using fallback", zap.Error(err))
		return s.fallback.Answer(summary, question)
	}

	cleaned := CleanModelAnswer(raw)
	if cleaned == "" {
		s.logger.Warn("llm answer empty after cleanup, using fallback")
		return s.fallback.Answer(summary, question)
	}
	return cleaned
}

// Transcript returns the session's messages in append order.
func (s *AskService) Transcript(sessionID string) []domain.ChatMessage {
	return s.transcripts.Messages(sessionID)
}
