package service

import (
	"testing"

	"duoscale/internal/domain"
)

func TestTranscriptAppendOrder(t *testing.T) {
	r := NewTranscriptRegistry()
	r.Append("s1", domain.RoleUser, "질문 1")
	r.Append("s1", domain.RoleAssistant, "답변 1")
	r.Append("s2", domain.RoleUser, "다른 세션")

	msgs := r.Messages("s1")
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Role != domain.RoleUser || msgs[0].Content != "질문 1" {
		t.Fatalf("unexpected first message: %+v", msgs[0])
	}
	if msgs[1].Role != domain.RoleAssistant {
		t.Fatalf("unexpected second message: %+v", msgs[1])
	}
	if msgs[0].ID == "" || msgs[0].ID == msgs[1].ID {
		t.Fatalf("expected unique non-empty ids: %q %q", msgs[0].ID, msgs[1].ID)
	}
}

func TestTranscriptUnknownSession(t *testing.T) {
	r := NewTranscriptRegistry()
	if msgs := r.Messages("missing"); len(msgs) != 0 {
		t.Fatalf("expected empty log, got %+v", msgs)
	}
}

func TestTranscriptMessagesReturnsCopy(t *testing.T) {
	r := NewTranscriptRegistry()
	r.Append("s1", domain.RoleUser, "원본")

	msgs := r.Messages("s1")
	msgs[0].Content = "변조"

	if got := r.Messages("s1")[0].Content; got != "원본" {
		t.Fatalf("registry state mutated: %q", got)
	}
}
