package serviceImp

import (
	"context"
	"errors"
	"strings"
	"testing"

	"agriai/entities"
	"agriai/pkg/advisor"
	"agriai/pkg/ai"
)

type fakeChatRepo struct {
	messages []entities.ChatMessage
}

func (r *fakeChatRepo) Create(m *entities.ChatMessage) error {
	m.MessageID = uint(len(r.messages) + 1)
	r.messages = append(r.messages, *m)
	return nil
}

func (r *fakeChatRepo) History(fieldID uint) ([]entities.ChatMessage, error) {
	return r.messages, nil
}

func (r *fakeChatRepo) Recent(fieldID uint, n int) ([]entities.ChatMessage, error) {
	if len(r.messages) > n {
		return r.messages[len(r.messages)-n:], nil
	}
	return r.messages, nil
}

type fakeLLM struct {
	reply string
	err   error
	seen  []ai.Message
}

func (f *fakeLLM) GeneratePlanJSON(context.Context, string, string) (string, error) {
	return "", errors.New("not used")
}

func (f *fakeLLM) ChatReply(_ context.Context, messages []ai.Message) (string, error) {
	f.seen = messages
	return f.reply, f.err
}

type fakeRecs struct{ crops []advisor.ScoredCrop }

func (f *fakeRecs) LatestForFarmer(uint) ([]advisor.ScoredCrop, error) { return f.crops, nil }

func testField() *entities.Field {
	return &entities.Field{FieldID: 1, FarmerID: 7, CropName: "Paddy", SoilType: "clay"}
}

func TestReplyPersistsBothMessages(t *testing.T) {
	repo := &fakeChatRepo{}
	svc := New(&fakeLLM{reply: "Water early in the morning."}, repo, nil, nil)

	userMsg, assistantMsg, err := svc.Reply(context.Background(), testField(), 7, "when to water?")
	if err != nil {
		t.Fatalf("reply: %v", err)
	}
	if userMsg.Role != "user" || assistantMsg.Role != "assistant" {
		t.Fatalf("roles: %s / %s", userMsg.Role, assistantMsg.Role)
	}
	if len(repo.messages) != 2 {
		t.Fatalf("stored %d messages, want 2", len(repo.messages))
	}
	if assistantMsg.Content != "Water early in the morning." {
		t.Fatalf("assistant content %q", assistantMsg.Content)
	}
}

func TestReplyFallsBackWhenGenerationFails(t *testing.T) {
	repo := &fakeChatRepo{}
	svc := New(&fakeLLM{err: errors.New("backend down")}, repo, nil, nil)

	_, assistantMsg, err := svc.Reply(context.Background(), testField(), 7, "how much irrigation?")
	if err != nil {
		t.Fatalf("chat must not fail on generation errors: %v", err)
	}
	if !strings.Contains(assistantMsg.Content, "Irrigate") {
		t.Fatalf("expected rule-based irrigation reply, got %q", assistantMsg.Content)
	}
}

func TestReplyFallsBackOnEmptyGeneration(t *testing.T) {
	svc := New(&fakeLLM{reply: "  <s></s>  "}, &fakeChatRepo{}, nil, nil)
	_, assistantMsg, err := svc.Reply(context.Background(), testField(), 7, "thanks")
	if err != nil {
		t.Fatalf("reply: %v", err)
	}
	if !strings.Contains(assistantMsg.Content, "welcome") {
		t.Fatalf("got %q", assistantMsg.Content)
	}
}

func TestGenerateIncludesContextAndHistory(t *testing.T) {
	repo := &fakeChatRepo{messages: []entities.ChatMessage{
		{FieldID: 1, Role: "user", Content: "earlier question"},
		{FieldID: 1, Role: "assistant", Content: "earlier answer"},
	}}
	recs := &fakeRecs{crops: []advisor.ScoredCrop{{
		CropName: "Paddy", SuitabilityScore: 91, RiskScore: "Low",
		EstimatedProfitMin: 12000, EstimatedProfitMax: 28000,
	}}}
	llm := &fakeLLM{reply: "ok"}
	svc := New(llm, repo, nil, recs)

	if _, _, err := svc.Reply(context.Background(), testField(), 7, "next question"); err != nil {
		t.Fatalf("reply: %v", err)
	}

	var hasContext, hasHistory bool
	for _, m := range llm.seen {
		if m.Role == "system" && strings.Contains(m.Content, "Paddy: 91/100 score") {
			hasContext = true
		}
		if m.Content == "earlier answer" {
			hasHistory = true
		}
	}
	if !hasContext {
		t.Fatalf("recommendation context missing from prompt: %+v", llm.seen)
	}
	if !hasHistory {
		t.Fatalf("conversation history missing from prompt")
	}
	if llm.seen[len(llm.seen)-1].Content != "next question" {
		t.Fatalf("user message must come last")
	}
}

func TestPrepareUserMessageRewritesAttachments(t *testing.T) {
	got := prepareUserMessage("[Image attached: leaf.jpg] spots on leaves", "Cotton")
	if !strings.Contains(got, "shared a image") && !strings.Contains(got, "shared an image") {
		t.Fatalf("got %q", got)
	}
	if !strings.Contains(got, "Cotton") {
		t.Fatalf("crop hint missing: %q", got)
	}
	if !strings.Contains(got, "spots on leaves") {
		t.Fatalf("original message dropped: %q", got)
	}

	plain := prepareUserMessage("just a question", "Cotton")
	if plain != "just a question" {
		t.Fatalf("plain message rewritten: %q", plain)
	}
}

func TestCleanReply(t *testing.T) {
	got := cleanReply("<s>[INST] hello [/INST]  world   again</s>")
	if got != "hello world again" {
		t.Fatalf("got %q", got)
	}

	long := strings.Repeat("word ", 150) + "End."
	cleaned := cleanReply(long)
	if len(cleaned) > 605 {
		t.Fatalf("reply not truncated: %d chars", len(cleaned))
	}
}
