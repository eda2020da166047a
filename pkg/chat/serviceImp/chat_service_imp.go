// pkg/chat/serviceImp/chat_service_imp.go

package serviceImp

import (
	"context"
	"fmt"
	"log"
	"strings"

	"agriai/entities"
	"agriai/pkg/advisor"
	"agriai/pkg/ai"
	"agriai/pkg/chat/repository"
	"agriai/pkg/chat/rules"
)

const systemPrompt = `You are AgriAI, an agriculture expert helping Indian farmers with crop advice, fertilizers, soil health, irrigation, pest control, and weather-based recommendations.

Provide practical, actionable advice in simple language. Consider local Indian farming conditions, soil types, climate zones, and traditional practices. Always prioritize sustainable and cost-effective solutions.

When user messages include attachment markers like [Image attached: ...] or [Video attached: ...]:
- Acknowledge the attachment briefly.
- Do NOT say "I can't view/access videos/images".
- Give immediate useful guidance based on crop context and common field issues.
- Ask up to 2 concise follow-up questions if visual details are needed.`

type kbSearcher interface {
	Search(query string, k int) ([]entities.KBChunk, error)
}

type recommendationSource interface {
	LatestForFarmer(farmerID uint) ([]advisor.ScoredCrop, error)
}

type ChatSvc struct {
	llm  ai.Client
	repo repository.ChatRepository
	kb   kbSearcher
	recs recommendationSource
}

func New(llm ai.Client, repo repository.ChatRepository, kb kbSearcher, recs recommendationSource) *ChatSvc {
	return &ChatSvc{llm: llm, repo: repo, kb: kb, recs: recs}
}

// Reply stores the farmer message, produces an assistant reply (generated
// when a backend is configured, rule-based otherwise), and stores it. Chat
// never fails: any generation problem degrades silently to the rule table.
func (s *ChatSvc) Reply(ctx context.Context, field *entities.Field, farmerID uint, content string) (*entities.ChatMessage, *entities.ChatMessage, error) {
	// Generate before persisting so the history window holds only prior turns.
	reply := s.generate(ctx, field, farmerID, content)

	userMsg := &entities.ChatMessage{FieldID: field.FieldID, Role: "user", Content: content}
	if err := s.repo.Create(userMsg); err != nil {
		return nil, nil, err
	}
	assistantMsg := &entities.ChatMessage{FieldID: field.FieldID, Role: "assistant", Content: reply}
	if err := s.repo.Create(assistantMsg); err != nil {
		return nil, nil, err
	}
	return userMsg, assistantMsg, nil
}

func (s *ChatSvc) History(fieldID uint) ([]entities.ChatMessage, error) {
	return s.repo.History(fieldID)
}

func (s *ChatSvc) generate(ctx context.Context, field *entities.Field, farmerID uint, content string) string {
	prepared := prepareUserMessage(content, field.CropName)

	messages := []ai.Message{{Role: "system", Content: systemPrompt}}
	if c := s.buildContext(field, farmerID); c != "" {
		messages = append(messages, ai.Message{Role: "system", Content: "Context: " + c})
	}

	// Last 6 turns of prior conversation.
	if history, err := s.repo.Recent(field.FieldID, 6); err == nil {
		for _, m := range history {
			messages = append(messages, ai.Message{Role: m.Role, Content: m.Content})
		}
	}
	messages = append(messages, ai.Message{Role: "user", Content: prepared})

	text, err := s.llm.ChatReply(ctx, messages)
	if err != nil {
		log.Printf("[chat] generation unavailable, using rule-based reply: %v", err)
		return rules.Reply(prepared, field.CropName)
	}
	text = cleanReply(text)
	if text == "" {
		return rules.Reply(prepared, field.CropName)
	}
	return text
}

// buildContext assembles crop, latest recommendations, and knowledge-base
// snippets into a compact context block. All sources are optional.
func (s *ChatSvc) buildContext(field *entities.Field, farmerID uint) string {
	var parts []string
	if field.CropName != "" {
		parts = append(parts, "Current crop: "+field.CropName)
	}

	if s.recs != nil {
		if recs, err := s.recs.LatestForFarmer(farmerID); err == nil && len(recs) > 0 {
			parts = append(parts, "\nRecommended crops with scores:")
			if len(recs) > 3 {
				recs = recs[:3]
			}
			for _, r := range recs {
				parts = append(parts, fmt.Sprintf("- %s: %d/100 score, Risk: %s, Profit: ₹%d-₹%d",
					r.CropName, r.SuitabilityScore, r.RiskScore, r.EstimatedProfitMin, r.EstimatedProfitMax))
			}
		}
	}

	if s.kb != nil && field.CropName != "" {
		query := field.CropName + " " + field.SoilType + " irrigation fertilizer pest India"
		if chunks, err := s.kb.Search(query, 3); err == nil {
			budget := 0
			for _, ch := range chunks {
				if budget += len(ch.Text); budget > 2000 {
					break
				}
				parts = append(parts, "\nField note: "+ch.Text)
			}
		}
	}

	return strings.Join(parts, "\n")
}

// prepareUserMessage rewrites attachment-only messages into prompts the model
// can answer usefully.
func prepareUserMessage(userMessage, cropName string) string {
	raw := strings.TrimSpace(userMessage)
	if raw == "" {
		return raw
	}

	lower := strings.ToLower(raw)
	hasVideo := strings.Contains(lower, "[video attached:")
	hasImage := strings.Contains(lower, "[image attached:")
	if !hasVideo && !hasImage {
		return raw
	}

	attachmentType := "image"
	if hasVideo {
		attachmentType = "video"
	}
	cropHint := cropName
	if cropHint == "" {
		cropHint = "the current crop"
	}
	return fmt.Sprintf("User shared a %s from the field. Provide practical advice for %s based on likely issues, "+
		"then ask up to 2 short questions to confirm symptoms. Original user message: %s", attachmentType, cropHint, raw)
}

// cleanReply strips instruct-format tokens, collapses whitespace, and
// truncates near 500 chars at a sentence boundary.
func cleanReply(text string) string {
	for _, tok := range []string{"<s>", "</s>", "[INST]", "[/INST]"} {
		text = strings.ReplaceAll(text, tok, "")
	}
	text = strings.Join(strings.Fields(text), " ")

	if len(text) > 500 {
		cut := -1
		limit := len(text)
		if limit > 600 {
			limit = 600
		}
		for i := 500; i < limit; i++ {
			if text[i] == '.' || text[i] == '!' || text[i] == '?' {
				cut = i + 1
				break
			}
		}
		if cut > 0 {
			text = text[:cut]
		} else {
			text = text[:500] + "..."
		}
	}
	return strings.TrimSpace(text)
}
