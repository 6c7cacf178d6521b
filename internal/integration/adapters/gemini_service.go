// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/shopspring/decimal"
	"google.golang.org/api/option"

	"github.com/moneytree/backend/internal/application/adapter"
	"github.com/moneytree/backend/internal/domain/entity"
)

// GeminiService implements the AIAdvisor contract using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini advisor instance.
func NewGeminiService(apiKey, modelName string) *GeminiService {
	if modelName == "" {
		modelName = "gemini-2.5-flash-lite"
	}
	return &GeminiService{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini service is configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Categorize classifies a free-text expense description.
func (s *GeminiService) Categorize(ctx context.Context, amount decimal.Decimal, contextText string) (*adapter.CategorizationResult, error) {
	text, err := s.generate(ctx, genai.Text(s.buildCategorizePrompt(amount, contextText)))
	if err != nil {
		return nil, err
	}

	var raw struct {
		Category    string `json:"category"`
		SubCategory string `json:"subCategory"`
		Question    string `json:"question"`
	}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, text)
	}

	category := entity.Category(raw.Category)
	if !category.ValidForExpense() {
		return nil, fmt.Errorf("response category %q is not a valid expense category", raw.Category)
	}
	if strings.TrimSpace(raw.SubCategory) == "" {
		return nil, fmt.Errorf("response is missing subCategory")
	}

	return &adapter.CategorizationResult{
		Category:    category,
		SubCategory: raw.SubCategory,
		Question:    raw.Question,
	}, nil
}

// ExtractBill reads the total amount, category, and items off a photographed bill.
func (s *GeminiService) ExtractBill(ctx context.Context, imageBytes []byte) (*adapter.BillExtractionResult, error) {
	if len(imageBytes) == 0 {
		return nil, fmt.Errorf("bill image is empty")
	}

	text, err := s.generate(ctx,
		genai.ImageData("jpeg", imageBytes),
		genai.Text(s.buildExtractBillPrompt()),
	)
	if err != nil {
		return nil, err
	}

	var raw struct {
		Amount      float64  `json:"amount"`
		Category    string   `json:"category"`
		SubCategory string   `json:"subCategory"`
		Items       []string `json:"items"`
	}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, text)
	}

	if raw.Amount <= 0 {
		return nil, fmt.Errorf("response amount %v is not positive", raw.Amount)
	}
	category := entity.Category(raw.Category)
	if !category.ValidForExpense() {
		return nil, fmt.Errorf("response category %q is not a valid expense category", raw.Category)
	}
	if strings.TrimSpace(raw.SubCategory) == "" {
		return nil, fmt.Errorf("response is missing subCategory")
	}

	return &adapter.BillExtractionResult{
		Amount:      decimal.NewFromFloat(raw.Amount),
		Category:    category,
		SubCategory: raw.SubCategory,
		Items:       raw.Items,
	}, nil
}

// GenerateInsights produces supportive narrative insights over recent activity.
func (s *GeminiService) GenerateInsights(ctx context.Context, recent []entity.Transaction, balance decimal.Decimal) ([]entity.AIInsight, error) {
	prompt, err := s.buildInsightsPrompt(recent, balance)
	if err != nil {
		return nil, err
	}

	text, err := s.generate(ctx, genai.Text(prompt))
	if err != nil {
		return nil, err
	}

	var raw []struct {
		Title   string `json:"title"`
		Message string `json:"message"`
		Type    string `json:"type"`
	}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, text)
	}

	insights := make([]entity.AIInsight, 0, len(raw))
	for _, item := range raw {
		insightType := entity.InsightType(item.Type)
		if !insightType.Valid() {
			return nil, fmt.Errorf("response insight type %q is invalid", item.Type)
		}
		if strings.TrimSpace(item.Title) == "" || strings.TrimSpace(item.Message) == "" {
			return nil, fmt.Errorf("response insight is missing title or message")
		}
		insights = append(insights, entity.AIInsight{
			Title:   item.Title,
			Message: item.Message,
			Type:    insightType,
		})
	}

	return insights, nil
}

// generate runs a single model call and returns the raw text content.
func (s *GeminiService) generate(ctx context.Context, parts ...genai.Part) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}
	if textContent == "" {
		return "", fmt.Errorf("no text content in response")
	}

	// Clean the response (remove markdown code blocks if present)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	return textContent, nil
}

func expenseCategoryList() string {
	names := make([]string, 0, len(entity.ExpenseCategories()))
	for _, category := range entity.ExpenseCategories() {
		names = append(names, string(category))
	}
	return strings.Join(names, ", ")
}

// buildCategorizePrompt creates the categorization prompt.
func (s *GeminiService) buildCategorizePrompt(amount decimal.Decimal, contextText string) string {
	var sb strings.Builder

	sb.WriteString("Categorize this expense for an Indian college student.\n")
	fmt.Fprintf(&sb, "Amount: %s\n", amount.String())
	if strings.TrimSpace(contextText) == "" {
		contextText = "None"
	}
	fmt.Fprintf(&sb, "User Input: %q\n\n", contextText)

	sb.WriteString(`STRICT CATEGORIZATION RULES:
1. Food: ANY meals, snacks, chai, coffee, food delivery, or mess bills.
2. Shopping: ANY apparel, footwear, electronics, or personal care.
3. Transport: auto, rickshaw, metro, bus, cab, petrol.
4. Habits: cigarettes, alcohol, pan masala, or similar regular indulgences.
5. Entertainment: movies, gaming, concert tickets, or outings.
6. Miscellaneous: ONLY if the input is completely nonsensical.

`)
	fmt.Fprintf(&sb, "Available Categories: %s.\n\n", expenseCategoryList())

	sb.WriteString(`INSTRUCTIONS FOR THE FOLLOW-UP QUESTION:
- Language: strictly English.
- Tone: witty, lighthearted, supportive "college buddy" vibe.
- Safety: absolutely no shaming or judgmental language about the spending.
- Examples: Food: "Brain fuel for the next lecture?" Shopping: "New drip for the campus walk?"

Respond with a single JSON object:
{
  "category": "one of the available categories",
  "subCategory": "a specific short name, e.g. Starbucks Coffee, Metro Recharge",
  "question": "the witty, friendly English follow-up"
}

FORMAT: return only the JSON object, no additional text.`)

	return sb.String()
}

// buildExtractBillPrompt creates the bill extraction prompt.
func (s *GeminiService) buildExtractBillPrompt() string {
	var sb strings.Builder

	sb.WriteString(`Extract the total amount and items from this bill.
Categorize for an Indian student budget; keep any descriptive text supportive.

`)
	fmt.Fprintf(&sb, "Categories: %s.\n\n", expenseCategoryList())
	sb.WriteString(`Respond with a single JSON object:
{
  "amount": total amount as a number,
  "category": "one of the categories",
  "subCategory": "a specific short name for the purchase",
  "items": ["line items from the bill"]
}

FORMAT: return only the JSON object, no additional text.`)

	return sb.String()
}

// insightTransaction is the compact transaction shape sent to the model.
type insightTransaction struct {
	Amount    string `json:"amount"`
	Category  string `json:"cat"`
	Sub       string `json:"sub"`
	Type      string `json:"type"`
	IsFriends bool   `json:"isFriends,omitempty"`
	Date      string `json:"date"`
}

// buildInsightsPrompt creates the insight generation prompt.
func (s *GeminiService) buildInsightsPrompt(recent []entity.Transaction, balance decimal.Decimal) (string, error) {
	compact := make([]insightTransaction, 0, len(recent))
	for _, t := range recent {
		compact = append(compact, insightTransaction{
			Amount:    t.Amount.String(),
			Category:  string(t.Category),
			Sub:       t.SubCategory,
			Type:      string(t.Type),
			IsFriends: t.IsForFriends,
			Date:      t.Timestamp.Format("2006-01-02"),
		})
	}

	encoded, err := json.Marshal(compact)
	if err != nil {
		return "", fmt.Errorf("failed to encode transactions: %w", err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Analyze these Indian student expenses: %s. Current balance: %s.\n\n", encoded, balance.String())
	sb.WriteString(`TONE AND EMOTIONAL INTELLIGENCE RULES:
1. Language: strictly English.
2. SOCIAL SPENDING: never tell the user to stop spending time with friends. Frame it as "Social Investment" or "Shared Moments".
3. Humor: friendly, brotherly, supportive, with lighthearted college-life analogies.
4. Safety: no judgment, no shaming. Help the user navigate their month successfully.

FOCUS AREAS:
- Social balance: is the shared-moment spending sustainable?
- Burn rate: is the allowance pacing well?
- Wins: praise good balance.

Generate 3 supportive insights. Respond with a JSON array:
[{ "title": "...", "message": "...", "type": "warning" | "info" | "success" }]

FORMAT: return only the JSON array, no additional text.`)

	return sb.String(), nil
}
