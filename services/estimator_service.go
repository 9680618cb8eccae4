package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Gaganabm30/fitconnect/config"
	"github.com/Gaganabm30/fitconnect/models"
)

// EstimatorService resolves a free-text meal description into calorie
// estimates. The primary path asks a hosted model for strict JSON; any
// failure degrades to the offline keyword table.
type EstimatorService struct {
	client  *http.Client
	apiKey  string
	baseURL string
	model   string
}

func NewEstimatorService() *EstimatorService {
	return &EstimatorService{
		client:  &http.Client{Timeout: 15 * time.Second},
		apiKey:  os.Getenv("GEMINI_API_KEY"),
		baseURL: "https://generativelanguage.googleapis.com",
		model:   "gemini-1.5-flash",
	}
}

type EstimateItem struct {
	FoodName      string `json:"foodName"`
	Quantity      string `json:"quantity"`
	Calories      string `json:"calories"`
	Confidence    string `json:"confidence"`
	FitnessImpact string `json:"fitnessImpact,omitempty"`
}

type EstimateResult struct {
	Items         []EstimateItem `json:"parsedFood"`
	TotalCalories string         `json:"totalCalories"`
	Confidence    string         `json:"confidence"`
	Explanation   string         `json:"explanation"`
}

var motivationalLines = []string{
	"Every meal logged is a step towards your goal!",
	"Consistency beats perfection - keep tracking!",
	"Fuel smart, train hard.",
	"Small choices add up. Nice logging!",
	"You can't manage what you don't measure - well done!",
}

// Estimate runs the model-or-fallback pipeline and appends the result to the
// user's FoodLog regardless of which path produced it.
func (s *EstimatorService) Estimate(userID uint, query string) (*models.FoodLog, error) {
	result, err := s.callModel(query)
	if err != nil {
		result, err = EstimateOffline(query)
		if err != nil {
			return nil, err
		}
	}

	result.Explanation = strings.TrimSpace(result.Explanation + " " + motivationalLines[rand.Intn(len(motivationalLines))])

	entry := models.FoodLog{
		UserID:        userID,
		InputQuery:    query,
		TotalCalories: result.TotalCalories,
		Confidence:    result.Confidence,
		Explanation:   result.Explanation,
	}
	for _, it := range result.Items {
		entry.Items = append(entry.Items, models.FoodLogItem{
			FoodName:      it.FoodName,
			Quantity:      it.Quantity,
			Calories:      it.Calories,
			Confidence:    it.Confidence,
			FitnessImpact: it.FitnessImpact,
		})
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func ListFoodLogs(userID uint) ([]models.FoodLog, error) {
	var logs []models.FoodLog
	err := config.DB.
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&logs).Error
	return logs, err
}

// ---------- model path ----------

const estimatePrompt = `You are a nutrition assistant. Analyze this meal description: %q.
Respond with STRICT JSON only, no prose, no markdown, in this shape:
{"parsedFood":[{"foodName":"...","quantity":"...","calories":"...","confidence":"Low|Medium|High","fitnessImpact":"..."}],"totalCalories":"...","confidence":"Low|Medium|High","explanation":"..."}`

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (s *EstimatorService) callModel(query string) (*EstimateResult, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	payload := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]any{
				{"text": fmt.Sprintf(estimatePrompt, query)},
			}},
		},
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal estimate payload: %w", err)
	}

	u := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)
	req, err := http.NewRequest("POST", u, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create estimate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("model request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read model response error: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model api error (%d): %s", resp.StatusCode, string(respBytes))
	}

	var out generateContentResponse
	if err := json.Unmarshal(respBytes, &out); err != nil {
		return nil, fmt.Errorf("decode model response error: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty model response")
	}

	text := stripCodeFences(out.Candidates[0].Content.Parts[0].Text)

	var result EstimateResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, fmt.Errorf("model returned malformed JSON: %w", err)
	}
	if len(result.Items) == 0 {
		return nil, fmt.Errorf("model recognized no food items")
	}
	return &result, nil
}

// Models love wrapping JSON in ```json fences even when told not to.
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	}
	return strings.TrimSpace(text)
}

// ---------- offline fallback ----------

type foodFact struct {
	Calories int
	Impact   string
}

// Per-serving calories for common foods, keyed by singular lowercase name.
// Two-word entries are matched against adjacent token pairs.
var foodTable = map[string]foodFact{
	"chapati":       {104, "Neutral"},
	"roti":          {104, "Neutral"},
	"dal":           {150, "Good source of protein"},
	"rice":          {205, "High carb - good pre-workout"},
	"brown rice":    {215, "Complex carbs"},
	"idli":          {58, "Light and easy to digest"},
	"dosa":          {133, "Neutral"},
	"paratha":       {260, "Calorie dense"},
	"paneer":        {265, "Good source of protein"},
	"egg":           {78, "Good source of protein"},
	"banana":        {105, "Quick energy"},
	"apple":         {95, "Good fiber"},
	"orange":        {62, "Vitamin C"},
	"milk":          {122, "Protein and calcium"},
	"curd":          {98, "Probiotic"},
	"yogurt":        {98, "Probiotic"},
	"bread":         {79, "Neutral"},
	"butter":        {102, "Calorie dense"},
	"chicken":       {231, "Lean protein"},
	"chicken curry": {290, "Protein with added fat"},
	"fish":          {136, "Lean protein"},
	"salad":         {33, "Low calorie - great anytime"},
	"samosa":        {262, "Fried - limit portions"},
	"pizza":         {285, "Calorie dense"},
	"burger":        {354, "Calorie dense"},
	"oat":           {150, "Complex carbs"},
	"almond":        {7, "Healthy fats"},
	"peanut butter": {188, "Healthy fats, calorie dense"},
	"tea":           {30, "Neutral"},
	"coffee":        {5, "Negligible calories"},
}

// ErrNoFoodsRecognized is surfaced to the user as a 500 with a clear message.
var ErrNoFoodsRecognized = errors.New("could not recognize any food items in the description")

// EstimateOffline is the deterministic keyword fallback. A leading numeric
// token multiplies the next recognized food; trailing standalone numbers are
// ignored; trailing 's' is stripped before lookup; an adjacent token pair is
// tried when a single token misses, and a pair match consumes both tokens.
func EstimateOffline(query string) (*EstimateResult, error) {
	tokens := strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == ','
	})

	result := &EstimateResult{Confidence: "Low"}
	total := 0
	quantity := 0

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if n, err := strconv.Atoi(tok); err == nil {
			if i == len(tokens)-1 {
				break // trailing standalone number, not a quantity
			}
			quantity = n
			continue
		}

		name := singularize(tok)

		fact, ok := foodTable[name]
		if !ok && i+1 < len(tokens) {
			pair := name + " " + singularize(tokens[i+1])
			if pairFact, pairOK := foodTable[pair]; pairOK {
				fact, ok = pairFact, true
				name = pair
				i++ // pair match consumes both tokens
			}
		}
		if !ok {
			continue // unmatched tokens are silently skipped
		}

		qty := 1
		if quantity > 0 {
			qty = quantity
			quantity = 0
		}
		calories := fact.Calories * qty
		total += calories

		result.Items = append(result.Items, EstimateItem{
			FoodName:      name,
			Quantity:      strconv.Itoa(qty),
			Calories:      strconv.Itoa(calories),
			Confidence:    "Medium",
			FitnessImpact: fact.Impact,
		})
	}

	if len(result.Items) == 0 {
		return nil, ErrNoFoodsRecognized
	}

	result.TotalCalories = strconv.Itoa(total)
	result.Explanation = "Estimated offline from the builtin food table."
	return result, nil
}

func singularize(token string) string {
	if len(token) > 1 && strings.HasSuffix(token, "s") {
		return strings.TrimSuffix(token, "s")
	}
	return token
}
