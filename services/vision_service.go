package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const analysisPrompt = `Analyze the food in this image and respond with a single JSON object:
{"totalCalories": number, "foodItems": [{"name": string, "portion": string, "calories": number}], "macronutrients": {"protein": number, "carbs": number, "fats": number}, "healthNotes": string, "confidence": "High"|"Medium"|"Low"}
Estimate portions from what is visible. Do not add any text outside the JSON object.`

type VisionService struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewVisionService initializes the adapter with credentials from the environment.
func NewVisionService() *VisionService {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &VisionService{
		apiKey:  os.Getenv("GEMINI_API_KEY"),
		model:   model,
		baseURL: "https://generativelanguage.googleapis.com/v1beta",
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// MealAnalysis is the fully-normalized nutrition record for one photo.
// Every field is defaulted deterministically, so a partially-malformed
// model response never produces a partially-populated value.
type MealAnalysis struct {
	TotalCalories  float64            `json:"totalCalories"`
	FoodItems      []AnalyzedFoodItem `json:"foodItems"`
	Macronutrients Macronutrients     `json:"macronutrients"`
	HealthNotes    string             `json:"healthNotes"`
	Confidence     string             `json:"confidence"`
	FullText       string             `json:"-"` // raw model reply, for the analysis record
}

type AnalyzedFoodItem struct {
	Name     string  `json:"name"`
	Portion  string  `json:"portion"`
	Calories float64 `json:"calories"`
}

type Macronutrients struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fats    float64 `json:"fats"`
}

type generateContent struct {
	Parts []map[string]any `json:"parts"`
}

type generateContentRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// AnalyzeMealImage sends the photo to the vision model and parses the reply
// into a MealAnalysis. Single attempt; the caller bounds it with ctx.
func (s *VisionService) AnalyzeMealImage(ctx context.Context, base64Image string) (*MealAnalysis, error) {
	data := stripDataURLPrefix(base64Image)

	req := generateContentRequest{
		Contents: []generateContent{{
			Parts: []map[string]any{
				{"inline_data": map[string]string{"mime_type": "image/jpeg", "data": data}},
				{"text": analysisPrompt},
			},
		}},
	}

	b, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analysis payload: %w", err)
	}

	u := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, &UpstreamError{Service: "vision", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{Service: "vision", Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{Service: "vision", Err: fmt.Errorf("API error %d: %s", resp.StatusCode, string(body))}
	}

	var gr generateContentResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return nil, &UpstreamError{Service: "vision", Err: fmt.Errorf("malformed API envelope: %w", err)}
	}
	if len(gr.Candidates) == 0 {
		return nil, &AnalysisParseError{RawText: string(body)}
	}

	var sb strings.Builder
	for _, p := range gr.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return parseAnalysisText(sb.String())
}

// parseAnalysisText turns a model reply into a normalized MealAnalysis.
// The model sometimes wraps its JSON in code fences or prose: strip known
// wrappers, attempt a strict parse, then fall back to the first balanced
// {...} substring. Both failing is an AnalysisParseError.
func parseAnalysisText(raw string) (*MealAnalysis, error) {
	candidate := stripCodeFences(raw)

	var parsed MealAnalysis
	if err := json.Unmarshal([]byte(candidate), &parsed); err != nil {
		obj, ok := firstBalancedObject(raw)
		if !ok {
			return nil, &AnalysisParseError{RawText: raw}
		}
		parsed = MealAnalysis{}
		if err := json.Unmarshal([]byte(obj), &parsed); err != nil {
			return nil, &AnalysisParseError{RawText: raw}
		}
	}

	normalizeAnalysis(&parsed)
	parsed.FullText = raw
	return &parsed, nil
}

func normalizeAnalysis(a *MealAnalysis) {
	if a.TotalCalories < 0 {
		a.TotalCalories = 0
	}
	if a.FoodItems == nil {
		a.FoodItems = []AnalyzedFoodItem{}
	}
	for i := range a.FoodItems {
		if a.FoodItems[i].Calories < 0 {
			a.FoodItems[i].Calories = 0
		}
	}
	switch a.Confidence {
	case "High", "Medium", "Low":
	default:
		a.Confidence = "Medium"
	}
}

func stripDataURLPrefix(s string) string {
	if strings.HasPrefix(s, "data:") {
		if i := strings.Index(s, ","); i >= 0 {
			return s[i+1:]
		}
	}
	return s
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// the fence may carry a language tag ("```json")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// firstBalancedObject extracts the first brace-balanced {...} substring,
// honoring JSON string literals and escapes.
func firstBalancedObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
