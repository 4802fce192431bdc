// Package planner generates hourly day plans and short motivational lines
// through the Gemini API, then normalizes the model output into the strict
// 24-hour shape the rest of the app expects.
package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"github.com/habito-app/habito/internal/constants"
	"github.com/habito-app/habito/internal/logger"
	"github.com/habito-app/habito/internal/models"
)

var (
	// ErrMissingAPIKey means no credential was supplied.
	ErrMissingAPIKey = errors.New("no Gemini API key configured, run 'habito apikey set'")
	// ErrQuotaExceeded means the API rejected the call for rate or quota reasons.
	ErrQuotaExceeded = errors.New("Gemini API quota exceeded, try again later")
	// ErrMalformedResponse means the model reply could not be parsed.
	ErrMalformedResponse = errors.New("could not parse the generated schedule")
	// ErrEmptyResponse means the reply parsed but contained no usable hours.
	ErrEmptyResponse = errors.New("the generated schedule contained no usable entries")
)

// Generator produces a raw hourly plan for a date. Implementations return
// entries as the model produced them; callers normalize.
type Generator interface {
	GenerateSchedule(ctx context.Context, dateKey, focus string) ([]RawEntry, error)
	Insight(ctx context.Context, completed, total int) string
}

// RawEntry is one model-produced hour before normalization.
type RawEntry struct {
	Hour     int    `json:"hour"`
	Activity string `json:"activity"`
	Category string `json:"category"`
}

// Gemini is the production Generator.
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Gemini{client: client, model: constants.GeminiModel}, nil
}

// BuildPrompt renders the schedule-generation instruction. A blank focus
// asks for a generic balanced day rather than echoing an empty goal.
func BuildPrompt(dateKey, focus string) string {
	var b strings.Builder
	b.WriteString("Generate an hourly schedule for " + dateKey + " as a JSON array. ")
	if strings.TrimSpace(focus) == "" {
		b.WriteString("Plan a balanced day mixing deep work, health, rest and personal time. ")
	} else {
		b.WriteString("The main focus of the day is: " + strings.TrimSpace(focus) + ". ")
	}
	b.WriteString("Each element has an integer \"hour\" (0-23), a short \"activity\" string, ")
	b.WriteString("and a \"category\" that is one of work, health, rest, focus, other. ")
	b.WriteString("Cover the waking hours; late night and early morning should be rest.")
	return b.String()
}

func scheduleSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"hour":     {Type: genai.TypeInteger},
				"activity": {Type: genai.TypeString},
				"category": {Type: genai.TypeString},
			},
			Required: []string{"hour", "activity", "category"},
		},
	}
}

// GenerateSchedule asks the model for a structured day plan.
func (g *Gemini) GenerateSchedule(ctx context.Context, dateKey, focus string) ([]RawEntry, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		genai.Text(BuildPrompt(dateKey, focus)),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   scheduleSchema(),
		})
	if err != nil {
		return nil, classifyAPIError(err)
	}
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyResponse
	}
	var entries []RawEntry
	if err := json.Unmarshal([]byte(text), &entries); err != nil {
		logger.Warn("Unparseable schedule response", "error", err)
		return nil, ErrMalformedResponse
	}
	return entries, nil
}

// Insight asks for a one-line motivational quote. Failures degrade to a
// canned line; this call must never block a dashboard render on an error.
func (g *Gemini) Insight(ctx context.Context, completed, total int) string {
	prompt := fmt.Sprintf(
		"I completed %d of %d habits today. Reply with a single short motivational sentence, no quotes, no preamble.",
		completed, total)
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		logger.Debug("Insight request failed", "error", err)
		return FallbackInsight(completed, total)
	}
	line := strings.TrimSpace(resp.Text())
	if line == "" {
		return FallbackInsight(completed, total)
	}
	return line
}

// FallbackInsight is the offline stand-in for Insight.
func FallbackInsight(completed, total int) string {
	if total > 0 && completed >= total {
		return "Keep pushing forward."
	}
	return "Consistency is the key to mastery."
}

func classifyAPIError(err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "resource_exhausted") {
		return fmt.Errorf("%w: %v", ErrQuotaExceeded, err)
	}
	return fmt.Errorf("schedule generation failed: %w", err)
}

// Normalize converts raw model entries into exactly 24 schedule items, one
// per hour. Out-of-range hours are dropped, the first entry wins on
// duplicate hours, categories are coerced onto the closed set, and hours the
// model skipped are filled: the 23:00-05:59 window sleeps, everything else
// is free time. A response with zero usable entries is an error so callers
// never overwrite a day with filler.
func Normalize(entries []RawEntry) ([]models.ScheduleItem, error) {
	byHour := map[int]models.ScheduleItem{}
	for _, e := range entries {
		if e.Hour < 0 || e.Hour > 23 {
			continue
		}
		if _, dup := byHour[e.Hour]; dup {
			continue
		}
		activity := strings.TrimSpace(e.Activity)
		if activity == "" {
			continue
		}
		byHour[e.Hour] = models.ScheduleItem{
			ID:       uuid.New().String(),
			Hour:     e.Hour,
			Activity: activity,
			Category: models.NormalizeScheduleCategory(e.Category),
		}
	}
	if len(byHour) == 0 {
		return nil, ErrEmptyResponse
	}

	items := make([]models.ScheduleItem, 0, 24)
	for hour := 0; hour < 24; hour++ {
		if item, ok := byHour[hour]; ok {
			items = append(items, item)
			continue
		}
		filler := models.ScheduleItem{
			ID:       uuid.New().String(),
			Hour:     hour,
			Activity: "Free time",
			Category: constants.ScheduleOther,
		}
		if hour >= 23 || hour < 6 {
			filler.Activity = "Sleep"
			filler.Category = constants.ScheduleRest
		}
		items = append(items, filler)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Hour < items[j].Hour })
	return items, nil
}
