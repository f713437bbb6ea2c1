// Package suggest drafts task descriptions with a text-generation model.
package suggest

import (
	"context"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/dmitrijs2005/taskboard/internal/logging"
)

const (
	NoKeyPrefix     = "AI generation requires an API Key. Please describe: "
	FailureFallback = "Could not generate description automatically."
	maxSentences    = 3
)

// Generator turns a prompt into text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Suggester never fails: problems are logged and replaced by fixed text.
type Suggester struct {
	gen    Generator
	logger logging.Logger
}

// New returns a Suggester; gen may be nil when no API key is configured.
func New(gen Generator, logger logging.Logger) *Suggester {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Suggester{gen: gen, logger: logger.With("module", "suggest")}
}

// FromAPIKey builds a Suggester backed by Gemini, or one without a generator
// when apiKey is empty.
func FromAPIKey(apiKey, model string, logger logging.Logger) *Suggester {
	if apiKey == "" {
		return New(nil, logger)
	}
	return New(NewGeminiClient(apiKey, model), logger)
}

// APIKeyFromEnv returns GEMINI_API_KEY, falling back to API_KEY.
func APIKeyFromEnv() string {
	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		return k
	}
	return os.Getenv("API_KEY")
}

func Prompt(title string) string {
	return fmt.Sprintf("Write a concise, professional task description (max 3 sentences) for a task titled: %q. Use an active voice.", title)
}

// Suggest returns a description for a task titled title. A blank title
// yields an empty string without contacting the generator, and so does an
// empty model response; callers keep their current description then.
func (s *Suggester) Suggest(ctx context.Context, title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}
	if s.gen == nil {
		return NoKeyPrefix + title
	}

	text, err := s.gen.Generate(ctx, Prompt(title))
	if err != nil {
		s.logger.Warn(ctx, "description generation failed",
			"error", fmt.Errorf("%w: %v", common.ErrGenerationUnavailable, err))
		return FailureFallback
	}
	return firstSentences(strings.TrimSpace(text), maxSentences)
}

// firstSentences keeps at most n sentences, each ended by '.', '!' or '?'
// followed by whitespace or the end of text.
func firstSentences(text string, n int) string {
	runes := []rune(text)
	count := 0
	for i, r := range runes {
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue
		}
		count++
		if count == n {
			return string(runes[:i+1])
		}
	}
	return text
}
