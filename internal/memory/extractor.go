// ABOUTME: Extractor pulls memorable facts out of user messages with a fixed rule table
// ABOUTME: Each rule fires at most once per message; rules are evaluated independently
package memory

import (
	"regexp"
	"strings"

	"github.com/purposewaze/relate-coach/internal/models"
)

// extractionRule maps a memory type to its trigger patterns and importance.
// The first matching pattern fires the rule once; importance weights are
// rule-specific constants.
type extractionRule struct {
	memType    models.MemoryType
	patterns   []*regexp.Regexp
	importance float64
}

var extractionRules = []extractionRule{
	{
		memType: models.MemoryBreakthrough,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)it (actually |finally |really )?(worked|clicked)`),
			regexp.MustCompile(`(?i)breakthrough|for the first time`),
			regexp.MustCompile(`(?i)finally (understood|got it|connected|talked)`),
		},
		importance: 0.9,
	},
	{
		memType: models.MemorySetback,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)got worse|fell apart|back to square one`),
			regexp.MustCompile(`(?i)relapsed?|blew up again|happened again`),
		},
		importance: 0.85,
	},
	{
		memType: models.MemoryTriggerIdentified,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)sets? me off|triggers? me`),
			regexp.MustCompile(`(?i)i (lose|lost) it when|makes me (furious|rage|shut down)`),
		},
		importance: 0.8,
	},
	{
		memType: models.MemoryGoalSet,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)my goal|we decided to`),
			regexp.MustCompile(`(?i)i('m| am)? going to (start|stop|work on)`),
			regexp.MustCompile(`(?i)i want to (be|get|become|fix|change)`),
		},
		importance: 0.8,
	},
	{
		memType: models.MemoryTechniqueTried,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)i tried (the|that|your)`),
			regexp.MustCompile(`(?i)we practiced|i used the|did the exercise`),
			regexp.MustCompile(`(?i)breathing exercise|time-?out|i-statement`),
		},
		importance: 0.75,
	},
	{
		memType: models.MemoryPatternDetected,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)every time|always (ends?|happens?)`),
			regexp.MustCompile(`(?i)(i|we) keep (doing|having|falling)`),
			regexp.MustCompile(`(?i)same (fight|argument|thing) (over|again)`),
		},
		importance: 0.75,
	},
	{
		memType: models.MemoryStrengthObserved,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)i stayed calm|i didn'?t (yell|react|snap)`),
			regexp.MustCompile(`(?i)proud of (myself|how)|i handled (it|that)`),
		},
		importance: 0.7,
	},
	{
		memType: models.MemoryContextRevealed,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)when i was (a kid|young|growing up)|i grew up`),
			regexp.MustCompile(`(?i)my (father|mother|dad|mom) (was|used to|never)`),
			regexp.MustCompile(`(?i)i('ve| have) never told`),
		},
		importance: 0.7,
	},
	{
		memType: models.MemoryHomeworkAssigned,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)you (gave|assigned|suggested)`),
			regexp.MustCompile(`(?i)the assignment|my homework`),
		},
		importance: 0.7,
	},
	{
		memType: models.MemoryInsight,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)i realized?|it hit me`),
			regexp.MustCompile(`(?i)i (understand|see) now|makes sense now`),
		},
		importance: 0.65,
	},
}

// ExtractedMemory is one fired rule before persistence
type ExtractedMemory struct {
	MemoryType models.MemoryType
	MemoryText string
	Importance float64
	Excerpt    string
}

// ExtractFromMessage runs the rule table over one user message.
// A message can yield multiple memories, one per fired rule type.
func ExtractFromMessage(message string) []ExtractedMemory {
	var extracted []ExtractedMemory

	for _, rule := range extractionRules {
		for _, pattern := range rule.patterns {
			loc := pattern.FindStringIndex(message)
			if loc == nil {
				continue
			}
			extracted = append(extracted, ExtractedMemory{
				MemoryType: rule.memType,
				MemoryText: captureSentence(message, loc[0]),
				Importance: rule.importance,
				Excerpt:    truncate(message, 200),
			})
			break // first matching pattern fires the rule once
		}
	}

	return extracted
}

// captureSentence returns the sentence containing the match offset, or the
// first 200 characters when no usable sentence is found
func captureSentence(message string, offset int) string {
	start := 0
	for _, sentence := range splitSentences(message) {
		end := start + len(sentence.text)
		if offset >= start && offset < end+sentence.sepLen {
			trimmed := strings.TrimSpace(sentence.text)
			if len(trimmed) > 10 {
				return trimmed
			}
		}
		start = end + sentence.sepLen
	}
	return truncate(message, 200)
}

type sentencePart struct {
	text   string
	sepLen int
}

// splitSentences splits on sentence terminators while tracking offsets
func splitSentences(text string) []sentencePart {
	var parts []sentencePart
	last := 0
	for i, r := range text {
		if r == '.' || r == '!' || r == '?' {
			parts = append(parts, sentencePart{text: text[last:i], sepLen: 1})
			last = i + 1
		}
	}
	if last < len(text) {
		parts = append(parts, sentencePart{text: text[last:], sepLen: 0})
	}
	return parts
}

func truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	return s[:max]
}
