// Package mentor writes the short supportive note shown on the home screen.
package mentor

import (
	"fmt"
	"time"

	"github.com/yourname/moodjournal/internal"
	"github.com/yourname/moodjournal/internal/catalog"
)

// Rand is the subset of *math/rand.Rand the engine needs.
type Rand interface {
	Intn(n int) int
}

type Engine struct {
	cat *catalog.Catalog
	rnd Rand
}

func NewEngine(cat *catalog.Catalog, rnd Rand) *Engine {
	return &Engine{cat: cat, rnd: rnd}
}

// GenerateNote inspects only records[0]; records must be newest-first.
func (e *Engine) GenerateNote(records []internal.EmotionRecord, profile *internal.UserProfile, now time.Time) internal.MentorNote {
	t := e.cat.Texts
	note := internal.MentorNote{
		Greeting:        e.greeting(profile, now),
		Footnote:        pick(e.rnd, t.Quotes),
		Recommendations: []internal.Recommendation{},
	}

	if len(records) == 0 {
		note.Content = t.Welcome
		note.ActionLabel = t.WelcomeAction
		note.ActionTab = catalog.ActionLog
		return note
	}

	last := records[0]
	note.Recommendations = e.cat.TipsFor(last.EmotionID)

	note.Content = t.Supportive
	for _, rule := range e.cat.MentorRules {
		if rule.Emotion != last.EmotionID || (rule.Activity != "" && rule.Activity != last.ActivityID) {
			continue
		}
		note.Content = rule.Content
		note.ActionLabel = rule.ActionLabel
		note.ActionTab = rule.ActionTab
		break
	}
	return note
}

func (e *Engine) greeting(profile *internal.UserProfile, now time.Time) string {
	t := e.cat.Texts
	name := t.DefaultName
	if profile != nil && profile.Name != "" {
		name = profile.Name
	}

	var tmpl string
	switch h := now.Hour(); {
	case h < 5:
		tmpl = t.LateNight
	case h < 12:
		tmpl = t.Morning
	case h < 18:
		tmpl = t.Afternoon
	default:
		tmpl = t.Evening
	}
	return fmt.Sprintf(tmpl, name)
}

func pick(rnd Rand, options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[rnd.Intn(len(options))]
}
