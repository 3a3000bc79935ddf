// Package insight derives the dominant emotion, its usual activity and the
// emotional battery from a user's records.
//
// Every entry point expects records newest-first. "Recent" always means the
// first records of the supplied slice.
package insight

import (
	"fmt"
	"strings"
	"time"

	"github.com/yourname/moodjournal/internal"
	"github.com/yourname/moodjournal/internal/catalog"
	"github.com/yourname/moodjournal/internal/mentor"
)

type Engine struct {
	cat    *catalog.Catalog
	rnd    mentor.Rand
	mentor *mentor.Engine
}

func NewEngine(cat *catalog.Catalog, rnd mentor.Rand, m *mentor.Engine) *Engine {
	return &Engine{cat: cat, rnd: rnd, mentor: m}
}

// Compute never mutates its inputs and never fails.
func (e *Engine) Compute(records []internal.EmotionRecord, profile *internal.UserProfile, activities []internal.Activity, now time.Time) internal.Insights {
	res := internal.Insights{
		MentorNote: e.mentor.GenerateNote(records, profile, now),
	}

	if len(records) == 0 {
		res.EnergyLevel = e.cat.Battery.Start
		res.BatteryAdvice = e.cat.Texts.DefaultAdvice
		return res
	}

	top := DominantEmotion(records)
	emotion := e.cat.ResolveEmotion(top)
	res.TopEmotion = &emotion

	activity := catalog.ResolveActivity(activities, e.activityFor(records, top))
	res.MostFrequentActivity = &activity

	res.EnergyLevel = Energy(e.cat.Battery, records)
	res.BatteryAdvice = e.Advice(res.EnergyLevel, records, activities)
	return res
}

// DominantEmotion returns the most frequent emotion. Ties go to the emotion
// that first appears in records.
func DominantEmotion(records []internal.EmotionRecord) internal.EmotionID {
	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = string(r.EmotionID)
	}
	return internal.EmotionID(mostFrequent(ids))
}

func (e *Engine) activityFor(records []internal.EmotionRecord, emotion internal.EmotionID) string {
	var ids []string
	for _, r := range records {
		if r.EmotionID == emotion {
			ids = append(ids, r.ActivityID)
		}
	}
	if len(ids) == 0 {
		return records[0].ActivityID
	}
	return mostFrequent(ids)
}

func mostFrequent(ids []string) string {
	counts := make(map[string]int, len(ids))
	var order []string
	for _, id := range ids {
		if _, seen := counts[id]; !seen {
			order = append(order, id)
		}
		counts[id]++
	}

	best, bestCount := "", 0
	for _, id := range order {
		if counts[id] > bestCount {
			best, bestCount = id, counts[id]
		}
	}
	return best
}

// Energy runs the battery accumulator over the most recent Window records,
// oldest of them first, clamping after every record.
func Energy(rules catalog.BatteryRules, records []internal.EmotionRecord) int {
	n := len(records)
	if n > rules.Window {
		n = rules.Window
	}

	energy := rules.Start
	for i := n - 1; i >= 0; i-- {
		r := records[i]
		if rules.Restorative[r.ActivityID] {
			energy += rules.RestorativeBoost
		}
		if rules.Draining[r.ActivityID] {
			energy -= rules.DrainingCost
		}
		if rules.Positive[r.EmotionID] {
			energy += rules.PositiveBoost
		}
		if rules.Negative[r.EmotionID] {
			energy -= rules.NegativeCost
		}
		energy = clamp(energy, rules.Min, rules.Max)
	}
	return energy
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Advice picks the battery message for an energy level.
func (e *Engine) Advice(energy int, records []internal.EmotionRecord, activities []internal.Activity) string {
	rules, t := e.cat.Battery, e.cat.Texts
	switch {
	case energy >= rules.Max:
		if len(t.Praises) == 0 {
			return t.DefaultAdvice
		}
		return t.Praises[e.rnd.Intn(len(t.Praises))]
	case energy < rules.CriticalBelow:
		return fmt.Sprintf(t.CriticalAdvice, strings.ToLower(e.rechargeLabel(records, activities)))
	case energy < rules.CautionBelow:
		return t.CautionAdvice
	default:
		return t.DefaultAdvice
	}
}

func (e *Engine) rechargeLabel(records []internal.EmotionRecord, activities []internal.Activity) string {
	rules := e.cat.Battery
	id := rules.FallbackRechargeActivity
	for _, r := range records {
		if rules.Recharge[r.EmotionID] {
			id = r.ActivityID
			break
		}
	}
	if a, ok := catalog.FindActivity(activities, id); ok && a.Label != "" {
		return a.Label
	}
	return rules.FallbackRechargeLabel
}
