// Package classify maps free-text mood and complaint descriptions onto
// a nudge category using an ordered keyword rule chain.
package classify

import (
	"strings"

	"github.com/alexanderramin/peak/internal/domain"
)

// Rule binds a category to the keywords that select it.
type Rule struct {
	Category domain.Category
	Keywords []string
}

// concernRules are scanned before any mood rule.
var concernRules = []Rule{
	{domain.CategoryHeadache, []string{"head", "headache", "migraine"}},
	{domain.CategoryBack, []string{"back", "spine", "neck", "posture"}},
	{domain.CategoryEye, []string{"eye", "vision", "sight", "screen"}},
	{domain.CategoryWrist, []string{"wrist", "hand", "finger", "carpal"}},
	{domain.CategoryFocus, []string{"focus", "attention", "distract", "concentrate"}},
	{domain.CategoryLeg, []string{"leg", "foot", "knee", "ankle", "asleep"}},
}

var moodRules = []Rule{
	{domain.CategoryStressed, []string{"stress", "anxious", "worried", "overwhelm", "pressure"}},
	{domain.CategoryTired, []string{"tired", "exhaust", "fatigue", "sleepy", "drowsy"}},
	{domain.CategoryDistracted, []string{"distract", "focus", "concentrate", "attention"}},
	{domain.CategoryCreative, []string{"creative", "inspired", "imaginative"}},
}

// Result is the outcome of scanning one input.
type Result struct {
	Category domain.Category
	Concern  bool
	// Keyword is the matched keyword, empty for the default category.
	Keyword string
	// Normalized is the lower-cased input that was scanned.
	Normalized string
}

// Rules returns the full chain in scan order.
func Rules() []Rule {
	out := make([]Rule, 0, len(concernRules)+len(moodRules))
	for _, r := range concernRules {
		out = append(out, Rule{Category: r.Category, Keywords: append([]string(nil), r.Keywords...)})
	}
	for _, r := range moodRules {
		out = append(out, Rule{Category: r.Category, Keywords: append([]string(nil), r.Keywords...)})
	}
	return out
}

// Normalize lower-cases text and substitutes the neutral marker for
// empty or whitespace-only input.
func Normalize(text string) string {
	if strings.TrimSpace(text) == "" {
		return domain.NeutralInput
	}
	return strings.ToLower(text)
}

// Detect scans text against concern rules, then mood rules, and returns
// the first match. Nothing matching resolves to the default category.
func Detect(text string) Result {
	norm := Normalize(text)
	if r, kw, ok := scan(concernRules, norm); ok {
		return Result{Category: r.Category, Concern: true, Keyword: kw, Normalized: norm}
	}
	if r, kw, ok := scan(moodRules, norm); ok {
		return Result{Category: r.Category, Keyword: kw, Normalized: norm}
	}
	return Result{Category: domain.CategoryDefault, Normalized: norm}
}

// Classify returns only the category for text.
func Classify(text string) domain.Category {
	return Detect(text).Category
}

func scan(rules []Rule, norm string) (Rule, string, bool) {
	for _, r := range rules {
		for _, kw := range r.Keywords {
			if strings.Contains(norm, kw) {
				return r, kw, true
			}
		}
	}
	return Rule{}, "", false
}
