package domain

// Category is the classification bucket that selects a nudge list.
type Category string

const (
	CategoryHeadache   Category = "headache"
	CategoryBack       Category = "back"
	CategoryEye        Category = "eye"
	CategoryWrist      Category = "wrist"
	CategoryFocus      Category = "focus"
	CategoryLeg        Category = "leg"
	CategoryStressed   Category = "stressed"
	CategoryTired      Category = "tired"
	CategoryDistracted Category = "distracted"
	CategoryCreative   Category = "creative"
	CategoryDefault    Category = "default"
)

type Tier string

const (
	TierConcern Tier = "concern"
	TierMood    Tier = "mood"
	TierDefault Tier = "default"
)

// Tier reports which classification tier the category belongs to.
func (c Category) Tier() Tier {
	switch c {
	case CategoryHeadache, CategoryBack, CategoryEye, CategoryWrist, CategoryFocus, CategoryLeg:
		return TierConcern
	case CategoryStressed, CategoryTired, CategoryDistracted, CategoryCreative:
		return TierMood
	default:
		return TierDefault
	}
}

// IsConcern is true for physical and cognitive complaint categories.
func (c Category) IsConcern() bool {
	return c.Tier() == TierConcern
}

// Label returns a human-readable name for display.
func (c Category) Label() string {
	switch c {
	case CategoryHeadache:
		return "Headache"
	case CategoryBack:
		return "Back & posture"
	case CategoryEye:
		return "Eye strain"
	case CategoryWrist:
		return "Wrist & hand"
	case CategoryFocus:
		return "Focus & attention"
	case CategoryLeg:
		return "Leg circulation"
	case CategoryStressed:
		return "Stressed"
	case CategoryTired:
		return "Tired"
	case CategoryDistracted:
		return "Distracted"
	case CategoryCreative:
		return "Creative"
	default:
		return "General"
	}
}

// ValidCategories is the canonical set of accepted category strings.
var ValidCategories = map[string]bool{
	"headache": true, "back": true, "eye": true, "wrist": true,
	"focus": true, "leg": true, "stressed": true, "tired": true,
	"distracted": true, "creative": true, "default": true,
}
