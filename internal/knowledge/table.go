// Package knowledge holds the fixed nudge table that every plan draws
// from. The table is built once at package init and never mutated;
// accessors hand out copies.
package knowledge

import "github.com/alexanderramin/peak/internal/domain"

// Version identifies the revision of the nudge table.
const Version = "2024.1"

// FillerNudge pads a plan when a category has fewer nudges than requested.
const FillerNudge = "Take a moment to stand up, stretch, and reset your posture."

var table = map[domain.Category][]string{
	domain.CategoryHeadache: {
		"Gently massage your temples in small circles for 30 seconds.",
		"Take a short break from screens and close your eyes for 1 minute.",
		"Drink a full glass of water to stay hydrated.",
		"Try gentle neck stretches by slowly tilting your head side to side.",
		"Apply light pressure to the area between your eyebrows for 20 seconds.",
	},
	domain.CategoryBack: {
		"Gently stretch your lower back by leaning forward in your chair.",
		"Stand up and do a gentle spinal twist to release back tension.",
		"Try the cat-cow stretch to mobilize your spine and relieve pressure.",
		"Stretch your psoas by doing a gentle lunge while standing.",
		"Sit up straight and do shoulder rolls to align your posture.",
	},
	domain.CategoryEye: {
		"Look at something 20 feet away for 20 seconds (20-20-20 rule).",
		"Gently massage around your eyes to reduce eye strain.",
		"Close your eyes and cover them with warm palms for 30 seconds.",
		"Blink rapidly 15 times to refresh your eyes and clear your vision.",
		"Look far left, right, up, down, holding each for 3 seconds.",
	},
	domain.CategoryWrist: {
		"Stretch your wrists by extending arms and gently pulling fingers back.",
		"Make fists then spread your fingers wide 5 times to improve circulation.",
		"Rotate your wrists in circles 10 times in each direction.",
		"Gently shake out your hands to release tension.",
		"Press your palms together in prayer position to stretch your wrists.",
	},
	domain.CategoryFocus: {
		"Take three deep breaths to reset your attention.",
		"Close your eyes and count slowly to 10 to clear your mind.",
		"Write down the one most important task to focus on now.",
		"Do a 2-minute mindfulness practice focusing only on your breath.",
		"Close unnecessary browser tabs and apps before continuing.",
	},
	domain.CategoryLeg: {
		"Stand up and gently shake out your legs to improve circulation.",
		"Try ankle rotations - 10 circles in each direction per foot.",
		"Do 10 gentle knee bends while holding onto your desk for support.",
		"While seated, lift and lower your heels 15 times to engage your calves.",
		"March in place for 30 seconds to wake up your leg muscles.",
	},
	domain.CategoryStressed: {
		"Practice box breathing: 4 counts in, hold 4, out 4, hold 4.",
		"Roll your shoulders slowly in circles to release tension.",
		"Write down your top priority for the next hour.",
	},
	domain.CategoryTired: {
		"Try 10 jumping jacks to boost energy and circulation.",
		"Stretch your back by twisting gently from side to side.",
		"Break your next task into smaller, more manageable steps.",
	},
	domain.CategoryDistracted: {
		"Focus on your breath for 30 seconds to reset your attention.",
		"Stretch your neck by tilting your head from side to side.",
		"Close unnecessary browser tabs and apps for better focus.",
	},
	domain.CategoryCreative: {
		"Take five deep breaths to expand your thinking.",
		"Loosen up with shoulder circles and arm stretches.",
		"Quickly freewrite your ideas without judgment for 2 minutes.",
	},
	domain.CategoryDefault: {
		"Take 3 deep breaths to center yourself.",
		"Stretch your arms overhead for 10 seconds.",
		"Set one clear goal for this work session.",
	},
}

// order is the listing order: concerns, then moods, then the catch-all.
var order = []domain.Category{
	domain.CategoryHeadache,
	domain.CategoryBack,
	domain.CategoryEye,
	domain.CategoryWrist,
	domain.CategoryFocus,
	domain.CategoryLeg,
	domain.CategoryStressed,
	domain.CategoryTired,
	domain.CategoryDistracted,
	domain.CategoryCreative,
	domain.CategoryDefault,
}

// Categories lists every category in the table.
func Categories() []domain.Category {
	out := make([]domain.Category, len(order))
	copy(out, order)
	return out
}

// Nudges returns a copy of the full nudge list for c. Unknown categories
// resolve to the default list.
func Nudges(c domain.Category) []string {
	list, ok := table[c]
	if !ok {
		list = table[domain.CategoryDefault]
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// Select returns the first count nudges for c in table order. It never
// pads: a short category yields fewer than count entries.
func Select(c domain.Category, count int) []string {
	if count <= 0 {
		return []string{}
	}
	list := Nudges(c)
	if len(list) > count {
		list = list[:count]
	}
	return list
}
