package scoring

import "strings"

// Easter egg effect names, consumed by the presentation layer.
const (
	EffectWugRain            = "wug-rain"
	EffectChomskyReaction    = "chomsky-reaction"
	EffectCognitiveFireworks = "cognitive-fireworks"
	EffectStructuralSparkles = "structural-sparkles"
	EffectSignifierGlow      = "signifier-glow"
)

// detectEasterEgg inspects the resolved English words for the linguistics
// tribute triggers. At most one trigger fires per move, in this fixed
// priority order. The wug test goes first; Jean Berko Gleason would be
// proud.
func detectEasterEgg(ipaWords, englishWords []string) *EasterEgg {
	lowered := make([]string, len(englishWords))
	for i, w := range englishWords {
		lowered[i] = strings.ToLower(w)
	}

	egg := func(effect string) *EasterEgg {
		return &EasterEgg{Effect: effect, Words: ipaWords, EnglishWords: englishWords}
	}

	for _, w := range lowered {
		if w == "wug" {
			return egg(EffectWugRain)
		}
	}
	substringTriggers := []struct {
		needle string
		effect string
	}{
		{"chomsky", EffectChomskyReaction},
		{"piaget", EffectCognitiveFireworks},
		{"hjelmslev", EffectStructuralSparkles},
		{"saussure", EffectSignifierGlow},
	}
	for _, trig := range substringTriggers {
		for _, w := range lowered {
			if strings.Contains(w, trig.needle) {
				return egg(trig.effect)
			}
		}
	}
	return nil
}
