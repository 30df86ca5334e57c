// Package tileset defines the phoneme tile inventory for the game: which
// IPA symbols exist as tiles, how many copies of each go in the bag, and
// how many points each is worth. Point values follow English phoneme
// frequency; rare symbols score high.
package tileset

import "github.com/google/uuid"

// Category classifies a tile by its phonological role.
type Category string

const (
	Consonant Category = "consonant"
	Vowel     Category = "vowel"
	Affricate Category = "affricate"
	// Modifier tiles are diacritics and suprasegmentals (stress, length,
	// nasalization). They score zero but legally extend spellings.
	Modifier Category = "modifier"
)

// Tile is a single physical tile instance. Distinct instances of the same
// phoneme are interchangeable for play but carry unique IDs so that a
// specific tile can be removed from a rack.
type Tile struct {
	ID          string   `json:"id"`
	Char        string   `json:"char"`
	Category    Category `json:"type"`
	Description string   `json:"description"`
	Points      int      `json:"points"`
}

// TileDef describes one kind of tile and how many copies the bag holds.
type TileDef struct {
	Char        string
	Category    Category
	Description string
	Points      int
	Count       int
}

var tileDefs = []TileDef{
	// Very common consonants
	{"n", Consonant, "alveolar nasal", 1, 6},
	{"t", Consonant, "voiceless alveolar plosive", 1, 6},
	{"s", Consonant, "voiceless alveolar fricative", 1, 4},
	// Common consonants
	{"m", Consonant, "bilabial nasal", 2, 4},
	{"l", Consonant, "lateral approximant", 2, 4},
	{"k", Consonant, "voiceless velar plosive", 2, 3},
	{"r", Consonant, "alveolar trill", 2, 3},
	// Mid-frequency consonants
	{"p", Consonant, "voiceless bilabial plosive", 3, 2},
	{"b", Consonant, "voiced bilabial plosive", 3, 2},
	{"d", Consonant, "voiced alveolar plosive", 3, 2},
	{"g", Consonant, "voiced velar plosive", 3, 2},
	{"f", Consonant, "voiceless labiodental fricative", 3, 2},
	{"h", Consonant, "glottal fricative", 3, 2},
	// Less common consonants
	{"v", Consonant, "voiced labiodental fricative", 4, 2},
	{"z", Consonant, "voiced alveolar fricative", 4, 2},
	{"j", Consonant, "palatal approximant", 4, 2},
	{"ʃ", Consonant, "voiceless postalveolar fricative", 4, 2},
	// Rare consonants and special sounds
	{"θ", Consonant, "voiceless dental fricative", 5, 1},
	{"ð", Consonant, "voiced dental fricative", 5, 1},
	{"ʒ", Consonant, "voiced postalveolar fricative", 5, 1},
	{"ŋ", Consonant, "velar nasal", 5, 1},
	{"ʔ", Consonant, "glottal stop", 6, 1},
	{"ɾ", Consonant, "alveolar tap", 5, 1},
	// Affricates
	{"t͡s", Affricate, "alveolar affricate", 7, 1},
	{"d͡z", Affricate, "alveolar affricate", 7, 1},
	{"t͡ʃ", Affricate, "postalveolar affricate", 8, 1},
	{"d͡ʒ", Affricate, "postalveolar affricate", 8, 1},
	// Common vowels
	{"ə", Vowel, "mid central (schwa)", 1, 5},
	{"i", Vowel, "close front", 1, 4},
	{"ɪ", Vowel, "near-close front", 1, 4},
	{"a", Vowel, "open front", 2, 4},
	// Mid-frequency vowels
	{"e", Vowel, "close-mid front", 2, 3},
	{"ɛ", Vowel, "open-mid front", 2, 3},
	{"æ", Vowel, "near-open front", 3, 2},
	{"u", Vowel, "close back", 2, 3},
	{"o", Vowel, "close-mid back", 2, 3},
	// Less common vowels
	{"ɑ", Vowel, "open back", 3, 2},
	{"ɔ", Vowel, "open-mid back", 3, 2},
	{"ɜ", Vowel, "open-mid central", 4, 1},
	// Modifiers
	{"ˈ", Modifier, "primary stress", 0, 2},
	{"ˌ", Modifier, "secondary stress", 0, 2},
	{"ː", Modifier, "long", 0, 2},
	{"̃", Modifier, "nasalization", 0, 2},
}

// Inventory returns the full tile definition table.
func Inventory() []TileDef {
	defs := make([]TileDef, len(tileDefs))
	copy(defs, tileDefs)
	return defs
}

// NumTileKinds is the number of distinct tile kinds in the inventory.
func NumTileKinds() int {
	return len(tileDefs)
}

func (d TileDef) instance() Tile {
	return Tile{
		ID:          uuid.NewString(),
		Char:        d.Char,
		Category:    d.Category,
		Description: d.Description,
		Points:      d.Points,
	}
}

var fricatives = map[string]bool{
	"ʃ": true, "ʒ": true, "s": true, "z": true, "f": true,
	"v": true, "θ": true, "ð": true, "h": true,
}

var plosives = map[string]bool{
	"p": true, "b": true, "t": true, "d": true, "k": true,
	"g": true, "ʔ": true,
}

var nasals = map[string]bool{"m": true, "n": true, "ŋ": true}

// IsFricative reports whether the tile is a fricative consonant.
func (t Tile) IsFricative() bool {
	return t.Category == Consonant && fricatives[t.Char]
}

// IsPlosive reports whether the tile is a plosive (stop) consonant.
func (t Tile) IsPlosive() bool {
	return t.Category == Consonant && plosives[t.Char]
}

// IsNasal reports whether the tile is a nasal consonant.
func (t Tile) IsNasal() bool {
	return t.Category == Consonant && nasals[t.Char]
}
