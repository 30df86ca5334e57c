package scoring

import "github.com/fonetik/wugboard/tileset"

// Stats tallies the phoneme classes played over a game, for the stats
// panel and the fun-facts display.
type Stats struct {
	Fricatives     int           `json:"totalFricatives"`
	Plosives       int           `json:"totalPlosives"`
	Nasals         int           `json:"totalNasals"`
	Vowels         int           `json:"totalVowels"`
	Affricates     int           `json:"totalAffricates"`
	UniquePhonemes int           `json:"uniquePhonemes"`
	MostUsed       *PhonemeCount `json:"mostUsedPhoneme"`
}

// PhonemeCount is a phoneme with its play count.
type PhonemeCount struct {
	Phoneme string `json:"phoneme"`
	Count   int    `json:"count"`
}

// GameStats computes phoneme-class statistics over the tiles placed in
// each move of a game.
func GameStats(moves [][]PlacedTile) Stats {
	var s Stats
	counts := map[string]int{}
	for _, move := range moves {
		for _, p := range move {
			t := p.Tile
			counts[t.Char]++
			switch t.Category {
			case tileset.Consonant:
				switch {
				case t.IsFricative():
					s.Fricatives++
				case t.IsPlosive():
					s.Plosives++
				case t.IsNasal():
					s.Nasals++
				}
			case tileset.Vowel:
				s.Vowels++
			case tileset.Affricate:
				s.Affricates++
			}
		}
	}
	s.UniquePhonemes = len(counts)
	for ph, n := range counts {
		if s.MostUsed == nil || n > s.MostUsed.Count {
			s.MostUsed = &PhonemeCount{Phoneme: ph, Count: n}
		}
	}
	return s
}
