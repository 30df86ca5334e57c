package room

import (
	"fmt"

	"lukechampine.com/frand"
)

// Invite codes are drawn from a roster of linguists; the game is a
// linguistics tribute through and through.
var linguistNames = []string{
	"chomsky", "saussure", "jakobson", "labov", "trubetzkoy",
	"hjelmslev", "bloomfield", "whorf", "sapir", "piaget",
	"halliday", "katz", "fodor", "harris",
	"sweet", "jones", "pike", "hockett", "martinet",
	"guillaume", "tesniere", "coseriu", "hymes", "gumperz",
	"slobin", "tomasello", "jackendoff",
	"larson", "haegeman", "radford", "may",
}

// suggestCodeLocked picks an unused linguist name, falling back to a
// numbered variant when the roster is exhausted. Callers hold reg.mu.
func (reg *Registry) suggestCodeLocked() string {
	for _, i := range frand.Perm(len(linguistNames)) {
		name := linguistNames[i]
		if _, taken := reg.rooms[name]; !taken {
			return name
		}
	}
	for n := 2; ; n++ {
		code := fmt.Sprintf("%v-%d", linguistNames[frand.Intn(len(linguistNames))], n)
		if _, taken := reg.rooms[code]; !taken {
			return code
		}
	}
}
