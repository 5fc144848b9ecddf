package session

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// DiscoveryResult classifies the outcome of a set-difference lookup.
type DiscoveryResult int

const (
	// DiscoveryNone means no name appeared between the two snapshots.
	DiscoveryNone DiscoveryResult = iota
	// DiscoveryUnique means exactly one name appeared.
	DiscoveryUnique
	// DiscoveryAmbiguous means several names appeared and none was chosen.
	DiscoveryAmbiguous
)

func (r DiscoveryResult) String() string {
	switch r {
	case DiscoveryUnique:
		return "unique"
	case DiscoveryAmbiguous:
		return "ambiguous"
	default:
		return "none"
	}
}

// Discovery is the result of comparing the names known before a mutation with
// the snapshot taken after it. tmux rewrites illegal characters in requested
// names ("8.1" becomes "8_1") without reporting it, so this is a best-effort
// inference.
type Discovery struct {
	Result DiscoveryResult
	// Name is set only for DiscoveryUnique.
	Name string
	// Candidates lists every new name. For ambiguous results they are ordered
	// by edit distance to the requested name; the order is informational.
	Candidates []string
}

// Discover computes after − before.
func Discover(before NameSet, after []Session, requested string) Discovery {
	var fresh []string
	for _, s := range after {
		if before.Has(s.Name) {
			continue
		}
		fresh = append(fresh, s.Name)
	}
	switch len(fresh) {
	case 0:
		return Discovery{Result: DiscoveryNone}
	case 1:
		return Discovery{Result: DiscoveryUnique, Name: fresh[0], Candidates: fresh}
	}
	if requested != "" {
		sort.SliceStable(fresh, func(i, j int) bool {
			return fuzzy.LevenshteinDistance(requested, fresh[i]) < fuzzy.LevenshteinDistance(requested, fresh[j])
		})
	}
	return Discovery{Result: DiscoveryAmbiguous, Candidates: fresh}
}
