package game

// SuspectBuckets is the number of chains in a SuspectIndex.
const SuspectBuckets = 7

// UnknownSuspect is returned for clues that point at nobody.
const UnknownSuspect = "Desconhecido"

// MinCluesToAccuse is how many clues an accusation would need.
const MinCluesToAccuse = 2

// SuspectIndex maps clue text to a suspect with a chained hash table.
//
// The hash is the byte sum of the clue modulo SuspectBuckets. It is a
// demonstration-grade, non-cryptographic hash: anagrams always collide and
// collisions are resolved by chaining.
type SuspectIndex struct {
	buckets [SuspectBuckets]*suspectEntry
	size    int
}

type suspectEntry struct {
	clue    string
	suspect string
	next    *suspectEntry
}

func NewSuspectIndex() *SuspectIndex {
	return &SuspectIndex{}
}

// BucketFor returns the chain a clue hashes to.
func BucketFor(clue string) int {
	sum := 0
	for i := 0; i < len(clue); i++ {
		sum += int(clue[i])
	}
	return sum % SuspectBuckets
}

// Insert prepends an entry to the clue's chain. Repeated clues are kept; the
// latest one shadows the older ones on lookup.
func (s *SuspectIndex) Insert(clue, suspect string) {
	b := BucketFor(clue)
	s.buckets[b] = &suspectEntry{clue: clue, suspect: suspect, next: s.buckets[b]}
	s.size++
}

// Suspect returns the most recently indexed suspect for the clue.
func (s *SuspectIndex) Suspect(clue string) (string, bool) {
	for e := s.buckets[BucketFor(clue)]; e != nil; e = e.next {
		if e.clue == clue {
			return e.suspect, true
		}
	}
	return "", false
}

// Lookup is Suspect with UnknownSuspect for clues that are not indexed.
func (s *SuspectIndex) Lookup(clue string) string {
	if suspect, ok := s.Suspect(clue); ok {
		return suspect
	}
	return UnknownSuspect
}

func (s *SuspectIndex) Len() int { return s.size }

// ChainLen reports how many entries share a bucket.
func (s *SuspectIndex) ChainLen(bucket int) int {
	if bucket < 0 || bucket >= SuspectBuckets {
		return 0
	}
	n := 0
	for e := s.buckets[bucket]; e != nil; e = e.next {
		n++
	}
	return n
}

// DefaultSuspects indexes every clue in the mansion against the household.
func DefaultSuspects() *SuspectIndex {
	idx := NewSuspectIndex()
	idx.Insert("O culpado tem medo de alturas.", "Mordomo")
	idx.Insert("Há marcas de lama perto da lareira.", "Jardineiro")
	idx.Insert("Um livro sobre venenos está fora do lugar.", "Governanta")
	idx.Insert("Uma carta rasgada menciona uma dívida de jogo.", "Mordomo")
	idx.Insert("Uma taça de vinho foi deixada pela metade.", "Governanta")
	idx.Insert("A faca de pão desapareceu do suporte.", "Cozinheira")
	idx.Insert("Pegadas pequenas levam até a porta dos fundos.", "Cozinheira")
	idx.Insert("Terra fresca nas luvas do jardineiro.", "Jardineiro")
	return idx
}
