package cmdat

// Strategy reports which addressing scheme resolved a name reference.
type Strategy uint8

// Strategies in the order they are tried.
const (
	StrategyNone Strategy = iota
	StrategyID
	StrategyZeroBased
	StrategyOneBased
)

func (s Strategy) String() string {
	switch s {
	case StrategyID:
		return "id"
	case StrategyZeroBased:
		return "zero-based"
	case StrategyOneBased:
		return "one-based"
	default:
		return "none"
	}
}

// NameTable resolves staff name references against one name table.
//
// Releases disagree on whether a reference is the record's idField, its
// 0-based position or its 1-based position, so all three are tried in that
// order and the first non-empty name wins.
type NameTable struct {
	repo *Repository[NameEntry]
	byID map[uint32]string
}

// NewNameTable indexes repo by idField. When several entries share an
// idField the first non-empty name in file order is kept.
func NewNameTable(repo *Repository[NameEntry]) *NameTable {
	t := &NameTable{repo: repo, byID: make(map[uint32]string, repo.Len())}
	for _, e := range repo.Records() {
		if e.Name == "" {
			continue
		}
		if _, ok := t.byID[e.IDField]; !ok {
			t.byID[e.IDField] = e.Name
		}
	}
	return t
}

// Len returns the number of entries in the table.
func (t *NameTable) Len() int {
	if t == nil {
		return 0
	}
	return t.repo.Len()
}

// Entries returns the underlying repository.
func (t *NameTable) Entries() *Repository[NameEntry] {
	return t.repo
}

// Resolve returns the name for ref, or "" when nothing matches.
func (t *NameTable) Resolve(ref int32) string {
	name, _ := t.ResolveWith(ref)
	return name
}

// ResolveWith is Resolve that also reports the strategy that matched.
// A nil table resolves nothing.
func (t *NameTable) ResolveWith(ref int32) (string, Strategy) {
	if t == nil || ref < 0 {
		return "", StrategyNone
	}
	if name, ok := t.byID[uint32(ref)]; ok {
		return name, StrategyID
	}
	if e, ok := t.repo.At(int(ref)); ok && e.Name != "" {
		return e.Name, StrategyZeroBased
	}
	if e, ok := t.repo.At(int(ref) - 1); ok && e.Name != "" {
		return e.Name, StrategyOneBased
	}
	return "", StrategyNone
}
