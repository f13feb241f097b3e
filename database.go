package cmdat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/opencontainers/go-digest"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/meigma/cmdat/internal/block"
	"github.com/meigma/cmdat/internal/index"
	"github.com/meigma/cmdat/internal/source"
)

// Database is a loaded installation: the catalog, clubs, the staff.dat
// blocks and the name tables.
//
// A Database is immutable after Open apart from its cache of blocks opened
// with OpenBlock, and is safe for concurrent use.
type Database struct {
	dir             string
	files           FileNames
	logger          *slog.Logger
	strictSpans     bool
	skipNames       bool
	loadConcurrency int
	decodeWorkers   int

	catalog    *Catalog
	clubs      *Repository[Club]
	people     *Repository[Staff]
	players    *Repository[Player]
	nonPlayers *Repository[NonPlayer]
	names      Names

	// sources are the files read during Open, keyed by catalog name.
	sources map[string]*source.Source

	warnMu   sync.Mutex
	warnings []error

	blockGroup singleflight.Group
	blockMu    sync.RWMutex
	blocks     map[string]any
}

// Open loads the installation in dataDir.
//
// index.dat and the staff.dat people block are required. A club.dat without
// a catalog entry is read as a whole-file table; player and non-player
// blocks missing from the catalog are logged and left empty. Files are read
// concurrently; cancellation of ctx is checked before each file.
func Open(ctx context.Context, dataDir string, opts ...Option) (*Database, error) {
	db := &Database{
		dir:     dataDir,
		files:   DefaultFileNames(),
		sources: make(map[string]*source.Source),
		blocks:  make(map[string]any),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(db)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cat, err := index.Load(db.path(db.files.Index))
	if err != nil {
		return nil, fmt.Errorf("cmdat: load catalog: %w", err)
	}
	db.catalog = cat
	db.log().Debug("catalog loaded", slog.String("dir", dataDir), slog.Int("entries", cat.Len()))

	var srcMu sync.Mutex
	load := func(ctx context.Context, name string) (*source.Source, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		src, err := source.Load(db.path(db.diskName(name)))
		if err != nil {
			return nil, err
		}
		srcMu.Lock()
		db.sources[name] = src
		srcMu.Unlock()
		db.log().Debug("file loaded", slog.String("file", name), slog.Int64("size", src.Size()))
		return src, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	if db.loadConcurrency > 0 {
		g.SetLimit(db.loadConcurrency)
	}
	g.Go(func() error {
		src, err := load(gctx, catalogNames.Club)
		if err != nil {
			return err
		}
		db.clubs, err = db.loadClubs(src)
		return err
	})
	g.Go(func() error {
		src, err := load(gctx, catalogNames.Staff)
		if err != nil {
			return err
		}
		return db.loadStaff(src)
	})
	if !db.skipNames {
		tables := []struct {
			file string
			dst  **NameTable
		}{
			{catalogNames.FirstNames, &db.names.First},
			{catalogNames.SecondNames, &db.names.Second},
			{catalogNames.CommonNames, &db.names.Common},
		}
		for _, tbl := range tables {
			g.Go(func() error {
				src, err := load(gctx, tbl.file)
				if err != nil {
					return err
				}
				var count uint32
				if e, ok := cat.Lookup(tbl.file); ok {
					count = e.RecordCount
				}
				repo, err := buildNameTable(src, count, db.blockOpts(tbl.file)...)
				if err != nil {
					return err
				}
				db.addWarnings(repo.Warnings()...)
				*tbl.dst = NewNameTable(repo)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := db.checkSpans(); err != nil {
		return nil, err
	}

	db.log().Info("database opened",
		slog.String("dir", dataDir),
		slog.Int("clubs", db.clubs.Len()),
		slog.Int("staff", db.people.Len()),
		slog.Int("players", db.players.Len()),
		slog.Int("non_players", db.nonPlayers.Len()),
		slog.Int("warnings", len(db.warnings)))
	return db, nil
}

func (db *Database) loadClubs(src *source.Source) (*Repository[Club], error) {
	var (
		repo *Repository[Club]
		err  error
	)
	if e, ok := db.catalog.Lookup(catalogNames.Club); ok {
		repo, err = buildEntry(src, e, ClubLayout, db.blockOpts("clubs")...)
	} else {
		loc := RecordLocation{File: src.Name(), Length: src.Size()}
		repo, err = block.Build(src, loc, ClubLayout, db.blockOpts("clubs")...)
	}
	if err != nil {
		return nil, err
	}
	db.addWarnings(repo.Warnings()...)
	return repo, nil
}

func (db *Database) loadStaff(src *source.Source) error {
	peopleEntry, err := db.catalog.Resolve(catalogNames.Staff, FileTypeStaff)
	if err != nil {
		return err
	}
	if db.people, err = buildEntry(src, peopleEntry, StaffLayout, db.blockOpts("people")...); err != nil {
		return err
	}
	db.addWarnings(db.people.Warnings()...)

	if db.nonPlayers, err = optionalBlock(db, src, FileTypeNonPlayer, NonPlayerLayout, "non-players"); err != nil {
		return err
	}
	if db.players, err = optionalBlock(db, src, FileTypePlayer, PlayerLayout, "players"); err != nil {
		return err
	}
	return nil
}

func optionalBlock[T any](db *Database, src *source.Source, fileType uint32, layout Layout[T], name string) (*Repository[T], error) {
	e, ok := db.catalog.Lookup(catalogNames.Staff, fileType)
	if !ok {
		db.log().Warn("block missing from catalog",
			slog.String("file", catalogNames.Staff),
			slog.Uint64("file_type", uint64(fileType)))
		return block.Empty(name, layout), nil
	}
	repo, err := buildEntry(src, e, layout, db.blockOpts(name)...)
	if err != nil {
		return nil, err
	}
	db.addWarnings(repo.Warnings()...)
	return repo, nil
}

// checkSpans compares each decoded staff.dat block with the start of the
// block that follows it.
func (db *Database) checkSpans() error {
	src := db.sources[catalogNames.Staff]
	for _, e := range db.catalog.EntriesFor(catalogNames.Staff) {
		size := recordSize(e.FileType)
		if size == 0 {
			continue
		}
		err := db.catalog.CheckSpan(e, size, src.Size())
		if err == nil {
			continue
		}
		var span *SpanMismatchWarning
		if db.strictSpans || !errors.As(err, &span) {
			return err
		}
		db.log().Warn("block span mismatch",
			slog.String("file", span.File),
			slog.Uint64("file_type", uint64(span.FileType)),
			slog.Int64("computed_end", span.Computed),
			slog.Int64("next_offset", span.Next))
		db.addWarnings(err)
	}
	return nil
}

// recordSize returns the record size of a known staff.dat block type, or 0.
func recordSize(fileType uint32) int {
	switch fileType {
	case FileTypeStaff:
		return StaffSize
	case FileTypeNonPlayer:
		return NonPlayerSize
	case FileTypePlayer:
		return PlayerSize
	default:
		return 0
	}
}

func (db *Database) path(name string) string {
	return filepath.Join(db.dir, name)
}

// diskName maps a catalog file name to the name of the file in the data
// directory. index.dat always refers to the default names.
func (db *Database) diskName(name string) string {
	switch name {
	case catalogNames.Club:
		return db.files.Club
	case catalogNames.Staff:
		return db.files.Staff
	case catalogNames.FirstNames:
		return db.files.FirstNames
	case catalogNames.SecondNames:
		return db.files.SecondNames
	case catalogNames.CommonNames:
		return db.files.CommonNames
	default:
		return name
	}
}

func (db *Database) log() *slog.Logger {
	if db.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return db.logger
}

func (db *Database) blockOpts(name string) []BlockOption {
	return []BlockOption{
		block.WithLogger(db.log()),
		block.WithName(name),
		block.WithWorkers(db.decodeWorkers),
	}
}

func (db *Database) addWarnings(ws ...error) {
	if len(ws) == 0 {
		return
	}
	db.warnMu.Lock()
	defer db.warnMu.Unlock()
	db.warnings = append(db.warnings, ws...)
}

// Dir returns the data directory.
func (db *Database) Dir() string { return db.dir }

// Catalog returns the parsed index.dat.
func (db *Database) Catalog() *Catalog { return db.catalog }

// Clubs returns the club repository.
func (db *Database) Clubs() *Repository[Club] { return db.clubs }

// People returns the staff people repository.
func (db *Database) People() *Repository[Staff] { return db.people }

// Players returns the player repository.
func (db *Database) Players() *Repository[Player] { return db.players }

// NonPlayers returns the non-player repository.
func (db *Database) NonPlayers() *Repository[NonPlayer] { return db.nonPlayers }

// Names returns the name tables. They are nil when loaded WithoutNames.
func (db *Database) Names() Names { return db.names }

// Warnings returns every non-fatal condition found while loading.
func (db *Database) Warnings() []error {
	db.warnMu.Lock()
	defer db.warnMu.Unlock()
	return append([]error(nil), db.warnings...)
}

// Fingerprint returns a digest over the content of the files read by Open.
// Two installations with identical files have the same fingerprint.
func (db *Database) Fingerprint() string {
	var b strings.Builder
	for _, name := range []string{
		catalogNames.Club, catalogNames.Staff,
		catalogNames.FirstNames, catalogNames.SecondNames, catalogNames.CommonNames,
	} {
		src, ok := db.sources[name]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%s %s\n", name, src.SourceID())
	}
	return digest.FromString(b.String()).String()
}

// Club returns the club with the given id.
func (db *Database) Club(id int32) (Club, bool) {
	return db.clubs.GetByID(id)
}

// SearchClubs returns clubs whose long or short name contains needle,
// ignoring case.
func (db *Database) SearchClubs(needle string) []Club {
	needle = strings.ToLower(needle)
	return db.clubs.Find(func(c Club) bool {
		return strings.Contains(strings.ToLower(c.LongName), needle) ||
			strings.Contains(strings.ToLower(c.ShortName), needle)
	})
}

// Staff returns the staff member with the given id.
func (db *Database) Staff(id int32) (Staff, bool) {
	return db.people.GetByID(id)
}

// StaffName returns the display name of s.
func (db *Database) StaffName(s *Staff) string {
	return db.names.Resolve(s)
}

// SearchStaff returns staff whose display name contains needle, ignoring
// case.
func (db *Database) SearchStaff(needle string) []Staff {
	return db.people.SearchByName(needle, func(s Staff) string {
		return db.names.Resolve(&s)
	})
}

// Player returns the player extension of s.
func (db *Database) Player(s *Staff) (Player, bool) {
	if !s.HasPlayer() {
		return Player{}, false
	}
	return db.players.GetByID(s.PlayerRef)
}

// NonPlayer returns the non-player extension of s.
func (db *Database) NonPlayer(s *Staff) (NonPlayer, bool) {
	if !s.HasNonPlayer() {
		return NonPlayer{}, false
	}
	return db.nonPlayers.GetByID(s.NonPlayerRef)
}

// Roster resolves one of c's squads.
func (db *Database) Roster(c *Club, squad Squad) []RosterEntry {
	return ResolveRoster(c.Slots(squad), db.people, db.names)
}

// Rivals resolves c's rival clubs.
func (db *Database) Rivals(c *Club) []Club {
	return ResolveRivals(c, db.clubs)
}

// Preferences returns the catalog entry of the staff preferences block.
// Its record layout is unknown, so it is located but never decoded.
func (db *Database) Preferences() (IndexEntry, bool) {
	return db.catalog.Lookup(catalogNames.Staff, FileTypePreferences)
}
