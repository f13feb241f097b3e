package cmdat

import "log/slog"

// FileNames are the file names of an installation, relative to its data
// directory.
type FileNames struct {
	Index       string
	Club        string
	Staff       string
	FirstNames  string
	SecondNames string
	CommonNames string
}

// DefaultFileNames returns the file names used by the game.
func DefaultFileNames() FileNames {
	return FileNames{
		Index:       "index.dat",
		Club:        "club.dat",
		Staff:       "staff.dat",
		FirstNames:  "first_names.dat",
		SecondNames: "second_names.dat",
		CommonNames: "common_names.dat",
	}
}

// catalogNames are the file names index.dat uses, whatever the files are
// called on disk.
var catalogNames = DefaultFileNames()

// Option configures Open.
type Option func(*Database)

// WithLogger sets the logger for load progress and warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(db *Database) {
		db.logger = logger
	}
}

// WithStrictSpans turns span mismatches between staff.dat blocks into
// errors. By default they are logged and kept as warnings.
func WithStrictSpans(strict bool) Option {
	return func(db *Database) {
		db.strictSpans = strict
	}
}

// WithoutNames skips loading the name tables. Staff names then resolve to
// UnknownName.
func WithoutNames() Option {
	return func(db *Database) {
		db.skipNames = true
	}
}

// WithFileNames overrides the names of the files in the data directory.
// Empty fields keep their defaults. Catalog lookups always use the default
// names, as index.dat does.
func WithFileNames(names FileNames) Option {
	return func(db *Database) {
		def := DefaultFileNames()
		db.files = FileNames{
			Index:       firstNonEmpty(names.Index, def.Index),
			Club:        firstNonEmpty(names.Club, def.Club),
			Staff:       firstNonEmpty(names.Staff, def.Staff),
			FirstNames:  firstNonEmpty(names.FirstNames, def.FirstNames),
			SecondNames: firstNonEmpty(names.SecondNames, def.SecondNames),
			CommonNames: firstNonEmpty(names.CommonNames, def.CommonNames),
		}
	}
}

// WithLoadConcurrency limits how many files are loaded at once.
// Values <= 0 load every file concurrently; 1 loads them one at a time.
func WithLoadConcurrency(n int) Option {
	return func(db *Database) {
		db.loadConcurrency = n
	}
}

// WithDecodeWorkers sets the number of workers decoding each block.
// Values < 0 force serial decoding. Zero uses automatic heuristics.
func WithDecodeWorkers(n int) Option {
	return func(db *Database) {
		db.decodeWorkers = n
	}
}

func firstNonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
