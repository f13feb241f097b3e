package cmdat

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/meigma/cmdat/internal/index"
	"github.com/meigma/cmdat/internal/source"
)

// BlockInfo describes one catalog entry of a file.
type BlockInfo struct {
	Entry IndexEntry

	// Kind is the record kind decoded from the block, or "" when its layout
	// is unknown.
	Kind       string
	RecordSize int

	// Location is the clipped byte range of the block. For blocks of unknown
	// layout it extends to the next block.
	Location RecordLocation

	// Span is the span mismatch of the block, if any.
	Span error
}

// Blocks describes every staff.dat block in catalog order.
func (db *Database) Blocks() []BlockInfo {
	src := db.sources[catalogNames.Staff]
	var out []BlockInfo
	for _, e := range db.catalog.EntriesFor(catalogNames.Staff) {
		info := BlockInfo{Entry: e, RecordSize: recordSize(e.FileType)}
		switch e.FileType {
		case FileTypeStaff:
			info.Kind = StaffLayout.Kind
		case FileTypeNonPlayer:
			info.Kind = NonPlayerLayout.Kind
		case FileTypePlayer:
			info.Kind = PlayerLayout.Kind
		}
		if info.RecordSize > 0 {
			if loc, err := index.Bounds(e, info.RecordSize, src.Size()); err == nil {
				info.Location = loc
			}
			info.Span = db.catalog.CheckSpan(e, info.RecordSize, src.Size())
		} else {
			off := min(int64(e.ByteOffset), src.Size())
			info.Location = RecordLocation{
				File:   e.Filename,
				Offset: off,
				Length: db.catalog.NextOffset(e, src.Size()) - off,
			}
		}
		out = append(out, info)
	}
	return out
}

// OpenBlock decodes the block at loc with layout, reusing files already
// read by Open. Results are cached per locator and layout; concurrent
// calls for the same block share one load.
func OpenBlock[T any](ctx context.Context, db *Database, layout Layout[T], loc Locator) (*Repository[T], error) {
	key := fmt.Sprintf("%s/%s/%d", loc, layout.Kind, layout.RecordSize)

	// Fast path, avoids singleflight overhead.
	if repo, ok := cachedBlock[T](db, key); ok {
		return repo, nil
	}

	result, err, _ := db.blockGroup.Do(key, func() (any, error) {
		if repo, ok := cachedBlock[T](db, key); ok {
			return repo, nil
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entry, err := loc.resolve(db.catalog)
		if err != nil {
			return nil, err
		}
		src, err := db.source(entry.Filename)
		if err != nil {
			return nil, err
		}
		repo, err := buildEntry(src, entry, layout, db.blockOpts(loc.String())...)
		if err != nil {
			return nil, err
		}

		db.blockMu.Lock()
		db.blocks[key] = repo
		db.blockMu.Unlock()
		db.log().Debug("block opened", slog.String("block", loc.String()), slog.Int("records", repo.Len()))
		return repo, nil
	})
	if err != nil {
		return nil, err
	}

	repo, ok := result.(*Repository[T])
	if !ok {
		return nil, fmt.Errorf("cmdat: block %s already opened with a different record type", loc)
	}
	return repo, nil
}

func cachedBlock[T any](db *Database, key string) (*Repository[T], bool) {
	db.blockMu.RLock()
	defer db.blockMu.RUnlock()
	repo, ok := db.blocks[key].(*Repository[T])
	return repo, ok
}

// source returns a file read during Open, or reads it. Files read here are
// not retained.
func (db *Database) source(name string) (*source.Source, error) {
	if src, ok := db.sources[name]; ok {
		return src, nil
	}
	return source.Load(db.path(db.diskName(name)))
}
