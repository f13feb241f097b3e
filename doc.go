// Package cmdat reads the *.dat game database of a legacy sports-management
// simulation and exposes its records as typed, queryable values.
//
// An installation is a directory of fixed-record binary files. index.dat is a
// catalog mapping (filename, fileType) pairs to byte ranges; club.dat holds
// clubs; staff.dat is a container of several differently-sized blocks
// (people, non-players, players, preferences) whose boundaries are only known
// through the catalog; first_names.dat, second_names.dat and
// common_names.dat are the name tables staff rows reference.
//
// # Quick Start
//
// Open a whole installation:
//
//	db, err := cmdat.Open(ctx, "/games/cm/Data", cmdat.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	for _, c := range db.SearchClubs("united") {
//	    for _, e := range db.Roster(&c, cmdat.SquadPlaying) {
//	        fmt.Println(e.Slot, e.Name)
//	    }
//	}
//
// Or open a single block through the catalog:
//
//	cat, err := cmdat.LoadCatalog(filepath.Join(dir, "index.dat"))
//	players, err := cmdat.OpenRepository(cat, dir, cmdat.PlayerLayout,
//	    cmdat.SubBlock("staff.dat", cmdat.FileTypePlayer))
//
// # References
//
// Records never point at each other. Cross references are plain integers
// (-1 for "empty") resolved by lookups: club slots hold staff ids, rival
// slots hold club ids, staff rows hold name-table references and the ids of
// their player and non-player extensions.
//
// # Warnings
//
// A block whose length is not a multiple of its record size, or whose end
// disagrees with the start of the next block, still loads. The condition is
// logged and kept as a warning; see [Repository.Warnings] and
// [Database.Warnings].
package cmdat
