package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/meigma/cmdat"
)

var errUsage = errors.New("usage")

// defaultCommand runs when no command is given.
const defaultCommand = "clubs"

const defaultClubLimit = 40

type command struct {
	name  string
	args  string
	help  string
	nargs [2]int // min, max
	run   func(ctx context.Context, db *cmdat.Database, args []string, w io.Writer) error
}

var commands = []command{
	{"index", "", "list index.dat entries", [2]int{0, 0}, cmdIndex},
	{"blocks", "", "describe the staff.dat blocks", [2]int{0, 0}, cmdBlocks},
	{"clubs", "[N]", "list the first N clubs (default 40)", [2]int{0, 1}, cmdClubs},
	{"club-find", "TEXT", "find clubs by long or short name; one match is shown in full", [2]int{1, 1}, cmdClubFind},
	{"club-id", "N", "show one club", [2]int{1, 1}, cmdClubID},
	{"staff-id", "N", "show one staff member", [2]int{1, 1}, cmdStaffID},
	{"staff-find", "TEXT", "find staff by name", [2]int{1, 1}, cmdStaffFind},
	{"roster", "CLUBID [SQUAD]", "list a club squad (playing, current, coaches, scouts, physios, directors, liked, disliked)", [2]int{1, 2}, cmdRoster},
	{"rivals", "CLUBID", "list a club's rivals", [2]int{1, 1}, cmdRivals},
	{"warnings", "", "list load warnings", [2]int{0, 0}, cmdWarnings},
	{"fingerprint", "", "print the content digest of the installation", [2]int{0, 0}, cmdFingerprint},
}

func printCommands(w io.Writer) {
	fmt.Fprintln(w, "commands:")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, c := range commands {
		fmt.Fprintf(tw, "  %s %s\t%s\n", c.name, c.args, c.help)
	}
	tw.Flush()
}

func dispatch(ctx context.Context, db *cmdat.Database, args []string, w io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}
	for _, c := range commands {
		if c.name != args[0] {
			continue
		}
		rest := args[1:]
		if len(rest) < c.nargs[0] || len(rest) > c.nargs[1] {
			return fmt.Errorf("%w: %s %s", errUsage, c.name, c.args)
		}
		return c.run(ctx, db, rest, w)
	}
	return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
}

func parseID(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return int32(n), nil
}

func table(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func cmdIndex(_ context.Context, db *cmdat.Database, _ []string, w io.Writer) error {
	tw := table(w)
	fmt.Fprintln(tw, "FILE\tTYPE\tCOUNT\tOFFSET\tVERSION")
	for _, e := range db.Catalog().Entries() {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\n", e.Filename, e.FileType, e.RecordCount, e.ByteOffset, e.FormatVersion)
	}
	return tw.Flush()
}

func cmdBlocks(_ context.Context, db *cmdat.Database, _ []string, w io.Writer) error {
	tw := table(w)
	fmt.Fprintln(tw, "TYPE\tKIND\tCOUNT\tOFFSET\tLENGTH\tRECORD\tSPAN")
	for _, b := range db.Blocks() {
		kind := b.Kind
		if kind == "" {
			kind = "-"
		}
		span := "ok"
		if b.Span != nil {
			span = b.Span.Error()
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\t%s\n",
			b.Entry.FileType, kind, b.Entry.RecordCount, b.Location.Offset, b.Location.Length, b.RecordSize, span)
	}
	return tw.Flush()
}

func printClubs(w io.Writer, clubs []cmdat.Club) error {
	tw := table(w)
	fmt.Fprintln(tw, "ID\tSHORT\tLONG\tSTATUS\tREPUTATION")
	for _, c := range clubs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\n", c.ID, c.ShortName, c.LongName, c.ProfessionalStatusString(), c.Reputation)
	}
	return tw.Flush()
}

func cmdClubs(_ context.Context, db *cmdat.Database, args []string, w io.Writer) error {
	limit := defaultClubLimit
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid count %q", args[0])
		}
		limit = n
	}
	clubs := make([]cmdat.Club, 0, min(limit, db.Clubs().Len()))
	for _, c := range db.Clubs().Records() {
		if len(clubs) == limit {
			break
		}
		clubs = append(clubs, c)
	}
	return printClubs(w, clubs)
}

func cmdClubFind(_ context.Context, db *cmdat.Database, args []string, w io.Writer) error {
	clubs := db.SearchClubs(args[0])
	if len(clubs) == 1 {
		return printClubDetail(w, db, &clubs[0])
	}
	return printClubs(w, clubs)
}

func cmdClubID(_ context.Context, db *cmdat.Database, args []string, w io.Writer) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	c, ok := db.Club(id)
	if !ok {
		return fmt.Errorf("club %d not found", id)
	}
	return printClubDetail(w, db, &c)
}

func printClubDetail(w io.Writer, db *cmdat.Database, c *cmdat.Club) error {
	tw := table(w)
	fmt.Fprintf(tw, "id\t%d\n", c.ID)
	fmt.Fprintf(tw, "name\t%s (%s)\n", c.LongName, c.ShortName)
	fmt.Fprintf(tw, "nation\t%d\n", c.NationID)
	fmt.Fprintf(tw, "division\t%d (last %d, position %d)\n", c.DivisionID, c.LastDivisionID, c.LastPosition)
	fmt.Fprintf(tw, "status\t%s\n", c.ProfessionalStatusString())
	fmt.Fprintf(tw, "bank\t%d\n", c.BankBalance)
	fmt.Fprintf(tw, "reputation\t%d\n", c.Reputation)
	fmt.Fprintf(tw, "attendance\t%d avg, %d min, %d max\n", c.AvgAttendance, c.MinAttendance, c.MaxAttendance)
	fmt.Fprintf(tw, "chairman\t%s\n", staffLabel(db, c.ChairmanStaffID))
	fmt.Fprintf(tw, "manager\t%s\n", staffLabel(db, c.ManagerStaffID))
	fmt.Fprintf(tw, "assistant\t%s\n", staffLabel(db, c.AssistantManagerStaffID))
	for _, squad := range []cmdat.Squad{cmdat.SquadPlaying, cmdat.SquadCurrent, cmdat.SquadCoaches, cmdat.SquadScouts, cmdat.SquadPhysios} {
		slots := c.Slots(squad)
		fmt.Fprintf(tw, "%s\t%d/%d slots used\n", squad, cmdat.CountOccupied(slots), len(slots))
	}
	return tw.Flush()
}

func staffLabel(db *cmdat.Database, id int32) string {
	if id == cmdat.Empty {
		return "-"
	}
	s, ok := db.Staff(id)
	if !ok {
		return fmt.Sprintf("%d (not found)", id)
	}
	return fmt.Sprintf("%s [%d]", db.StaffName(&s), id)
}

func cmdStaffID(_ context.Context, db *cmdat.Database, args []string, w io.Writer) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	s, ok := db.Staff(id)
	if !ok {
		return fmt.Errorf("staff %d not found", id)
	}
	tw := table(w)
	fmt.Fprintf(tw, "id\t%d\n", s.ID)
	fmt.Fprintf(tw, "name\t%s\n", db.StaffName(&s))
	fmt.Fprintf(tw, "name refs\tfirst=%d second=%d common=%d\n", s.FirstNameRef, s.SecondNameRef, s.CommonNameRef)
	fmt.Fprintf(tw, "born\t%d (day %d)\n", s.YearOfBirth, s.DateOfBirth.DayOfYear())
	fmt.Fprintf(tw, "nation\t%d\n", s.Nation)
	fmt.Fprintf(tw, "club\t%d (job %d)\n", s.ClubJob, s.JobForClub)
	fmt.Fprintf(tw, "wage\t%d\n", s.Wage)
	fmt.Fprintf(tw, "value\t%d\n", s.Value)
	if p, ok := db.Player(&s); ok {
		fmt.Fprintf(tw, "player\t#%d ca=%d pa=%d rep=%d/%d/%d\n", p.ID, p.CurrentAbility, p.PotentialAbility,
			p.HomeReputation, p.CurrentReputation, p.WorldReputation)
	}
	if n, ok := db.NonPlayer(&s); ok {
		fmt.Fprintf(tw, "non-player\t#%d ca=%d pa=%d coaching=%d tactics=%d\n", n.Index, n.CurrentAbility, n.PotentialAbility,
			n.Coaching, n.Tactics)
	}
	return tw.Flush()
}

func cmdStaffFind(_ context.Context, db *cmdat.Database, args []string, w io.Writer) error {
	tw := table(w)
	fmt.Fprintln(tw, "ID\tNAME\tCLUB\tPLAYER\tNON-PLAYER")
	for _, s := range db.SearchStaff(args[0]) {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\n", s.ID, db.StaffName(&s), s.ClubJob, s.PlayerRef, s.NonPlayerRef)
	}
	return tw.Flush()
}

func cmdRoster(_ context.Context, db *cmdat.Database, args []string, w io.Writer) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	squad := cmdat.SquadPlaying
	if len(args) > 1 {
		var ok bool
		if squad, ok = cmdat.ParseSquad(args[1]); !ok {
			return fmt.Errorf("unknown squad %q", args[1])
		}
	}
	c, ok := db.Club(id)
	if !ok {
		return fmt.Errorf("club %d not found", id)
	}

	tw := table(w)
	fmt.Fprintln(tw, "SLOT\tSTAFF\tNAME\tPLAYER\tNON-PLAYER")
	for _, e := range db.Roster(&c, squad) {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%d\t%d\n", e.Slot, e.StaffID, e.Name, e.PlayerRef, e.NonPlayerRef)
	}
	return tw.Flush()
}

func cmdRivals(_ context.Context, db *cmdat.Database, args []string, w io.Writer) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	c, ok := db.Club(id)
	if !ok {
		return fmt.Errorf("club %d not found", id)
	}
	return printClubs(w, db.Rivals(&c))
}

func cmdWarnings(_ context.Context, db *cmdat.Database, _ []string, w io.Writer) error {
	for _, warn := range db.Warnings() {
		fmt.Fprintln(w, warn)
	}
	return nil
}

func cmdFingerprint(_ context.Context, db *cmdat.Database, _ []string, w io.Writer) error {
	_, err := fmt.Fprintln(w, db.Fingerprint())
	return err
}
