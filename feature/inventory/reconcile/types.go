package reconcile

// InputReader is the token source of a session: a keyboard, a barcode
// scanner acting as a keyboard, or a scripted list in tests.
type InputReader interface {
	// ReadLine blocks until the next line is available and returns it
	// without the line terminator. It returns io.EOF when input is exhausted.
	ReadLine() (string, error)
}

// LabelReason tells the console why a label is being requested.
type LabelReason string

const (
	// ReasonUnknown asks what an item missing from the inventory is.
	ReasonUnknown LabelReason = "unknown"
	// ReasonForeignRepeat asks again about a foreign item already scanned.
	ReasonForeignRepeat LabelReason = "foreign_repeat"
	// ReasonDuplicate asks about an inventory item scanned more than once.
	ReasonDuplicate LabelReason = "duplicate"
)

// Console presents session events to the operator. Implementations must not
// read input; the session reads labels from its InputReader.
type Console interface {
	// Prompt invites the next space or item token.
	Prompt()
	// SpaceChanged announces the space now being counted.
	SpaceChanged(space string)
	// Ignored warns that an item was scanned before any space.
	Ignored(token string)
	// Found reports an inventory item scanned for the first time.
	Found(code string)
	// AskLabel requests a free-text label; an empty answer discards the scan.
	AskLabel(code string, reason LabelReason)
	// Recorded confirms a labeled scan was stored.
	Recorded(code string, count int)
	// Discarded reports a scan dropped on operator request.
	Discarded(code string)
}

// NopConsole discards every notice. It is used for headless runs.
type NopConsole struct{}

func (NopConsole) Prompt() {}
func (NopConsole) SpaceChanged(string) {}
func (NopConsole) Ignored(string) {}
func (NopConsole) Found(string) {}
func (NopConsole) AskLabel(string, LabelReason) {}
func (NopConsole) Recorded(string, int) {}
func (NopConsole) Discarded(string) {}

// Outcome is what a single token did to the session.
type Outcome string

const (
	// OutcomeStop ends the session (empty token or end of input).
	OutcomeStop Outcome = "stop"
	// OutcomeSpace switched the current space.
	OutcomeSpace Outcome = "space"
	// OutcomeIgnored dropped an item scanned before any space.
	OutcomeIgnored Outcome = "ignored"
	// OutcomeFound counted an inventory item for the first time.
	OutcomeFound Outcome = "found"
	// OutcomeDuplicate counted an inventory item seen before.
	OutcomeDuplicate Outcome = "duplicate"
	// OutcomeForeignAdded created a record for an item outside the inventory.
	OutcomeForeignAdded Outcome = "foreign_added"
	// OutcomeForeignRepeat counted a foreign item seen before.
	OutcomeForeignRepeat Outcome = "foreign_repeat"
	// OutcomeDiscarded dropped a scan because the operator gave no label.
	OutcomeDiscarded Outcome = "discarded"
)

// Summary counts the outcomes of a session.
type Summary struct {
	Spaces         int `json:"spaces"`
	Ignored        int `json:"ignored"`
	Found          int `json:"found"`
	Duplicates     int `json:"duplicates"`
	ForeignAdded   int `json:"foreign_added"`
	ForeignRepeats int `json:"foreign_repeats"`
	Discarded      int `json:"discarded"`
	// Annotated counts scans recorded outside the expected space.
	Annotated int `json:"annotated"`
}

// Scans returns the number of item tokens processed, discarded ones included.
func (s Summary) Scans() int {
	return s.Found + s.Duplicates + s.ForeignAdded + s.ForeignRepeats + s.Discarded
}

func (s *Summary) add(o Outcome) {
	switch o {
	case OutcomeSpace:
		s.Spaces++
	case OutcomeIgnored:
		s.Ignored++
	case OutcomeFound:
		s.Found++
	case OutcomeDuplicate:
		s.Duplicates++
	case OutcomeForeignAdded:
		s.ForeignAdded++
	case OutcomeForeignRepeat:
		s.ForeignRepeats++
	case OutcomeDiscarded:
		s.Discarded++
	}
}

// Counts returns the counter of every outcome except OutcomeStop.
func (s Summary) Counts() map[Outcome]int {
	return map[Outcome]int{
		OutcomeSpace:         s.Spaces,
		OutcomeIgnored:       s.Ignored,
		OutcomeFound:         s.Found,
		OutcomeDuplicate:     s.Duplicates,
		OutcomeForeignAdded:  s.ForeignAdded,
		OutcomeForeignRepeat: s.ForeignRepeats,
		OutcomeDiscarded:     s.Discarded,
	}
}
