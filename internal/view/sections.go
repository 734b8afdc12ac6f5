package view

// State identifies the current exclusive display state.
type State int

// Display states. Idle shows nothing; the others show exactly one of
// the loading, error and results regions.
const (
	StateIdle State = iota
	StateLoading
	StateError
	StateResults
)

// Sections owns the mutually exclusive visibility of the display
// regions. Entering any state first hides everything, including the
// summary banner, then reveals the target region. Any state may follow
// any other; transitions overwrite, they are never rejected.
type Sections struct {
	target Target
	state  State
}

// NewSections creates a section controller in the Idle state with no
// region shown.
func NewSections(target Target) *Sections {
	return &Sections{target: target, state: StateIdle}
}

func (s *Sections) hideAll() {
	for _, region := range Regions {
		s.target.HideRegion(region)
	}
}

// Loading shows the loading region with the given message.
func (s *Sections) Loading(message string) {
	s.hideAll()
	s.target.SetLoadingMessage(message)
	s.target.ShowRegion(RegionLoading)
	s.state = StateLoading
}

// Error shows the error region with the given message.
func (s *Sections) Error(message string) {
	s.hideAll()
	s.target.SetErrorMessage(message)
	s.target.ShowRegion(RegionError)
	s.state = StateError
}

// Results shows the results region, plus the summary banner when
// withSummary is true.
func (s *Sections) Results(withSummary bool) {
	s.hideAll()
	s.target.ShowRegion(RegionResults)
	if withSummary {
		s.target.ShowRegion(RegionSummary)
	}
	s.state = StateResults
}

// Reset hides every region and returns to Idle.
func (s *Sections) Reset() {
	s.hideAll()
	s.state = StateIdle
}

// State returns the current display state.
func (s *Sections) State() State {
	return s.state
}
