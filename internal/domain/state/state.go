package state

// State is the single persisted document holding every pool table. The
// on-disk shape is fixed: existing datasets written by earlier versions of
// the pool must keep loading unchanged.
type State struct {
	Matches   map[string]*TeamSheet       `json:"matches"`
	UserTeams *UserTeams                  `json:"user_teams"`
	Points    map[string]int              `json:"points"`
	Amounts   map[string]map[string]int64 `json:"amounts"`
}

// TeamSheet is one match catalog entry: team rosters plus the flat pool of
// every player announced for the match.
type TeamSheet struct {
	Teams   map[string][]string `json:"teams"`
	Players []string            `json:"players"`
}

func New() *State {
	return &State{
		Matches:   make(map[string]*TeamSheet),
		UserTeams: NewUserTeams(),
		Points:    make(map[string]int),
		Amounts:   make(map[string]map[string]int64),
	}
}

// Normalize fills in nil tables after a decode so callers never have to
// nil-check the document.
func (s *State) Normalize() {
	if s.Matches == nil {
		s.Matches = make(map[string]*TeamSheet)
	}
	for _, sheet := range s.Matches {
		if sheet == nil {
			continue
		}
		if sheet.Teams == nil {
			sheet.Teams = make(map[string][]string)
		}
	}
	if s.UserTeams == nil {
		s.UserTeams = NewUserTeams()
	}
	if s.Points == nil {
		s.Points = make(map[string]int)
	}
	if s.Amounts == nil {
		s.Amounts = make(map[string]map[string]int64)
	}
}
