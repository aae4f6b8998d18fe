package console

type State int

const (
	StateWelcome State = iota
	StateMenuDisplay
	StateActionListAll
	StateActionFindByName
	StateActionRandom
	StateActionStatistics
	StateExit
)

func (s State) String() string {
	switch s {
	case StateWelcome:
		return "welcome"
	case StateMenuDisplay:
		return "menu"
	case StateActionListAll:
		return "list_all"
	case StateActionFindByName:
		return "find_by_name"
	case StateActionRandom:
		return "random"
	case StateActionStatistics:
		return "statistics"
	default:
		return "exit"
	}
}
