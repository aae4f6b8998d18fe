package console

// Option is one numbered entry of the main menu.
type Option struct {
	Key   string
	Icon  string
	Label string
	Next  State
}

func optionDefs() []Option {
	return []Option{
		{Key: "1", Icon: "📋", Label: "List all monkeys", Next: StateActionListAll},
		{Key: "2", Icon: "🔍", Label: "Get details for a specific monkey by name", Next: StateActionFindByName},
		{Key: "3", Icon: "🎲", Label: "Get a random monkey", Next: StateActionRandom},
		{Key: "4", Icon: "📊", Label: "Show statistics", Next: StateActionStatistics},
		{Key: "5", Icon: "❌", Label: "Exit app", Next: StateExit},
	}
}

func lookupOption(opts []Option, key string) (Option, bool) {
	for _, o := range opts {
		if o.Key == key {
			return o, true
		}
	}
	return Option{}, false
}
