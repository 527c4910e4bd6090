package rules

// StoryPart is one narrative fragment hidden in a secret zone.
type StoryPart struct {
	ID         int
	Title      string
	Hint       string
	Difficulty Difficulty
	Content    string
}

// Story is the Fuegorín backstory. Finding all parts unlocks Fuegorín mode.
var Story = []StoryPart{
	{
		ID: 1, Title: "El Cómic Perdido", Difficulty: Normal,
		Hint:    "Search the top right corner on normal.",
		Content: "Long ago Arbolín was not the only guardian. A small flame called Fuegorín only wanted to warm lost travellers, but nobody dared come close.",
	},
	{
		ID: 2, Title: "La Soledad Fría", Difficulty: Easy,
		Hint:    "Visit the top left corner on easy.",
		Content: "Fuegorín watched the animals hug Arbolín and the clouds bring him water. Envy started to glow like an ember in the wind.",
	},
	{
		ID: 3, Title: "El Rechazo", Difficulty: Easy,
		Hint:    "Explore the bottom left corner on easy.",
		Content: "One day Fuegorín tried to hug an old oak. The oak turned to ash, and the forest cast the flame out.",
	},
	{
		ID: 4, Title: "La Ira Ardiente", Difficulty: Hard,
		Hint:    "Hide in the bottom right corner on hard.",
		Content: "Exiled to the volcano, Fuegorín swore that if warmth could not earn love, fury would earn fear.",
	},
	{
		ID: 5, Title: "La Venganza Comienza", Difficulty: Hard,
		Hint:    "Meditate in the very centre of the hard map.",
		Content: "And so the great burning began. But hope sprouts even from scorched earth, and Arbolín woke up ready.",
	},
}

// StoryByID returns the fragment with the given id.
func StoryByID(id int) (StoryPart, bool) {
	for _, p := range Story {
		if p.ID == id {
			return p, true
		}
	}
	return StoryPart{}, false
}

// StoryIDs returns the ids of every fragment.
func StoryIDs() []int {
	ids := make([]int, len(Story))
	for i, p := range Story {
		ids[i] = p.ID
	}
	return ids
}
