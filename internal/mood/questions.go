package mood

// Option is one selectable answer carrying partial genre weights.
type Option struct {
	Text    string      `json:"text"`
	Weights map[int]int `json:"weights"`
}

// Question is one multiple-choice survey step.
type Question struct {
	Text    string   `json:"question"`
	Options []Option `json:"options"`
}

// Questions is the base survey. Weights map to Action(28), Comedy(35),
// Drama(18), Sci-Fi(878), Horror(27) and Romance(10749).
var Questions = []Question{
	{
		Text: "How are you feeling today?",
		Options: []Option{
			{Text: "Energetic and ready to go", Weights: map[int]int{28: 3, 878: 2}},
			{Text: "Need a good laugh", Weights: map[int]int{35: 4}},
			{Text: "A bit thoughtful or melancholic", Weights: map[int]int{18: 4, 10749: 2}},
			{Text: "Want to be thrilled", Weights: map[int]int{27: 4, 878: 1}},
		},
	},
	{
		Text: "What's your ideal setting right now?",
		Options: []Option{
			{Text: "Outer space or the future", Weights: map[int]int{878: 5}},
			{Text: "A bustling modern city", Weights: map[int]int{28: 2, 35: 1}},
			{Text: "A quiet, cozy room", Weights: map[int]int{18: 3, 10749: 3}},
			{Text: "A haunted mansion", Weights: map[int]int{27: 5}},
		},
	},
	{
		Text: "Choose a snack companion:",
		Options: []Option{
			{Text: "Popcorn (The classic experience)", Weights: map[int]int{28: 2, 35: 2}},
			{Text: "Ice Cream (Comforting)", Weights: map[int]int{18: 3, 10749: 3}},
			{Text: "Leftover Pizza (Casual)", Weights: map[int]int{35: 3}},
			{Text: "Candy (High sugar rush)", Weights: map[int]int{878: 2, 27: 2}},
		},
	},
	{
		Text: "How much time do you have?",
		Options: []Option{
			{Text: "Just a quick watch", Weights: map[int]int{35: 3, 27: 1}},
			{Text: "I have the whole evening", Weights: map[int]int{18: 2, 878: 2}},
			{Text: "Depends how good it is", Weights: map[int]int{28: 2}},
			{Text: "Time is an illusion", Weights: map[int]int{878: 4}},
		},
	},
	{
		Text: "What kind of ending do you want?",
		Options: []Option{
			{Text: "Explosions and victory", Weights: map[int]int{28: 4}},
			{Text: "Tears of joy or sadness", Weights: map[int]int{18: 4, 10749: 3}},
			{Text: "A complete mind-bender", Weights: map[int]int{878: 4, 27: 2}},
			{Text: "A good laugh", Weights: map[int]int{35: 5}},
		},
	},
}

// KeywordOption is one answer of the refinement pass, carrying review
// keywords instead of genre weights.
type KeywordOption struct {
	Text     string   `json:"text"`
	Keywords []string `json:"keywords"`
}

// KeywordQuestion is one refinement step.
type KeywordQuestion struct {
	Text    string          `json:"question"`
	Options []KeywordOption `json:"options"`
}

// ExtendedQuestions collect the keyword vocabulary for the optional
// review-based re-rank of the first pass's candidates.
var ExtendedQuestions = []KeywordQuestion{
	{
		Text: "What should the story feel like?",
		Options: []KeywordOption{
			{Text: "Gripping from the first minute", Keywords: []string{"gripping", "tense", "edge"}},
			{Text: "Warm and feel-good", Keywords: []string{"heartwarming", "charming", "sweet"}},
			{Text: "Clever and surprising", Keywords: []string{"twist", "clever", "unexpected"}},
			{Text: "Big and spectacular", Keywords: []string{"epic", "stunning", "spectacle"}},
		},
	},
	{
		Text: "What matters most to you tonight?",
		Options: []KeywordOption{
			{Text: "Great performances", Keywords: []string{"performance", "acting", "cast"}},
			{Text: "A story that makes me think", Keywords: []string{"thought-provoking", "deep", "meaning"}},
			{Text: "Pure entertainment", Keywords: []string{"fun", "entertaining", "enjoyable"}},
			{Text: "Beautiful visuals", Keywords: []string{"visuals", "cinematography", "beautiful"}},
		},
	},
}
