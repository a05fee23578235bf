package dataset

// Builtin returns the sample leaderboard shipped with the binary. The scores
// are placeholders; point the dataset setting at real files to replace them.
func Builtin() Dataset {
	return Dataset{
		Title: "LLM Leaderboard",
		Intro: []string{
			"This LLM leaderboard displays the latest public benchmark performance for state-of-the-art model versions released after April 2024. The data comes from model providers as well as independently run evaluations by Vellum or the open-source community.",
			"We feature results from non-saturated benchmarks, excluding outdated benchmarks (e.g. MMLU). If you want to evaluate these models on your use-cases, try",
		},
		LinkText: "Vellum Evals",
		LinkURL:  "https://www.vellum.ai/evals",
		Footer:   "Data updated regularly from public benchmarks and independent evaluations.",
		Sections: []Section{
			{
				Key:     "top-models",
				Heading: "Top Models Per Task",
				Charts: []Chart{
					{
						Key:         "reasoning",
						Title:       "Best in Reasoning (GPQA Diamond)",
						Description: "GPQA Diamond tests graduate-level scientific reasoning across physics, chemistry, and biology. Higher scores indicate better complex reasoning abilities.",
						Entries: []Entry{
							{Name: "GPT-4", Score: 85},
							{Name: "GPT-4", Score: 82},
							{Name: "Claude\n3.5\nSonnet", Score: 78},
							{Name: "GPT-4\nTurbo", Score: 75},
							{Name: "OpenAI\no1", Score: 73},
						},
					},
					{
						Key:         "math",
						Title:       "Best in High School Math (AIME 2025)",
						Description: "AIME (American Invitational Mathematics Examination) measures advanced mathematical problem-solving skills at the high school level.",
						Entries: []Entry{
							{Name: "GPT-4", Score: 95},
							{Name: "Claude\n3.5\nSonnet", Score: 92},
							{Name: "GPT-4", Score: 88},
							{Name: "GPT-4\nTurbo", Score: 85},
							{Name: "GPT-4\nTurbo", Score: 82},
						},
					},
					{
						Key:         "coding",
						Title:       "Best in Agentic Coding (SWE Bench)",
						Description: "SWE-Bench evaluates models' ability to resolve real-world software engineering issues from GitHub repositories.",
						Entries: []Entry{
							{Name: "GPT-4", Score: 72},
							{Name: "GPT-4", Score: 68},
							{Name: "Claude\n3.5\nSonnet", Score: 65},
							{Name: "Claude\n3.5\nSonnet", Score: 62},
							{Name: "Claude\n3.5\nSonnet", Score: 60},
						},
					},
				},
			},
			{
				Key:     "independent-evals",
				Heading: "Independent Evaluations",
				Charts: []Chart{
					{
						Key:         "tool-use",
						Title:       "Best in Tool Use (BFCL)",
						Description: "Berkeley Function Calling Leaderboard (BFCL) evaluates models' ability to accurately invoke functions and tools.",
						Entries: []Entry{
							{Name: "GPT-4o", Score: 85},
							{Name: "GPT-4o", Score: 82},
							{Name: "GPT-4", Score: 68},
							{Name: "GPT-4", Score: 65},
							{Name: "OpenAI\no1", Score: 62},
						},
					},
					{
						Key:         "adaptive",
						Title:       "Best in Adaptive Reasoning (GBNQ)",
						Description: "Google-BIG Bench Natural Questions tests models' ability to adapt their reasoning to different question types and contexts.",
						Entries: []Entry{
							{Name: "GPT-4", Score: 78},
							{Name: "GPT-4o", Score: 72},
							{Name: "GPT-4", Score: 65},
							{Name: "GPT-4", Score: 58},
							{Name: "GPT-4\nMini", Score: 55},
						},
					},
					{
						Key:         "overall",
						Title:       "Best Overall (Humanity's Last Exam)",
						Description: "A comprehensive evaluation across multiple domains designed to test general intelligence and reasoning capabilities.",
						Entries: []Entry{
							{Name: "GPT-4", Score: 82},
						},
					},
				},
			},
		},
	}
}
