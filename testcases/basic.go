package testcases

var basicCases = []TestCase{
	{
		Name:   "dot",
		Points: [][]float64{{64, 64}},
		Width:  128,
		Height: 128,
	},
	{
		Name:   "dot_repeated",
		Points: [][]float64{{64, 64}, {64, 64}, {64, 64, 0.8}},
		Width:  128,
		Height: 128,
	},
	{
		Name:   "two_points",
		Points: [][]float64{{16, 64}, {112, 64}},
		Width:  128,
		Height: 128,
	},
	{
		Name:    "line",
		Points:  line(16, 64, 112, 64, 25),
		Options: `{"last": true}`,
		Width:   128,
		Height:  128,
	},
	{
		Name:    "line_uniform",
		Points:  line(16, 64, 112, 64, 25),
		Options: `{"thinning": 0, "last": true}`,
		Width:   128,
		Height:  128,
	},
	{
		Name:    "line_thin",
		Points:  line(16, 64, 112, 64, 25),
		Options: `{"size": 4, "last": true}`,
		Width:   128,
		Height:  128,
	},
	{
		Name:    "line_raw",
		Points:  line(16, 64, 112, 64, 13),
		Options: `{"streamline": 0, "smoothing": 0, "last": true}`,
		Width:   128,
		Height:  128,
	},
	{
		Name:    "diagonal",
		Points:  line(16, 112, 112, 16, 30),
		Options: `{"size": 12, "last": true}`,
		Width:   128,
		Height:  128,
	},
	{
		Name:    "line_dense",
		Points:  line(16, 64, 112, 64, 400),
		Options: `{"last": true}`,
		Width:   128,
		Height:  128,
	},
}
