package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in output filenames.
var All = map[string][]TestCase{
	"basic":    basicCases,
	"pressure": pressureCases,
	"corner":   cornerCases,
	"taper":    taperCases,
	"cap":      capCases,
	"curve":    curveCases,
	"large":    largeCases,
}
