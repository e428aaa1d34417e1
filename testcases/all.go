package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in subtest names.
var All = map[string][]TestCase{
	"draw": drawCases,
	"clip": clipCases,
	"fill": fillCases,
}
