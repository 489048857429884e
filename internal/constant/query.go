package constant

// PassFailGrades are letter grades with no grade-point value. They are left out of every
// distribution and average.
var PassFailGrades = []string{"P", "NP", "S", "U"}

// MaxRecords caps how many raw grade rows a single request may return.
const MaxRecords = 5000
