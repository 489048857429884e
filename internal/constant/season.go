package constant

const (
	SeasonWinter = "Winter"
	SeasonSpring = "Spring"
	SeasonSummer = "Summer"
	SeasonFall   = "Fall"
)

// Seasons lists the academic quarters in calendar order.
var Seasons = []string{
	SeasonWinter,
	SeasonSpring,
	SeasonSummer,
	SeasonFall,
}

// SeasonOrderExpr orders rows of a qtr column by calendar order within a year.
const SeasonOrderExpr = "CASE qtr WHEN 'Winter' THEN 0 WHEN 'Spring' THEN 1 WHEN 'Summer' THEN 2 WHEN 'Fall' THEN 3 END"
