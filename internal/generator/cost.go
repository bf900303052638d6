package generator

// Fixed policy values for fully-loaded team cost.
const (
	overheadMultiplier  = 1.30
	monthlyWorkingHours = 160
)

// TeamCost converts the team's current salaries into a fully-loaded
// monthly and hourly cost. Members with no resolvable title contribute
// nothing.
func TeamCost(team []ConsultantView) (monthlyCost, hourlyCost float64) {
	totalMonthlySalary := 0.0
	for _, member := range team {
		if member.TitleID == 0 {
			continue
		}
		totalMonthlySalary += member.Salary / 12
	}
	monthlyCost = totalMonthlySalary * overheadMultiplier
	hourlyCost = monthlyCost / monthlyWorkingHours
	return monthlyCost, hourlyCost
}
