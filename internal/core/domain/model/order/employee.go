package order

// DefaultEmployeeCode is recorded for stages saved without an explicit employee.
const DefaultEmployeeCode = "0009"

// UnknownEmployee is shown for codes missing from the directory.
const UnknownEmployee = "Unknown Employee"

var employeeDirectory = map[string]string{
	DefaultEmployeeCode: "Workshop Desk",
	"0010":              "Design Studio",
	"0011":              "Procurement Office",
	"0012":              "Production Floor",
	"0013":              "Quality Control",
	"0014":              "Dispatch & Accounts",
}

// EmployeeName resolves an employee code to its display name.
func EmployeeName(code string) string {
	if name, ok := employeeDirectory[code]; ok {
		return name
	}
	return UnknownEmployee
}
