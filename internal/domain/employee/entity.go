package employee

import (
	"time"
)

type Employee struct {
	ID           string
	EmployeeCode string
	FullName     string
	Department   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Department codes as stored; the office UI shows the Thai labels. Legacy
// codes are Thai words for two departments, kept as-is so existing rows keep
// matching.
const (
	DepartmentIT         = "IT"
	DepartmentAccounting = "บัญชี"
	DepartmentHR         = "บุคคล"
	DepartmentSales      = "ขาย"
)

var Departments = []string{DepartmentIT, DepartmentAccounting, DepartmentHR, DepartmentSales}

var departmentLabels = map[string]string{
	DepartmentIT:         "ฝ่ายเทคนิค",
	DepartmentAccounting: "ออฟฟิศ",
	DepartmentHR:         "ซ่อมบำรุง",
	DepartmentSales:      "วิศวกร",
}

// DepartmentLabel returns the Thai display label for a department code.
// Unknown codes fall through unchanged; empty becomes "-".
func DepartmentLabel(dept string) string {
	if label, ok := departmentLabels[dept]; ok {
		return label
	}
	if dept == "" {
		return "-"
	}
	return dept
}

func ValidDepartment(dept string) bool {
	_, ok := departmentLabels[dept]
	return ok
}
