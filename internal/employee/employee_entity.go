package employee

import "time"

// Employee is a read-only view of the personnel master table. Rows are
// owned by the employee administration service.
type Employee struct {
	EmpNo     int64     `gorm:"column:emp_no;primaryKey"`
	BirthDate time.Time `gorm:"column:birth_date;type:date"`
	FirstName string    `gorm:"column:first_name"`
	LastName  string    `gorm:"column:last_name"`
	Gender    string    `gorm:"column:gender"`
	HireDate  time.Time `gorm:"column:hire_date;type:date"`
}

func (Employee) TableName() string {
	return "employees"
}
