package assignment

import "time"

// DeptEmployee is one row of an employee's department history.
type DeptEmployee struct {
	EmpNo    int64     `gorm:"column:emp_no;primaryKey"`
	DeptNo   string    `gorm:"column:dept_no;primaryKey"`
	FromDate time.Time `gorm:"column:from_date;type:date"`
	ToDate   time.Time `gorm:"column:to_date;type:date"`
}

func (DeptEmployee) TableName() string {
	return "dept_emp"
}

func (d DeptEmployee) Interval() Interval {
	return Interval{From: d.FromDate, To: d.ToDate}
}

// DeptManager is one row of a department's manager history.
type DeptManager struct {
	EmpNo    int64     `gorm:"column:emp_no;primaryKey"`
	DeptNo   string    `gorm:"column:dept_no;primaryKey"`
	FromDate time.Time `gorm:"column:from_date;type:date"`
	ToDate   time.Time `gorm:"column:to_date;type:date"`
}

func (DeptManager) TableName() string {
	return "dept_manager"
}

func (d DeptManager) Interval() Interval {
	return Interval{From: d.FromDate, To: d.ToDate}
}
