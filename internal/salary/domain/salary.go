package domain

// SalaryInfo is what a successful salary lookup returns.
type SalaryInfo struct {
	Login      string `json:"login"`
	Salary     string `json:"salary"`
	SalaryDate string `json:"salary_date"`
}

// SalaryOf projects the salary columns of a record.
func SalaryOf(u *UserRecord) SalaryInfo {
	return SalaryInfo{
		Login:      u.Login,
		Salary:     u.Salary,
		SalaryDate: u.SalaryDate,
	}
}
