package domain

// Column names shared by the user and token sources.
const (
	FieldLogin      = "login"
	FieldPassword   = "password"
	FieldSalary     = "salary"
	FieldSalaryDate = "salary_date"
	FieldToken      = "token"
	FieldTokenDate  = "token_date"
)

// TokenFields is the fixed column order of the token source.
var TokenFields = []string{FieldLogin, FieldToken, FieldTokenDate}

// UserRecord is one known user. Login, Password, Salary and SalaryDate come
// from the user source only; Token and TokenDate are always written together.
type UserRecord struct {
	Login      string
	Password   string // plaintext
	Salary     string
	SalaryDate string
	Token      string
	TokenDate  string // "2006-01-02 15:04:05.000000"

	// Extra keeps columns that have no dedicated field.
	Extra map[string]string

	fromUsers bool
}

// Set assigns the value of a named column.
func (u *UserRecord) Set(field, value string) {
	switch field {
	case FieldLogin:
		u.Login = value
	case FieldPassword:
		u.Password = value
	case FieldSalary:
		u.Salary = value
	case FieldSalaryDate:
		u.SalaryDate = value
	case FieldToken:
		u.Token = value
	case FieldTokenDate:
		u.TokenDate = value
	default:
		if u.Extra == nil {
			u.Extra = make(map[string]string)
		}
		u.Extra[field] = value
	}
}

// Get returns the value of a named column and whether it is set.
func (u *UserRecord) Get(field string) (string, bool) {
	var v string
	switch field {
	case FieldLogin:
		v = u.Login
	case FieldPassword:
		v = u.Password
	case FieldSalary:
		v = u.Salary
	case FieldSalaryDate:
		v = u.SalaryDate
	case FieldToken:
		v = u.Token
	case FieldTokenDate:
		v = u.TokenDate
	default:
		ev, ok := u.Extra[field]
		return ev, ok
	}
	return v, v != ""
}

// Merge overwrites only the columns present in row.
func (u *UserRecord) Merge(row map[string]string) {
	for field, value := range row {
		u.Set(field, value)
	}
}

// Table maps login to its record.
type Table map[string]*UserRecord

// Upsert merges row into the record keyed by its login column, creating the
// record if needed.
func (t Table) Upsert(row map[string]string) {
	t.upsert(row)
}

// UpsertUser is Upsert for rows read from the user source. The record is
// marked as known to the user source, even when its password is empty.
func (t Table) UpsertUser(row map[string]string) {
	t.upsert(row).fromUsers = true
}

func (t Table) upsert(row map[string]string) *UserRecord {
	login := row[FieldLogin]
	rec, ok := t[login]
	if !ok {
		rec = &UserRecord{}
		t[login] = rec
	}
	rec.Merge(row)
	return rec
}

// FromUserSource reports whether the record was loaded from the user source.
// Records created only by token rows are orphans and report false.
func (u *UserRecord) FromUserSource() bool {
	return u.fromUsers
}
