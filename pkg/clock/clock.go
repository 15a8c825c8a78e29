package clock

import "time"

// Real отдаёт текущее время в UTC.
type Real struct{}

func New() Real {
	return Real{}
}

func (Real) Now() time.Time {
	return time.Now().UTC()
}
