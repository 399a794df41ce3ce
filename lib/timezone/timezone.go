package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("Europe/Moscow")
	if err != nil {
		panic(err)
	}
}

// RZD timetables express every date and departure time in Moscow local
// time, so the whole program runs on a Moscow clock regardless of where
// the host machine happens to be.
func Now() time.Time {
	return time.Now().In(Location)
}
