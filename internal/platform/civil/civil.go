package civil

import (
	"time"
	_ "time/tzdata" // Asia/Seoul aunque el host no tenga tzdb
)

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02T15:04:05"
	StampLayout    = "2006-01-02 15:04:05"
)

var seoul = mustLocation()

func mustLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		panic(err)
	}
	return loc
}

func Location() *time.Location { return seoul }

// Now devuelve la hora en la zona civil fija del sistema (Asia/Seoul),
// sin importar dónde corra el proceso.
func Now() time.Time { return time.Now().In(seoul) }

// Today es la fecha civil de hoy en formato ISO.
func Today() string { return Now().Format(DateLayout) }

// NowStamp es el timestamp "YYYY-MM-DD HH:MM:SS" que usa el log de tomas.
func NowStamp() string { return Now().Format(StampLayout) }
