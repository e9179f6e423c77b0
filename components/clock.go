package components

import "github.com/yohamta/donburi"

type ClockData struct {
	Ticks   int
	Elapsed float64 // seconds
	DT      float64 // seconds per tick
}

var Clock = donburi.NewComponentType[ClockData]()
