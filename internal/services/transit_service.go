package services

import (
	"fmt"
	"math"
)

// TransitInstruction is a derived travel recommendation for one route leg.
type TransitInstruction struct {
	Mode       string
	DistanceKm float64
	Minutes    int
	Cost       int
	Label      string
}

// Fixed domain parameters for Indian city travel. These are part of the
// output contract, not tunables.
const (
	walkMaxKm          = 2.0
	walkPaceMinPerKm   = 12
	cabBudgetThreshold = 4000
	cabRatePerKm       = 25
	cabPaceMinPerKm    = 3
	autoRatePerKm      = 15
	autoPaceMinPerKm   = 4
)

type TransitAdvisorInterface interface {
	Advise(distanceMeters float64, dailyBudget int) *TransitInstruction
}

type transitAdvisor struct{}

func NewTransitAdvisor() TransitAdvisorInterface {
	return &transitAdvisor{}
}

// Advise maps a leg distance and the trip's daily budget to a transit mode,
// time, and cost estimate. Pure rule table, no I/O. A non-positive distance
// means there is nothing to advise (nil).
func (t *transitAdvisor) Advise(distanceMeters float64, dailyBudget int) *TransitInstruction {
	if distanceMeters <= 0 {
		return nil
	}

	km := distanceMeters / 1000.0

	if km < walkMaxKm {
		mins := int(math.Round(km * walkPaceMinPerKm))
		return &TransitInstruction{
			Mode:       "walk",
			DistanceKm: km,
			Minutes:    mins,
			Cost:       0,
			Label:      fmt.Sprintf("Walk (%.1f km, ~%d mins) - Free", km, mins),
		}
	}

	if dailyBudget > cabBudgetThreshold {
		cost := int(math.Round(km * cabRatePerKm))
		mins := int(math.Round(km * cabPaceMinPerKm))
		return &TransitInstruction{
			Mode:       "cab",
			DistanceKm: km,
			Minutes:    mins,
			Cost:       cost,
			Label:      fmt.Sprintf("Cab (%.1f km, ~%d mins) - Est. Rs%d", km, mins, cost),
		}
	}

	cost := int(math.Round(km * autoRatePerKm))
	mins := int(math.Round(km * autoPaceMinPerKm))
	return &TransitInstruction{
		Mode:       "auto",
		DistanceKm: km,
		Minutes:    mins,
		Cost:       cost,
		Label:      fmt.Sprintf("Auto (%.1f km, ~%d mins) - Est. Rs%d", km, mins, cost),
	}
}
