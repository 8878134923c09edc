package services

import "log"

// RouteStop is one stop on an ordered route. DistanceFromPrev is the matrix
// entry used to reach it, in meters; nil for the anchor and for steps taken
// without a known distance.
type RouteStop struct {
	Coordinate       Coordinate
	DistanceFromPrev *float64
}

type RouteOptimizerInterface interface {
	Optimize(coords []Coordinate, matrix [][]*float64) []RouteStop
}

type routeOptimizer struct{}

func NewRouteOptimizer() RouteOptimizerInterface {
	return &routeOptimizer{}
}

// Optimize orders coordinates with a greedy open-path nearest-neighbor pass:
// anchor at index 0, then repeatedly step to the closest unvisited node.
// Ties go to the first candidate in iteration order. When no remaining
// distance from the current node is known, the first unvisited node in input
// order is taken so the pass always terminates and covers every node.
// No second-pass improvement (2-opt etc.) is attempted; immediate response
// beats provably minimal travel here. The output is always a permutation of
// the input. A nil or malformed matrix yields the identity order.
func (r *routeOptimizer) Optimize(coords []Coordinate, matrix [][]*float64) []RouteStop {
	n := len(coords)
	if n == 0 {
		return []RouteStop{}
	}

	if matrix == nil || len(matrix) != n {
		route := make([]RouteStop, 0, n)
		for _, coord := range coords {
			route = append(route, RouteStop{Coordinate: coord})
		}
		return route
	}

	visited := make([]bool, n)
	route := make([]RouteStop, 0, n)

	current := 0
	visited[current] = true
	route = append(route, RouteStop{Coordinate: coords[current]})

	for len(route) < n {
		nearest := -1
		var nearestDist float64

		for j := 0; j < n; j++ {
			if visited[j] || current >= len(matrix) || j >= len(matrix[current]) {
				continue
			}
			d := matrix[current][j]
			if d == nil {
				continue
			}
			// Strict less keeps the first candidate on an exact tie.
			if nearest == -1 || *d < nearestDist {
				nearest = j
				nearestDist = *d
			}
		}

		if nearest != -1 {
			visited[nearest] = true
			dist := nearestDist
			route = append(route, RouteStop{Coordinate: coords[nearest], DistanceFromPrev: &dist})
			current = nearest
			continue
		}

		// Every remaining distance from here is unknown. Take the first
		// unvisited node in input order; logged as a routing quality signal.
		for j := 0; j < n; j++ {
			if !visited[j] {
				log.Printf("No known distance from %q; continuing with %q in input order",
					coords[current].Name, coords[j].Name)
				visited[j] = true
				route = append(route, RouteStop{Coordinate: coords[j]})
				current = j
				break
			}
		}
	}

	return route
}
