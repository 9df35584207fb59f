//go:build !race

package worldclock

func passwordHashCost() int {
	return 14
}
