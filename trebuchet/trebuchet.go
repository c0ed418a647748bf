// Package trebuchet recovers calibration values from lines of text.
package trebuchet

import (
	"strings"

	"github.com/emirpasic/gods/v2/maps/treemap"

	"github.com/liznear/advent-of-code-2023/utils"
)

var spelledDigits = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// Calibration returns 10*first + last digit of the line, or 0 if the line has
// no digit. With spelled set, words "one" to "nine" count as digits too, and
// they may overlap ("eightwo" has the digits 8 and 2).
func Calibration(line string, spelled bool) int {
	// Digits by their position in the line.
	digits := treemap.New[int, int]()
	for i, c := range line {
		if c >= '0' && c <= '9' {
			digits.Put(i, int(c-'0'))
		}
	}
	if spelled {
		for d, word := range spelledDigits {
			if i := strings.Index(line, word); i >= 0 {
				digits.Put(i, d+1)
			}
			if i := strings.LastIndex(line, word); i >= 0 {
				digits.Put(i, d+1)
			}
		}
	}
	if digits.Empty() {
		return 0
	}
	_, first, _ := digits.Min()
	_, last, _ := digits.Max()
	return first*10 + last
}

// Solve returns the sum of calibration values with digits only, then with
// spelled digits.
func Solve(lines []string) (int, int) {
	var part1, part2 []int
	for _, line := range lines {
		part1 = append(part1, Calibration(line, false))
		part2 = append(part2, Calibration(line, true))
	}
	return utils.Sum(part1...), utils.Sum(part2...)
}
