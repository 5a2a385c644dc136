package stopwatch

import "fmt"

// FormatTime renders whole seconds as minutes and zero-padded seconds,
// for example 65 -> "1:05" and 3661 -> "61:01". Minutes are not capped.
func FormatTime(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	return fmt.Sprintf("%d:%02d", totalSeconds/60, totalSeconds%60)
}

// LapLine renders the lap at the zero-based index as a 1-indexed line.
func LapLine(index, seconds int) string {
	return fmt.Sprintf("Lap %d: %s", index+1, FormatTime(seconds))
}
