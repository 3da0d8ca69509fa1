package wifiscanner

// NoChannel is returned by ClassifyChannel for frequencies outside both bands.
const NoChannel = -1

const (
	band24Low  = 2412
	band24High = 2484
	band5Low   = 5170
	band5High  = 5825
)

// ClassifyChannel maps a carrier frequency in MHz to its channel number.
// Channels are spaced 5 MHz apart in both bands; the division truncates.
func ClassifyChannel(frequency int) (int, bool) {
	switch {
	case frequency >= band24Low && frequency <= band24High:
		return (frequency-band24Low)/5 + 1, true
	case frequency >= band5Low && frequency <= band5High:
		return (frequency-band5Low)/5 + 34, true
	default:
		return NoChannel, false
	}
}
