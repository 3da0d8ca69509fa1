package wifiscanner

import "fmt"

// Tier is a coarse signal quality bucket.
type Tier int

const (
	TierWeak Tier = iota
	TierMedium
	TierStrong
)

func (t Tier) String() string {
	switch t {
	case TierStrong:
		return "strong"
	case TierMedium:
		return "medium"
	case TierWeak:
		return "weak"
	}
	return fmt.Sprintf("tier(%d)", int(t))
}

func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Tier) UnmarshalText(b []byte) error {
	switch string(b) {
	case "strong":
		*t = TierStrong
	case "medium":
		*t = TierMedium
	case "weak":
		*t = TierWeak
	default:
		return fmt.Errorf("unknown signal tier %q", string(b))
	}
	return nil
}

// ClassifySignal buckets a signal level in dBm.
// -50 belongs to Medium and -70 belongs to Weak.
func ClassifySignal(dbm int) Tier {
	switch {
	case dbm > -50:
		return TierStrong
	case dbm > -70:
		return TierMedium
	default:
		return TierWeak
	}
}

// Band is the human label for a frequency's band.
type Band string

const (
	Band24GHz   Band = "2.4 GHz"
	Band5GHz    Band = "5 GHz"
	BandUnknown Band = "unknown"
)

// ClassifyBand labels a frequency in MHz. The intervals are open and wider
// than the channel ranges in ClassifyChannel, so a frequency can have a band
// label and still no channel.
func ClassifyBand(frequency int) Band {
	switch {
	case frequency > 2000 && frequency < 3000:
		return Band24GHz
	case frequency > 4500 && frequency < 5500:
		return Band5GHz
	default:
		return BandUnknown
	}
}
