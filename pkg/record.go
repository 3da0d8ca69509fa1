package wifiscanner

// AccessPointRecord is one network observed by a scan, as reported by the
// platform. Nothing on it is derived.
type AccessPointRecord struct {
	BSSID       string `json:"bssid"`
	SSID        string `json:"ssid"`
	Frequency   int    `json:"frequency"` // MHz
	SignalLevel int    `json:"level"`     // dBm
}

// NormalizedRecord carries a raw record plus everything the classifiers
// derive from it. This is what presenters render.
type NormalizedRecord struct {
	AccessPointRecord
	Channel    int  `json:"channel"`
	HasChannel bool `json:"hasChannel"`
	Band       Band `json:"band"`
	Tier       Tier `json:"tier"`
}

func Normalize(r AccessPointRecord) NormalizedRecord {
	channel, ok := ClassifyChannel(r.Frequency)
	return NormalizedRecord{
		AccessPointRecord: r,
		Channel:           channel,
		HasChannel:        ok,
		Band:              ClassifyBand(r.Frequency),
		Tier:              ClassifySignal(r.SignalLevel),
	}
}

func NormalizeAll(records []AccessPointRecord) []NormalizedRecord {
	if records == nil {
		return nil
	}
	out := make([]NormalizedRecord, 0, len(records))
	for _, r := range records {
		out = append(out, Normalize(r))
	}
	return out
}
