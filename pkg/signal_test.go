package wifiscanner

import (
	"encoding/json"
	"testing"
)

func TestClassifySignal(t *testing.T) {
	cases := []struct {
		dbm  int
		tier Tier
	}{
		{0, TierStrong},
		{-30, TierStrong},
		{-49, TierStrong},
		{-50, TierMedium},
		{-60, TierMedium},
		{-69, TierMedium},
		{-70, TierWeak},
		{-71, TierWeak},
		{-95, TierWeak},
	}

	for _, c := range cases {
		if got := ClassifySignal(c.dbm); got != c.tier {
			t.Errorf("ClassifySignal(%d) = %s, want %s", c.dbm, got, c.tier)
		}
	}
}

func TestClassifyBand(t *testing.T) {
	cases := []struct {
		freq int
		band Band
	}{
		{2000, BandUnknown},
		{2001, Band24GHz},
		{2437, Band24GHz},
		{2999, Band24GHz},
		{3000, BandUnknown},
		{4500, BandUnknown},
		{4501, Band5GHz},
		{5180, Band5GHz},
		{5499, Band5GHz},
		// a valid channel, but above the 5 GHz label range
		{5500, BandUnknown},
		{5825, BandUnknown},
	}

	for _, c := range cases {
		if got := ClassifyBand(c.freq); got != c.band {
			t.Errorf("ClassifyBand(%d) = %q, want %q", c.freq, got, c.band)
		}
	}
}

func TestNormalizeJSON(t *testing.T) {
	n := Normalize(AccessPointRecord{BSSID: "AA:BB:CC:DD:EE:FF", SSID: "home", Frequency: 2437, SignalLevel: -45})

	b, err := json.Marshal(n)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"bssid":"AA:BB:CC:DD:EE:FF","ssid":"home","frequency":2437,"level":-45,"channel":6,"hasChannel":true,"band":"2.4 GHz","tier":"strong"}`
	if string(b) != want {
		t.Errorf("got %s\nwant %s", b, want)
	}
}
