package models

import "testing"

func TestTransportRatio(t *testing.T) {
	tc := []struct {
		name      string
		transport Transport
		want      float64
	}{
		{name: "start", transport: Transport{Elapsed: 0, Duration: 180}, want: 0},
		{name: "half", transport: Transport{Elapsed: 90, Duration: 180}, want: 0.5},
		{name: "overrun clamps", transport: Transport{Elapsed: 200, Duration: 180}, want: 1},
		{name: "zero duration", transport: Transport{Elapsed: 10, Duration: 0}, want: 0},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.transport.Ratio(); got != tt.want {
				t.Errorf("Ratio() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseTab(t *testing.T) {
	for _, tab := range Tabs {
		got, err := ParseTab(tab.String())
		if err != nil {
			t.Fatalf("ParseTab(%q) failed: %v", tab, err)
		}
		if got != tab {
			t.Errorf("ParseTab(%q) = %v", tab, got)
		}
	}

	if got, err := ParseTab(" Search "); err != nil || got != SearchTab {
		t.Errorf("expected case and space insensitive match, got %v, %v", got, err)
	}

	if _, err := ParseTab("radio"); err == nil {
		t.Error("expected error for unknown tab")
	}
}

func TestTransportSelected(t *testing.T) {
	if (Transport{Index: NoTrack}).Selected() {
		t.Error("NoTrack should not be selected")
	}
	if !(Transport{Index: 0}).Selected() {
		t.Error("index 0 should be selected")
	}
}
