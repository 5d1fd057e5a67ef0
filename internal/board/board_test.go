package board

import "testing"

func TestLoadConsistency(t *testing.T) {
	ix := Load()
	if len(ix.Cities) != len(cityTable) {
		t.Fatalf("cities: got %d, want %d", len(ix.Cities), len(cityTable))
	}
	if len(ix.Routes) != len(routeTable) {
		t.Fatalf("routes: got %d, want %d", len(ix.Routes), len(routeTable))
	}
	for _, r := range ix.Routes {
		if _, ok := ix.Cities[r.A]; !ok {
			t.Errorf("route %q references unknown city %q", r.Key, r.A)
		}
		if _, ok := ix.Cities[r.B]; !ok {
			t.Errorf("route %q references unknown city %q", r.Key, r.B)
		}
	}
	for com, suppliers := range ix.Suppliers {
		for _, s := range suppliers {
			if !ix.Supplies(s, com) {
				t.Errorf("supplier index out of sync for %q/%q", com, s)
			}
		}
	}
	keys := ix.RouteKeys()
	if len(keys) != len(routeTable) {
		t.Fatalf("route keys: got %d, want %d", len(keys), len(routeTable))
	}
	for i, rk := range keys {
		want := routeTable[i][0] + " - " + routeTable[i][1]
		if rk != want {
			t.Errorf("route key %d = %q, want %q", i, rk, want)
		}
	}
}

func TestGraphConnected(t *testing.T) {
	ix := Load()
	reached := ix.CitiesConnectedTo([]string{"New York"}, ConnectOptions{
		Distance:          len(cityTable),
		IncludeFromCities: true,
	})
	if len(reached) != len(ix.Cities) {
		t.Errorf("graph not connected: reached %d of %d cities", len(reached), len(ix.Cities))
	}
}

func TestCitiesConnectedTo(t *testing.T) {
	ix := Load()

	one := ix.CitiesConnectedTo([]string{"New York"}, ConnectOptions{IncludeFromCities: true})
	for _, want := range []string{"New York", "New Haven", "Albany", "Scranton", "Philadelphia"} {
		if !one[want] {
			t.Errorf("1 hop from New York should include %q", want)
		}
	}
	if one["Boston"] {
		t.Error("Boston is 2 hops from New York, not 1")
	}

	without := ix.CitiesConnectedTo([]string{"New York"}, ConnectOptions{})
	if without["New York"] {
		t.Error("seed should be excluded when IncludeFromCities is false")
	}
	if !without["Albany"] {
		t.Error("Albany should still be reached")
	}

	if got := ix.CitiesConnectedTo(nil, ConnectOptions{}); len(got) != 0 {
		t.Errorf("empty seed set: got %d cities, want 0", len(got))
	}

	dup := ix.CitiesConnectedTo([]string{"Albany", "Albany"}, ConnectOptions{IncludeFromCities: true})
	single := ix.CitiesConnectedTo([]string{"Albany"}, ConnectOptions{IncludeFromCities: true})
	if len(dup) != len(single) {
		t.Error("duplicate seeds should be idempotent")
	}

	if got := ix.CitiesConnectedTo([]string{"Atlantis"}, ConnectOptions{IncludeFromCities: true}); len(got) != 0 {
		t.Errorf("unknown seed: got %d cities, want 0", len(got))
	}
}

func TestRoutesWithoutCities(t *testing.T) {
	ix := Load()
	avoid := map[string]bool{"Chicago": true}
	for _, r := range ix.RoutesWithoutCities(avoid) {
		if r.A == "Chicago" || r.B == "Chicago" {
			t.Errorf("route %q touches avoided city", r.Key)
		}
	}
	if got := len(ix.RoutesWithoutCities(nil)); got != len(routeTable) {
		t.Errorf("empty avoid set: got %d routes, want all %d", got, len(routeTable))
	}
}

func TestHopDistance(t *testing.T) {
	ix := Load()
	tests := []struct {
		from, to string
		want     int
	}{
		{"New York", "New York", 0},
		{"New York", "Philadelphia", 1},
		{"New York", "Boston", 2},
		{"Boston", "New York", 2},
		{"New York", "Atlantis", -1},
		{"Atlantis", "New York", -1},
	}
	for _, tt := range tests {
		if got := ix.HopDistance(tt.from, tt.to); got != tt.want {
			t.Errorf("HopDistance(%q, %q) = %d, want %d", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestNearestSupplierDistance(t *testing.T) {
	ix := Load()

	if got := ix.NearestSupplierDistance("coal", "Scranton"); got != 0 {
		t.Errorf("Scranton supplies coal itself: got %d, want 0", got)
	}
	// Philadelphia's nearest coal is Scranton, one hop out.
	if got := ix.NearestSupplierDistance("coal", "Philadelphia"); got != 1 {
		t.Errorf("coal to Philadelphia: got %d, want 1", got)
	}
	if got := ix.NearestSupplierDistance("unobtainium", "Chicago"); got != -1 {
		t.Errorf("unknown commodity: got %d, want -1", got)
	}
	if got := ix.NearestSupplierDistance("coal", "Atlantis"); got != -1 {
		t.Errorf("unknown destination: got %d, want -1", got)
	}

	// Chicago does not supply coal, so a coal contract to Chicago is legal
	// and has a positive distance.
	if ix.Supplies("Chicago", "coal") {
		t.Fatal("reference data: Chicago must not supply coal")
	}
	if got := ix.NearestSupplierDistance("coal", "Chicago"); got < 1 {
		t.Errorf("coal to Chicago: got %d, want >= 1", got)
	}
}

func TestStateTerms(t *testing.T) {
	if len(StateFeatures("PA")) == 0 {
		t.Error("PA should have feature terms")
	}
	if StateFeatures("ZZ") != nil {
		t.Error("unknown state should have no feature terms")
	}
	if len(StateIndustries("WV")) == 0 {
		t.Error("WV should have industry terms")
	}
}
