// Copyright 2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package dot11

import "testing"

func TestDecodeElementUnknownFallsBack(t *testing.T) {
	v, err := decodeElement(200, []byte{1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if v.Unknown == nil {
		t.Fatal("want Unknown populated for an element with no dedicated decoder")
	}
	if len(v.Unknown.Raw) != 3 {
		t.Errorf("raw len = %d, want 3", len(v.Unknown.Raw))
	}
}

func TestInfoElementSetAggregatesRepeatedEIDs(t *testing.T) {
	s := newInfoElementSet()
	s.Add(EidVendSpec, ElementValue{VendorSpecific: &VendorSpecificElement{OUI: [3]byte{1, 2, 3}}})
	s.Add(EidVendSpec, ElementValue{VendorSpecific: &VendorSpecificElement{OUI: [3]byte{4, 5, 6}}})
	s.Add(EidSSID, ElementValue{SSID: &SSIDElement{SSID: "x"}})

	if len(s.Order) != 2 {
		t.Fatalf("order = %v, want 2 distinct eids", s.Order)
	}
	vendors := s.GetIEs(EidVendSpec)
	if len(vendors) != 2 {
		t.Fatalf("got %d vendor elements, want 2", len(vendors))
	}
}

func TestWalkSubElements(t *testing.T) {
	buf := []byte{1, 2, 0xAA, 0xBB, 2, 1, 0xCC}
	got := walkSubElements(buf)
	if len(got) != 2 {
		t.Fatalf("got %d sub-elements, want 2", len(got))
	}
	if got[0].ID != 1 || len(got[0].Payload) != 2 {
		t.Errorf("sub-element[0] = %+v", got[0])
	}
	if got[1].ID != 2 || len(got[1].Payload) != 1 {
		t.Errorf("sub-element[1] = %+v", got[1])
	}
}

func TestDecodeCountryTriplets(t *testing.T) {
	payload := []byte{'U', 'S', ' ', 1, 13, 30, 36, 4, 17}
	v, err := decodeCountry(payload)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if v.CountryString != "US " {
		t.Errorf("country string = %q", v.CountryString)
	}
	if len(v.Triplets) != 2 {
		t.Fatalf("triplets = %+v, want 2", v.Triplets)
	}
	if v.Triplets[0].FirstChannel != 1 || v.Triplets[0].NumChannels != 13 || v.Triplets[0].MaxTxPower != 30 {
		t.Errorf("triplet[0] = %+v", v.Triplets[0])
	}
}

func TestDecodeRatesMasksBasicBit(t *testing.T) {
	r := decodeRates([]byte{0x82, 0x04})
	if r.RatesMbps[0] != 1.0 || !r.Basic[0] {
		t.Errorf("rates[0] = %v basic=%v, want 1.0 true", r.RatesMbps[0], r.Basic[0])
	}
	if r.RatesMbps[1] != 2.0 || r.Basic[1] {
		t.Errorf("rates[1] = %v basic=%v, want 2.0 false", r.RatesMbps[1], r.Basic[1])
	}
}
