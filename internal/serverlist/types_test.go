package serverlist

import (
	"context"
	"testing"
	"time"
)

func TestUnitIDString(t *testing.T) {
	tests := []struct {
		name string
		id   UnitID
		want string
	}{
		{name: "empty", id: nil, want: ""},
		{name: "single byte", id: UnitID{0xAB}, want: "AB"},
		{name: "two bytes", id: UnitID{0xAB, 0xCD}, want: "AB-CD"},
		{name: "longer", id: UnitID{0x01, 0x23, 0x45, 0x67}, want: "01-234567"},
		{name: "zero bytes", id: UnitID{0x00, 0x00}, want: "00-00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.id.String(); got != tt.want {
				t.Errorf("UnitID(%v).String() = %q, want %q", []byte(tt.id), got, tt.want)
			}
		})
	}
}

func TestServiceTypeString(t *testing.T) {
	tests := []struct {
		typ  ServiceType
		want string
	}{
		{typ: ServiceTypeLapro, want: "lapro"},
		{typ: ServiceTypeAudio, want: "audio"},
		{typ: 0x17, want: "0x17"},
		{typ: 0x00, want: "0x00"},
		{typ: 0xFF, want: "0xFF"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("ServiceType(%#02x).String() = %q, want %q", uint8(tt.typ), got, tt.want)
		}
	}
}

func TestRelayFor(t *testing.T) {
	srv := &Server{
		Relays: []Relay{{Name: "north"}, {Name: ""}},
	}

	tests := []struct {
		name     string
		svc      Service
		wantName string
		wantOK   bool
	}{
		{name: "first relay", svc: Service{Relay: 0}, wantName: "north", wantOK: true},
		{name: "blank relay", svc: Service{Relay: 1}, wantName: "", wantOK: true},
		{name: "no relay", svc: Service{Relay: NoRelay}, wantOK: false},
		{name: "out of range", svc: Service{Relay: 5}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rel, ok := srv.RelayFor(tt.svc)
			if ok != tt.wantOK {
				t.Fatalf("RelayFor() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && rel.Name != tt.wantName {
				t.Errorf("RelayFor() name = %q, want %q", rel.Name, tt.wantName)
			}
		})
	}
}

func TestValidGroup(t *testing.T) {
	for _, group := range []int{0, 1, 15} {
		if !ValidGroup(group) {
			t.Errorf("ValidGroup(%d) = false, want true", group)
		}
	}
	for _, group := range []int{-1, 16, 255} {
		if ValidGroup(group) {
			t.Errorf("ValidGroup(%d) = true, want false", group)
		}
	}
}

type stubProvider struct{}

func (stubProvider) Servers(context.Context, uint8, time.Duration) ([]Server, error) {
	return nil, nil
}

func TestProviderRegistry(t *testing.T) {
	Register("stub-a", stubProvider{})
	Register("stub-b", stubProvider{})

	if _, ok := Lookup("stub-a"); !ok {
		t.Error("Lookup(stub-a) = false after Register")
	}
	if _, ok := Lookup("missing"); ok {
		t.Error("Lookup(missing) = true")
	}

	names := Names()
	var sawA, sawB bool
	for _, n := range names {
		sawA = sawA || n == "stub-a"
		sawB = sawB || n == "stub-b"
	}
	if !sawA || !sawB {
		t.Errorf("Names() = %v, missing registered providers", names)
	}

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("stub-a", stubProvider{})
}
