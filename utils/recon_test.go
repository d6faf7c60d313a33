package utils

import (
	"context"
	"net"
	"reflect"
	"testing"
	"time"

	"github.com/foxcpp/go-mockdns"
)

func TestReconnerRecords(t *testing.T) {
	r := &Reconner{
		Resolver: &mockdns.Resolver{Zones: map[string]mockdns.Zone{
			"example.org.": {
				A:   []string{"192.0.2.10"},
				TXT: []string{"v=spf1 -all"},
				MX:  []net.MX{{Host: "mx.example.org.", Pref: 10}},
				NS:  []net.NS{{Host: "ns1.example.org."}},
			},
		}},
		Timeout: 5 * time.Second,
	}

	records := r.Records(context.Background(), "example.org")

	if !reflect.DeepEqual(records["A"], []string{"192.0.2.10"}) {
		t.Errorf("A = %v", records["A"])
	}
	if !reflect.DeepEqual(records["MX"], []string{"mx.example.org"}) {
		t.Errorf("MX = %v", records["MX"])
	}
	if !reflect.DeepEqual(records["TXT"], []string{"v=spf1 -all"}) {
		t.Errorf("TXT = %v", records["TXT"])
	}
	if !reflect.DeepEqual(records["NS"], []string{"ns1.example.org"}) {
		t.Errorf("NS = %v", records["NS"])
	}
}

func TestReconnerRecordsUnresolvable(t *testing.T) {
	r := &Reconner{
		Resolver: &mockdns.Resolver{Zones: map[string]mockdns.Zone{}},
		Timeout:  5 * time.Second,
	}

	records := r.Records(context.Background(), "does-not-exist.invalid")

	// Failed lookups degrade to empty lists, never to an error.
	for _, typ := range []string{"A", "MX", "TXT", "NS"} {
		if len(records[typ]) != 0 {
			t.Errorf("%s = %v, want empty", typ, records[typ])
		}
	}
}
