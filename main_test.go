package main

import (
	"testing"

	"torus/donut"
)

func TestVecFlag(t *testing.T) {
	var v vecFlag
	if err := v.Set("0, -1,2.5"); err != nil {
		t.Fatal(err)
	}
	if donut.Vec3(v) != donut.V3(0, -1, 2.5) {
		t.Errorf("Set = %v", donut.Vec3(v))
	}
	if v.String() != "0,-1,2.5" {
		t.Errorf("String() = %q", v.String())
	}

	for _, bad := range []string{"1,2", "1,2,3,4", "a,b,c", ""} {
		if err := v.Set(bad); err == nil {
			t.Errorf("Set(%q) accepted", bad)
		}
	}
}
