package dimen

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/npillmayer/mathmetrics/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseDimen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathmetrics.core")
	defer teardown()
	//
	d, _, err := ParseDimen("12px")
	if err != nil {
		t.Errorf("(1) %s", err.Error())
	} else if d != 12*BP {
		t.Errorf("(1) expected d to be 12bp (%d), is %d", 12*BP, d)
	}
	//
	d, _, err = ParseDimen("0")
	if err != nil {
		t.Errorf("(2) %s", err.Error())
	} else if d != 0 {
		t.Errorf("(2) expected d to be 0, is %d", d)
	}
	//
	_, ispcnt, err := ParseDimen("20%")
	if err != nil {
		t.Errorf("(3) %s", err.Error())
	} else if ispcnt != true {
		t.Errorf("(3) expected percentage-marker to be true, is %v", ispcnt)
	}
	//
	d, _, err = ParseDimen("10.5pt")
	if err != nil {
		t.Errorf("(4) %s", err.Error())
	} else if d != Dimen(685556) { // 10.5 * 65291 = 685555.5
		t.Errorf("(4) expected d to be 685556sp, is %d", d)
	}
	//
	_, _, err = ParseDimen("12 pt")
	if core.Code(err) != core.EINVALID {
		t.Errorf("(5) expected format error, got %v", err)
	}
	//
	_, _, err = ParseDimen(strings.Repeat("9", 400) + "pt")
	if core.Code(err) != core.EINVALID {
		t.Errorf("(6) expected number overflow to be invalid, got %v", err)
	} else if !errors.Is(err, strconv.ErrRange) {
		t.Errorf("(6) expected range error in error chain, got %v", err)
	}
}

func TestEmConversion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathmetrics.core")
	defer teardown()
	//
	size := 10 * BP
	if d := FromEm(0.25, size); d != 163840 {
		t.Errorf("expected 0.25em at 10bp to be 163840sp, is %d", d)
	}
	if d := FromEm(-0.5, size); d != -5*BP {
		t.Errorf("expected -0.5em at 10bp to be -5bp, is %d", d)
	}
	if em := (5 * BP).Em(size); em != 0.5 {
		t.Errorf("expected 5bp to be 0.5em at 10bp, is %g", em)
	}
	if em := BP.Em(0); em != 0 {
		t.Errorf("expected em of zero font size to be 0, is %g", em)
	}
}
