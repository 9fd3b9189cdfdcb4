package engine

import (
	"fmt"
	"testing"

	"go-purchase-analytics/internal/model"
)

func TestRatio(t *testing.T) {
	if got := Ratio(5, 0); got != 0 {
		t.Errorf("Ratio(5, 0) = %v, want 0", got)
	}
	if got := Ratio(0, 0); got != 0 {
		t.Errorf("Ratio(0, 0) = %v, want 0", got)
	}
	if got := Ratio(3, 4); got != 0.75 {
		t.Errorf("Ratio(3, 4) = %v, want 0.75", got)
	}
}

func TestGroupRowsUnknownBucket(t *testing.T) {
	table := model.NewTable([]model.Record{
		{"Plant": "P100", "qty": 1},
		{"Plant": nil, "qty": 2},
		{"qty": 3},
		{"Plant": "P100", "qty": 4},
	}, "", "")

	groups := groupRows(table, "Plant")
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].key != "P100" || len(groups[0].rows) != 2 {
		t.Errorf("first group = %q with %d rows", groups[0].key, len(groups[0].rows))
	}
	if groups[1].key != unknownBucket || len(groups[1].rows) != 2 {
		t.Errorf("nil and missing keys should share the %q bucket, got %q with %d rows",
			unknownBucket, groups[1].key, len(groups[1].rows))
	}
}

func TestValueCounts(t *testing.T) {
	table := model.NewTable([]model.Record{
		{"status": "open"}, {"status": "open"}, {"status": "closed"},
		{"status": nil}, {},
	}, "", "")

	got := ValueCounts(table, "status", 0, unknownBucket)
	want := map[string]int{"open": 2, "closed": 1, unknownBucket: 2}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValueCounts[%q] = %d, want %d", k, got[k], v)
		}
	}
	if len(got) != len(want) {
		t.Errorf("ValueCounts has %d keys, want %d", len(got), len(want))
	}
}

func TestValueCountsTruncation(t *testing.T) {
	var rows []model.Record
	// Eleven distinct values with frequencies 11, 10, ..., 1.
	for i := 0; i < 11; i++ {
		for j := 0; j <= 10-i; j++ {
			rows = append(rows, model.Record{"t": fmt.Sprintf("T%02d", i)})
		}
	}
	table := model.NewTable(rows, "", "")

	got := ValueCounts(table, "t", 10, unknownBucket)
	if len(got) != 10 {
		t.Fatalf("got %d entries, want 10", len(got))
	}
	if _, kept := got["T10"]; kept {
		t.Error("least frequent value survived top-10 truncation")
	}
	if got["T00"] != 11 {
		t.Errorf("most frequent count = %d, want 11", got["T00"])
	}
}

func TestTopKGroupsStableTies(t *testing.T) {
	groups := []rowGroup{
		{key: "b", rows: []model.Record{{"v": 1.0}}},
		{key: "a", rows: []model.Record{{"v": 1.0}}},
		{key: "c", rows: []model.Record{{"v": 2.0}}},
	}
	top := topKGroups(groups, func(g rowGroup) float64 {
		return ToNumber(g.rows[0]["v"])
	}, false, 2)
	if top[0].key != "c" || top[1].key != "b" {
		t.Errorf("got order %q, %q; ties must keep first-seen order", top[0].key, top[1].key)
	}
}

func TestSumAndDistinct(t *testing.T) {
	rows := []model.Record{
		{"qty": "10", "doc": "D1"},
		{"qty": 5.5, "doc": "D2"},
		{"qty": nil, "doc": "D1"},
		{"qty": "bad", "doc": nil},
	}
	if got := sumColumn(rows, "qty"); got != 15.5 {
		t.Errorf("sumColumn = %v, want 15.5", got)
	}
	if got := distinctCount(rows, "doc"); got != 2 {
		t.Errorf("distinctCount = %d, want 2 (nil excluded)", got)
	}
}
