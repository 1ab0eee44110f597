package models

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestSummaryAddCreatesDayLazily(t *testing.T) {
	s := make(Summary)

	assert.Zero(t, s.Total("2025-01-02"))
	assert.Empty(t, s)

	s.Add("2025-01-02", "Code", 1.5)
	s.Add("2025-01-02", "Code", 1.5)
	s.Add("2025-01-02", "Safari", 0.25)

	day := s["2025-01-02"]
	assert.InDelta(t, 3.25, day.Total, 1e-9)
	assert.InDelta(t, day.Total, day.Sum(), 1e-9)
}

func TestDayAppsOrdering(t *testing.T) {
	d := NewDay()
	d.Add("Safari", 10)
	d.Add("app10", 30)
	d.Add("app9", 30)
	d.Add("Code", 50)

	want := []AppTime{
		{Name: "Code", Seconds: 50},
		{Name: "app9", Seconds: 30},
		{Name: "app10", Seconds: 30},
		{Name: "Safari", Seconds: 10},
	}

	if diff := cmp.Diff(want, d.Apps()); diff != "" {
		t.Errorf("Apps() mismatch (-want +got):\n%s", diff)
	}
}

func TestSummaryKeysNewestFirst(t *testing.T) {
	s := Summary{
		"2025-01-01": NewDay(),
		"2025-02-01": NewDay(),
		"2024-12-31": NewDay(),
	}

	assert.Equal(t, []string{"2025-02-01", "2025-01-01", "2024-12-31"}, s.Keys())
}

func TestNormalise(t *testing.T) {
	s := Summary{
		"2025-01-01": nil,
		"2025-01-02": {Total: 42},
		"2025-01-03": {Total: 10, ByApp: map[string]float64{"Code": 4, "Safari": 2}},
		"2025-01-04": {Total: 6, ByApp: map[string]float64{"Code": 6}},
		"2025-01-05": {Total: 0},
	}

	assert.Equal(t, 3, s.Normalise())

	want := Summary{
		"2025-01-02": {Total: 42, ByApp: map[string]float64{UnknownApp: 42}},
		"2025-01-03": {Total: 6, ByApp: map[string]float64{"Code": 4, "Safari": 2}},
		"2025-01-04": {Total: 6, ByApp: map[string]float64{"Code": 6}},
		"2025-01-05": {Total: 0, ByApp: map[string]float64{}},
	}

	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("Normalise() mismatch (-want +got):\n%s", diff)
	}

	assert.Zero(t, s.Normalise())
}

func TestCloneIsDeep(t *testing.T) {
	s := make(Summary)
	s.Add("2025-01-02", "Code", 1)

	c := s.Clone()
	c.Add("2025-01-02", "Code", 1)

	assert.InDelta(t, 1, s["2025-01-02"].Total, 1e-9)
	assert.InDelta(t, 2, c["2025-01-02"].Total, 1e-9)
}
