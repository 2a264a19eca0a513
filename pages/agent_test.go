package pages

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jask/workbench/internal/store"
)

type fakeKPIs struct {
	summary  store.Summary
	delivery store.Delivery
	plants   []store.PlantValue
	trend    []store.TrendPoint
	err      error
}

func (f *fakeKPIs) Summary(context.Context) (store.Summary, error) {
	return f.summary, f.err
}

func (f *fakeKPIs) Delivery(context.Context) (store.Delivery, error) {
	return f.delivery, f.err
}

func (f *fakeKPIs) ValueByPlant(context.Context) ([]store.PlantValue, error) {
	return f.plants, f.err
}

func (f *fakeKPIs) ValueTrend(context.Context) ([]store.TrendPoint, error) {
	return f.trend, f.err
}

func populatedKPIs() *fakeKPIs {
	return &fakeKPIs{
		summary:  store.Summary{Documents: 12, Plants: 2, Materials: 5, NetValueCents: 1234567},
		delivery: store.Delivery{Delivered: 4, OnTime: 3},
		plants: []store.PlantValue{
			{Plant: "P200", NetValueCents: 800000},
			{Plant: "P100", NetValueCents: 434567},
		},
	}
}

func TestAgentAnswersPlantQuery(t *testing.T) {
	a := NewAgent(populatedKPIs())
	got := a.Answer(context.Background(), "show spend by plant")
	if !strings.Contains(got, "P200") || !strings.Contains(got, "8,000.00") {
		t.Fatalf("answer = %q", got)
	}
	if strings.Index(got, "P200") > strings.Index(got, "P100") {
		t.Fatalf("plants not ordered by value: %q", got)
	}
}

func TestAgentAnswersDeliveryQuery(t *testing.T) {
	a := NewAgent(populatedKPIs())
	got := a.Answer(context.Background(), "how is delivery performance?")
	if !strings.Contains(got, "3 of 4") || !strings.Contains(got, "75%") {
		t.Fatalf("answer = %q", got)
	}
}

func TestAgentAnswersValueQuery(t *testing.T) {
	a := NewAgent(populatedKPIs())
	got := a.Answer(context.Background(), "what is the total order value")
	if !strings.Contains(got, "12,345.67") || !strings.Contains(got, "12 documents") {
		t.Fatalf("answer = %q", got)
	}
}

func TestAgentAnswersCountQuery(t *testing.T) {
	a := NewAgent(populatedKPIs())
	got := a.Answer(context.Background(), "how many documents are loaded")
	if !strings.Contains(got, "12 documents across 2 plants and 5 materials") {
		t.Fatalf("answer = %q", got)
	}
}

func TestAgentFallsBackToHelp(t *testing.T) {
	a := NewAgent(populatedKPIs())
	got := a.Answer(context.Background(), "sing me a song")
	if !strings.Contains(got, "spend by plant") {
		t.Fatalf("answer = %q", got)
	}
}

func TestAgentSurfacesDataErrors(t *testing.T) {
	a := NewAgent(&fakeKPIs{err: errors.New("database is locked")})
	got := a.Answer(context.Background(), "total value")
	if !strings.Contains(got, "database is locked") {
		t.Fatalf("answer = %q", got)
	}
}

func TestAgentWithoutStore(t *testing.T) {
	a := NewAgent(nil)
	got := a.Answer(context.Background(), "total value")
	if !strings.Contains(got, "No data store") {
		t.Fatalf("answer = %q", got)
	}
}

func TestAgentEmptyStore(t *testing.T) {
	a := NewAgent(&fakeKPIs{})
	got := a.Answer(context.Background(), "spend by plant")
	if !strings.Contains(got, "No documents imported yet") {
		t.Fatalf("answer = %q", got)
	}
}

func TestFormatCents(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{123, "1.23"},
		{123456, "1,234.56"},
		{123456789, "1,234,567.89"},
		{-4200, "-42.00"},
	}
	for _, tc := range cases {
		if got := formatCents(tc.cents); got != tc.want {
			t.Errorf("formatCents(%d) = %q, want %q", tc.cents, got, tc.want)
		}
	}
}
