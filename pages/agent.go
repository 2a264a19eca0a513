package pages

import (
	"context"
	"fmt"
	"strings"
)

// Agent answers natural-language questions about the purchase document
// store. It matches intent by keyword and reads live aggregates per
// question, so answers always reflect the current data.
type Agent struct {
	kpis KPISource
}

func NewAgent(kpis KPISource) *Agent { return &Agent{kpis: kpis} }

const agentHelp = `I can answer questions about the imported purchase documents:
  "spend by plant"        order value per plant
  "delivery performance"  on-time delivery rate
  "total order value"     headline spend
  "how many documents"    document, plant and material counts`

// Answer resolves question against the store. It never returns an error;
// data problems come back as a readable reply.
func (a *Agent) Answer(ctx context.Context, question string) string {
	if a.kpis == nil {
		return "No data store is connected."
	}
	q := strings.ToLower(question)

	switch {
	case strings.Contains(q, "plant"):
		return a.answerPlants(ctx)
	case strings.Contains(q, "deliver") || strings.Contains(q, "on time") || strings.Contains(q, "late"):
		return a.answerDelivery(ctx)
	case strings.Contains(q, "value") || strings.Contains(q, "spend") || strings.Contains(q, "total"):
		return a.answerValue(ctx)
	case strings.Contains(q, "how many") || strings.Contains(q, "count") || strings.Contains(q, "document") || strings.Contains(q, "material"):
		return a.answerCounts(ctx)
	default:
		return agentHelp
	}
}

func (a *Agent) answerPlants(ctx context.Context) string {
	plants, err := a.kpis.ValueByPlant(ctx)
	if err != nil {
		return "Data unavailable: " + err.Error()
	}
	if len(plants) == 0 {
		return "No documents imported yet."
	}
	var b strings.Builder
	b.WriteString("Order value by plant:")
	for _, p := range plants {
		fmt.Fprintf(&b, "\n  %-8s %s", p.Plant, formatCents(p.NetValueCents))
	}
	return b.String()
}

func (a *Agent) answerDelivery(ctx context.Context) string {
	d, err := a.kpis.Delivery(ctx)
	if err != nil {
		return "Data unavailable: " + err.Error()
	}
	if d.Delivered == 0 {
		return "No delivered documents yet."
	}
	return fmt.Sprintf("%d of %d delivered documents arrived on time (%.0f%%).",
		d.OnTime, d.Delivered, d.Rate()*100)
}

func (a *Agent) answerValue(ctx context.Context) string {
	s, err := a.kpis.Summary(ctx)
	if err != nil {
		return "Data unavailable: " + err.Error()
	}
	if s.Documents == 0 {
		return "No documents imported yet."
	}
	return fmt.Sprintf("Total net order value is %s across %d documents.",
		formatCents(s.NetValueCents), s.Documents)
}

func (a *Agent) answerCounts(ctx context.Context) string {
	s, err := a.kpis.Summary(ctx)
	if err != nil {
		return "Data unavailable: " + err.Error()
	}
	return fmt.Sprintf("%d documents across %d plants and %d materials.",
		s.Documents, s.Plants, s.Materials)
}
