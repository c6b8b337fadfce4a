package order

import (
	"fmt"
	"strings"
	"time"
)

// UpdateMessage is sent to the operator when an update carries form answers.
func UpdateMessage(o *Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📋 Order Update: #%s\n", o.OrderNumber())
	writeHeader(&b, o)
	fmt.Fprintf(&b, "Stage: %d/%d - %s\n", int(o.CurrentStage()), int(FinalStage), o.CurrentStage().Name())
	fmt.Fprintf(&b, "Status: %s\n", o.Status())
	b.WriteString("\n")
	b.WriteString(GenerateStageSummary(o.formData, o.CurrentStage()))
	return b.String()
}

// CompletionMessage is sent to the operator when an order is completed.
func CompletionMessage(o *Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "✅ Order Completed: #%s\n", o.OrderNumber())
	writeHeader(&b, o)

	code := o.CompletedBy()
	if code == "" {
		fmt.Fprintf(&b, "Completed by: %s\n", UnknownEmployee)
	} else {
		fmt.Fprintf(&b, "Completed by: %s (%s)\n", EmployeeName(code), code)
	}

	b.WriteString("\n")
	b.WriteString(GenerateStageSummary(o.formData, o.CurrentStage()))
	return b.String()
}

// PartitionActive splits orders into in-progress and payment-pending ones.
// Completed and unknown orders are dropped.
func PartitionActive(orders []*Order) (inProgress, paymentPending []*Order) {
	for _, o := range orders {
		if !o.Status().IsActive() {
			continue
		}
		if o.Status() == PaymentPending {
			paymentPending = append(paymentPending, o)
		} else {
			inProgress = append(inProgress, o)
		}
	}
	return inProgress, paymentPending
}

// DailySummaryMessage is the single aggregate message of a sweep run.
func DailySummaryMessage(orders []*Order, day time.Time) string {
	inProgress, paymentPending := PartitionActive(orders)

	var b strings.Builder
	fmt.Fprintf(&b, "📊 Daily Order Summary (%s)\n", day.Format(time.DateOnly))

	total := len(inProgress) + len(paymentPending)
	if total == 0 {
		b.WriteString("\nNo active orders.")
		return b.String()
	}

	writeSection(&b, "🔄 In Progress", inProgress)
	writeSection(&b, "💰 Payment Pending", paymentPending)
	fmt.Fprintf(&b, "\nTotal active orders: %d", total)
	return b.String()
}

func writeHeader(b *strings.Builder, o *Order) {
	fmt.Fprintf(b, "Company: %s\n", o.CompanyName())
	fmt.Fprintf(b, "Product: %s\n", o.Product())
}

func writeSection(b *strings.Builder, title string, orders []*Order) {
	fmt.Fprintf(b, "\n%s: %d\n", title, len(orders))
	for _, o := range orders {
		fmt.Fprintf(b, "• #%s %s - %s: Stage %d (%s)\n",
			o.OrderNumber(), o.CompanyName(), o.Product(), int(o.CurrentStage()), o.CurrentStage().Name())
	}
}
