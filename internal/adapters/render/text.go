package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"parador_pricing/internal/app"
)

// WriteText renders the comparison reports as plain tabular text, one block
// per property with a configuration header above its rows.
func WriteText(w io.Writer, reports []app.PropertyReport) error {
	for i, rep := range reports {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := writeProperty(w, rep); err != nil {
			return err
		}
	}
	return nil
}

func writeProperty(w io.Writer, rep app.PropertyReport) error {
	rule := strings.Repeat("=", 96)
	cfg := rep.Config
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, cfg.Name)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Stay duration: %d nights\n", rep.Nights)
	fmt.Fprintf(w, "Meals: arrival dinner, 3 per middle day, departure breakfast (%.2f€ each)\n", rep.MealCost)
	fmt.Fprintf(w, "Coffee breaks: 2 per middle day (%.2f€ each)\n", cfg.CoffeeBreakCost)
	fmt.Fprintf(w, "Meeting room: %.2f€ total, split across the group\n", cfg.MeetingRoomCost)
	fmt.Fprintf(w, "Maximum capacity: %d people (%d standard + %d superior rooms)\n",
		cfg.MaxCapacity(), cfg.Inventory.Standard, cfg.Inventory.Superior)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Group\tAccommodation/p\tMeals/p\tCoffee/p\tMeeting/p\tTotal/p\tTOTAL\t")
	for _, row := range rep.Rows {
		if row.Err != nil {
			fmt.Fprintf(tw, "%d\tunavailable (%v)\t-\t-\t-\t-\t-\t\n", row.GroupSize, row.Err)
			continue
		}
		b := row.Breakdown
		fmt.Fprintf(tw, "%d\t%.2f€\t%.2f€\t%.2f€\t%.2f€\t%.2f€\t%.2f€\t\n",
			row.GroupSize,
			b.AccommodationPerPerson, b.MealsPerPerson, b.CoffeePerPerson,
			b.MeetingRoomPerPerson, b.TotalPerPerson, b.GrandTotal)
	}
	return tw.Flush()
}
