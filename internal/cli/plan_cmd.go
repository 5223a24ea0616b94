package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/davidmontoya/vesper/internal/cli/formatter"
	"github.com/davidmontoya/vesper/internal/domain"
)

// resolvePlanID resolves a full plan ID, an ID prefix, or an exact title
// (case-insensitive) to a plan ID.
func resolvePlanID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("plan ID is required")
	}

	plans, err := app.Plans.List(ctx)
	if err != nil {
		return "", err
	}

	for _, p := range plans {
		if p.ID == input {
			return p.ID, nil
		}
	}
	for _, p := range plans {
		if strings.EqualFold(p.Title, input) {
			return p.ID, nil
		}
	}

	var matches []string
	for _, p := range plans {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("plan not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("plan ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage night plans",
	}

	cmd.AddCommand(
		newPlanListCmd(app),
		newPlanAddCmd(app),
		newPlanShowCmd(app),
		newPlanUpdateCmd(app),
		newPlanRemoveCmd(app),
		newPlanItemCmd(app),
		newPlanReorderCmd(app),
	)

	return cmd
}

func newPlanListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show all plans, grouped by night",
		RunE: func(cmd *cobra.Command, args []string) error {
			groups, err := app.Plans.Grouped(context.Background(), time.Now())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlanGroups(groups))
			return nil
		},
	}
}

func newPlanAddCmd(app *App) *cobra.Command {
	var title, city, date string
	var tonight bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			if tonight && date != "" {
				return fmt.Errorf("--tonight and --date are mutually exclusive")
			}

			p := &domain.Plan{
				Title:     title,
				City:      city,
				IsTonight: tonight,
			}
			if city == "" {
				p.City = app.DefaultCity
			}
			if date != "" {
				d, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", date, err)
				}
				p.Date = &d
			}

			if err := app.Plans.Create(context.Background(), p); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created plan %s (%s)\n", p.Title, p.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Plan title")
	addCityFlag(cmd.Flags(), &city)
	cmd.Flags().StringVar(&date, "date", "", "Plan date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&tonight, "tonight", false, "Mark the plan as tonight")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newPlanShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a plan and its stops",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Plans.GetByID(ctx, planID)
			if err != nil {
				return err
			}
			items, err := app.Plans.Items(ctx, planID)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlanDetail(p, items))
			return nil
		},
	}
}

func newPlanUpdateCmd(app *App) *cobra.Command {
	var title, city, date string
	var tonight bool

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Plans.GetByID(ctx, planID)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("title") {
				p.Title = title
			}
			if cmd.Flags().Changed("city") {
				p.City = city
			}
			if cmd.Flags().Changed("tonight") {
				p.IsTonight = tonight
				if tonight {
					p.Date = nil
				}
			}
			if cmd.Flags().Changed("date") {
				if date == "" {
					p.Date = nil
				} else {
					d, err := time.Parse("2006-01-02", date)
					if err != nil {
						return fmt.Errorf("invalid date %q: %w", date, err)
					}
					p.Date = &d
					p.IsTonight = false
				}
			}

			if err := app.Plans.Update(ctx, p); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated plan %s\n", p.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Plan title")
	cmd.Flags().StringVar(&city, "city", "", "City")
	cmd.Flags().StringVar(&date, "date", "", "Plan date (YYYY-MM-DD, empty clears)")
	cmd.Flags().BoolVar(&tonight, "tonight", false, "Mark the plan as tonight")

	return cmd
}

func newPlanRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a plan and its stops",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Plans.Delete(ctx, planID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed plan %s\n", planID[:8])
			return nil
		},
	}
}

func newPlanItemCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage stops on a plan",
	}

	cmd.AddCommand(
		newPlanItemAddCmd(app),
		newPlanItemRemoveCmd(app),
		newPlanItemStatusCmd(app, "done", domain.PlanItemDone),
		newPlanItemStatusCmd(app, "skip", domain.PlanItemSkipped),
	)

	return cmd
}

func newPlanItemAddCmd(app *App) *cobra.Command {
	var name, note, recordID string

	cmd := &cobra.Command{
		Use:   "add PLAN",
		Short: "Add a stop to the end of a plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}

			item := &domain.PlanItem{
				PlanID:   planID,
				Name:     name,
				Note:     note,
				RecordID: recordID,
			}
			if err := app.Plans.AddItem(ctx, item); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s at position %d\n", item.Name, item.Position+1)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Stop name")
	cmd.Flags().StringVar(&note, "note", "", "Optional note")
	cmd.Flags().StringVar(&recordID, "record", "", "Linked venue or event ID")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newPlanItemRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove PLAN POSITION",
		Short: "Remove a stop from a plan",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			item, err := resolveItemAt(ctx, app, args[0], args[1])
			if err != nil {
				return err
			}
			if err := app.Plans.RemoveItem(ctx, item.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", item.Name)
			return nil
		},
	}
}

func newPlanItemStatusCmd(app *App, verb string, status domain.PlanItemStatus) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " PLAN POSITION",
		Short: fmt.Sprintf("Mark a stop as %s", status),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			item, err := resolveItemAt(ctx, app, args[0], args[1])
			if err != nil {
				return err
			}
			item.Status = status
			if err := app.Plans.UpdateItem(ctx, item); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Marked %s as %s\n", item.Name, status)
			return nil
		},
	}
}

// resolveItemAt finds the item at a 1-based position within a plan.
func resolveItemAt(ctx context.Context, app *App, planRef, posArg string) (*domain.PlanItem, error) {
	planID, err := resolvePlanID(ctx, app, planRef)
	if err != nil {
		return nil, err
	}
	pos, err := strconv.Atoi(posArg)
	if err != nil || pos < 1 {
		return nil, fmt.Errorf("invalid position %q: expected a 1-based number", posArg)
	}
	items, err := app.Plans.Items(ctx, planID)
	if err != nil {
		return nil, err
	}
	if pos > len(items) {
		return nil, fmt.Errorf("plan has %d stop(s), no position %d", len(items), pos)
	}
	item := items[pos-1]
	return &item, nil
}

func newPlanReorderCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reorder PLAN [FROM TO]",
		Short: "Reorder stops on a plan",
		Long: "Move a stop from one 1-based position to another. With no FROM/TO\n" +
			"arguments an interactive picker opens instead.",
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}

			if len(args) == 1 {
				if !app.interactive() {
					return fmt.Errorf("interactive reorder needs a terminal; pass FROM and TO instead")
				}
				return runReorderView(app, planID)
			}
			if len(args) != 3 {
				return fmt.Errorf("pass both FROM and TO, or neither")
			}

			from, err := strconv.Atoi(args[1])
			if err != nil || from < 1 {
				return fmt.Errorf("invalid FROM position %q", args[1])
			}
			to, err := strconv.Atoi(args[2])
			if err != nil || to < 1 {
				return fmt.Errorf("invalid TO position %q", args[2])
			}

			items, err := app.Plans.ReorderItems(ctx, planID, from-1, to-1)
			if err != nil {
				return err
			}

			for _, item := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", item.Position+1, item.Name)
			}
			return nil
		},
	}
	return cmd
}
