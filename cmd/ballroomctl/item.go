package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrredcon/ballroom/internal/effects"
	"github.com/mrredcon/ballroom/internal/entities"
)

func newItemCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Inspect items",
	}

	var owner string
	list := &cobra.Command{
		Use:   "list",
		Short: "List an owner's items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			owned, err := a.services.ItemService.ListItemsOwnedBy(cmd.Context(), owner)
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), owned)
			}

			rows := make([][]any, 0, len(owned))
			for _, it := range owned {
				rows = append(rows, []any{it.Name, it.Type.Display(), slotText(it), len(it.Effects)})
			}
			return table(cmd.OutOrStdout(), "NAME\tTYPE\tSLOT\tEFFECTS", rows)
		},
	}
	list.Flags().StringVar(&owner, "owner", "", "Discord user ID of the owner")
	_ = list.MarkFlagRequired("owner")

	show := &cobra.Command{
		Use:   "show <name>",
		Short: "Print an item and its effects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := a.services.ItemService.FindItemByName(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			lines, err := effects.DescribeEffects(found)
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), struct {
					*entities.Item
					Lines []effects.EffectLine
				}{found, lines})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s, owner %s)\n", found.Name, found.Type.Display(), found.OwnerID)
			if found.Slot != nil {
				fmt.Fprintf(out, "Slot: %s\n", *found.Slot)
			}
			if found.Description != "" {
				fmt.Fprintln(out, found.Description)
			}
			if len(lines) == 0 {
				fmt.Fprintln(out, "No effects.")
			}
			for _, line := range lines {
				fmt.Fprintf(out, "  %3s %s", line.Signed, line.Stat)
				if line.Description != "" {
					fmt.Fprintf(out, ": %s", line.Description)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	var (
		searchOwner string
		limit       int
	)
	search := &cobra.Command{
		Use:   "search <query>",
		Short: "Find item names containing query, ignoring case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := a.services.LookupService.FuzzySearchItemNames(cmd.Context(), args[0], limit, searchOwner)
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), names)
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	search.Flags().StringVar(&searchOwner, "owner", "", "only search this owner's items")
	search.Flags().IntVar(&limit, "limit", 25, "maximum number of names")

	cmd.AddCommand(list, show, search)
	return cmd
}

func slotText(it *entities.Item) string {
	if it.Slot == nil {
		return "-"
	}
	return string(*it.Slot)
}
