package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mrredcon/ballroom/internal/effects"
	"github.com/mrredcon/ballroom/internal/entities"
)

func newCharacterCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "character",
		Short: "Inspect characters",
	}

	var owner string
	list := &cobra.Command{
		Use:   "list",
		Short: "List an owner's characters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			owned, err := a.services.CharacterService.ListCharactersOwnedBy(cmd.Context(), owner)
			if err != nil {
				return err
			}

			activeID := ""
			if active, err := a.services.CharacterService.GetActiveCharacter(cmd.Context(), owner); err == nil {
				activeID = active.ID
			}

			if a.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), owned)
			}

			rows := make([][]any, 0, len(owned))
			for _, c := range owned {
				marker := ""
				if c.ID == activeID {
					marker = "*"
				}
				rows = append(rows, []any{marker, c.Name, c.ID, c.CreatedAt.Format(time.DateTime)})
			}
			return table(cmd.OutOrStdout(), "ACTIVE\tNAME\tID\tCREATED", rows)
		},
	}
	list.Flags().StringVar(&owner, "owner", "", "Discord user ID of the owner")
	_ = list.MarkFlagRequired("owner")

	show := &cobra.Command{
		Use:   "show <name>",
		Short: "Print a character sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			char, err := a.services.CharacterService.FindCharacterByName(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			sheet := effects.BuildSheet(char)
			if a.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), struct {
					*entities.Character
					Sheet []effects.SheetSection
				}{char, sheet})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (owner %s)\n", char.Name, char.OwnerID)
			if char.Description != "" {
				fmt.Fprintln(out, char.Description)
			}
			for _, section := range sheet {
				fmt.Fprintf(out, "\n%s: %d\n", section.Name, section.Value)
				for _, skill := range section.Skills {
					fmt.Fprintf(out, "  %-22s %2d  (base %d)\n", skill.Name, skill.Effective, skill.Base)
				}
			}
			return nil
		},
	}

	cmd.AddCommand(list, show)
	return cmd
}
