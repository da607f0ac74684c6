package main

import (
	"github.com/spf13/cobra"

	"github.com/mrredcon/ballroom/internal/domain/stats"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the attribute and skill catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			type entry struct {
				Attribute string   `json:"attribute"`
				Skills    []string `json:"skills"`
			}

			catalog := make([]entry, 0, len(stats.Attributes()))
			rows := make([][]any, 0, len(stats.Skills()))
			for _, attr := range stats.Attributes() {
				e := entry{Attribute: attr.PrettyName()}
				for _, skill := range stats.SkillsOf(attr) {
					e.Skills = append(e.Skills, skill.PrettyName())
					rows = append(rows, []any{attr.PrettyName(), skill.PrettyName(), string(skill)})
				}
				catalog = append(catalog, e)
			}

			if a.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), catalog)
			}
			return table(cmd.OutOrStdout(), "ATTRIBUTE\tSKILL\tKEY", rows)
		},
	}
}
