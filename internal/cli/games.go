package cli

import (
	"fmt"

	"gpuadvisor/internal/models"
	"gpuadvisor/internal/ui"

	"github.com/spf13/cobra"
)

func (a *app) listGamesCmd() *cobra.Command {
	var (
		search  string
		feature string
	)
	cmd := &cobra.Command{
		Use:   "list-games",
		Short: "List games in the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := a.catalog()

			var names []string
			switch {
			case search != "":
				names = catalog.Search(search)
			case feature != "":
				names = catalog.ByFeature(feature)
				if names == nil {
					return fmt.Errorf("unknown feature %q: want raytracing, dlss or fsr", feature)
				}
			default:
				names = catalog.List()
			}

			games := make([]*models.GameRequirements, 0, len(names))
			for _, n := range names {
				if g, ok := catalog.Lookup(n); ok {
					games = append(games, g)
				}
			}
			a.println(ui.RenderGameList(games))
			return nil
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "filter by name")
	cmd.Flags().StringVarP(&feature, "feature", "f", "", "filter by feature: raytracing, dlss, fsr")
	return cmd
}
