package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/saptools/sapgui-cli/internal/model"
	"github.com/saptools/sapgui-cli/internal/output"
	"github.com/saptools/sapgui-cli/internal/session"
)

var exploreCmd = &cobra.Command{
	Use:   "explore [CONTAINER]",
	Short: "Inventory the controls of a screen area",
	Long: `Inventory the controls of a container (the main window user area when no
argument is given): addresses, types, capability kinds, names, text and
editability. Containers are descended one level.

With --diff the inventory is compared against the previous snapshot of the
same container, reporting added, removed and changed controls. Snapshots are
kept automatically; --snapshot forces saving without diffing.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExplore,
}

func init() {
	rootCmd.AddCommand(exploreCmd)
	exploreCmd.Flags().String("kinds", "", "Only include these kinds (comma-separated, e.g. \"text,button\")")
	exploreCmd.Flags().Bool("changeable", false, "Only include controls that accept input")
	exploreCmd.Flags().Bool("diff", false, "Diff against the previous snapshot of this container")
	exploreCmd.Flags().Bool("snapshot", false, "Save a snapshot for later diffing")
}

func runExplore(cmd *cobra.Command, args []string) error {
	container := ""
	if len(args) == 1 {
		container = args[0]
	}
	kindList, _ := cmd.Flags().GetString("kinds")
	kinds, err := parseKinds(kindList)
	if err != nil {
		return err
	}
	changeable, _ := cmd.Flags().GetBool("changeable")
	diff, _ := cmd.Flags().GetBool("diff")
	snapshot, _ := cmd.Flags().GetBool("snapshot")

	return withSession(func(s *session.Session) error {
		elements, err := s.Explore(container)
		if err != nil {
			return err
		}
		elements = model.FilterElements(elements, kinds, changeable)

		key := container
		if key == "" {
			key = model.UserArea
		}
		ts := time.Now().Unix()
		result := output.ExploreResult{Container: key, TS: ts, Elements: elements}

		if diff {
			if prevTS := model.LatestSnapshot(key); prevTS > 0 {
				prev, err := model.LoadSnapshot(key, prevTS)
				if err != nil {
					return err
				}
				d := model.DiffScreens(prev, elements)
				result.Diff = &d
			}
		}
		if diff || snapshot {
			if err := model.SaveSnapshot(key, ts, elements); err != nil {
				return err
			}
			model.CleanSnapshots(key, 24*time.Hour)
		}
		return output.Print(result)
	})
}
