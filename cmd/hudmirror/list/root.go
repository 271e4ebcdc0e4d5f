package list

import (
	"fmt"
	"text/tabwriter"
	"time"

	"hudmirror/cmd/hudmirror/common"
	"hudmirror/pkg/hud"

	"github.com/spf13/cobra"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the HUDs tracked by the database",
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := common.LoadConfig(c)
			if err != nil {
				return err
			}
			entries, err := hud.ReadDatabase(cfg.Database)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(c.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSOURCE\tLAST UPDATE\tFILE")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					e.Name,
					e.Kind(),
					time.Unix(e.LastUpdate, 0).UTC().Format(hud.TimeLayout),
					e.Filename(),
				)
			}
			return w.Flush()
		},
	}
	common.AddDatabaseFlag(cmd)
	return cmd
}
