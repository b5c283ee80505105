package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Zachkp/motionfolio/internal/server"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the page routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PATH\tTEMPLATE\tKIND")
		for _, r := range server.Routes {
			kind := "static"
			if r.Live {
				kind = "live " + r.Page.String()
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", r.Path, r.Template(), kind)
		}
		fmt.Fprintln(w, "*\tplaceholder.html\tnot found (404)")
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}
