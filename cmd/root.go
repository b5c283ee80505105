package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "motionfolio",
	Short: "Motion design portfolio site",
	Long: `MotionFolio serves a portfolio site whose interactive pieces (expandable
cards, progress demos, cursor parallax and the contact form) are driven
from the server over a websocket per page view.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}
