package commands

import (
	"fmt"
	"os"

	"github.com/abdul-hamid-achik/larapath/internal/config"
	"github.com/charmbracelet/huh"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Turn route annotations on or off",
	Long: `Flip the "enabled" setting in the config file. Running "watch" sessions
pick the change up immediately.

When no config file exists yet you are asked before one is created.

Examples:
  larapath toggle
  larapath toggle --off
  larapath toggle --on --yes`,
	Args: cobra.NoArgs,
	Run:  runToggle,
}

// Flags
var (
	toggleOn  bool
	toggleOff bool
	toggleYes bool
)

func init() {
	toggleCmd.Flags().BoolVar(&toggleOn, "on", false, "Enable annotations")
	toggleCmd.Flags().BoolVar(&toggleOff, "off", false, "Disable annotations")
	toggleCmd.Flags().BoolVarP(&toggleYes, "yes", "y", false, "Create the config file without asking")
	toggleCmd.MarkFlagsMutuallyExclusive("on", "off")
}

func runToggle(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	cfg := loadConfig()
	enabled := nextEnabled(cfg.Enabled, toggleOn, toggleOff)

	if cfg.File == "" && !toggleYes && !jsonOutput && isatty.IsTerminal(os.Stdin.Fd()) {
		target := cfgFile
		if target == "" {
			target = config.DefaultFile
		}

		confirm := true
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Create %s?", target)).
					Description("No config file was found. The toggle state is stored there.").
					Affirmative("Create").
					Negative("Cancel").
					Value(&confirm),
			),
		)

		if err := form.Run(); err != nil || !confirm {
			fmt.Printf("  %s Cancelled\n", yellow("!"))
			return
		}
	}

	file, err := config.SetEnabled(cfgFile, enabled)
	if err != nil {
		exitWithError(err)
	}

	if jsonOutput {
		printSuccess(ToggleOutput{Enabled: enabled, File: file})
		return
	}

	state := yellow("off")
	if enabled {
		state = green("on")
	}
	fmt.Printf("  %s Route annotations %s (%s)\n", green("✓"), state, file)
}

// nextEnabled resolves the toggle flags against the current state.
func nextEnabled(current, on, off bool) bool {
	switch {
	case on:
		return true
	case off:
		return false
	}
	return !current
}
