package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/uyouii/natural-breaks-csv/cmd/config"
	"github.com/uyouii/natural-breaks-csv/jenks"
	"github.com/uyouii/natural-breaks-csv/utils"
)

// Version is the natural_breaks_csv version
var Version = "development"

const envPrefix = "NATURAL_BREAKS"

func Prepare() *cobra.Command {
	v := viper.New()
	config.SetDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:          "natural_breaks_csv <input_file> <output_file> <field_name>",
		Short:        "Classify CSV file using Natural Breaks (Jenks) algorithm.",
		Args:         cobra.ExactArgs(3),
		SilenceUsage: true,
		Version:      Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(v); err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			if err := utils.InitLogger(v.GetString("log_level")); err != nil {
				return err
			}
			return nil
		},
		RunE: withSignalWatcher(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			cfg, err := config.Parse(v)
			if err != nil {
				return fmt.Errorf("parsing configuration: %w", err)
			}
			return classifyCSV(ctx, cmd.OutOrStdout(), cfg, classifyArgs{
				inputFile:  args[0],
				outputFile: args[1],
				field:      args[2],
			})
		}),
		Example: `
	natural_breaks_csv scores.csv scores_binned.csv SCORE
	natural_breaks_csv scores.csv scores_binned.csv SCORE -n 5 --plot
	natural_breaks_csv scores.csv scores_binned.csv SCORE --gvf-threshold 0.9 --max-classes 8 --json
	`,
	}

	flags := rootCmd.Flags()
	rootCmd.PersistentFlags().StringP("config", "c", "", ".yaml, .json or .toml config file to use if any")
	rootCmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "log level for the application. One of debug, info, warn, error")
	flags.IntP("classes", "n", jenks.DefaultClassCount, "number of classes")
	flags.String("label-column", config.DefaultLabelColumn, "name of the column holding the class label")
	flags.Bool("plot", false, "plot classification result")
	flags.String("plot-file", config.DefaultPlotFile, "file the plot is saved to, the extension picks the format (png, svg, pdf...)")
	flags.Float64("gvf-threshold", 0, "pick the smallest class count whose goodness of variance fit reaches this value (0 disables)")
	flags.Int("max-classes", jenks.DefaultMaxClassCount, "largest class count tried with --gvf-threshold")
	flags.Bool("json", false, "print a JSON summary of the classification instead of the table")

	flagBinding(v, rootCmd)

	return rootCmd
}

// Execute executes the root command.
func Execute() error {
	return Prepare().Execute()
}

// flagBinding binds every flag to the viper key of the same name with
// dashes turned into underscores, e.g. --plot-file to plot_file.
func flagBinding(v *viper.Viper, cmd *cobra.Command) {
	bind := func(f *pflag.Flag) {
		v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	}
	cmd.PersistentFlags().VisitAll(bind)
	cmd.Flags().VisitAll(bind)
}

func withSignalWatcher(fn func(ctx context.Context, cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return fn(ctx, cmd, args)
	}
}
