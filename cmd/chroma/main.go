package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jsvensson/chroma"
	"github.com/jsvensson/chroma/internal/color"
	"github.com/jsvensson/chroma/internal/config"
	"github.com/jsvensson/chroma/internal/engine"
	"github.com/jsvensson/chroma/internal/format"
	"github.com/jsvensson/chroma/internal/script"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var (
	flagVerbose   int
	flagConfig    string
	flagScript    string
	flagOut       string
	flagExportOut string
	flagCheck     bool
	flagFormat    string
	flagColor     string
	flagTmpl      string
	flagApp       []string
	version       = "dev" // Injected at build time via ldflags
)

var rootCmd = &cobra.Command{
	Use:     "chroma",
	Short:   "Drive the chroma color picker model from the command line",
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commonlog.Configure(flagVerbose, nil)
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert <color>",
	Short: "Print a color in every supported notation",
	Long:  "Print hex, rgb, hsb and hsl forms of a color given as hex or as an expression such as hsl(200, 0.5, 0.5).",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render a color through application templates",
	Long:  "Execute every .tmpl file in the templates directory with the color, writing one output file per template.",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Run a gesture script against a picker",
	Long:  "Build a picker from a config file and run a gesture script (stdin by default), printing every delivered color.",
	Args:  cobra.NoArgs,
	RunE:  runPick,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default picker config",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format picker config files",
	Long:  "Format one or more picker config files in-place. Prints the name of each file that was modified.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&flagVerbose, "verbose", "v", "increase log verbosity (repeatable)")
	convertCmd.Flags().StringVarP(&flagFormat, "format", "f", "", "Go template to render instead of the table, e.g. '{{ hex .Color }}'")
	exportCmd.Flags().StringVar(&flagColor, "color", "", "color to export; defaults to the config's initial color")
	exportCmd.Flags().StringVar(&flagConfig, "config", "", "path to picker HCL file")
	exportCmd.Flags().StringVar(&flagTmpl, "templates", "templates", "templates directory")
	exportCmd.Flags().StringVar(&flagExportOut, "out", "output", "output directory")
	exportCmd.Flags().StringArrayVar(&flagApp, "app", nil, "export only for specific apps (can be repeated)")
	pickCmd.Flags().StringVar(&flagConfig, "config", "", "path to picker HCL file (defaults apply when empty)")
	pickCmd.Flags().StringVar(&flagScript, "script", "-", "path to gesture script, - for stdin")
	initCmd.Flags().StringVar(&flagOut, "out", "-", "output file, - for stdout")
	fmtCmd.Flags().BoolVarP(&flagCheck, "check", "c", false, "check if files are formatted (do not write changes)")
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(versionCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	c, err := config.EvalColor(args[0])
	if err != nil {
		return fmt.Errorf("converting %q: %w", args[0], err)
	}

	if flagFormat != "" {
		out, err := engine.Render(flagFormat, c)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}

	h, s, b := c.HSB()
	sl, l := color.HSBToHSL(s, b)
	content := "white"
	if c.ContentColor() == color.Black {
		content = "black"
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "hex     %s\n", c.Hex())
	fmt.Fprintf(w, "rgb     %s\n", c.RGB())
	fmt.Fprintf(w, "hsb     hsb(%.0f, %.2f, %.2f)\n", float64(h), float64(s), float64(b))
	fmt.Fprintf(w, "hsl     hsl(%.0f, %.2f, %.2f)\n", float64(h), float64(sl), float64(l))
	fmt.Fprintf(w, "content %s\n", content)
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	c := color.White
	if flagConfig != "" {
		initial, _, err := chroma.Load(flagConfig)
		if err != nil {
			return err
		}
		c = initial
	}
	if flagColor != "" {
		var err error
		if c, err = config.EvalColor(flagColor); err != nil {
			return fmt.Errorf("parsing --color: %w", err)
		}
	}

	e := &engine.Engine{
		TemplatesDir: flagTmpl,
		OutputDir:    flagExportOut,
		Apps:         flagApp,
	}
	if err := e.Run(c); err != nil {
		return fmt.Errorf("exporting: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", c.Hex(), flagExportOut)
	return nil
}

func runPick(cmd *cobra.Command, args []string) error {
	initial, cfg := color.White, chroma.DefaultConfig()
	if flagConfig != "" {
		var err error
		initial, cfg, err = chroma.Load(flagConfig)
		if err != nil {
			return err
		}
	}

	var in io.Reader = cmd.InOrStdin()
	if flagScript != "-" {
		f, err := os.Open(flagScript)
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		in = f
	}
	cmds, err := script.Parse(in)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", flagScript, err)
	}

	out := script.NewPrinter(cmd.OutOrStdout())
	cfg.OnPick = out.Pick
	cfg.OnContentColor = out.Content

	p := chroma.New(initial, cfg)
	defer p.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := script.Run(ctx, p, cmds, out); err != nil {
		return fmt.Errorf("running %s: %w", flagScript, err)
	}
	return p.EndGesture(ctx)
}

func runInit(cmd *cobra.Command, args []string) error {
	content := format.Encode(config.Default())
	if flagOut == "-" {
		fmt.Fprint(cmd.OutOrStdout(), content)
		return nil
	}
	if _, err := os.Stat(flagOut); err == nil {
		return fmt.Errorf("%s already exists", flagOut)
	}
	if err := os.WriteFile(flagOut, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", flagOut)
	return nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	hasErrors := false
	needsFormatting := false

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		content := string(data)
		formatted := format.Format(content)
		if formatted == content {
			continue
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		needsFormatting = true

		if !flagCheck {
			if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error writing %s: %v\n", path, err)
				hasErrors = true
			}
		}
	}

	if hasErrors || (flagCheck && needsFormatting) {
		os.Exit(1)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
