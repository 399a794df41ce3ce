package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"sapsan-table/lib/configutil"
	"sapsan-table/lib/restyutil"
	"sapsan-table/lib/scrapers/rzd"
	"sapsan-table/lib/serviceutil"
	"sapsan-table/lib/telemetry"
	"sapsan-table/lib/timezone"
	"sapsan-table/services/faretable"
)

// Config carries the optional config.json5 overrides; every zero value
// falls back to the rzd package defaults.
type Config struct {
	BaseUrl          string               `json:"base_url"`
	OriginCode       string               `json:"origin_code"`
	DestinationCode  string               `json:"destination_code"`
	FareClasses      []string             `json:"fare_classes"`
	MinTrainNumber   int                  `json:"min_train_number"`
	MaxTravelMinutes int                  `json:"max_travel_minutes"`
	Smtp             faretable.SmtpConfig `json:"smtp"`
}

var startDate *string
var days *int
var output *string
var preview *bool
var emailTo *string
var verbose *bool

func init() {
	startDate = rootCmd.Flags().String("start-date", "", "Start date (inclusive) in DD.MM.YYYY format. Defaults to today.")
	days = rootCmd.Flags().Int("days", 7, "Number of days to fetch (starting from start-date).")
	output = rootCmd.Flags().String("output", "sapsan_table.html", "Output HTML file.")
	preview = rootCmd.Flags().Bool("preview", false, "Print a summary table to stdout after writing the file.")
	emailTo = rootCmd.Flags().String("email-to", "", "Mail the rendered table to this address using the smtp config.")
	verbose = rootCmd.Flags().BoolP("verbose", "v", false, "Debug logging plus on-disk request dumps.")
}

// resolveStartDate runs before any client is constructed so that a bad
// date never causes network activity.
func resolveStartDate(raw string) (time.Time, error) {
	if raw == "" {
		now := timezone.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, timezone.Location), nil
	}
	date, err := time.ParseInLocation(rzd.DateFormat, raw, timezone.Location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --start-date %q, expected DD.MM.YYYY", raw)
	}
	return date, nil
}

var rootCmd = &cobra.Command{
	Use:   "sapsan-table [--start-date <DD.MM.YYYY>] [--days <n>] [--output <path/to/table.html>]",
	Short: "sapsan-table renders Sapsan fares for a date range into a static HTML table.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		telemetry.InitSlog(*verbose)
		tel, err := telemetry.SetupFromEnv(ctx, "sapsan-table")
		if err != nil {
			serviceutil.Fatal("failed to setup telemetry", err)
		}
		defer tel.Shutdown(context.Background())
		telemetry.InstrumentPerfStats(ctx)

		start, err := resolveStartDate(*startDate)
		if err != nil {
			serviceutil.Fatal("invalid arguments", err)
		}
		if *days < 1 {
			serviceutil.Fatal("invalid arguments", fmt.Errorf("--days must be at least 1, got %d", *days))
		}

		cfg, err := configutil.ReadConfig[Config]("config.json5")
		if err != nil && !os.IsNotExist(err) {
			serviceutil.Fatal("failed to read config", err)
		}

		if *verbose {
			rzd.SetRestyInstrumentOutput(restyutil.NewFilesystemOutput(".dev/resty/rzd"))
		}

		client := rzd.NewClient(rzd.ClientOptions{
			BaseUrl:          cfg.BaseUrl,
			OriginCode:       cfg.OriginCode,
			DestinationCode:  cfg.DestinationCode,
			FareClasses:      cfg.FareClasses,
			MinTrainNumber:   cfg.MinTrainNumber,
			MaxTravelMinutes: cfg.MaxTravelMinutes,
		})
		svc := faretable.NewService(client)

		t1 := time.Now()
		fares, err := svc.FetchRange(ctx, start, *days)
		if err != nil {
			serviceutil.Fatal("failed to fetch fares", err)
		}
		slog.Info("fetch time", "seconds", time.Since(t1).Seconds())

		document, err := faretable.RenderHTML(fares)
		if err != nil {
			serviceutil.Fatal("failed to render table", err)
		}
		err = os.WriteFile(*output, []byte(document), 0644)
		if err != nil {
			serviceutil.Fatal("failed to write output", err)
		}

		path := *output
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		slog.Info("saved table", "path", path, "rows", len(fares))

		if *preview {
			faretable.RenderPreview(os.Stdout, fares)
		}
		if *emailTo != "" {
			err := faretable.SendEmail(ctx, cfg.Smtp, *emailTo, document)
			if err != nil {
				serviceutil.Fatal("failed to send email", err)
			}
			slog.Info("sent table", "to", *emailTo)
		}
	},
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
