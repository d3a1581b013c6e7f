package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Tairraos/sino-calendar-mcp/internal/calendar"
	"github.com/Tairraos/sino-calendar-mcp/internal/config"
	"github.com/Tairraos/sino-calendar-mcp/internal/lunar"
	"github.com/Tairraos/sino-calendar-mcp/pkg/dateutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sino-calendar",
		Short: "Chinese calendar date resolution and reverse queries",
		Long:  "Resolve Gregorian dates to lunar dates, festivals, solar terms and workday status, and run reverse queries from names back to dates",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger()
				}
			} else {
				initLogger()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")

	rootCmd.AddCommand(
		infoCmd(),
		rangeCmd(),
		statsCmd(),
		festivalsCmd(),
		termsCmd(),
		aroundCmd(),
		queryCmd(),
		filterCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// engine bundles everything a subcommand needs
type engine struct {
	cfg     *config.Config
	agg     *calendar.Aggregator
	reverse *calendar.ReverseQueryEngine
}

func newEngine() (*engine, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	conv := lunar.NewConverter()
	festival := calendar.NewFestivalResolver(conv, logger)
	terms := calendar.NewSolarTermResolver(conv, logger)

	rules := calendar.DefaultAdjustmentRules()
	if cfg.Calendar.ExtraRulesFile != "" {
		extra, err := calendar.LoadAdjustmentRules(cfg.Calendar.ExtraRulesFile, logger)
		if err != nil {
			logger.Warn("Failed to load extra adjustment rules, continuing with built-in table",
				zap.String("file", cfg.Calendar.ExtraRulesFile),
				zap.Error(err))
		} else {
			rules = append(rules, extra...)
		}
	}
	workday := calendar.NewWorkdayResolverWithRules(rules, logger)

	agg := calendar.NewAggregator(conv, festival, terms, workday, logger)
	reverse := calendar.NewReverseQueryEngine(agg, conv, logger)

	return &engine{cfg: cfg, agg: agg, reverse: reverse}, nil
}

func parseDateArg(arg string) (time.Time, error) {
	if err := calendar.ValidateDateString(arg); err != nil {
		return time.Time{}, err
	}
	return dateutil.ParseDate(arg)
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <date>",
		Short: "Full information for one date (lunar date, festival, solar term, workday status)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine()
			if err != nil {
				return err
			}
			date, err := parseDateArg(args[0])
			if err != nil {
				return err
			}
			return printJSON(eng.agg.Compose(date))
		},
	}
}

func rangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "range <start> <end>",
		Short: "Information for every date in a range (at most 366 days)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine()
			if err != nil {
				return err
			}
			if err := calendar.ValidateDateRange(args[0], args[1]); err != nil {
				return err
			}
			start, _ := dateutil.ParseDate(args[0])
			end, _ := dateutil.ParseDate(args[1])

			records, err := eng.agg.RangeInfo(start, end)
			if err != nil {
				return err
			}
			return printJSON(struct {
				Dates []calendar.DateRecord `json:"dates"`
			}{Dates: records})
		},
	}
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <date>",
		Short: "Date information extended with workday/holiday statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine()
			if err != nil {
				return err
			}
			date, err := parseDateArg(args[0])
			if err != nil {
				return err
			}
			return printJSON(eng.agg.Statistics(date))
		},
	}
}

func festivalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "festivals <year> <month>",
		Short: "All festivals in a month",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine()
			if err != nil {
				return err
			}
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return &calendar.ValidationError{Message: "年份必须是数字"}
			}
			month, err := strconv.Atoi(args[1])
			if err != nil {
				return &calendar.ValidationError{Message: "月份必须是数字"}
			}
			if err := calendar.ValidateYear(year); err != nil {
				return err
			}
			if err := calendar.ValidateMonth(month); err != nil {
				return err
			}
			return printJSON(eng.agg.MonthFestivals(year, time.Month(month)))
		},
	}
}

func termsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "terms <year>",
		Short: "All 24 solar terms of a year in chronological order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine()
			if err != nil {
				return err
			}
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return &calendar.ValidationError{Message: "年份必须是数字"}
			}
			if err := calendar.ValidateYear(year); err != nil {
				return err
			}
			return printJSON(eng.agg.YearSolarTerms(year))
		},
	}
}

func aroundCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "around <date>",
		Short: "Noteworthy dates (festivals, solar terms, shifts) around a center date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine()
			if err != nil {
				return err
			}
			date, err := parseDateArg(args[0])
			if err != nil {
				return err
			}
			info, err := eng.agg.Surrounding(date, days)
			if err != nil {
				return err
			}
			return printJSON(info)
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Days to look at on each side of the center date")

	return cmd
}

func queryCmd() *cobra.Command {
	var queryType string
	var yearsFlag string

	cmd := &cobra.Command{
		Use:   "query <text>",
		Short: "Reverse query: find dates by lunar date text, festival name, or solar term name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine()
			if err != nil {
				return err
			}
			if err := calendar.ValidateReverseQueryType(queryType); err != nil {
				return err
			}

			years, err := parseYears(yearsFlag, eng.cfg)
			if err != nil {
				return err
			}

			var results []calendar.DateRecord
			switch queryType {
			case "lunar":
				if err := calendar.ValidateLunarDateString(args[0]); err != nil {
					return err
				}
				results = eng.reverse.QueryLunarDate(args[0], years)
			case "festival":
				results = eng.reverse.QueryFestival(args[0], years)
			case "solar_term":
				results = eng.reverse.QuerySolarTerm(args[0], years)
			}

			return printJSON(results)
		},
	}

	cmd.Flags().StringVar(&queryType, "type", "festival", "Query type: lunar, festival or solar_term")
	cmd.Flags().StringVar(&yearsFlag, "years", "", "Comma-separated years to search (default: window around the current year)")

	return cmd
}

func filterCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "filter <start> <end>",
		Short: "Filter a date range by category: rest_days, work_days, festivals or solar_terms",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine()
			if err != nil {
				return err
			}
			if err := calendar.ValidateDateRange(args[0], args[1]); err != nil {
				return err
			}
			start, _ := dateutil.ParseDate(args[0])
			end, _ := dateutil.ParseDate(args[1])

			results, err := eng.reverse.QueryByDateRange(start, end, category)
			if err != nil {
				return err
			}
			return printJSON(results)
		},
	}

	cmd.Flags().StringVar(&category, "category", "rest_days", "Filter category")

	return cmd
}

// parseYears parses the --years flag, falling back to the configured
// window around the current year
func parseYears(flag string, cfg *config.Config) ([]int, error) {
	if flag == "" {
		return cfg.Query.DefaultYears(time.Now().Year()), nil
	}

	var years []int
	for _, part := range strings.Split(flag, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		year, err := strconv.Atoi(part)
		if err != nil {
			return nil, &calendar.ValidationError{Message: fmt.Sprintf("无效的年份: %s", part)}
		}
		if err := calendar.ValidateYear(year); err != nil {
			return nil, err
		}
		years = append(years, year)
	}
	return years, nil
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.OutputPaths = []string{"stderr"}

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
